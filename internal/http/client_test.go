package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	ncmhttp "github.com/netcloudkit/ncm-client/internal/http"
	"github.com/netcloudkit/ncm-client/pkg/ncm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func testKeys() *ncm.APIKeys {
	return &ncm.APIKeys{
		CPAPIID:   "cp-id",
		CPAPIKey:  "cp-key",
		ECMAPIID:  "ecm-id",
		ECMAPIKey: "ecm-key",
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request with credential headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/routers/", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "cp-id", request.Header.Get("X-CP-API-ID"))
			assert.Equal(t, "cp-key", request.Header.Get("X-CP-API-KEY"))
			assert.Equal(t, "ecm-id", request.Header.Get("X-ECM-API-ID"))
			assert.Equal(t, "ecm-key", request.Header.Get("X-ECM-API-KEY"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"id": "12345", "name": "lab-router"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := ncmhttp.NewClient(server.URL, testKeys())

		req := &ncmhttp.Request{
			Method: "GET",
			Path:   "/routers/",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "12345", result["id"])
		assert.Equal(t, "lab-router", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/routers/", request.URL.Path)
			assert.Equal(t, "limit=500&state=online", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := ncmhttp.NewClient(server.URL, testKeys())

		req := &ncmhttp.Request{
			Method: "GET",
			Path:   "/routers/",
			Query:  url.Values{"state": []string{"online"}, "limit": []string{"500"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PUT", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "branch-042", body["name"])

			writer.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client := ncmhttp.NewClient(server.URL, testKeys())

		req := &ncmhttp.Request{
			Method: "PUT",
			Path:   "/routers/12345/",
			Body:   map[string]string{"name": "branch-042"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 202, resp.StatusCode)
	})

	t.Run("non-2xx status is not a transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"detail": "invalid credentials"}`))
		}))
		defer server.Close()

		client := ncmhttp.NewClient(server.URL, testKeys())

		resp, err := client.Get(context.Background(), "/accounts/", nil)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
		assert.JSONEq(t, `{"detail": "invalid credentials"}`, string(resp.Body))
	})

	t.Run("absolute path bypasses base URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/routers/", request.URL.Path)
			assert.Equal(t, "limit=500&offset=500", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := ncmhttp.NewClient("https://unreachable.invalid/api/v2", testKeys())

		req := &ncmhttp.Request{
			Method: "GET",
			Path:   server.URL + "/routers/?limit=500&offset=500",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := ncmhttp.NewClient(server.URL, testKeys())

		req := &ncmhttp.Request{
			Method: "GET",
			Path:   "/routers/",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("nil keys sends no credential headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("X-CP-API-ID"))
			assert.Empty(t, request.Header.Get("X-ECM-API-ID"))
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := ncmhttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/routers/", nil)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}

func TestClient_Retry(t *testing.T) {
	t.Parallel()
	t.Run("retries transient server errors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if calls.Add(1) < 3 {
				writer.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{"data": []}`))
		}))
		defer server.Close()

		client := ncmhttp.NewClient(server.URL, testKeys(),
			ncmhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

		resp, err := client.Get(context.Background(), "/routers/", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("exhausted retries surface the final response", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"detail": "backend unavailable"}`))
		}))
		defer server.Close()

		client := ncmhttp.NewClient(server.URL, testKeys(),
			ncmhttp.WithRetryConfig(2, time.Millisecond, 5*time.Millisecond))

		resp, err := client.Get(context.Background(), "/routers/", nil)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.JSONEq(t, `{"detail": "backend unavailable"}`, string(resp.Body))
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("retries disabled still returns the response", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
			writer.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := ncmhttp.NewClient(server.URL, testKeys(),
			ncmhttp.WithRetryConfig(0, 0, 0))

		resp, err := client.Get(context.Background(), "/routers/", nil)
		require.NoError(t, err)
		assert.Equal(t, 502, resp.StatusCode)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := ncmhttp.NewClient(server.URL, testKeys(),
		ncmhttp.WithLogger(logger),
		ncmhttp.WithDebug(true))

	_, err := client.Get(context.Background(), "/routers/", nil)
	require.NoError(t, err)

	require.Len(t, logger.logs, 2)
	assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
	assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
}

func TestClient_SetKeys(t *testing.T) {
	t.Parallel()

	var lastID string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		lastID = request.Header.Get("X-CP-API-ID")
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := ncmhttp.NewClient(server.URL, testKeys())

	_, err := client.Get(context.Background(), "/routers/", nil)
	require.NoError(t, err)
	assert.Equal(t, "cp-id", lastID)

	client.SetKeys(&ncm.APIKeys{CPAPIID: "rotated", CPAPIKey: "k", ECMAPIID: "i", ECMAPIKey: "k"})

	_, err = client.Get(context.Background(), "/routers/", nil)
	require.NoError(t, err)
	assert.Equal(t, "rotated", lastID)
}
