package ncmclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
	"github.com/netcloudkit/ncm-client/pkg/ncmclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeys() *ncm.APIKeys {
	return &ncm.APIKeys{
		CPAPIID:   "cp-id",
		CPAPIKey:  "cp-key",
		ECMAPIID:  "ecm-id",
		ECMAPIKey: "ecm-key",
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := ncmclient.New(&ncm.Config{
			BaseURL: "https://ncm.example.com/api/v2",
			Keys:    testKeys(),
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://ncm.example.com/api/v2", client.BaseURL())
	})

	t.Run("nil config is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ncmclient.New(nil)
		require.ErrorIs(t, err, ncm.ErrConfigRequired)
	})

	t.Run("adds scheme and trims trailing slash", func(t *testing.T) {
		t.Parallel()

		client, err := ncmclient.New(&ncm.Config{BaseURL: "ncm.example.com/api/v2/"})
		require.NoError(t, err)
		assert.Equal(t, "https://ncm.example.com/api/v2", client.BaseURL())
	})

	t.Run("incomplete keys are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ncmclient.New(&ncm.Config{
			BaseURL: "https://ncm.example.com/api/v2",
			Keys:    &ncm.APIKeys{CPAPIID: "cp-id"},
		})
		require.Error(t, err)

		var missing *ncm.MissingCredentialError

		require.ErrorAs(t, err, &missing)
		assert.Equal(t, ncm.HeaderCPAPIKey, missing.Header)
	})
}

// Not parallel: t.Setenv panics inside parallel tests.
func TestNewBaseURLFromEnvironment(t *testing.T) {
	t.Setenv("CP_BASE_URL", "https://staging.example.com/api/v2")

	client, err := ncmclient.New(&ncm.Config{})
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com/api/v2", client.BaseURL())

	t.Setenv("CP_BASE_URL", "")

	client, err = ncmclient.New(&ncm.Config{})
	require.NoError(t, err)
	assert.Equal(t, "https://www.cradlepointecm.com/api/v2", client.BaseURL())
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	client, err := ncmclient.NewWithEndpoint("https://ncm.example.com/api/v2")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/routers/":
			envelope := map[string]interface{}{
				"data": []map[string]interface{}{
					{"id": "12345", "name": "lab-router", "state": "online"},
				},
				"meta": map[string]interface{}{"limit": 500, "offset": 0, "next": nil},
			}
			_ = json.NewEncoder(writer).Encode(envelope)
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := ncmclient.New(&ncm.Config{BaseURL: server.URL, Keys: testKeys()})
	require.NoError(t, err)

	routers, err := client.Routers().List(context.Background(), ncm.Params{"state": "online"})
	require.NoError(t, err)
	require.Equal(t, 1, routers.Len())
	assert.Equal(t, "lab-router", routers.Records[0].String("name"))
}
