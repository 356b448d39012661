package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigManagersIDForRouter(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query()
		assert.Equal(t, "/configuration_managers/", request.URL.Path)
		assert.Equal(t, "12345", query.Get("router"))
		assert.Equal(t, "id", query.Get("fields"))
		WritePage(writer, []ncm.Record{{"id": "900"}}, "")
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	managerID, err := client.ConfigManagers().IDForRouter(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, "900", managerID)
}

func TestConfigManagersIDForRouterNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		WritePage(writer, nil, "")
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.ConfigManagers().IDForRouter(context.Background(), "12345")
	require.ErrorIs(t, err, ncm.ErrConfigManagerNotFound)
}

func TestConfigManagersSetLANIPAddress(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/configuration_managers/", func(writer http.ResponseWriter, request *http.Request) {
		WritePage(writer, []ncm.Record{{"id": "900"}}, "")
	})
	mux.HandleFunc("/configuration_managers/900/", func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PATCH", request.Method)

		body, err := io.ReadAll(request.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"configuration": [
				{"lan": {"0": {"ip_address": "192.168.1.1", "netmask": "255.255.255.0"}}},
				[]
			]
		}`, string(body))
		writer.WriteHeader(http.StatusAccepted)
	})
	server := httptest.NewServer(mux)

	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.ConfigManagers().SetLANIPAddress(context.Background(), "12345", "192.168.1.1", "255.255.255.0")
	require.NoError(t, err)
	assert.Equal(t, ncm.OutcomeSuccessWithPayload, result.Outcome)
}

func TestConfigManagersCopyStripsMaskedSecrets(t *testing.T) {
	t.Parallel()

	var patched map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/configuration_managers/", func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Query().Get("fields") == "configuration" {
			WritePage(writer, []ncm.Record{{
				"configuration": map[string]interface{}{
					"wlan": map[string]interface{}{
						"wpapsk":   "*",
						"ssid":     "branch",
						"password": "*",
					},
					"system": map[string]interface{}{"asset_id": "42"},
				},
			}}, "")

			return
		}

		WritePage(writer, []ncm.Record{{"id": "901"}}, "")
	})
	mux.HandleFunc("/configuration_managers/901/", func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PATCH", request.Method)
		require.NoError(t, json.NewDecoder(request.Body).Decode(&patched))
		writer.WriteHeader(http.StatusAccepted)
	})
	server := httptest.NewServer(mux)

	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.ConfigManagers().CopyRouterConfiguration(context.Background(), "111", "222")
	require.NoError(t, err)
	assert.True(t, result.OK())

	wlan, ok := patched["configuration"].(map[string]interface{})["wlan"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, wlan, "wpapsk")
	assert.NotContains(t, wlan, "password")
	assert.Equal(t, "branch", wlan["ssid"])
}

func TestConfigManagersSuspend(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/configuration_managers/", func(writer http.ResponseWriter, request *http.Request) {
		WritePage(writer, []ncm.Record{{"id": "900"}}, "")
	})
	mux.HandleFunc("/configuration_managers/900/", func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)

		var body map[string]bool

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.True(t, body["suspended"])
		writer.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)

	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.ConfigManagers().Suspend(context.Background(), "12345", true)
	require.NoError(t, err)
	assert.True(t, result.OK())
}
