package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsCreate(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	mux := http.NewServeMux()
	mux.HandleFunc("/firmwares/", func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "7.2.0", request.URL.Query().Get("version"))
		WritePage(writer, []ncm.Record{
			{"id": "55", "product": server.URL + "/products/46/", "resource_url": server.URL + "/firmwares/55/"},
			{"id": "56", "product": server.URL + "/products/99/", "resource_url": server.URL + "/firmwares/56/"},
		}, "")
	})
	mux.HandleFunc("/products/", func(writer http.ResponseWriter, request *http.Request) {
		WritePage(writer, []ncm.Record{
			{"id": "46", "name": "IBR200", "resource_url": server.URL + "/products/46/"},
			{"id": "99", "name": "IBR900", "resource_url": server.URL + "/products/99/"},
		}, "")
	})
	mux.HandleFunc("/groups/", func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)

		var body map[string]string

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "/api/v1/accounts/100/", body["account"])
		assert.Equal(t, "My New Group", body["name"])
		assert.Equal(t, server.URL+"/products/46/", body["product"])
		assert.Equal(t, server.URL+"/firmwares/55/", body["target_firmware"])
		writer.WriteHeader(http.StatusCreated)
	})
	server = httptest.NewServer(mux)

	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.Groups().Create(context.Background(), "100", "My New Group", "IBR200", "7.2.0")
	require.NoError(t, err)
	assert.True(t, result.OK())
}

func TestGroupsCreateUnknownFirmware(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/firmwares/", func(writer http.ResponseWriter, request *http.Request) {
		WritePage(writer, nil, "")
	})
	mux.HandleFunc("/products/", func(writer http.ResponseWriter, request *http.Request) {
		WritePage(writer, []ncm.Record{{"id": "46", "name": "IBR200"}}, "")
	})
	server := httptest.NewServer(mux)

	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Groups().Create(context.Background(), "100", "My New Group", "IBR200", "0.0.0")
	require.ErrorIs(t, err, ncm.ErrFirmwareNotFound)
}

func TestGroupsPatchConfiguration(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/groups/777/", func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PATCH", request.Method)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Contains(t, body, "configuration")
		writer.WriteHeader(http.StatusAccepted)
	})
	server := httptest.NewServer(mux)

	defer server.Close()

	client := NewTestClient(server.URL)

	config := map[string]interface{}{
		"configuration": []interface{}{map[string]interface{}{"system": map[string]interface{}{}}, []interface{}{}},
	}

	result, err := client.Groups().PatchConfiguration(context.Background(), "777", config)
	require.NoError(t, err)
	assert.Equal(t, []byte(ncm.SuccessMarker), result.Value())
}

func TestProductsGetByName(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/products/", request.URL.Path)
		WritePage(writer, []ncm.Record{
			{"id": "46", "name": "IBR200"},
			{"id": "99", "name": "IBR900"},
		}, "")
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	product, err := client.Products().GetByName(context.Background(), "IBR900")
	require.NoError(t, err)
	assert.Equal(t, "99", product.ID())

	_, err = client.Products().GetByName(context.Background(), "IBR999")
	require.ErrorIs(t, err, ncm.ErrProductNotFound)
}
