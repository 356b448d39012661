package client

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	internalhttp "github.com/netcloudkit/ncm-client/internal/http"
	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// TestKeys returns a complete credential set for tests.
func TestKeys() *ncm.APIKeys {
	return &ncm.APIKeys{
		CPAPIID:   "cp-id",
		CPAPIKey:  "cp-key",
		ECMAPIID:  "ecm-id",
		ECMAPIKey: "ecm-key",
	}
}

// NewTestClient creates a client against a test server base URL. Retries
// are disabled so error-path tests return immediately.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, TestKeys(),
		internalhttp.WithRetryConfig(0, 0, 0))

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		keys:       TestKeys(),
	}

	client.initializeResourceClients()

	return client
}

// NewKeylessTestClient creates a client with no credentials installed.
func NewKeylessTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil,
		internalhttp.WithRetryConfig(0, 0, 0))

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// WritePage writes one collection page. next is the absolute URL of the
// following page, or "" for the last page.
func WritePage(w http.ResponseWriter, records []ncm.Record, next string) {
	var nextField *string
	if next != "" {
		nextField = &next
	}

	envelope := ncm.Envelope{
		Data: records,
		Meta: ncm.Meta{Next: nextField},
	}

	_ = json.NewEncoder(w).Encode(envelope)
}

// MakeRecords builds count records with sequential ids starting at start.
func MakeRecords(start, count int) []ncm.Record {
	records := make([]ncm.Record, count)
	for i := range records {
		records[i] = ncm.Record{"id": strconv.Itoa(start + i)}
	}

	return records
}

// MakeIDs builds count sequential string ids starting at start.
func MakeIDs(start, count int) []string {
	ids := make([]string, count)
	for i := range ids {
		ids[i] = strconv.Itoa(start + i)
	}

	return ids
}

// SplitFilter splits a comma-joined filter value.
func SplitFilter(value string) []string {
	if value == "" {
		return nil
	}

	return strings.Split(value, ",")
}
