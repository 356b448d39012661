package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/netcloudkit/ncm-client/internal/http"
	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// list validates params against the endpoint's allow-list, then fetches the
// full paginated result set, splitting one oversized IN-filter into chunks
// of ncm.FilterChunkSize values when necessary.
//
// All chunk walks share one accumulator and one limit: the walk stops as
// soon as the limit is met, even mid-chunk, and the last fetched page is
// never trimmed, so the result may overshoot the limit by at most one page.
func (c *Client) list(ctx context.Context, path, label string, params ncm.Params, allowed []string) (*ncm.ResultSet, error) {
	query, err := ncm.ValidateParams(params, allowed)
	if err != nil {
		return nil, err
	}

	if err := c.ensureKeys(); err != nil {
		return nil, err
	}

	chunkKey, chunks, err := chunkedFilter(query)
	if err != nil {
		return nil, err
	}

	resultSet := &ncm.ResultSet{}

	if chunkKey == "" {
		err := c.walk(ctx, path, label, query, resultSet)

		return resultSet, err
	}

	for _, chunk := range chunks {
		if resultSet.Len() >= query.Limit() {
			break
		}

		query.Set(chunkKey, strings.Join(chunk, ","))

		if err := c.walk(ctx, path, label, query, resultSet); err != nil {
			return nil, err
		}
	}

	return resultSet, nil
}

// chunkedFilter finds the IN-filter whose value list exceeds the per-request
// maximum, if any. The server silently ignores values past the cap, so an
// oversized filter must be split into separate walks; two oversized filters
// in one call cannot be split without cross-producting the walks, and are
// rejected instead.
func chunkedFilter(query *ncm.Query) (string, [][]string, error) {
	var (
		key       string
		chunks    [][]string
		oversized []string
	)

	for _, filterKey := range query.InFilterKeys() {
		filterChunks, err := ncm.ChunkFilter(query.Get(filterKey), ncm.FilterChunkSize)
		if err != nil {
			return "", nil, err
		}

		if len(filterChunks) <= 1 {
			continue
		}

		oversized = append(oversized, filterKey)
		key = filterKey
		chunks = filterChunks
	}

	if len(oversized) > 1 {
		return "", nil, &ncm.MultipleChunkedFiltersError{Keys: oversized}
	}

	return key, chunks, nil
}

// walk follows the pagination cursor from path until the cursor is
// exhausted or the shared accumulator reaches the query limit. The first
// request carries the query; subsequent requests follow the server's next
// URL verbatim. A non-2xx page ends the walk silently, marking the result
// set truncated.
func (c *Client) walk(ctx context.Context, path, label string, query *ncm.Query, resultSet *ncm.ResultSet) error {
	nextURL := path
	values := query.Values()

	for nextURL != "" && resultSet.Len() < query.Limit() {
		resp, err := c.httpClient.Do(ctx, &http.Request{
			Method: "GET",
			Path:   nextURL,
			Query:  values,
		})
		if err != nil {
			return fmt.Errorf("listing %s: %w", strings.ToLower(label), err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			c.report(label, ncm.NewCallResult(resp.StatusCode, resp.Body))

			resultSet.Truncated = true

			break
		}

		var envelope ncm.Envelope

		err = json.Unmarshal(resp.Body, &envelope)
		if err != nil {
			return fmt.Errorf("parsing %s page: %w", strings.ToLower(label), err)
		}

		c.report(label, ncm.NewCallResult(resp.StatusCode, resp.Body))

		resultSet.Records = append(resultSet.Records, envelope.Data...)

		if envelope.Meta.Next != nil {
			nextURL = *envelope.Meta.Next
		} else {
			nextURL = ""
		}

		// The next URL embeds the full query already.
		values = nil
	}

	return nil
}

// do executes a write request and classifies the response per the outcome
// table. Transport failures surface as errors; HTTP-level failures surface
// through the CallResult.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, label string) (*ncm.CallResult, error) {
	if err := c.ensureKeys(); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: method,
		Path:   path,
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", strings.ToLower(method), path, err)
	}

	result := ncm.NewCallResult(resp.StatusCode, resp.Body)
	c.report(label, result)

	return result, nil
}

// mergeParams copies params and applies overrides on top, leaving the
// caller's map untouched. Helpers that pin filters (a fixed router, a
// computed time window) use it so the pinned values always win.
func mergeParams(params ncm.Params, overrides ncm.Params) ncm.Params {
	merged := make(ncm.Params, len(params)+len(overrides))

	for key, value := range params {
		merged[key] = value
	}

	for key, value := range overrides {
		merged[key] = value
	}

	return merged
}

// get executes a plain single-resource GET outside the pagination walk.
func (c *Client) get(ctx context.Context, path, label string, values url.Values) (*ncm.CallResult, error) {
	if err := c.ensureKeys(); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, values)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", strings.ToLower(label), err)
	}

	result := ncm.NewCallResult(resp.StatusCode, resp.Body)
	c.report(label, result)

	return result, nil
}
