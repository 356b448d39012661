package ncm_test

import (
	"testing"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAllowedParams = []string{
	"account", "id", "id__in", "name", "name__in", "state", "order_by", "limit", "offset",
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestValidateParams(t *testing.T) {
	t.Parallel()
	t.Run("nil params get the default limit", func(t *testing.T) {
		t.Parallel()

		query, err := ncm.ValidateParams(nil, testAllowedParams)
		require.NoError(t, err)
		assert.Equal(t, ncm.DefaultLimit, query.Limit())
		assert.Equal(t, "500", query.Get("limit"))
	})

	t.Run("unknown keys are rejected together", func(t *testing.T) {
		t.Parallel()

		_, err := ncm.ValidateParams(ncm.Params{
			"state":   "online",
			"zzz":     1,
			"bogus":   "x",
			"another": "y",
		}, testAllowedParams)
		require.Error(t, err)

		var invalid *ncm.InvalidParameterError

		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, []string{"another", "bogus", "zzz"}, invalid.Keys)
		assert.Contains(t, err.Error(), "another, bogus, zzz")
	})

	t.Run("explicit limit is preserved", func(t *testing.T) {
		t.Parallel()

		query, err := ncm.ValidateParams(ncm.Params{"limit": 10}, testAllowedParams)
		require.NoError(t, err)
		assert.Equal(t, 10, query.Limit())
		assert.Equal(t, "10", query.Get("limit"))
	})

	t.Run("limit all becomes unbounded", func(t *testing.T) {
		t.Parallel()

		query, err := ncm.ValidateParams(ncm.Params{"limit": "all"}, testAllowedParams)
		require.NoError(t, err)
		assert.Equal(t, ncm.UnboundedLimit, query.Limit())
	})

	t.Run("limit sentinel is case-sensitive", func(t *testing.T) {
		t.Parallel()

		_, err := ncm.ValidateParams(ncm.Params{"limit": "ALL"}, testAllowedParams)
		require.Error(t, err)

		var invalid *ncm.InvalidLimitError

		require.ErrorAs(t, err, &invalid)
	})

	t.Run("integer string limit", func(t *testing.T) {
		t.Parallel()

		query, err := ncm.ValidateParams(ncm.Params{"limit": "25"}, testAllowedParams)
		require.NoError(t, err)
		assert.Equal(t, 25, query.Limit())
	})

	t.Run("order_by list joins preserving order", func(t *testing.T) {
		t.Parallel()

		query, err := ncm.ValidateParams(ncm.Params{
			"order_by": []string{"name", "state"},
		}, testAllowedParams)
		require.NoError(t, err)
		assert.Equal(t, "name,state", query.Get("order_by"))
	})

	t.Run("order_by string passes through", func(t *testing.T) {
		t.Parallel()

		query, err := ncm.ValidateParams(ncm.Params{"order_by": "name"}, testAllowedParams)
		require.NoError(t, err)
		assert.Equal(t, "name", query.Get("order_by"))
	})

	t.Run("order_by of other types is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ncm.ValidateParams(ncm.Params{"order_by": 7}, testAllowedParams)
		require.Error(t, err)

		var invalid *ncm.InvalidOrderByError

		require.ErrorAs(t, err, &invalid)
	})

	t.Run("list filter values join with commas", func(t *testing.T) {
		t.Parallel()

		query, err := ncm.ValidateParams(ncm.Params{
			"id__in": []string{"1", "2", "3"},
		}, testAllowedParams)
		require.NoError(t, err)
		assert.Equal(t, "1,2,3", query.Get("id__in"))
	})

	t.Run("integer list filter values join with commas", func(t *testing.T) {
		t.Parallel()

		query, err := ncm.ValidateParams(ncm.Params{
			"id__in": []int{1, 2, 3},
		}, testAllowedParams)
		require.NoError(t, err)
		assert.Equal(t, "1,2,3", query.Get("id__in"))
	})

	t.Run("in filter of unsupported type is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ncm.ValidateParams(ncm.Params{
			"id__in": map[string]string{"a": "b"},
		}, testAllowedParams)
		require.Error(t, err)

		var invalid *ncm.UnsupportedFilterTypeError

		require.ErrorAs(t, err, &invalid)
	})
}

func TestQueryInFilterKeys(t *testing.T) {
	t.Parallel()

	query, err := ncm.ValidateParams(ncm.Params{
		"name__in": "a,b",
		"id__in":   "1,2",
		"state":    "online",
	}, testAllowedParams)
	require.NoError(t, err)
	assert.Equal(t, []string{"id__in", "name__in"}, query.InFilterKeys())
}
