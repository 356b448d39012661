package ncm_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkFilter(t *testing.T) {
	t.Parallel()
	t.Run("values at the cap stay in one chunk", func(t *testing.T) {
		t.Parallel()

		values := make([]string, ncm.FilterChunkSize)
		for i := range values {
			values[i] = fmt.Sprintf("%d", i)
		}

		chunks, err := ncm.ChunkFilter(values, ncm.FilterChunkSize)
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Len(t, chunks[0], ncm.FilterChunkSize)
	})

	t.Run("250 values split into 100 100 50", func(t *testing.T) {
		t.Parallel()

		values := make([]string, 250)
		for i := range values {
			values[i] = fmt.Sprintf("%d", i)
		}

		chunks, err := ncm.ChunkFilter(values, ncm.FilterChunkSize)
		require.NoError(t, err)
		require.Len(t, chunks, 3)
		assert.Len(t, chunks[0], 100)
		assert.Len(t, chunks[1], 100)
		assert.Len(t, chunks[2], 50)

		// Concatenating the chunks reconstructs the input.
		var flat []string
		for _, chunk := range chunks {
			flat = append(flat, chunk...)
		}
		assert.Equal(t, values, flat)
	})

	t.Run("comma string splits before chunking", func(t *testing.T) {
		t.Parallel()

		chunks, err := ncm.ChunkFilter("1,2,3,4,5", 2)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}, {"5"}}, chunks)
	})

	t.Run("unsupported type is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ncm.ChunkFilter(42, ncm.FilterChunkSize)
		require.Error(t, err)

		var invalid *ncm.UnsupportedFilterTypeError

		require.ErrorAs(t, err, &invalid)
	})

	t.Run("empty string yields one chunk of the empty value", func(t *testing.T) {
		t.Parallel()

		chunks, err := ncm.ChunkFilter("", ncm.FilterChunkSize)
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, []string{""}, chunks[0])
	})

	t.Run("chunk order matches input order", func(t *testing.T) {
		t.Parallel()

		input := strings.Join([]string{"z", "a", "m", "b"}, ",")

		chunks, err := ncm.ChunkFilter(input, 3)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"z", "a", "m"}, {"b"}}, chunks)
	})
}
