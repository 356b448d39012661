package ncm

import "strings"

// FilterChunkSize is the server's maximum number of values per IN-filter.
// Filters carrying more values are split into chunks of this size and
// fetched as separate pagination walks.
const FilterChunkSize = 100

// ChunkFilter splits an IN-filter value into contiguous chunks of at most
// size values. A string value is split on ","; a list is used as-is. Any
// other type fails with an UnsupportedFilterTypeError.
//
// Order is preserved and no value is duplicated or dropped: concatenating
// the chunks reconstructs the input. Only the last chunk may be shorter
// than size.
func ChunkFilter(value interface{}, size int) ([][]string, error) {
	if size <= 0 {
		size = FilterChunkSize
	}

	values, err := filterValues(value)
	if err != nil {
		return nil, err
	}

	chunks := make([][]string, 0, (len(values)+size-1)/size)

	for start := 0; start < len(values); start += size {
		end := min(start+size, len(values))
		chunks = append(chunks, values[start:end])
	}

	return chunks, nil
}

// filterValues normalizes an IN-filter value into its value list.
func filterValues(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case string:
		return strings.Split(v, ","), nil
	case []string:
		return v, nil
	default:
		return nil, &UnsupportedFilterTypeError{Value: value}
	}
}
