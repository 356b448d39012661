package ncm

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the record limit injected when a caller does not
	// supply one. The server default of 20 forces needless round trips on
	// large collections.
	DefaultLimit = 500

	// UnboundedLimit is the internal limit substituted for the "all"
	// sentinel; it exceeds any realistic collection size.
	UnboundedLimit = 1000000

	// LimitAll is the sentinel meaning "fetch every page". Case-sensitive.
	LimitAll = "all"

	// InFilterMarker tags query parameters that carry a membership filter
	// ("return records whose field matches any of these values").
	InFilterMarker = "__in"
)

// Params is the raw caller-supplied parameter set for a list operation.
// Values may be strings, lists of strings, or integers; IN-filters
// additionally accept a single comma-joined string.
type Params map[string]interface{}

// Query is a validated, normalized parameter set ready for dispatch.
// Every value is rendered as its wire string and the limit is always
// present.
type Query struct {
	values url.Values
	limit  int
}

// Limit returns the effective record limit for the call.
func (q *Query) Limit() int {
	return q.limit
}

// Get returns the normalized value for key, or "".
func (q *Query) Get(key string) string {
	return q.values.Get(key)
}

// Set replaces the value for key.
func (q *Query) Set(key, value string) {
	q.values.Set(key, value)
}

// Values returns the underlying wire values.
func (q *Query) Values() url.Values {
	return q.values
}

// Encode returns the URL-encoded form of the query.
func (q *Query) Encode() string {
	return q.values.Encode()
}

// InFilterKeys returns the parameter names carrying the IN-filter marker,
// sorted for deterministic walk order.
func (q *Query) InFilterKeys() []string {
	var keys []string

	for key := range q.values {
		if strings.Contains(key, InFilterMarker) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys
}

// ValidateParams checks params against the endpoint's allowed parameter
// names and returns the normalized query. Unknown keys fail with an
// InvalidParameterError naming every offending key. A missing limit is
// defaulted to DefaultLimit and the LimitAll sentinel is replaced by
// UnboundedLimit. An order_by list is joined into a comma-separated
// string, preserving order.
func ValidateParams(params Params, allowed []string) (*Query, error) {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	var unknown []string

	for key := range params {
		if _, ok := allowedSet[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)

		return nil, &InvalidParameterError{Keys: unknown}
	}

	query := &Query{values: url.Values{}, limit: DefaultLimit}

	for key, value := range params {
		switch key {
		case "limit":
			limit, err := parseLimit(value)
			if err != nil {
				return nil, err
			}

			query.limit = limit
		case "order_by":
			orderBy, err := parseOrderBy(value)
			if err != nil {
				return nil, err
			}

			query.values.Set(key, orderBy)
		default:
			rendered, err := renderValue(key, value)
			if err != nil {
				return nil, err
			}

			query.values.Set(key, rendered)
		}
	}

	query.values.Set("limit", strconv.Itoa(query.limit))

	return query, nil
}

// parseLimit accepts an integer, an integer string, or the "all" sentinel.
func parseLimit(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		if v == LimitAll {
			return UnboundedLimit, nil
		}

		limit, err := strconv.Atoi(v)
		if err != nil {
			return 0, &InvalidLimitError{Value: value}
		}

		return limit, nil
	default:
		return 0, &InvalidLimitError{Value: value}
	}
}

// parseOrderBy accepts a field name string or an ordered list of field
// names, joined with "," preserving order.
func parseOrderBy(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []string:
		return strings.Join(v, ","), nil
	case []interface{}:
		fields := make([]string, len(v))
		for i, field := range v {
			fields[i] = fmt.Sprint(field)
		}

		return strings.Join(fields, ","), nil
	default:
		return "", &InvalidOrderByError{Value: value}
	}
}

// renderValue renders a parameter value as its wire string. Lists are
// comma-joined; IN-filter keys reject anything that is not a string or a
// list.
func renderValue(key string, value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []string:
		return strings.Join(v, ","), nil
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}

		return strings.Join(parts, ","), nil
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}

		return strings.Join(parts, ","), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		if strings.Contains(key, InFilterMarker) {
			return "", &UnsupportedFilterTypeError{Value: value}
		}

		return fmt.Sprint(value), nil
	}
}
