package ncm

import (
	"errors"
	"fmt"
	"strings"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrKeysRequired    = errors.New("API keys are required")
	ErrNoRecords       = errors.New("result set is empty")

	ErrAccountNotFound       = errors.New("account not found")
	ErrRouterNotFound        = errors.New("router not found")
	ErrGroupNotFound         = errors.New("group not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrFirmwareNotFound      = errors.New("firmware version not found")
	ErrLocationNotFound      = errors.New("no location found for router")
	ErrConfigManagerNotFound = errors.New("configuration manager not found")
)

// InvalidParameterError is returned when a caller supplies parameters
// outside the endpoint's allow-list. Keys lists every offending key.
type InvalidParameterError struct {
	Keys []string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameters: %s", strings.Join(e.Keys, ", "))
}

// InvalidOrderByError is returned when order_by is neither a string nor a
// sequence of field names.
type InvalidOrderByError struct {
	Value interface{}
}

func (e *InvalidOrderByError) Error() string {
	return fmt.Sprintf("invalid order_by parameter of type %T: must be a string or a list of field names", e.Value)
}

// InvalidLimitError is returned when limit is not an integer, an integer
// string, or the "all" sentinel.
type InvalidLimitError struct {
	Value interface{}
}

func (e *InvalidLimitError) Error() string {
	return fmt.Sprintf("invalid limit parameter %v: must be an integer or %q", e.Value, LimitAll)
}

// UnsupportedFilterTypeError is returned when an IN-filter value is
// neither a comma-joined string nor a list of scalar values.
type UnsupportedFilterTypeError struct {
	Value interface{}
}

func (e *UnsupportedFilterTypeError) Error() string {
	return fmt.Sprintf("invalid filter value of type %T: must be a string or a list", e.Value)
}

// MissingCredentialError is returned when one of the four API key headers
// is absent from the session.
type MissingCredentialError struct {
	Header string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s missing: ensure all API keys are present", e.Header)
}

// MultipleChunkedFiltersError is returned when more than one IN-filter in
// a single call exceeds the per-request value maximum. The server caps
// each filter at FilterChunkSize values, and re-walking the collection
// once per oversized filter would duplicate results, so only one filter
// per call may need chunking.
type MultipleChunkedFiltersError struct {
	Keys []string
}

func (e *MultipleChunkedFiltersError) Error() string {
	return fmt.Sprintf("at most one __in filter may exceed %d values per call, got: %s",
		FilterChunkSize, strings.Join(e.Keys, ", "))
}

// IsNotFound checks whether the error is any of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrRouterNotFound) ||
		errors.Is(err, ErrGroupNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrFirmwareNotFound) ||
		errors.Is(err, ErrLocationNotFound) ||
		errors.Is(err, ErrConfigManagerNotFound)
}

// IsMissingCredential checks whether the error reports an absent API key.
func IsMissingCredential(err error) bool {
	target := &MissingCredentialError{}

	return errors.As(err, &target)
}
