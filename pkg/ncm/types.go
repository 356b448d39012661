package ncm

import "encoding/json"

// Record is one decoded record from a collection endpoint. The API's
// domain objects are passed through as raw field maps; callers index the
// fields they need.
type Record map[string]interface{}

// String returns the record field named key as a string, or "" when the
// field is absent or not a string.
func (r Record) String(key string) string {
	value, ok := r[key].(string)
	if !ok {
		return ""
	}

	return value
}

// ID returns the record's "id" field as a string. NCM encodes resource
// ids as JSON strings.
func (r Record) ID() string {
	return r.String("id")
}

// Meta carries the pagination metadata of a collection response.
type Meta struct {
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
	Next   *string `json:"next"`
}

// Envelope is the wire shape of every collection response: a data array
// plus a meta object whose next field holds the URL of the following page,
// or null on the last page.
type Envelope struct {
	Data []Record `json:"data"`
	Meta Meta     `json:"meta"`
}

// ResultSet is the ordered sequence of records accumulated across one or
// more pagination walks. Order is walk order, then page order, then
// in-page order.
//
// Truncated is set when a walk stopped early because the server answered
// with a non-2xx status mid-walk; the records gathered up to that point
// are kept. Callers that only range over Records behave exactly as they
// did before the flag existed.
type ResultSet struct {
	Records   []Record
	Truncated bool
}

// Len returns the number of accumulated records.
func (rs *ResultSet) Len() int {
	return len(rs.Records)
}

// First returns the first record, or an error when the set is empty.
func (rs *ResultSet) First() (Record, error) {
	if len(rs.Records) == 0 {
		return nil, ErrNoRecords
	}

	return rs.Records[0], nil
}

// CallResult is the normalized return value of a non-list call: the
// classified outcome plus whatever the outcome table says the caller gets
// back (the raw body for error outcomes, the success marker for 202,
// nothing otherwise).
type CallResult struct {
	StatusCode int
	Outcome    Outcome
	Body       json.RawMessage
}

// Value returns the payload dictated by the outcome table: the raw body
// for AuthError, NotFound and ServerError; the literal success marker for
// SuccessWithPayload; nil for every other outcome.
func (r *CallResult) Value() []byte {
	switch r.Outcome {
	case OutcomeAuthError, OutcomeNotFound, OutcomeServerError:
		return r.Body
	case OutcomeSuccessWithPayload:
		return []byte(SuccessMarker)
	default:
		return nil
	}
}

// OK reports whether the call landed on a success outcome.
func (r *CallResult) OK() bool {
	switch r.Outcome {
	case OutcomeSuccess, OutcomeSuccessWithPayload, OutcomeDeleted:
		return true
	default:
		return false
	}
}
