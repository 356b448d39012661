package ncm

import (
	"encoding/json"
	"net/http"
)

// SuccessMarker is the literal payload returned for accepted (202) calls.
const SuccessMarker = "Success"

// Outcome classifies an HTTP status code into the call outcome the API
// contract defines.
type Outcome int

const (
	// OutcomeUnknown covers every status the table does not name.
	OutcomeUnknown Outcome = iota

	// OutcomeSuccess is a 200 or 201 response.
	OutcomeSuccess

	// OutcomeSuccessWithPayload is a 202 response; the caller receives
	// the success marker.
	OutcomeSuccessWithPayload

	// OutcomeDeleted is a 204 response.
	OutcomeDeleted

	// OutcomeClientError is a 400 response.
	OutcomeClientError

	// OutcomeAuthError is a 401 response; the caller receives the raw body.
	OutcomeAuthError

	// OutcomeNotFound is a 404 response; the caller receives the raw body.
	OutcomeNotFound

	// OutcomeServerError is a 500 response; the caller receives the raw body.
	OutcomeServerError
)

// OutcomeForStatus maps a status code to its outcome. The mapping is by
// exact status, not by range; anything unlisted is OutcomeUnknown.
func OutcomeForStatus(statusCode int) Outcome {
	switch statusCode {
	case http.StatusOK, http.StatusCreated:
		return OutcomeSuccess
	case http.StatusAccepted:
		return OutcomeSuccessWithPayload
	case http.StatusNoContent:
		return OutcomeDeleted
	case http.StatusBadRequest:
		return OutcomeClientError
	case http.StatusUnauthorized:
		return OutcomeAuthError
	case http.StatusNotFound:
		return OutcomeNotFound
	case http.StatusInternalServerError:
		return OutcomeServerError
	default:
		return OutcomeUnknown
	}
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSuccessWithPayload:
		return "accepted"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeClientError:
		return "client error"
	case OutcomeAuthError:
		return "unauthorized"
	case OutcomeNotFound:
		return "not found"
	case OutcomeServerError:
		return "server error"
	default:
		return "unknown"
	}
}

// Notice returns the advisory human-readable message emitted when event
// logging is enabled. label names the call (e.g. "Routers").
func (o Outcome) Notice(label string) string {
	switch o {
	case OutcomeSuccess:
		return label + " operation successful"
	case OutcomeSuccessWithPayload:
		return label + " accepted"
	case OutcomeDeleted:
		return label + " deleted successfully"
	case OutcomeClientError:
		return "bad request"
	case OutcomeAuthError:
		return "unauthorized access"
	case OutcomeNotFound:
		return "resource not found"
	case OutcomeServerError:
		return "HTTP 500 - server error"
	default:
		return "no returned data"
	}
}

// NewCallResult classifies a response into a CallResult. The body is kept
// verbatim; Value applies the outcome table when the caller asks for the
// payload.
func NewCallResult(statusCode int, body []byte) *CallResult {
	return &CallResult{
		StatusCode: statusCode,
		Outcome:    OutcomeForStatus(statusCode),
		Body:       json.RawMessage(body),
	}
}
