/**
 * @description
 * Error taxonomy for the Akahu client.
 *
 * Failures are surfaced as three distinguishable kinds, none of which is ever
 * swallowed or converted to a default value:
 *   - RequestError: the request never produced an HTTP response.
 *   - StatusError:  the API answered with a non-2xx status. Authentication
 *     failures arrive here as 401/403; there is no pre-flight check.
 *   - DecodeError:  the body arrived but is structurally or semantically
 *     invalid for the expected model.
 *
 * The client performs no retries; callers decide whether to retry, directly
 * or via transport middleware.
 */
package akahu

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingAppSecret is returned by app-scoped operations when the client
// was constructed without WithAppSecret.
var ErrMissingAppSecret = errors.New("akahu: app secret required for app-scoped endpoints; construct the client with WithAppSecret")

// RequestError wraps a transport-level failure such as a DNS error or a
// reset connection.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("akahu: transport failure: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx API response. Body holds the raw response for
// caller inspection; Message is parsed from the API's error envelope when
// one is present, falling back to the status text.
type StatusError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("akahu: api error %d: %s", e.StatusCode, e.Message)
}

func statusErrorWith(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// IsUnauthorized reports whether err is a 401 response, meaning a credential
// was missing, invalid or revoked.
func IsUnauthorized(err error) bool {
	return statusErrorWith(err, http.StatusUnauthorized)
}

// IsForbidden reports whether err is a 403 response.
func IsForbidden(err error) bool {
	return statusErrorWith(err, http.StatusForbidden)
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return statusErrorWith(err, http.StatusNotFound)
}

// IsRateLimited reports whether err is a 429 response.
func IsRateLimited(err error) bool {
	return statusErrorWith(err, http.StatusTooManyRequests)
}

// DecodeError is a response body that could not be mapped onto the expected
// model. Field names the offending field path when one is known.
type DecodeError struct {
	Field  string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("akahu: decode %s: %s: %v", e.Field, e.Reason, e.Err)
	case e.Field != "":
		return fmt.Sprintf("akahu: decode %s: %s", e.Field, e.Reason)
	case e.Err != nil:
		return fmt.Sprintf("akahu: decode: %s: %v", e.Reason, e.Err)
	default:
		return fmt.Sprintf("akahu: decode: %s", e.Reason)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// missingField builds the DecodeError for a required field that was absent.
func missingField(path string) *DecodeError {
	return &DecodeError{Field: path, Reason: "required field missing"}
}

// invalidField builds the DecodeError for a field that was present but
// unusable.
func invalidField(path string, err error) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) && de.Field != "" {
		return de
	}
	return &DecodeError{Field: path, Reason: "invalid value", Err: err}
}

// nestField prefixes a nested object's decode error with the path of the
// field it was decoded under.
func nestField(prefix string, err error) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) {
		field := prefix
		if de.Field != "" {
			field = prefix + "." + de.Field
		}
		return &DecodeError{Field: field, Reason: de.Reason, Err: de.Err}
	}
	return &DecodeError{Field: prefix, Reason: "invalid value", Err: err}
}
