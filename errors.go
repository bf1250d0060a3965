package reqwire

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the category of a request error.
type ErrorCode string

const (
	CodeMissingField            ErrorCode = "missing_field"
	CodeMissingPathParameter    ErrorCode = "missing_path_parameter"
	CodeQuerySerialization      ErrorCode = "query_serialization"
	CodeBodySerialization       ErrorCode = "body_serialization"
	CodeResponseDeserialization ErrorCode = "response_deserialization"
	CodeValidation              ErrorCode = "validation"
	CodeMissingBaseURL          ErrorCode = "missing_base_url"
	CodeURLBuild                ErrorCode = "url_build"
	CodeTransport               ErrorCode = "transport"
)

// RequestError is returned from Build, BuildURL, BuildBody, Send and
// SendContext on generated types. All runtime failures surface as a
// *RequestError; callers branch on Code (or errors.Is with a code probe)
// rather than on message text.
type RequestError struct {
	// Code is the machine-readable error category.
	Code ErrorCode

	// Field names the offending field or path parameter, when applicable.
	Field string

	// Message carries validator output for CodeValidation errors.
	Message string

	// Err is the wrapped cause (serialization or transport error), if any.
	Err error
}

func (e *RequestError) Error() string {
	switch e.Code {
	case CodeMissingField:
		return fmt.Sprintf("missing required field: %s", e.Field)
	case CodeMissingPathParameter:
		return fmt.Sprintf("missing required path parameter: %s", e.Field)
	case CodeQuerySerialization:
		return fmt.Sprintf("serialize query parameters: %v", e.Err)
	case CodeBodySerialization:
		return fmt.Sprintf("serialize request body: %v", e.Err)
	case CodeResponseDeserialization:
		return fmt.Sprintf("deserialize response body: %v", e.Err)
	case CodeValidation:
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	case CodeMissingBaseURL:
		return "no base URL configured; use BaseURL to set one"
	case CodeURLBuild:
		return fmt.Sprintf("build URL: %v", e.Err)
	case CodeTransport:
		return fmt.Sprintf("HTTP request failed: %v", e.Err)
	default:
		return string(e.Code)
	}
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *RequestError with the same code.
// A target with an empty Field matches any field, so callers can probe
// with errors.Is(err, &RequestError{Code: CodeValidation}).
func (e *RequestError) Is(target error) bool {
	var re *RequestError
	if !errors.As(target, &re) {
		return false
	}
	return re.Code == e.Code && (re.Field == "" || re.Field == e.Field)
}

// MissingField reports that a required builder field was never set.
func MissingField(field string) *RequestError {
	return &RequestError{Code: CodeMissingField, Field: field}
}

// MissingPathParameter reports that an optional-typed path field was unset
// at URL build time.
func MissingPathParameter(param string) *RequestError {
	return &RequestError{Code: CodeMissingPathParameter, Field: param}
}

// ValidationFailed reports a field validator failure.
func ValidationFailed(field, message string) *RequestError {
	return &RequestError{Code: CodeValidation, Field: field, Message: message}
}

// QueryError wraps a query-string serialization failure.
func QueryError(err error) *RequestError {
	return &RequestError{Code: CodeQuerySerialization, Err: err}
}

// BodyError wraps a request body serialization failure.
func BodyError(err error) *RequestError {
	return &RequestError{Code: CodeBodySerialization, Err: err}
}

// ResponseError wraps a response body deserialization failure.
func ResponseError(err error) *RequestError {
	return &RequestError{Code: CodeResponseDeserialization, Err: err}
}

// MissingBaseURL reports that Send was called before BaseURL.
func MissingBaseURL() *RequestError {
	return &RequestError{Code: CodeMissingBaseURL}
}

// URLBuildError wraps a nested failure from BuildURL.
func URLBuildError(err error) *RequestError {
	return &RequestError{Code: CodeURLBuild, Err: err}
}

// TransportError wraps an error from the underlying HTTP client.
func TransportError(err error) *RequestError {
	return &RequestError{Code: CodeTransport, Err: err}
}
