package poster

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"

	// Extraction failures.
	EMISSINGCREDENTIAL = "missing_credential"
	ETRANSPORT         = "transport_failure"
	ERATELIMITED       = "rate_limited"
	EUNAVAILABLE       = "model_unavailable"
	EEMPTYRESPONSE     = "empty_response"
	EMALFORMEDJSON     = "malformed_json"
	ESCHEMA            = "schema_violation"
)

// Error represents an application-specific error. Extraction errors never
// carry partial data; a caller gets either a complete Record or an Error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("poster error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorHint returns a short remediation hint for an error code, or an empty
// string when there is nothing the user can do about it.
func ErrorHint(code string) string {
	switch code {
	case EMISSINGCREDENTIAL:
		return "Set GEMINI_API_KEY or pass --api-key. Get a key at https://aistudio.google.com/apikey"
	case ERATELIMITED:
		return "The model quota is exhausted. Wait a minute and try again."
	case EUNAVAILABLE:
		return "The configured model is not available. Check --model."
	case ETRANSPORT:
		return "Check your network connection."
	case EEMPTYRESPONSE, EMALFORMEDJSON, ESCHEMA:
		return "The model returned an unusable answer. Try again."
	}
	return ""
}
