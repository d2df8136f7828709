package zimtocorpus

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// ETRUNCATED and ESTRUCTURE carry the recoverability contract of the
// conversion pipeline: a truncated archive is an expected tail condition and
// is recovered at the worker boundary, while a structural fault in a record
// is a defect and aborts the file. The distinction is dispatched on the code,
// never on message text.
const (
	EINVALID   = "invalid"   // malformed input or argument
	EINTERNAL  = "internal"  // unexpected internal fault
	ENOTFOUND  = "not_found" // entity does not exist
	ESTRUCTURE = "structure" // section hierarchy could not be recovered
	ETRUNCATED = "truncated" // archive ended before the expected data
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("zimtocorpus error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
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
// Non-application errors return a generic message; nil returns the empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
