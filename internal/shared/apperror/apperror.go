package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP status mapping.
type Kind int

const (
	KindValidation     Kind = iota // malformed or missing caller input -> 400
	KindAuthentication             // missing/invalid/revoked credential -> 401
	KindAuthorization              // authenticated but not permitted -> 403
	KindNotFound                   // referenced entity absent -> 404
	KindConflict                   // uniqueness or state conflict -> 409
	KindStorage                    // transaction/connection failure -> 500
)

// Error is the typed error domain services raise. The boundary layer maps
// Kind to a status code and Code to a stable machine-readable string.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION_ERROR", Message: message}
}

func ValidationErr(err error) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION_ERROR", Message: err.Error(), Err: err}
}

func Authentication(code, message string) *Error {
	return &Error{Kind: KindAuthentication, Code: code, Message: message}
}

func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Code: "FORBIDDEN", Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: "NOT_FOUND", Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Code: "CONFLICT", Message: message}
}

func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Code: "STORAGE_ERROR", Message: "internal server error", Err: err}
}

// As unwraps err into an *Error, or nil when the chain carries none.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	appErr := As(err)
	return appErr != nil && appErr.Kind == kind
}
