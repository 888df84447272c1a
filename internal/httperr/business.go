package httperr

import (
	"errors"
	"fmt"
)

// Kind tags an Error so the HTTP boundary can map it to a status code
// without inspecting message strings.
type Kind int

const (
	// KindValidation covers input rejected before touching the store.
	KindValidation Kind = iota
	// KindConflict covers uniqueness violations detected by explicit lookup.
	KindConflict
	KindNotFound
	KindAuth
	// KindPersistence covers write failures after the transaction rolled back.
	KindPersistence
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func Validationf(format string, args ...any) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func Auth(message string) *Error {
	return New(KindAuth, message)
}

func Persistence(message string) *Error {
	return New(KindPersistence, message)
}

func Internal(message string) *Error {
	return New(KindInternal, message)
}

// KindOf extracts the kind of err; unrecognized errors count as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
