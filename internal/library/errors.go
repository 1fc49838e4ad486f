package library

import (
	"errors"
	"fmt"
)

// Kind enumerates every failure the lending service can report. The set is
// closed: the HTTP layer maps each kind to exactly one status code, so a new
// kind requires a new mapping there too.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindDuplicateKey
	KindAlreadyBorrowed
	KindNotBorrowed
	KindInternal
)

// Entity names the record an error refers to.
type Entity string

const (
	EntityBook   Entity = "book"
	EntityMember Entity = "member"
)

// Error is the service's only error type. Store and driver failures are
// wrapped as KindInternal and carry the cause for logging; the message shown
// to clients never includes it.
type Error struct {
	Kind   Kind
	Entity Entity
	msg    string
	cause  error
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.cause }

func NotFound(entity Entity, id string) *Error {
	return &Error{
		Kind:   KindNotFound,
		Entity: entity,
		msg:    fmt.Sprintf("%s not found with ID: %s", entity, id),
	}
}

func DuplicateISBN(isbn string) *Error {
	return &Error{
		Kind:   KindDuplicateKey,
		Entity: EntityBook,
		msg:    fmt.Sprintf("book with ISBN %s already exists", isbn),
	}
}

func DuplicateEmail(email string) *Error {
	return &Error{
		Kind:   KindDuplicateKey,
		Entity: EntityMember,
		msg:    fmt.Sprintf("member with email %s already exists", email),
	}
}

func AlreadyBorrowed(bookID string) *Error {
	return &Error{
		Kind:   KindAlreadyBorrowed,
		Entity: EntityBook,
		msg:    fmt.Sprintf("book with ID %s is already borrowed", bookID),
	}
}

func NotBorrowed(bookID string) *Error {
	return &Error{
		Kind:   KindNotBorrowed,
		Entity: EntityBook,
		msg:    fmt.Sprintf("book with ID %s is not currently borrowed", bookID),
	}
}

// Internal wraps a store or infrastructure failure. The client-facing message
// stays generic; cause is available via Unwrap for logs.
func Internal(cause error) *Error {
	return &Error{
		Kind:  KindInternal,
		msg:   "an unexpected error occurred",
		cause: cause,
	}
}

// KindOf reports the Kind of err, or zero if err is not a *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
