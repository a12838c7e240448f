// Package apperr carries the error kinds the workflow engine distinguishes.
// Handlers map kinds to HTTP statuses; services return them for every expected
// business failure instead of bare errors.
package apperr

import (
	"errors"
	"strings"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuthorization
)

type Error struct {
	Kind     Kind
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

func newError(kind Kind, msgs []string) *Error {
	if len(msgs) == 0 {
		msgs = []string{"operation failed"}
	}
	return &Error{Kind: kind, Messages: msgs}
}

func Validation(msgs ...string) *Error    { return newError(KindValidation, msgs) }
func Conflict(msgs ...string) *Error      { return newError(KindConflict, msgs) }
func NotFound(msgs ...string) *Error      { return newError(KindNotFound, msgs) }
func Authorization(msgs ...string) *Error { return newError(KindAuthorization, msgs) }

// KindOf reports the kind of err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsValidation(err error) bool    { return KindOf(err) == KindValidation }
func IsConflict(err error) bool      { return KindOf(err) == KindConflict }
func IsNotFound(err error) bool      { return KindOf(err) == KindNotFound }
func IsAuthorization(err error) bool { return KindOf(err) == KindAuthorization }
