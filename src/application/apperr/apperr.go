package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	InvalidURL          Kind = "InvalidUrl"
	NotConfigured       Kind = "NotConfigured"
	ProviderUnavailable Kind = "ProviderUnavailable"
	NotFound            Kind = "NotFound"
	NoLinkAvailable     Kind = "NoLinkAvailable"
	InvalidAction       Kind = "InvalidAction"
	InvalidParameter    Kind = "InvalidParameter"
	RateLimited         Kind = "RateLimited"
	InternalError       Kind = "InternalError"
)

const internalErrorMessage = "Internal server error"

var _ error = Error{}

// Error is a failure that may be shown to the caller. Message is user facing,
// Cause is only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func New(kind Kind, message string) Error {
	return Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) Error {
	return Error{Kind: kind, Message: message, Cause: cause}
}

func (e Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
}

func (e Error) Unwrap() error {
	return e.Cause
}

func KindOf(err error) Kind {
	var appErr Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return InternalError
}

func MessageOf(err error) string {
	var appErr Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}

	return internalErrorMessage
}
