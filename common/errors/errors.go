// Package errors wraps github.com/pkg/errors so the rest of the codebase
// imports a single errors package, and adds the HTTP response helper used
// by the gin handlers.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(message string) error {
	return pkgerrors.New(message)
}

func Errorf(format string, args ...interface{}) error {
	return pkgerrors.Errorf(format, args...)
}

func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

func Cause(err error) error {
	return pkgerrors.Cause(err)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}
