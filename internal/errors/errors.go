package errors

import (
	e "errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
// The wrapped error can still be recognized with the IsXXX functions.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return asNotFound(fmt.Errorf(s, v...))
}

func (n notFound) Error() string {
	return n.message
}

func asNotFound(err error) error {
	return notFound{fmt.Sprintf("Not found: %v", err)}
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	var n notFound
	return e.As(err, &n)
}

type invalidArgument struct {
	message string
}

func (i invalidArgument) Error() string {
	return i.message
}

// NewInvalidArgument creates an error for a parameter that is out of range,
// e.g. a non-positive target dimension.
func NewInvalidArgument(msg string, v ...interface{}) error {
	return invalidArgument{"invalid argument: " + fmt.Sprintf(msg, v...)}
}

// IsInvalidArgument checks if the given error is an "invalid argument" error.
func IsInvalidArgument(err error) bool {
	var i invalidArgument
	return e.As(err, &i)
}

type corruptInput struct {
	message string
}

func (c corruptInput) Error() string {
	return c.message
}

// NewCorruptInput creates an error for input data that contradicts its own
// description, e.g. a pixel slice that does not match width*height.
func NewCorruptInput(msg string, v ...interface{}) error {
	return corruptInput{"corrupt input: " + fmt.Sprintf(msg, v...)}
}

// IsCorruptInput checks if the given error is a "corrupt input" error.
func IsCorruptInput(err error) bool {
	var c corruptInput
	return e.As(err, &c)
}
