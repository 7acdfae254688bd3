package services

import "errors"

// ErrInvalidCredentials deliberately carries no detail about which of the
// two fields was wrong.
var ErrInvalidCredentials = errors.New("incorrect email address or password")

// ValidationError is a user-correctable input problem. Message names the
// specific rule that failed; the first failing rule wins.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validation(message string) error {
	return &ValidationError{Message: message}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// NotFoundError reports a referenced row that vanished between screens.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func notFound(message string) error {
	return &NotFoundError{Message: message}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
