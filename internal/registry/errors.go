package registry

import (
	"errors"
)

// ValidationError rejects guest or admin input before any store call.
// Message is the user-facing text shown in the flash notification.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrAlreadyReserved reports a reservation whose conditional update
	// affected zero rows: another guest got there first.
	ErrAlreadyReserved = errors.New("gift already reserved")

	// ErrInvalidCredentials covers both unknown email and digest mismatch,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// IsValidation reports whether err is a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
