package oerror

import "fmt"

// OomphError is the error type returned for invalid puppets, profiles and settings.
type OomphError struct {
	Err string
}

// New returns a new OomphError with the message formatted from the arguments passed.
func New(format string, args ...any) *OomphError {
	if len(args) == 0 {
		return &OomphError{Err: format}
	}
	return &OomphError{Err: fmt.Sprintf(format, args...)}
}

func (e *OomphError) Error() string {
	return e.Err
}
