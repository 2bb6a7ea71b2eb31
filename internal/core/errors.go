package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidUTF8 is returned when a payload cannot be decoded as UTF-8 text.
var ErrInvalidUTF8 = errors.New("payload is not valid UTF-8")

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Locator    string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error %d:%s [%s]", e.StatusCode, e.Status, e.Locator)
}
