package transport

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedBody ответ получен, но тело не является JSON
	ErrMalformedBody = errors.New("response body is not valid json")
)

// Error ошибка сетевого уровня: DNS, отказ соединения, TLS, битое тело ответа.
type Error struct {
	Method string
	URL    string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
