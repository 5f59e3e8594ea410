package style

import (
	"errors"
	"fmt"
)

// ErrInvalidConfigValue значение не прошло проверку типа или диапазона
var ErrInvalidConfigValue = errors.New("invalid config value")

// InvalidValueError описывает, какое поле и с каким значением не прошло проверку
type InvalidValueError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: field %s = %v: %s", ErrInvalidConfigValue, e.Field, e.Value, e.Reason)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidConfigValue
}
