package factor

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCombination = errors.New("invalid signature factor combination")
	ErrNotAvailable       = errors.New("factor key is not present in session data")
	ErrNotSupplied        = errors.New("factor key was not supplied")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidKeySize     = errors.New("unlock key must be 16 bytes")
	ErrZeroKey            = errors.New("unlock key must not be filled with zeros")
	ErrEntropy            = errors.New("failed to read random bytes")
)

// FactorError names the factor a check failed on.
type FactorError struct {
	Factor Factor
	Err    error
}

func (e *FactorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Factor, e.Err)
}

func (e *FactorError) Unwrap() error {
	return e.Err
}
