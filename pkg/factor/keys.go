package factor

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"

	"github.com/dmitrymomot/powerauth/pkg/outcome"
)

const (
	// KeySize is the size of possession and biometry unlock keys.
	KeySize = 16
	// MinPasswordLength is the shortest accepted knowledge factor.
	MinPasswordLength = 4
)

// Keys holds the unlock material the caller supplies for a signature.
// Every key involved in the requested factor combination must be present.
type Keys struct {
	Possession []byte
	Biometry   []byte
	Password   []byte
}

// Wipe zeroes all key material held by k.
func (k *Keys) Wipe() {
	clear(k.Possession)
	clear(k.Biometry)
	clear(k.Password)
}

func (k Keys) material(f Factor) []byte {
	switch f {
	case Possession:
		return k.Possession
	case Knowledge:
		return k.Password
	case Biometry:
		return k.Biometry
	default:
		return nil
	}
}

// Check validates a signature request before it reaches the core.
//
// requested is the factor combination the caller asks for, available is the
// set of factors whose keys exist in the persisted session data. The checks
// run in a fixed order so the result is deterministic:
//
//  1. invalid combination -> WrongParam
//  2. a requested factor missing from the session -> MissingRequestedFactor
//  3. a requested factor whose key the caller did not supply -> MissingRequiredFactor
//  4. a supplied key that is malformed -> WrongParam
//
// It returns nil when the request may proceed.
func Check(requested, available Factor, keys Keys) error {
	const op = "factor.check"

	if !requested.Valid() {
		return outcome.New(op, outcome.WrongParam, ErrInvalidCombination)
	}

	singles := requested.Factors()
	for _, f := range singles {
		if !available.Has(f) {
			return outcome.New(op, outcome.MissingRequestedFactor, &FactorError{Factor: f, Err: ErrNotAvailable})
		}
	}
	for _, f := range singles {
		if len(keys.material(f)) == 0 {
			return outcome.New(op, outcome.MissingRequiredFactor, &FactorError{Factor: f, Err: ErrNotSupplied})
		}
	}
	for _, f := range singles {
		if err := validateMaterial(f, keys.material(f)); err != nil {
			return outcome.New(op, outcome.WrongParam, &FactorError{Factor: f, Err: err})
		}
	}
	return nil
}

func validateMaterial(f Factor, key []byte) error {
	if f == Knowledge {
		if len(key) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		return nil
	}
	if len(key) != KeySize {
		return ErrInvalidKeySize
	}
	for _, b := range key {
		if b != 0 {
			return nil
		}
	}
	return ErrZeroKey
}

// NormalizeUnlockKey derives a possession unlock key from arbitrary device
// data such as a hardware identifier.
func NormalizeUnlockKey(data []byte) []byte {
	sum := sha256.Sum256(data)
	key := make([]byte, KeySize)
	copy(key, sum[:KeySize])
	return key
}

// GenerateUnlockKey returns a new random unlock key, typically for the
// biometry factor. Entropy failures classify as outcome.GeneralFailure.
func GenerateUnlockKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, outcome.New("factor.generate_unlock_key", outcome.GeneralFailure, errors.Join(ErrEntropy, err))
	}
	return key, nil
}
