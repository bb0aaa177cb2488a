package outcome

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Outcome is the closed result category returned by every session operation.
// The integer value crosses the native/host boundary and must never change.
type Outcome int

const (
	// OK means the operation completed successfully.
	OK Outcome = 0
	// WrongSetup means the session was configured invalidly before the call.
	WrongSetup Outcome = 1
	// WrongState means the call was made in an incompatible session state.
	WrongState Outcome = 2
	// WrongParam means a required input was missing or invalid.
	WrongParam Outcome = 3
	// WrongCode means a user supplied activation or recovery code failed
	// format or checksum validation.
	WrongCode Outcome = 4
	// WrongSignature means a digital signature is invalid, or missing when required.
	WrongSignature Outcome = 5
	// WrongData means structural decoding of an important value failed,
	// for example a malformed Base64 payload. Treat it as possible tampering.
	WrongData Outcome = 6
	// Encryption means a cryptographic transform could not complete.
	Encryption Outcome = 7
	// MissingRequestedFactor means the requested factor's key material is not
	// present in the persisted session data.
	MissingRequestedFactor Outcome = 8
	// MissingRequiredFactor means the caller did not supply a mandatory factor.
	MissingRequiredFactor Outcome = 9
	// GeneralFailure means an underlying primitive failed, for example the
	// random number generator.
	GeneralFailure Outcome = 10
)

var names = [...]string{
	OK:                     "OK",
	WrongSetup:             "WrongSetup",
	WrongState:             "WrongState",
	WrongParam:             "WrongParam",
	WrongCode:              "WrongCode",
	WrongSignature:         "WrongSignature",
	WrongData:              "WrongData",
	Encryption:             "Encryption",
	MissingRequestedFactor: "MissingRequestedFactor",
	MissingRequiredFactor:  "MissingRequiredFactor",
	GeneralFailure:         "GeneralFailure",
}

// All returns every defined category ordered by code.
func All() []Outcome {
	all := make([]Outcome, len(names))
	for i := range names {
		all[i] = Outcome(i)
	}
	return all
}

// Valid reports whether o is one of the published categories.
func (o Outcome) Valid() bool {
	return o >= OK && int(o) < len(names)
}

// Code returns the stable integer identity of the category.
func (o Outcome) Code() int {
	return int(o)
}

func (o Outcome) String() string {
	if !o.Valid() {
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
	return names[o]
}

// IsOK reports whether o is the unconditional success category.
func (o Outcome) IsOK() bool {
	return o == OK
}

// FromCode decodes an integer received from the native core or read from a log.
// Unknown values, including codes from newer cores, classify as GeneralFailure.
func FromCode(code int) Outcome {
	o := Outcome(code)
	if !o.Valid() {
		return GeneralFailure
	}
	return o
}

// Parse returns the category with the given name.
func Parse(name string) (Outcome, error) {
	for i, n := range names {
		if n == name {
			return Outcome(i), nil
		}
	}
	return GeneralFailure, fmt.Errorf("%w: %q", ErrUnknownOutcome, name)
}

// MarshalText encodes the category name.
func (o Outcome) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOutcome, int(o))
	}
	return []byte(names[o]), nil
}

// UnmarshalText decodes a category name.
func (o *Outcome) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// MarshalJSON encodes the integer code, which is the interoperable form.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(o))), nil
}

// UnmarshalJSON accepts the integer code. Unknown codes decode as GeneralFailure.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	*o = FromCode(code)
	return nil
}
