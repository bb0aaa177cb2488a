package outcome

import "errors"

var (
	// ErrUnknownOutcome is returned when a name or value is not a defined Outcome.
	ErrUnknownOutcome = errors.New("unknown outcome")

	// ErrInvalidEncoding is returned when a JSON outcome is not an integer code.
	ErrInvalidEncoding = errors.New("invalid outcome encoding")

	// ErrInvalidCatalog is returned when the message catalog cannot be loaded.
	ErrInvalidCatalog = errors.New("invalid message catalog")
)

// Sentinel errors, one per failure category. An *Error matches the sentinel
// of its category with errors.Is.
var (
	ErrWrongSetup             = errors.New("session has invalid setup")
	ErrWrongState             = errors.New("session is in wrong state")
	ErrWrongParam             = errors.New("wrong or missing parameter")
	ErrWrongCode              = errors.New("wrong activation or recovery code")
	ErrWrongSignature         = errors.New("invalid or missing signature")
	ErrWrongData              = errors.New("malformed data")
	ErrEncryption             = errors.New("cryptographic operation failed")
	ErrMissingRequestedFactor = errors.New("requested factor is not available in session")
	ErrMissingRequiredFactor  = errors.New("required factor was not supplied")
	ErrGeneralFailure         = errors.New("general failure")
)

var sentinels = [...]error{
	OK:                     nil,
	WrongSetup:             ErrWrongSetup,
	WrongState:             ErrWrongState,
	WrongParam:             ErrWrongParam,
	WrongCode:              ErrWrongCode,
	WrongSignature:         ErrWrongSignature,
	WrongData:              ErrWrongData,
	Encryption:             ErrEncryption,
	MissingRequestedFactor: ErrMissingRequestedFactor,
	MissingRequiredFactor:  ErrMissingRequiredFactor,
	GeneralFailure:         ErrGeneralFailure,
}

// Err returns the sentinel error of o, or nil for OK.
// Undefined values return ErrGeneralFailure.
func (o Outcome) Err() error {
	if !o.Valid() {
		return ErrGeneralFailure
	}
	return sentinels[o]
}
