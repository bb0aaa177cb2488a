package outcome

import "fmt"

// Signal is a raw result identifier emitted by the native cryptographic core
// for a single session operation. The high byte mirrors the category the
// signal belongs to, but classification always goes through the table below:
// a signal the table does not know is never guessed from its high byte.
type Signal uint16

const (
	// SignalSuccess is the only signal that classifies as OK.
	SignalSuccess Signal = 0x0000

	SignalInvalidSetup       Signal = 0x0101 // setup object rejected
	SignalMissingMasterKey   Signal = 0x0102 // master server public key absent or undecodable
	SignalInvalidExternalKey Signal = 0x0103 // external encryption key has wrong size or is unexpected

	SignalInvalidState      Signal = 0x0201 // generic state machine violation
	SignalActivationPending Signal = 0x0202 // operation blocked by unfinished activation
	SignalNotActivated      Signal = 0x0203 // operation requires a valid activation
	SignalUpgradePending    Signal = 0x0204 // operation blocked by protocol upgrade

	SignalMissingParam      Signal = 0x0301 // required argument absent
	SignalInvalidParam      Signal = 0x0302 // argument present but invalid
	SignalPasswordTooShort  Signal = 0x0303 // knowledge factor shorter than 4 bytes
	SignalZeroKey           Signal = 0x0304 // unlock key filled with zeros
	SignalFactorNotSupplied Signal = 0x0305 // mandatory factor key not passed by the caller

	SignalCodeFormat   Signal = 0x0401 // activation or recovery code malformed
	SignalCodeChecksum Signal = 0x0402 // activation or recovery code CRC mismatch

	SignalSignatureInvalid Signal = 0x0501 // signature evaluated and rejected
	SignalSignatureMissing Signal = 0x0502 // required signature absent

	SignalDecodeBase64    Signal = 0x0601 // Base64 payload could not be decoded
	SignalDecodeStructure Signal = 0x0602 // decoded payload has invalid structure
	SignalDecodeState     Signal = 0x0603 // serialized session state is corrupt

	SignalKeyDerivation    Signal = 0x0701 // KDF did not complete
	SignalEncrypt          Signal = 0x0702 // encryption failed
	SignalDecrypt          Signal = 0x0703 // decryption failed
	SignalSignatureCompute Signal = 0x0704 // signature generation failed

	SignalFactorNotPersisted Signal = 0x0801 // requested factor key absent from persistent data

	SignalEntropy  Signal = 0x0A01 // random number generator failure
	SignalInternal Signal = 0x0A02 // unspecified failure below the session
)

var classification = map[Signal]Outcome{
	SignalSuccess: OK,

	SignalInvalidSetup:       WrongSetup,
	SignalMissingMasterKey:   WrongSetup,
	SignalInvalidExternalKey: WrongSetup,

	SignalInvalidState:      WrongState,
	SignalActivationPending: WrongState,
	SignalNotActivated:      WrongState,
	SignalUpgradePending:    WrongState,

	SignalMissingParam:     WrongParam,
	SignalInvalidParam:     WrongParam,
	SignalPasswordTooShort: WrongParam,
	SignalZeroKey:          WrongParam,

	SignalFactorNotSupplied: MissingRequiredFactor,

	SignalCodeFormat:   WrongCode,
	SignalCodeChecksum: WrongCode,

	SignalSignatureInvalid: WrongSignature,
	SignalSignatureMissing: WrongSignature,

	SignalDecodeBase64:    WrongData,
	SignalDecodeStructure: WrongData,
	SignalDecodeState:     WrongData,

	SignalKeyDerivation:    Encryption,
	SignalEncrypt:          Encryption,
	SignalDecrypt:          Encryption,
	SignalSignatureCompute: Encryption,

	SignalFactorNotPersisted: MissingRequestedFactor,

	SignalEntropy:  GeneralFailure,
	SignalInternal: GeneralFailure,
}

// Classify maps a native result signal to exactly one Outcome.
// It is a pure lookup and safe for concurrent use. Signals outside the known
// set classify as GeneralFailure.
func Classify(s Signal) Outcome {
	if o, ok := classification[s]; ok {
		return o
	}
	return GeneralFailure
}

// Known reports whether s is part of the documented signal set.
func (s Signal) Known() bool {
	_, ok := classification[s]
	return ok
}

func (s Signal) String() string {
	return fmt.Sprintf("0x%04X", uint16(s))
}

// Signals returns every documented signal. The order is unspecified.
func Signals() []Signal {
	out := make([]Signal, 0, len(classification))
	for s := range classification {
		out = append(out, s)
	}
	return out
}
