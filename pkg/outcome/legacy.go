package outcome

// LegacyCode is the earlier, coarser encoding used by older core builds.
// Code 0 meant "not a core error" rather than success: success was reported
// by the absence of an error object. Codes 1..7 share meaning with the
// current encoding; the factor and general failure categories did not exist.
type LegacyCode int

const (
	LegacyNA             LegacyCode = 0
	LegacyWrongSetup     LegacyCode = 1
	LegacyWrongState     LegacyCode = 2
	LegacyWrongParam     LegacyCode = 3
	LegacyWrongCode      LegacyCode = 4
	LegacyWrongSignature LegacyCode = 5
	LegacyWrongData      LegacyCode = 6
	LegacyEncryption     LegacyCode = 7
)

var legacyToOutcome = map[LegacyCode]Outcome{
	LegacyWrongSetup:     WrongSetup,
	LegacyWrongState:     WrongState,
	LegacyWrongParam:     WrongParam,
	LegacyWrongCode:      WrongCode,
	LegacyWrongSignature: WrongSignature,
	LegacyWrongData:      WrongData,
	LegacyEncryption:     Encryption,
}

// FromLegacyCode maps a legacy error code onto the current category set.
// LegacyNA and unknown codes classify as GeneralFailure; the result is never OK.
func FromLegacyCode(code int) Outcome {
	if o, ok := legacyToOutcome[LegacyCode(code)]; ok {
		return o
	}
	return GeneralFailure
}

// LegacyCode returns the legacy encoding of o. The boolean is false for
// categories the legacy encoding cannot express (OK, both factor categories
// and GeneralFailure); LegacyNA is returned for them.
func (o Outcome) LegacyCode() (LegacyCode, bool) {
	for lc, v := range legacyToOutcome {
		if v == o {
			return lc, true
		}
	}
	return LegacyNA, false
}
