// Package outcome defines the result taxonomy of PowerAuth session operations
// and the rules that classify raw results of the native cryptographic core.
//
// Every session operation produces exactly one Outcome. The integer value of
// each category is a stable contract shared with native core builds and with
// persisted logs, so it is published once and never reassigned:
//
//	0  OK                      success
//	1  WrongSetup              invalid session configuration (programmer error)
//	2  WrongState              call made in an incompatible state (programmer error)
//	3  WrongParam              missing or invalid argument (programmer error)
//	4  WrongCode               activation or recovery code rejected (security)
//	5  WrongSignature          signature invalid or missing (security)
//	6  WrongData               structural decoding failed, possible attack (security)
//	7  Encryption              cryptographic transform failed (runtime)
//	8  MissingRequestedFactor  factor not present in persisted data (runtime)
//	9  MissingRequiredFactor   mandatory factor not supplied (programmer error)
//	10 GeneralFailure          primitive failure, e.g. entropy source (runtime)
//
// # Architecture
//
// The package is a set of constant tables and pure functions:
//
//   - outcome.go – the Outcome type, stable codes, names and encodings.
//   - signal.go  – native core Signal identifiers and Classify.
//   - legacy.go  – adapter for the older 0..7 encoding where 0 meant "not available".
//   - group.go   – Group and Recovery, the values callers should branch on.
//   - error.go   – the *Error type returned by session operations.
//   - message.go – localized end-user text for actionable outcomes.
//
// There is no shared mutable state; all functions are safe for concurrent use.
//
// # Usage
//
//	header, err := sess.SignRequest(ctx, factor.PossessionKnowledge, keys, body)
//	switch o := outcome.Of(err); o.Group() {
//	case outcome.GroupSuccess:
//	    // proceed
//	case outcome.GroupProgrammerError:
//	    log.Error("session misuse", logger.Outcome(o), logger.Error(err))
//	default:
//	    // any actionable failure, including categories added later
//	    showMessage(outcome.Message(o, r.Header.Get("Accept-Language")))
//	}
//
// Decoding integers from outside the process never fails:
//
//	o := outcome.FromCode(code)           // unknown -> GeneralFailure
//	o = outcome.FromLegacyCode(legacy)    // 0 (NA) and unknown -> GeneralFailure
//
// # Error Handling
//
// Operations return *Error. Inspect it with Of or Is, or with errors.Is
// against category sentinels such as ErrWrongData. WrongData must be handled
// with an attack-aware posture: reject the input and flag it instead of
// retrying with relaxed validation.
package outcome
