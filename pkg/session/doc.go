// Package session is the facade application code talks to when it activates
// a device and signs requests with PowerAuth.
//
// The cryptography lives behind the Core interface. Session performs the
// checks that do not need the core, classifies the core's Signal for
// everything else, and returns nil or an *outcome.Error from every
// operation:
//
//   - invalid Setup or missing core: WrongSetup
//   - operation not allowed in the current State: WrongState
//   - missing or invalid arguments: WrongParam
//   - malformed activation or recovery code: WrongCode
//   - response payload that is not valid Base64: WrongData
//   - factor keys not supplied or not persisted: MissingRequiredFactor or
//     MissingRequestedFactor
//
// A WrongData result during activation resets the session; the activation
// must be restarted with a fresh code.
//
// Activation follows StateEmpty, StateActivationStarted,
// StateActivationValidated and StateActivated. Reset returns to StateEmpty
// from any state.
//
// Each operation is logged at logger.LevelFor(outcome) and, when a recorder
// is configured, written to the outcome journal with the same correlation id
// as the returned error.
//
//	var setup session.Setup
//	if err := config.Load(&setup); err != nil {
//	    return err
//	}
//	sess := session.New(setup, core,
//	    session.WithLogger(log),
//	    session.WithRecorder(journal.NewRedisStore(client, journalCfg)),
//	)
//
//	if err := sess.StartActivation(ctx, scanned); err != nil {
//	    switch outcome.Of(err).Recovery() {
//	    case outcome.RecoveryReprompt:
//	        // ask for the code again
//	    }
//	}
package session
