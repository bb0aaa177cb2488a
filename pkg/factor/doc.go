// Package factor models PowerAuth signature factors and validates the unlock
// keys a caller supplies before a signature request reaches the native core.
//
// The package separates two failures that look alike but need different
// handling:
//
//   - MissingRequestedFactor: the session has no key for a factor the caller
//     asked for, e.g. biometry was never set up on this device. Prompt the user
//     to set up the factor.
//   - MissingRequiredFactor: the caller asked for a factor but did not pass its
//     unlock key. This is an integration bug.
//
// # Usage
//
//	keys := factor.Keys{
//	    Possession: factor.NormalizeUnlockKey(deviceID),
//	    Password:   []byte(password),
//	}
//	defer keys.Wipe()
//
//	if err := factor.Check(factor.PossessionKnowledge, sessionFactors, keys); err != nil {
//	    return err // *outcome.Error
//	}
package factor
