package outcome

// Group is the coarse class callers should branch on instead of raw codes.
type Group int

const (
	// GroupSuccess contains only OK.
	GroupSuccess Group = iota
	// GroupProgrammerError contains outcomes caused by API misuse. They indicate
	// a bug in the integrating application and must not reach the end user.
	GroupProgrammerError
	// GroupSecurity contains outcomes caused by untrusted external input.
	GroupSecurity
	// GroupRuntime contains failures of the cryptographic core or the platform
	// that may require a retry, a restart of the flow, or a device setup step.
	GroupRuntime
)

func (g Group) String() string {
	switch g {
	case GroupSuccess:
		return "success"
	case GroupProgrammerError:
		return "programmer_error"
	case GroupSecurity:
		return "security"
	default:
		return "runtime"
	}
}

// Group returns the class of o. Undefined values fall into GroupRuntime,
// the same class as GeneralFailure.
func (o Outcome) Group() Group {
	switch o {
	case OK:
		return GroupSuccess
	case WrongSetup, WrongState, WrongParam, MissingRequiredFactor:
		return GroupProgrammerError
	case WrongCode, WrongSignature, WrongData:
		return GroupSecurity
	default:
		return GroupRuntime
	}
}

// IsProgrammerError reports whether o indicates misuse of the session API.
func (o Outcome) IsProgrammerError() bool {
	return o.Group() == GroupProgrammerError
}

// IsSecurityRelevant reports whether o originates from untrusted input.
func (o Outcome) IsSecurityRelevant() bool {
	return o.Group() == GroupSecurity
}

// IsUserFacing reports whether o may be turned into an actionable message.
// Any future category that is neither OK nor a programmer error is user facing.
func (o Outcome) IsUserFacing() bool {
	g := o.Group()
	return g != GroupSuccess && g != GroupProgrammerError
}

// RequiresAttackPosture reports whether the input behind o must be treated as
// adversarial. Validation must not be relaxed on retry without revalidating the source.
func (o Outcome) RequiresAttackPosture() bool {
	return o == WrongData
}

// Recovery is the strategy a caller applies for an outcome.
type Recovery int

const (
	// RecoveryProceed continues the flow.
	RecoveryProceed Recovery = iota
	// RecoveryFixIntegration marks a caller bug; retrying the same call fails again.
	RecoveryFixIntegration
	// RecoveryReprompt asks the user to enter the code again.
	RecoveryReprompt
	// RecoveryReauthenticate repeats authentication with fresh credentials.
	RecoveryReauthenticate
	// RecoveryRejectAndFlag rejects the input and flags it as possibly tampered.
	RecoveryRejectAndFlag
	// RecoveryRetryOrRestart retries the operation or restarts the flow.
	RecoveryRetryOrRestart
	// RecoverySetupFactor offers to set up the missing factor.
	RecoverySetupFactor
)

func (r Recovery) String() string {
	switch r {
	case RecoveryProceed:
		return "proceed"
	case RecoveryFixIntegration:
		return "fix_integration"
	case RecoveryReprompt:
		return "reprompt"
	case RecoveryReauthenticate:
		return "reauthenticate"
	case RecoveryRejectAndFlag:
		return "reject_and_flag"
	case RecoverySetupFactor:
		return "setup_factor"
	default:
		return "retry_or_restart"
	}
}

// Recovery returns the caller responsibility for o.
func (o Outcome) Recovery() Recovery {
	switch o {
	case OK:
		return RecoveryProceed
	case WrongSetup, WrongState, WrongParam, MissingRequiredFactor:
		return RecoveryFixIntegration
	case WrongCode:
		return RecoveryReprompt
	case WrongSignature:
		return RecoveryReauthenticate
	case WrongData:
		return RecoveryRejectAndFlag
	case MissingRequestedFactor:
		return RecoverySetupFactor
	default:
		return RecoveryRetryOrRestart
	}
}
