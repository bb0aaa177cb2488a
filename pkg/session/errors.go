package session

import "errors"

var (
	ErrMissingApplicationKey    = errors.New("application key is not set")
	ErrInvalidApplicationKey    = errors.New("application key is not valid base64")
	ErrMissingApplicationSecret = errors.New("application secret is not set")
	ErrInvalidApplicationSecret = errors.New("application secret is not valid base64")
	ErrInvalidMasterKey         = errors.New("master server public key is not valid base64")
	ErrInvalidEncryptionKey     = errors.New("external encryption key must be 16 bytes of base64")
	ErrNoCore                   = errors.New("session has no cryptographic core")

	ErrNotAllowedInState = errors.New("operation is not allowed in current session state")
	ErrUnknownTransition = errors.New("no transition for event")

	ErrMissingActivationID = errors.New("activation id is empty")
	ErrMissingPayload      = errors.New("activation payload is empty")
	ErrMalformedPayload    = errors.New("activation payload is not valid base64")
	ErrInvalidPUK          = errors.New("recovery puk must be ten digits")
	ErrBiometryNotSet      = errors.New("biometry factor is not set up")
)
