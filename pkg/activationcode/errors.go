package activationcode

import "errors"

var (
	ErrInvalidLength        = errors.New("activation code has invalid length")
	ErrInvalidFormat        = errors.New("activation code has invalid format")
	ErrInvalidChecksum      = errors.New("activation code checksum mismatch")
	ErrInvalidSignature     = errors.New("activation code signature is not valid base64")
	ErrMisplacedPrefix      = errors.New("recovery prefix must be at the beginning of the code")
	ErrUnexpectedSignature  = errors.New("recovery code must not contain a signature")
	ErrInvalidPayloadLength = errors.New("activation code payload must be 10 bytes")
	ErrEntropy              = errors.New("failed to read random bytes")
	ErrEmptyCode            = errors.New("code cannot be empty")
	ErrFailedToGenerateQR   = errors.New("failed to generate QR code")
)
