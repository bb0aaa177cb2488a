// Package activationcode parses, validates and generates PowerAuth activation
// and recovery codes, and renders them as QR images.
//
// An activation code has the form "XXXXX-XXXXX-XXXXX-XXXXX". The twenty
// characters are unpadded Base32 (A-Z, 2-7) of twelve bytes: ten random bytes
// followed by their big-endian CRC-16/ARC checksum. A code delivered via QR may
// carry a Base64 signature after '#'. Recovery codes use the same format, may
// start with "R:" and never carry a signature. A recovery PUK is ten digits.
//
// # Usage
//
//	code, err := activationcode.Parse(scanned)
//	if err != nil {
//	    // outcome.Of(err) == outcome.WrongCode: re-prompt the user
//	}
//
//	// Autocorrect characters while the user types
//	r = activationcode.CorrectTypedChar(r)
//
//	png, err := activationcode.QR(code, 0)
//
// # Error Handling
//
// Parse and ParseRecovery return *outcome.Error classified as WrongCode with
// the concrete reason (ErrInvalidLength, ErrInvalidChecksum, ...) as cause.
// Generate classifies entropy failures as GeneralFailure.
package activationcode
