package activationcode

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"strings"

	"github.com/sigurn/crc16"

	"github.com/dmitrymomot/powerauth/pkg/outcome"
)

const (
	// CodeLength is the length of "XXXXX-XXXXX-XXXXX-XXXXX".
	CodeLength = 23
	// PUKLength is the number of digits in a recovery PUK.
	PUKLength = 10

	groupSize     = 5
	randomBytes   = 10
	checksumBytes = 2

	recoveryPrefix = "R:"
)

var (
	// Codes are unpadded RFC 4648 Base32.
	codeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)
	crcTable     = crc16.MakeTable(crc16.CRC16_ARC)
)

// Code holds the parsed components of an activation or recovery code.
type Code struct {
	// Code is the "XXXXX-XXXXX-XXXXX-XXXXX" part without signature or "R:" prefix.
	Code string
	// Signature is the optional Base64 signature that follows '#'.
	// It is always empty for recovery codes.
	Signature string
}

// HasSignature reports whether the code carried a signature part.
func (c Code) HasSignature() bool {
	return c.Signature != ""
}

// String returns the code in the form it was scanned, "CODE#SIGNATURE" or "CODE".
func (c Code) String() string {
	if c.HasSignature() {
		return c.Code + "#" + c.Signature
	}
	return c.Code
}

// Parse parses an activation code with an optional "#SIGNATURE" suffix,
// typically obtained from a QR code. Failures classify as outcome.WrongCode.
func Parse(s string) (Code, error) {
	const op = "activationcode.parse"

	var c Code
	if code, sig, found := strings.Cut(s, "#"); found {
		c.Code, c.Signature = code, sig
		if err := validateSignature(sig); err != nil {
			return Code{}, outcome.New(op, outcome.WrongCode, err)
		}
	} else {
		c.Code = s
	}

	if err := validateCode(c.Code); err != nil {
		return Code{}, outcome.New(op, outcome.WrongCode, err)
	}
	return c, nil
}

// ParseRecovery parses a recovery code. The "R:" prefix is accepted only at
// the beginning of the input, and recovery codes never carry a signature.
func ParseRecovery(s string) (Code, error) {
	const op = "activationcode.parse_recovery"

	toParse := s
	if idx := strings.Index(s, recoveryPrefix); idx >= 0 {
		if idx != 0 {
			return Code{}, outcome.New(op, outcome.WrongCode, ErrMisplacedPrefix)
		}
		toParse = s[len(recoveryPrefix):]
	}

	c, err := Parse(toParse)
	if err != nil {
		return Code{}, outcome.New(op, outcome.WrongCode, errors.Unwrap(err))
	}
	if c.HasSignature() {
		return Code{}, outcome.New(op, outcome.WrongCode, ErrUnexpectedSignature)
	}
	return c, nil
}

// Validate reports whether s is a well formed activation code without signature.
func Validate(s string) bool {
	return validateCode(s) == nil
}

// ValidateRecovery reports whether s is a valid recovery code. The "R:" prefix
// is accepted only when allowPrefix is set.
func ValidateRecovery(s string, allowPrefix bool) bool {
	if !strings.Contains(s, recoveryPrefix) {
		return Validate(s)
	}
	return allowPrefix && strings.HasPrefix(s, recoveryPrefix) && Validate(s[len(recoveryPrefix):])
}

// ValidateRecoveryPUK reports whether puk consists of exactly ten digits.
func ValidateRecoveryPUK(puk string) bool {
	if len(puk) != PUKLength {
		return false
	}
	for i := range len(puk) {
		if puk[i] < '0' || puk[i] > '9' {
			return false
		}
	}
	return true
}

// ValidateTypedChar reports whether r may appear in the Base32 part of a code.
func ValidateTypedChar(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '2' && r <= '7')
}

// CorrectTypedChar returns r corrected for common typing mistakes:
// lower case letters are upper cased, '0' becomes 'O' and '1' becomes 'I'.
// It returns 0 when r cannot be corrected.
func CorrectTypedChar(r rune) rune {
	switch {
	case ValidateTypedChar(r):
		return r
	case r >= 'a' && r <= 'z':
		return r - ('a' - 'A')
	case r == '0':
		return 'O'
	case r == '1':
		return 'I'
	default:
		return 0
	}
}

// Generate returns a new random activation code with a valid checksum.
// An entropy failure classifies as outcome.GeneralFailure.
func Generate() (string, error) {
	buf := make([]byte, randomBytes+checksumBytes)
	if _, err := rand.Read(buf[:randomBytes]); err != nil {
		return "", outcome.New("activationcode.generate", outcome.GeneralFailure, errors.Join(ErrEntropy, err))
	}
	return Encode(buf[:randomBytes])
}

// Encode builds an activation code from ten bytes of payload by appending the
// CRC-16 checksum and grouping the Base32 text.
func Encode(payload []byte) (string, error) {
	if len(payload) != randomBytes {
		return "", outcome.New("activationcode.encode", outcome.WrongParam, ErrInvalidPayloadLength)
	}
	buf := make([]byte, randomBytes, randomBytes+checksumBytes)
	copy(buf, payload)
	buf = binary.BigEndian.AppendUint16(buf, crc16.Checksum(payload, crcTable))

	raw := codeEncoding.EncodeToString(buf)
	var sb strings.Builder
	sb.Grow(CodeLength)
	for i := 0; i < len(raw); i += groupSize {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(raw[i : i+groupSize])
	}
	return sb.String(), nil
}

func validateCode(code string) error {
	if len(code) != CodeLength {
		return ErrInvalidLength
	}

	var raw strings.Builder
	raw.Grow(CodeLength)
	for i := range len(code) {
		c := code[i]
		if i%(groupSize+1) == groupSize {
			if c != '-' {
				return ErrInvalidFormat
			}
			continue
		}
		raw.WriteByte(c)
	}

	data, err := codeEncoding.DecodeString(raw.String())
	if err != nil {
		return errors.Join(ErrInvalidFormat, err)
	}
	if len(data) != randomBytes+checksumBytes {
		return ErrInvalidFormat
	}

	expected := binary.BigEndian.Uint16(data[randomBytes:])
	if crc16.Checksum(data[:randomBytes], crcTable) != expected {
		return ErrInvalidChecksum
	}
	return nil
}

func validateSignature(sig string) error {
	data, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return errors.Join(ErrInvalidSignature, err)
	}
	if len(data) == 0 {
		return ErrInvalidSignature
	}
	return nil
}
