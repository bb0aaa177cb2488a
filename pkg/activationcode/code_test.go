package activationcode_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/powerauth/pkg/activationcode"
	"github.com/dmitrymomot/powerauth/pkg/outcome"
)

var validCodes = []string{
	"VVVVV-VVVVV-VVVVV-VTFVA",
	"55555-55555-55555-55YMA",
	"W65WE-3T7VI-7FBS2-A4OYA",
	"DD7P5-SY4RW-XHSNB-GO52A",
	"AAAAA-AAAAA-AAAAA-AAAAA",
}

func TestValidate(t *testing.T) {
	t.Parallel()

	for _, code := range validCodes {
		assert.True(t, activationcode.Validate(code), code)
	}

	invalid := []string{
		"",
		"VVVVV-VVVVV-VVVVV-VTFV",
		"VVVVV-VVVVV-VVVVV-VTFVAA",
		"VVVVV-VVVVV-VVVVV-VTFVQ", // checksum
		"DD7P5-SY4RW-XHSNA-GO52A", // checksum
		"vvvvv-vvvvv-vvvvv-vtfva", // lower case
		"VVVVV+VVVVV-VVVVV-VTFVA", // separator
		"VVVVVVVVVVV-VVVVV-VTFVA-",
		"VVVV0-VVVVV-VVVVV-VTFVA", // not base32
		"VVVVV-VVVVV-VVVVV-VTFV=",
		"VVVVV-VVVVV-VVVV\n-VTFVA",
	}
	for _, code := range invalid {
		assert.False(t, activationcode.Validate(code), "%q", code)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("code without signature", func(t *testing.T) {
		t.Parallel()
		c, err := activationcode.Parse("W65WE-3T7VI-7FBS2-A4OYA")
		require.NoError(t, err)
		assert.Equal(t, "W65WE-3T7VI-7FBS2-A4OYA", c.Code)
		assert.False(t, c.HasSignature())
		assert.Equal(t, "W65WE-3T7VI-7FBS2-A4OYA", c.String())
	})

	t.Run("code with signature", func(t *testing.T) {
		t.Parallel()
		c, err := activationcode.Parse("W65WE-3T7VI-7FBS2-A4OYA#ZGF0YQ==")
		require.NoError(t, err)
		assert.Equal(t, "W65WE-3T7VI-7FBS2-A4OYA", c.Code)
		assert.Equal(t, "ZGF0YQ==", c.Signature)
		assert.Equal(t, "W65WE-3T7VI-7FBS2-A4OYA#ZGF0YQ==", c.String())
	})

	tests := []struct {
		name  string
		input string
		cause error
	}{
		{"empty signature", "W65WE-3T7VI-7FBS2-A4OYA#", activationcode.ErrInvalidSignature},
		{"signature not base64", "W65WE-3T7VI-7FBS2-A4OYA#not base64!", activationcode.ErrInvalidSignature},
		{"bad checksum", "DD7P5-SY4RW-XHSNA-GO52A", activationcode.ErrInvalidChecksum},
		{"short code", "DD7P5-SY4RW", activationcode.ErrInvalidLength},
		{"bad separator", "DD7P5_SY4RW-XHSNB-GO52A", activationcode.ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := activationcode.Parse(tt.input)
			require.Error(t, err)
			assert.Equal(t, activationcode.Code{}, c)
			assert.Equal(t, outcome.WrongCode, outcome.Of(err))
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestParseRecovery(t *testing.T) {
	t.Parallel()

	c, err := activationcode.ParseRecovery("R:VVVVV-VVVVV-VVVVV-VTFVA")
	require.NoError(t, err)
	assert.Equal(t, "VVVVV-VVVVV-VVVVV-VTFVA", c.Code)

	c, err = activationcode.ParseRecovery("55555-55555-55555-55YMA")
	require.NoError(t, err)
	assert.Equal(t, "55555-55555-55555-55YMA", c.Code)

	_, err = activationcode.ParseRecovery("XR:VVVVV-VVVVV-VVVVV-VTFVA")
	assert.ErrorIs(t, err, activationcode.ErrMisplacedPrefix)
	assert.Equal(t, outcome.WrongCode, outcome.Of(err))

	_, err = activationcode.ParseRecovery("R:VVVVV-VVVVV-VVVVV-VTFVA#ZGF0YQ==")
	assert.ErrorIs(t, err, activationcode.ErrUnexpectedSignature)
	assert.Equal(t, outcome.WrongCode, outcome.Of(err))

	_, err = activationcode.ParseRecovery("R:VVVVV-VVVVV-VVVVV-VTFVQ")
	assert.ErrorIs(t, err, activationcode.ErrInvalidChecksum)
	assert.Equal(t, outcome.WrongCode, outcome.Of(err))
}

func TestValidateRecovery(t *testing.T) {
	t.Parallel()

	assert.True(t, activationcode.ValidateRecovery("VVVVV-VVVVV-VVVVV-VTFVA", false))
	assert.True(t, activationcode.ValidateRecovery("R:VVVVV-VVVVV-VVVVV-VTFVA", true))
	assert.False(t, activationcode.ValidateRecovery("R:VVVVV-VVVVV-VVVVV-VTFVA", false))
	assert.False(t, activationcode.ValidateRecovery("xR:VVVVV-VVVVV-VVVVV-VTFV", true))
	assert.False(t, activationcode.ValidateRecovery("R:VVVVV-VVVVV-VVVVV-VTFVQ", true))
}

func TestValidateRecoveryPUK(t *testing.T) {
	t.Parallel()

	assert.True(t, activationcode.ValidateRecoveryPUK("0123456789"))
	assert.False(t, activationcode.ValidateRecoveryPUK("012345678"))
	assert.False(t, activationcode.ValidateRecoveryPUK("01234567890"))
	assert.False(t, activationcode.ValidateRecoveryPUK("01234A6789"))
	assert.False(t, activationcode.ValidateRecoveryPUK(""))
}

func TestTypedChars(t *testing.T) {
	t.Parallel()

	for _, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567" {
		assert.True(t, activationcode.ValidateTypedChar(r), string(r))
		assert.Equal(t, r, activationcode.CorrectTypedChar(r))
	}
	for _, r := range "0189abz-#" {
		assert.False(t, activationcode.ValidateTypedChar(r), string(r))
	}

	assert.Equal(t, 'A', activationcode.CorrectTypedChar('a'))
	assert.Equal(t, 'Z', activationcode.CorrectTypedChar('z'))
	assert.Equal(t, 'O', activationcode.CorrectTypedChar('0'))
	assert.Equal(t, 'I', activationcode.CorrectTypedChar('1'))
	assert.Equal(t, rune(0), activationcode.CorrectTypedChar('8'))
	assert.Equal(t, rune(0), activationcode.CorrectTypedChar('9'))
	assert.Equal(t, rune(0), activationcode.CorrectTypedChar('-'))
}

func TestEncode(t *testing.T) {
	t.Parallel()

	code, err := activationcode.Encode([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, "AAAQE-AYEAU-DAOCA-JIICA", code)
	assert.True(t, activationcode.Validate(code))

	code, err = activationcode.Encode(make([]byte, 10))
	require.NoError(t, err)
	assert.Equal(t, "AAAAA-AAAAA-AAAAA-AAAAA", code)

	_, err = activationcode.Encode([]byte{1, 2, 3})
	assert.ErrorIs(t, err, activationcode.ErrInvalidPayloadLength)
	assert.Equal(t, outcome.WrongParam, outcome.Of(err))
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 50 {
		code, err := activationcode.Generate()
		require.NoError(t, err)
		assert.Len(t, code, activationcode.CodeLength)
		assert.True(t, activationcode.Validate(code), code)
		assert.False(t, seen[code], "duplicate code")
		seen[code] = true
	}
}

func TestQR(t *testing.T) {
	t.Parallel()

	c, err := activationcode.Parse("W65WE-3T7VI-7FBS2-A4OYA#ZGF0YQ==")
	require.NoError(t, err)

	t.Run("renders png of requested size", func(t *testing.T) {
		t.Parallel()
		data, err := activationcode.QR(c, 300)
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 300, img.Bounds().Dx())
	})

	t.Run("uses default size", func(t *testing.T) {
		t.Parallel()
		data, err := activationcode.QR(c, 0)
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, activationcode.DefaultQRSize, img.Bounds().Dx())
	})

	t.Run("data uri", func(t *testing.T) {
		t.Parallel()
		uri, err := activationcode.QRDataURI(c, 128)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	})

	t.Run("empty code", func(t *testing.T) {
		t.Parallel()
		_, err := activationcode.QR(activationcode.Code{}, 128)
		assert.ErrorIs(t, err, activationcode.ErrEmptyCode)
	})
}
