package activationcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// DefaultQRSize is the image size in pixels used when size is not positive.
const DefaultQRSize = 256

// QR renders c as a PNG image suitable for scanning by the mobile
// application. Signed codes are encoded as "CODE#SIGNATURE".
func QR(c Code, size int) ([]byte, error) {
	content := c.String()
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyCode
	}
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.High, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQR, err)
	}
	return png, nil
}

// QRDataURI renders c as a "data:image/png;base64,..." URI for HTML embedding.
func QRDataURI(c Code, size int) (string, error) {
	png, err := QR(c, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
