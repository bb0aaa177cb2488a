package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrymomot/powerauth/pkg/activationcode"
)

func main() {
	qrPath := flag.String("qr", "", "write the code as a PNG QR image to this path")
	size := flag.Int("size", activationcode.DefaultQRSize, "QR image size in pixels")
	flag.Parse()

	code, err := activationcode.Generate()
	if err != nil {
		log.Fatalf("Failed to generate activation code: %v", err)
	}

	fmt.Printf("Generated activation code: \n---\n%s\n---\n", code)

	if *qrPath == "" {
		return
	}

	parsed, err := activationcode.Parse(code)
	if err != nil {
		log.Fatalf("Generated code did not validate: %v", err)
	}
	png, err := activationcode.QR(parsed, *size)
	if err != nil {
		log.Fatalf("Failed to render QR code: %v", err)
	}
	if err := os.WriteFile(*qrPath, png, 0o600); err != nil {
		log.Fatalf("Failed to write QR code: %v", err)
	}
	fmt.Printf("QR code written to %s\n", *qrPath)
}
