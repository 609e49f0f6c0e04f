// Package qr renders the attendee badge QR codes scanned at the door.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const pngSize = 512

// EncodePNG renders content as a PNG QR code sized for badge printing.
func EncodePNG(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, pngSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
