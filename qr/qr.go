// Package qr renders identity records as QR code images for offline
// exchange.
package qr

import (
	"errors"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge length in pixels.
const DefaultSize = 512

// ErrEmptyContent is returned when there is nothing to encode.
var ErrEmptyContent = errors.New("qr: empty content")

// EncodePNG renders content as a QR code PNG of size x size pixels.
// Medium error correction keeps dense records scannable.
func EncodePNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}

// WriteFile renders content and writes the PNG to path.
func WriteFile(content, path string, size int) error {
	if content == "" {
		return ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.WriteFile(content, qrcode.Medium, size, path)
}
