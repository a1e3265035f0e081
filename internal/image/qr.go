package imagepkg

import (
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// QR sizes outside this range are clamped.
const (
	MinQRSize = 64
	MaxQRSize = 2048
)

// ClampQRSize keeps a requested QR edge length within MinQRSize..MaxQRSize.
func ClampQRSize(size int) int {
	if size < MinQRSize {
		return MinQRSize
	}
	if size > MaxQRSize {
		return MaxQRSize
	}
	return size
}

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return q.PNG(ClampQRSize(size))
}

// GenerateQRImage returns the QR code as an image.Image for composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return q.Image(ClampQRSize(size)), nil
}
