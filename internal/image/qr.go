package imagepkg

import (
	"errors"
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrQRTooLong is returned when the text does not fit in a QR code even at
// the lowest recovery level.
var ErrQRTooLong = errors.New("text too long for a QR code")

// recoveryLevels are tried in order until the text fits.
var recoveryLevels = []qrcode.RecoveryLevel{qrcode.Medium, qrcode.Low}

func newQR(text string) (*qrcode.QRCode, error) {
	var err error
	for _, level := range recoveryLevels {
		var q *qrcode.QRCode
		if q, err = qrcode.New(text, level); err == nil {
			return q, nil
		}
	}
	return nil, fmt.Errorf("%w: %d bytes: %v", ErrQRTooLong, len(text), err)
}

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	q, err := newQR(text)
	if err != nil {
		return nil, err
	}
	return q.PNG(size)
}

// GenerateQRImage returns an image.Image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	q, err := newQR(text)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}
