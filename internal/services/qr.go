package services

import (
	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

// GenerateShareQR renders a PNG QR code for a recipe's share link.
func GenerateShareQR(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultQRSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
