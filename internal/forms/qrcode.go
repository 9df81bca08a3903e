package forms

import (
	"github.com/skip2/go-qrcode"
)

// QRGenerator renders share codes for a restaurant's public menu page.
type QRGenerator interface {
	Generate(restaurantID string) ([]byte, error)
}

type MenuQRGenerator struct {
	BaseURL string
}

// Generate returns a PNG QR code linking to the restaurant's menu, suitable
// for table cards.
func (g MenuQRGenerator) Generate(restaurantID string) ([]byte, error) {
	link := g.BaseURL + "/menu?restaurant=" + restaurantID
	return qrcode.Encode(link, qrcode.Medium, 256)
}
