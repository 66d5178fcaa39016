package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes the board link for a submission reference so the
// site office can scan straight to the order.
type DefaultQRGenerator struct {
	BoardURL string
}

func (g DefaultQRGenerator) Generate(ref string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/board.html?ref=%s", g.BoardURL, ref)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

var _ QRGenerator = DefaultQRGenerator{}
