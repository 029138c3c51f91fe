// Package receipt renders the QR code handed to a guest after ordering.
package receipt

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// Renderer turns an order reference into a scannable receipt.
type Renderer interface {
	Render(orderID string) (string, error)
}

// QRReceipt encodes a link to the order as a QR code drawn with half-block
// characters, two module rows per text line.
type QRReceipt struct {
	BaseURL string
}

var _ Renderer = QRReceipt{}

// Link is the URL encoded in the receipt.
func (r QRReceipt) Link(orderID string) string {
	base := strings.TrimRight(strings.TrimSpace(r.BaseURL), "/")
	if base == "" {
		return orderID
	}
	return fmt.Sprintf("%s/%s", base, orderID)
}

// Render draws the QR code for orderID.
func (r QRReceipt) Render(orderID string) (string, error) {
	if strings.TrimSpace(orderID) == "" {
		return "", fmt.Errorf("receipt: order id is required")
	}
	code, err := qrcode.New(r.Link(orderID), qrcode.Low)
	if err != nil {
		return "", fmt.Errorf("receipt: encode %s: %w", orderID, err)
	}
	return halfBlocks(code.Bitmap()), nil
}

func halfBlocks(bitmap [][]bool) string {
	var sb strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		for x := range bitmap[y] {
			top := bitmap[y][x]
			bottom := y+1 < len(bitmap) && bitmap[y+1][x]
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		if y+2 < len(bitmap) {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
