package compositor

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// overlayQR pastes a QR code encoding data at the template's QR anchor.
func (p *Compositor) overlayQR(canvas *image.NRGBA, data string, anchor image.Point, size int) (*image.NRGBA, error) {
	qr, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}

	return imaging.Paste(canvas, qr.Image(size), anchor), nil
}
