package compositor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	"github.com/shubhankar1313/glf-banner-generator/internal/models"
	"github.com/shubhankar1313/glf-banner-generator/internal/services/template"
)

// Compositor builds card images: the template artwork with the uploaded
// photo fitted into the photo slot and the text fields drawn at their boxes.
// It is stateless; one instance serves all requests.
type Compositor struct{}

func NewCompositor() *Compositor {
	return &Compositor{}
}

// Compose produces the finished card as PNG bytes. The photo is scaled
// uniformly to cover the photo slot, center-cropped to the slot's exact size
// and pasted at the slot origin; name and designation are drawn into their
// text boxes. The template is never mutated, and identical inputs produce
// byte-identical output.
func (p *Compositor) Compose(tpl *template.Template, photoBytes []byte, req *models.CardRequest) ([]byte, error) {
	if len(photoBytes) == 0 {
		return nil, ErrEmptyInput
	}

	photo, err := p.decode(photoBytes)
	if err != nil {
		return nil, err
	}

	fitted := p.fitToSlot(photo, tpl.PhotoSlot)

	canvas := imaging.Paste(imaging.Clone(tpl.Background), fitted, image.Pt(tpl.PhotoSlot.X, tpl.PhotoSlot.Y))

	p.drawTextBox(canvas, req.Name, tpl.NameBox, tpl.MinFontSize)
	p.drawTextBox(canvas, req.Designation, tpl.DesignationBox, tpl.MinFontSize)

	if req.QRData != "" {
		canvas, err = p.overlayQR(canvas, req.QRData, tpl.QRAnchor, tpl.QRSize)
		if err != nil {
			return nil, err
		}
	}

	buffer := &bytes.Buffer{}
	if err := p.encodePNG(buffer, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode composite: %w", err)
	}

	return buffer.Bytes(), nil
}

func (p *Compositor) decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty raster", ErrDecode)
	}

	return img, nil
}
