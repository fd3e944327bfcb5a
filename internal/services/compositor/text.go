package compositor

import (
	"image"
	"image/draw"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/shubhankar1313/glf-banner-generator/internal/services/template"
)

const fontDPI = 72.0

// drawTextBox renders text horizontally centered on the image and vertically
// centered inside the box. The font starts at the box's maximum size and
// shrinks proportionally when the measured text is wider than the box,
// flooring at minSize. Empty or whitespace-only text draws nothing.
func (p *Compositor) drawTextBox(dst draw.Image, text string, box template.TextBox, minSize float64) {
	if strings.TrimSpace(text) == "" {
		return
	}

	face, width := p.fitFace(text, box, minSize)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(box.Color),
		Face: face,
	}

	imgW := dst.Bounds().Dx()
	x := (imgW - width) / 2

	metrics := face.Metrics()
	textH := (metrics.Ascent + metrics.Descent).Round()
	boxCenterY := (box.Y1 + box.Y2) / 2
	baseline := boxCenterY - textH/2 + metrics.Ascent.Round()

	d.Dot = fixed.P(x, baseline)
	d.DrawString(text)
}

// fitFace picks the font face for a text box and returns it together with
// the measured pixel width of the text at that size.
func (p *Compositor) fitFace(text string, box template.TextBox, minSize float64) (font.Face, int) {
	size := box.MaxFontSize
	face := p.newFace(box.Font, size)
	width := font.MeasureString(face, text).Ceil()

	allowed := box.X2 - box.X1
	if width > allowed {
		size = math.Max(minSize, size*float64(allowed)/float64(width))
		face = p.newFace(box.Font, size)
		width = font.MeasureString(face, text).Ceil()
	}

	return face, width
}

func (p *Compositor) newFace(fnt *truetype.Font, size float64) font.Face {
	return truetype.NewFace(fnt, &truetype.Options{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}
