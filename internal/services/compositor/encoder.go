package compositor

import (
	"image"
	"image/png"
	"io"
)

// encodePNG writes the composite as PNG. Output is always PNG regardless of
// the upload format; PNG encoding is deterministic, which keeps composition
// idempotent and the result cacheable.
func (p *Compositor) encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
