package compositor

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/shubhankar1313/glf-banner-generator/internal/services/template"
)

// fitToSlot scales the photo uniformly so it fully covers the slot, then
// center-crops it to the slot's exact size. Aspect ratio is never distorted:
// the scale factor is max(slotW/photoW, slotH/photoH) and the overflow on the
// longer axis is trimmed evenly from both sides.
func (p *Compositor) fitToSlot(photo image.Image, slot template.Rect) *image.NRGBA {
	bounds := photo.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	scale := math.Max(float64(slot.Width)/float64(w), float64(slot.Height)/float64(h))

	scaledW := int(math.Round(float64(w) * scale))
	scaledH := int(math.Round(float64(h) * scale))
	// rounding must not leave the scaled photo short of the slot
	if scaledW < slot.Width {
		scaledW = slot.Width
	}
	if scaledH < slot.Height {
		scaledH = slot.Height
	}

	scaled := imaging.Resize(photo, scaledW, scaledH, imaging.Lanczos)

	return imaging.CropCenter(scaled, slot.Width, slot.Height)
}
