//go:build ignore

// gen_template creates a placeholder card template for local runs. Replace
// assets/template.png with the real artwork for production.
// Usage: go run assets/gen_template.go assets/template.png
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

const (
	w = 1080
	h = 1350

	slotX, slotY = 245, 85
	slotW, slotH = 600, 800
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_template <output.png>")
		os.Exit(1)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{
				R: uint8(20 + y*40/h),
				G: uint8(40 + y*30/h),
				B: uint8(90 + y*60/h),
				A: 255,
			}
			// white frame around the photo slot
			onFrame := x >= slotX-6 && x < slotX+slotW+6 && y >= slotY-6 && y < slotY+slotH+6 &&
				!(x >= slotX && x < slotX+slotW && y >= slotY && y < slotY+slotH)
			if onFrame {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	f, err := os.Create(os.Args[1])
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		panic(err)
	}

	fmt.Fprintf(os.Stderr, "[gen_template] wrote %dx%d template to %s\n", w, h, os.Args[1])
}
