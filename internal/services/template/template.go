package template

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/shubhankar1313/glf-banner-generator/internal/config"
)

// Rect is the placement rectangle reserved for the photo on the template.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// TextBox is a horizontal band on the template where a text field is drawn,
// centered, shrinking the font until the text fits between X1 and X2.
type TextBox struct {
	X1          int
	X2          int
	Y1          int
	Y2          int
	MaxFontSize float64
	Color       color.Color
	Font        *truetype.Font
}

// Template is the card artwork plus its layout. It is loaded once at startup
// and shared read-only across requests; nothing here is mutated after Load.
type Template struct {
	Background image.Image

	PhotoSlot      Rect
	NameBox        TextBox
	DesignationBox TextBox
	MinFontSize    float64

	QRAnchor image.Point
	QRSize   int

	fingerprint string
}

// Load reads the template artwork and fonts described by cfg. Font paths are
// optional; when unset the embedded Go fonts are used so the service runs
// without any font assets on disk.
func Load(cfg config.TemplateConfig) (*Template, error) {
	bg, err := imaging.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open template %q: %w", cfg.Path, err)
	}

	nameFont, err := loadFont(cfg.NameFontPath, gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("load name font: %w", err)
	}
	desgFont, err := loadFont(cfg.DesignationFontPath, goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load designation font: %w", err)
	}

	nameColor, err := ParseHexColor(cfg.NameColor)
	if err != nil {
		return nil, fmt.Errorf("name color: %w", err)
	}
	desgColor, err := ParseHexColor(cfg.DesignationColor)
	if err != nil {
		return nil, fmt.Errorf("designation color: %w", err)
	}

	tpl := &Template{
		Background: bg,
		PhotoSlot: Rect{
			X:      cfg.PhotoSlot.X,
			Y:      cfg.PhotoSlot.Y,
			Width:  cfg.PhotoSlot.Width,
			Height: cfg.PhotoSlot.Height,
		},
		NameBox: TextBox{
			X1:          cfg.NameBox.X1,
			X2:          cfg.NameBox.X2,
			Y1:          cfg.NameBox.Y1,
			Y2:          cfg.NameBox.Y2,
			MaxFontSize: cfg.NameBox.MaxFontSize,
			Color:       nameColor,
			Font:        nameFont,
		},
		DesignationBox: TextBox{
			X1:          cfg.DesignationBox.X1,
			X2:          cfg.DesignationBox.X2,
			Y1:          cfg.DesignationBox.Y1,
			Y2:          cfg.DesignationBox.Y2,
			MaxFontSize: cfg.DesignationBox.MaxFontSize,
			Color:       desgColor,
			Font:        desgFont,
		},
		MinFontSize: cfg.MinFontSize,
		QRAnchor:    image.Pt(cfg.QRX, cfg.QRY),
		QRSize:      cfg.QRSize,
	}
	tpl.fingerprint = fingerprint(cfg)

	return tpl, nil
}

// Size returns the template dimensions; every composite has the same size.
func (t *Template) Size() (int, int) {
	b := t.Background.Bounds()
	return b.Dx(), b.Dy()
}

// Fingerprint identifies the loaded template and layout for cache keys, so a
// layout change never serves composites built against the old layout.
func (t *Template) Fingerprint() string {
	return t.fingerprint
}

func loadFont(path string, fallback []byte) (*truetype.Font, error) {
	data := fallback
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return truetype.Parse(data)
}

func fingerprint(cfg config.TemplateConfig) string {
	hash := md5.New()
	fmt.Fprintf(hash, "%s|slot_%d_%d_%d_%d", cfg.Path,
		cfg.PhotoSlot.X, cfg.PhotoSlot.Y, cfg.PhotoSlot.Width, cfg.PhotoSlot.Height)
	fmt.Fprintf(hash, "|name_%d_%d_%d_%d_%.1f_%s_%s",
		cfg.NameBox.X1, cfg.NameBox.X2, cfg.NameBox.Y1, cfg.NameBox.Y2,
		cfg.NameBox.MaxFontSize, cfg.NameColor, cfg.NameFontPath)
	fmt.Fprintf(hash, "|desg_%d_%d_%d_%d_%.1f_%s_%s",
		cfg.DesignationBox.X1, cfg.DesignationBox.X2, cfg.DesignationBox.Y1, cfg.DesignationBox.Y2,
		cfg.DesignationBox.MaxFontSize, cfg.DesignationColor, cfg.DesignationFontPath)
	fmt.Fprintf(hash, "|qr_%d_%d_%d", cfg.QRX, cfg.QRY, cfg.QRSize)
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// ParseHexColor parses "#RRGGBB" or "#RGB" into an opaque color.
func ParseHexColor(s string) (color.Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}

	hexVal := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}

	var r, g, b uint8
	switch len(s) {
	case 7:
		for i, dst := range []*uint8{&r, &g, &b} {
			hi, ok1 := hexVal(s[1+i*2])
			lo, ok2 := hexVal(s[2+i*2])
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("invalid hex color %q", s)
			}
			*dst = hi<<4 | lo
		}
	case 4:
		for i, dst := range []*uint8{&r, &g, &b} {
			v, ok := hexVal(s[1+i])
			if !ok {
				return nil, fmt.Errorf("invalid hex color %q", s)
			}
			*dst = v<<4 | v
		}
	default:
		return nil, fmt.Errorf("invalid hex color %q", s)
	}

	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
