package template

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/shubhankar1313/glf-banner-generator/internal/config"
)

func writeTemplatePNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 30, G: 60, B: 120, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "template.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create template file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode template file: %v", err)
	}

	return path
}

func testConfig(path string) config.TemplateConfig {
	return config.TemplateConfig{
		Path:             path,
		PhotoSlot:        config.SlotConfig{X: 245, Y: 85, Width: 600, Height: 800},
		NameBox:          config.BoxConfig{X1: 288, X2: 790, Y1: 705, Y2: 790, MaxFontSize: 66},
		DesignationBox:   config.BoxConfig{X1: 367, X2: 712, Y1: 807, Y2: 855, MaxFontSize: 32},
		MinFontSize:      12,
		NameColor:        "#FFFFFF",
		DesignationColor: "#000000",
		QRX:              40,
		QRY:              40,
		QRSize:           120,
	}
}

func TestLoad(t *testing.T) {
	path := writeTemplatePNG(t, 1080, 1080)

	tpl, err := Load(testConfig(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	w, h := tpl.Size()
	if w != 1080 || h != 1080 {
		t.Errorf("Size() = %dx%d, want 1080x1080", w, h)
	}
	if tpl.PhotoSlot.Width != 600 || tpl.PhotoSlot.Height != 800 {
		t.Errorf("PhotoSlot = %+v, want 600x800", tpl.PhotoSlot)
	}
	if tpl.NameBox.Font == nil || tpl.DesignationBox.Font == nil {
		t.Error("embedded fallback fonts were not loaded")
	}
	if tpl.Fingerprint() == "" {
		t.Error("Fingerprint() is empty")
	}
}

func TestLoadMissingTemplate(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "nope.png"))
	if _, err := Load(cfg); err == nil {
		t.Error("Load() with a missing template file did not fail")
	}
}

func TestLoadMissingFont(t *testing.T) {
	cfg := testConfig(writeTemplatePNG(t, 64, 64))
	cfg.NameFontPath = filepath.Join(t.TempDir(), "nope.ttf")
	if _, err := Load(cfg); err == nil {
		t.Error("Load() with a missing font file did not fail")
	}
}

func TestFingerprintTracksLayout(t *testing.T) {
	path := writeTemplatePNG(t, 256, 256)

	base, err := Load(testConfig(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	moved := testConfig(path)
	moved.PhotoSlot.X += 10
	other, err := Load(moved)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if base.Fingerprint() == other.Fingerprint() {
		t.Error("fingerprint did not change with the layout")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#FFFFFF", want: color.NRGBA{255, 255, 255, 255}},
		{in: "#000000", want: color.NRGBA{0, 0, 0, 255}},
		{in: "#1a2B3c", want: color.NRGBA{0x1a, 0x2b, 0x3c, 255}},
		{in: "#F00", want: color.NRGBA{255, 0, 0, 255}},
		{in: "", wantErr: true},
		{in: "FFFFFF", wantErr: true},
		{in: "#GGHHII", wantErr: true},
		{in: "#12345", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
