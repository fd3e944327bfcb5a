package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/shubhankar1313/glf-banner-generator/internal/config"
	"github.com/shubhankar1313/glf-banner-generator/internal/models"
	"github.com/shubhankar1313/glf-banner-generator/internal/services/compositor"
	"github.com/shubhankar1313/glf-banner-generator/internal/services/template"
)

func testRouter(t *testing.T) (*gin.Engine, *template.Template) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	nameFont, err := truetype.Parse(gobold.TTF)
	if err != nil {
		t.Fatalf("parse name font: %v", err)
	}
	desgFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("parse designation font: %v", err)
	}

	tpl := &template.Template{
		Background: image.NewNRGBA(image.Rect(0, 0, 600, 800)),
		PhotoSlot:  template.Rect{X: 100, Y: 80, Width: 300, Height: 400},
		NameBox: template.TextBox{
			X1: 100, X2: 500, Y1: 600, Y2: 680,
			MaxFontSize: 48,
			Color:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Font:        nameFont,
		},
		DesignationBox: template.TextBox{
			X1: 150, X2: 450, Y1: 700, Y2: 750,
			MaxFontSize: 24,
			Color:       color.NRGBA{A: 255},
			Font:        desgFont,
		},
		MinFontSize: 12,
		QRAnchor:    image.Pt(10, 10),
		QRSize:      80,
	}

	cfg := &config.Config{
		Upload: config.UploadConfig{MaxFileSize: 10 * 1024 * 1024},
	}

	handler := NewCardHandler(compositor.NewCompositor(), tpl, nil, zap.NewNop(), cfg)

	router := gin.New()
	router.POST("/api/v1/cards/compose", handler.ComposeCard)
	router.GET("/api/v1/health", handler.HealthCheck)

	return router, tpl
}

func composeForm(t *testing.T, photo []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if photo != nil {
		part, err := writer.CreateFormFile("photo", "photo.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(photo); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write form field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close form writer: %v", err)
	}

	return body, writer.FormDataContentType()
}

func fixturePhoto(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestComposeCard(t *testing.T) {
	router, tpl := testRouter(t)

	body, contentType := composeForm(t, fixturePhoto(t, 800, 600), map[string]string{
		"name":        "Jane Doe",
		"designation": "Engineer",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cards/compose", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Jane_Doe_id_card.png") {
		t.Errorf("Content-Disposition = %q, want Jane_Doe_id_card.png", cd)
	}
	if rec.Header().Get("X-Card-ID") == "" {
		t.Error("X-Card-ID header missing")
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("response is not a valid PNG: %v", err)
	}
	wantW, wantH := tpl.Size()
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("composite size = %dx%d, want %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
	}
}

func TestComposeCardMissingPhoto(t *testing.T) {
	router, _ := testRouter(t)

	body, contentType := composeForm(t, nil, map[string]string{"name": "Jane"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cards/compose", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Success {
		t.Error("response reported success for a missing photo")
	}
	if !strings.Contains(resp.Error, "upload a photo") {
		t.Errorf("error message = %q", resp.Error)
	}
}

func TestComposeCardInvalidPhoto(t *testing.T) {
	router, _ := testRouter(t)

	body, contentType := composeForm(t, []byte("definitely not a png"), map[string]string{"name": "Jane"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cards/compose", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !strings.Contains(resp.Error, "valid image") {
		t.Errorf("error message = %q", resp.Error)
	}
}

func TestComposeCardEmptyName(t *testing.T) {
	router, _ := testRouter(t)

	body, contentType := composeForm(t, fixturePhoto(t, 400, 400), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cards/compose", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "id_card.png") {
		t.Errorf("Content-Disposition = %q, want fallback id_card.png", cd)
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Errorf("health reported unhealthy: %s", rec.Body.String())
	}
}
