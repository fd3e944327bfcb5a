package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shubhankar1313/glf-banner-generator/internal/models"
	"github.com/shubhankar1313/glf-banner-generator/internal/services/compositor"
	"github.com/shubhankar1313/glf-banner-generator/pkg/utils"
)

// === REQUEST PARSING ===

func (h *CardHandler) readUploadedPhoto(c *gin.Context) ([]byte, error) {
	file, _, err := c.Request.FormFile(photoParamKey)
	if err != nil {
		return nil, fmt.Errorf("no photo file provided: %w", err)
	}
	defer file.Close()

	// +1 so an oversized upload is detected by the validator instead of
	// being silently truncated to the limit
	data, err := io.ReadAll(io.LimitReader(file, h.config.Upload.MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}

	return data, nil
}

func (h *CardHandler) parseCardParams(c *gin.Context) *models.CardRequest {
	return &models.CardRequest{
		Name:        c.PostForm(nameParamKey),
		Designation: c.PostForm(designationParamKey),
		QRData:      c.PostForm(qrDataParamKey),
	}
}

// === RESPONSE HANDLING ===

func (h *CardHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

func (h *CardHandler) respondWithCard(c *gin.Context, data []byte, name string) {
	cardID := uuid.New().String()
	filename := utils.CardFilename(name)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("X-Card-ID", cardID)
	c.Data(http.StatusOK, "image/png", data)

	h.logger.Info("Card composed",
		zap.String("card_id", cardID),
		zap.String("filename", filename),
		zap.Int("file_size", len(data)),
	)
}

func (h *CardHandler) validationMessage(err error) string {
	switch {
	case errors.Is(err, compositor.ErrEmptyInput):
		return "Please upload a photo"
	case errors.Is(err, compositor.ErrDecode):
		return "Please upload a valid image"
	default:
		return fmt.Sprintf("Invalid upload: %v", err)
	}
}

// === CACHE OPERATIONS ===

func (h *CardHandler) tryGetFromCache(ctx context.Context, cacheKey string) ([]byte, bool) {
	cachedData, err := h.cache.Get(ctx, cacheKey)
	if err != nil {
		h.logger.Warn("Cache lookup failed", zap.String("cache_key", cacheKey), zap.Error(err))
		return nil, false
	}
	if cachedData == nil {
		return nil, false
	}

	h.logger.Info("Cache hit", zap.String("cache_key", cacheKey))
	return cachedData, true
}

func (h *CardHandler) setCacheData(ctx context.Context, cacheKey string, data []byte) {
	if err := h.cache.Set(ctx, cacheKey, data); err != nil {
		h.logger.Warn("Failed to cache data", zap.String("cache_key", cacheKey), zap.Error(err))
	}
}

// === UTILITY METHODS ===

func (h *CardHandler) templateStatus() string {
	if h.template == nil {
		return "unhealthy: template not loaded"
	}
	w, hgt := h.template.Size()
	if w == 0 || hgt == 0 {
		return "unhealthy: empty template"
	}
	return "healthy"
}

func (h *CardHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != "healthy" && status != "not configured" {
			return "unhealthy"
		}
	}
	return "healthy"
}
