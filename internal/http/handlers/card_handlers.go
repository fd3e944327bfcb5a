package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shubhankar1313/glf-banner-generator/internal/config"
	"github.com/shubhankar1313/glf-banner-generator/internal/models"
	"github.com/shubhankar1313/glf-banner-generator/internal/services/cache"
	"github.com/shubhankar1313/glf-banner-generator/internal/services/compositor"
	"github.com/shubhankar1313/glf-banner-generator/internal/services/template"
)

const (
	photoParamKey       = "photo"
	nameParamKey        = "name"
	designationParamKey = "designation"
	qrDataParamKey      = "qr_data"
)

type CardHandler struct {
	compositor *compositor.Compositor
	template   *template.Template
	cache      *cache.Cache
	logger     *zap.Logger
	config     *config.Config
}

func NewCardHandler(
	compositor *compositor.Compositor,
	template *template.Template,
	cache *cache.Cache,
	logger *zap.Logger,
	config *config.Config,
) *CardHandler {
	return &CardHandler{
		compositor: compositor,
		template:   template,
		cache:      cache,
		logger:     logger,
		config:     config,
	}
}

// === MAIN API ENDPOINTS ===

// ComposeCard handles one form submission: photo upload plus name and
// designation fields, PNG download back. Every request is independent; a
// failed one only fails itself.
func (h *CardHandler) ComposeCard(c *gin.Context) {
	photoBytes, err := h.readUploadedPhoto(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "Please upload a photo")
		return
	}

	req := h.parseCardParams(c)

	if err := h.compositor.Validate(photoBytes, h.config.Upload.MaxFileSize); err != nil {
		h.respondError(c, http.StatusBadRequest, h.validationMessage(err))
		return
	}

	cacheKey := h.cache.Key(photoBytes, req, h.template.Fingerprint())
	if cached, found := h.tryGetFromCache(c.Request.Context(), cacheKey); found {
		h.respondWithCard(c, cached, req.Name)
		return
	}

	composite, err := h.compositor.Compose(h.template, photoBytes, req)
	if err != nil {
		if errors.Is(err, compositor.ErrDecode) || errors.Is(err, compositor.ErrEmptyInput) {
			h.respondError(c, http.StatusBadRequest, h.validationMessage(err))
			return
		}
		h.logger.Error("Composition failed", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to compose card")
		return
	}

	h.setCacheData(c.Request.Context(), cacheKey, composite)

	h.respondWithCard(c, composite, req.Name)
}

// HealthCheck
func (h *CardHandler) HealthCheck(c *gin.Context) {
	services := map[string]string{
		"template": h.templateStatus(),
		"cache":    h.cache.HealthCheck(c.Request.Context()),
	}
	overall := h.calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}
