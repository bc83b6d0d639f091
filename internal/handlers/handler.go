package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soapdesign-api/internal/apperr"
	"soapdesign-api/internal/metrics"
	"soapdesign-api/internal/middleware"
	"soapdesign-api/internal/service"
)

type Handler struct {
	applications *service.Applications
	portfolio    *service.Portfolio
	metrics      *metrics.Metrics
	log          *zap.Logger
}

func New(applications *service.Applications, portfolio *service.Portfolio, m *metrics.Metrics, log *zap.Logger) *Handler {
	return &Handler{
		applications: applications,
		portfolio:    portfolio,
		metrics:      m,
		log:          log,
	}
}

// fail отдаёт ошибку в формате {"detail": "..."}; внутренние ошибки наружу не раскрываем.
func (h *Handler) fail(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.PersistenceFailure(err)
	}

	status := appErr.Status()
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		h.log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err),
		)
		c.JSON(status, gin.H{"detail": "internal error"})
		return
	}

	c.JSON(status, gin.H{"detail": appErr.Detail})
}
