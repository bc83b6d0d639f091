package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soapdesign-api/internal/service"
)

type applyRequest struct {
	ServiceType  string  `json:"service_type" binding:"required"`
	ClientType   string  `json:"client_type" binding:"required"`
	BudgetType   string  `json:"budget_type" binding:"required"`
	DeadlineType string  `json:"deadline_type" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	Comment      *string `json:"comment"`
}

// Apply: POST /apply, заявка с формы сайта.
func (h *Handler) Apply(c *gin.Context) {
	var body applyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request: " + err.Error()})
		return
	}

	app, err := h.applications.Submit(c.Request.Context(), service.SubmitRequest{
		ServiceType:  body.ServiceType,
		ClientType:   body.ClientType,
		BudgetType:   body.BudgetType,
		DeadlineType: body.DeadlineType,
		Name:         body.Name,
		Phone:        body.Phone,
		Email:        body.Email,
		Comment:      body.Comment,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.metrics.ApplicationsSubmitted.Inc()
	h.log.Info("application created", zap.Uint("application_id", app.ID), zap.Uint("user_id", app.UserID))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"detail":  fmt.Sprintf("new application was created: #%d", app.ID),
	})
}

// ListApplications: GET /applications, все заявки без фильтров.
func (h *Handler) ListApplications(c *gin.Context) {
	apps, err := h.applications.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}
