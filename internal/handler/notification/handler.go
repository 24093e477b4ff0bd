package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ezystaff/staffing-api/internal/handler"
	"github.com/ezystaff/staffing-api/internal/model"
	notificationService "github.com/ezystaff/staffing-api/internal/service/notification"
	"github.com/ezystaff/staffing-api/pkg/validator"
)

type Handler struct {
	service   *notificationService.Service
	validator validator.Validator
}

func NewHandler(service *notificationService.Service, v validator.Validator) *Handler {
	return &Handler{service: service, validator: v}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.POST("/test", h.SendTest)
		notifications.POST("/broadcast", h.Broadcast)
	}
}

func (h *Handler) SendTest(c *gin.Context) {
	var req model.TestNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.service.SendTest(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) Broadcast(c *gin.Context) {
	var req model.BroadcastNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.Broadcast(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}
