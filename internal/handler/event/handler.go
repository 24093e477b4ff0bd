package event

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ezystaff/staffing-api/internal/handler"
	"github.com/ezystaff/staffing-api/internal/model"
	"github.com/ezystaff/staffing-api/internal/repository"
	eventService "github.com/ezystaff/staffing-api/internal/service/event"
	exportService "github.com/ezystaff/staffing-api/internal/service/export"
	"github.com/ezystaff/staffing-api/pkg/validator"
)

type Handler struct {
	service      *eventService.Service
	exportSvc    *exportService.Service
	operatorRepo repository.OperatorRepository
	validator    validator.Validator
}

func NewHandler(
	service *eventService.Service,
	exportSvc *exportService.Service,
	operatorRepo repository.OperatorRepository,
	v validator.Validator,
) *Handler {
	return &Handler{
		service:      service,
		exportSvc:    exportSvc,
		operatorRepo: operatorRepo,
		validator:    v,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	{
		events.POST("", h.CreateEvent)
		events.GET("", h.ListEvents)
		events.GET("/processed", h.ListProcessed)
		events.POST("/export", h.Export)
		events.GET("/:id", h.GetEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.DeleteEvent)
	}
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(event))
}

func (h *Handler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid event ID"))
		return
	}

	event, err := h.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(event))
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid event ID"))
		return
	}

	var req model.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(event))
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid event ID"))
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(events))
}

// ListProcessed serves the enriched listing the back office works from.
// All query parameters are optional; an empty query returns every event
// sorted by date ascending.
func (h *Handler) ListProcessed(c *gin.Context) {
	filter := model.EventFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid client ID"))
			return
		}
		filter.ClientID = &id
	}

	if raw := c.Query("brand_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid brand ID"))
			return
		}
		filter.BrandID = &id
	}

	sortKey := c.DefaultQuery("sort", model.SortDateAsc)

	events, err := h.service.ListProcessed(c.Request.Context(), filter, sortKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(events))
}

type exportRequest struct {
	EventIDs []uuid.UUID `json:"event_ids"`
}

// Export streams the roster workbook for the selected events as an xlsx
// attachment. An empty selection is a client error rather than an empty file.
func (h *Handler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if len(req.EventIDs) == 0 {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("at least one event must be selected"))
		return
	}

	events, err := h.service.ListProcessed(c.Request.Context(), model.EventFilter{}, model.SortDateAsc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	operators, err := h.operatorRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	export, err := h.exportSvc.Generate(events, req.EventIDs, operators)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	if export == nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("at least one event must be selected"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.File.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
}
