package operator

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ezystaff/staffing-api/internal/handler"
	"github.com/ezystaff/staffing-api/internal/model"
	"github.com/ezystaff/staffing-api/internal/repository"
	"github.com/ezystaff/staffing-api/pkg/validator"
)

type Handler struct {
	repo      repository.OperatorRepository
	validator validator.Validator
}

func NewHandler(repo repository.OperatorRepository, v validator.Validator) *Handler {
	return &Handler{repo: repo, validator: v}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	operators := r.Group("/operators")
	{
		operators.POST("", h.CreateOperator)
		operators.GET("", h.ListOperators)
		operators.GET("/:id", h.GetOperator)
		operators.DELETE("/:id", h.DeleteOperator)
	}
}

func (h *Handler) CreateOperator(c *gin.Context) {
	var req model.CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	operator := &model.Operator{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := h.repo.Create(c.Request.Context(), operator); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(operator))
}

func (h *Handler) GetOperator(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid operator ID"))
		return
	}

	operator, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(operator))
}

func (h *Handler) ListOperators(c *gin.Context) {
	operators, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(operators))
}

func (h *Handler) DeleteOperator(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid operator ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
