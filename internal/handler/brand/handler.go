package brand

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
	repo      repository.BrandRepository
	validator validator.Validator
}

func NewHandler(repo repository.BrandRepository, v validator.Validator) *Handler {
	return &Handler{repo: repo, validator: v}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	brands := r.Group("/brands")
	{
		brands.POST("", h.CreateBrand)
		brands.GET("", h.ListBrands)
		brands.GET("/:id", h.GetBrand)
		brands.DELETE("/:id", h.DeleteBrand)
	}
}

func (h *Handler) CreateBrand(c *gin.Context) {
	var req model.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	brand := &model.Brand{Name: req.Name, ClientID: req.ClientID}
	if err := h.repo.Create(c.Request.Context(), brand); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(brand))
}

func (h *Handler) GetBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid brand ID"))
		return
	}

	brand, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(brand))
}

func (h *Handler) ListBrands(c *gin.Context) {
	brands, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(brands))
}

func (h *Handler) DeleteBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid brand ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
