package handler

import (
	"errors"
	"net/http"

	"marmitapp/internal/httperr"
	"marmitapp/internal/middleware"
	"marmitapp/internal/model"
	"marmitapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MealOptionsHandler handles standing meal-option requests
type MealOptionsHandler struct {
	service service.MealOptionsService
}

// NewMealOptionsHandler creates a new MealOptionsHandler
func NewMealOptionsHandler(s service.MealOptionsService) *MealOptionsHandler {
	return &MealOptionsHandler{service: s}
}

func (h *MealOptionsHandler) mealOptionsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMealOptionsNotFound):
		httperr.Domain(c, "This option does not exists")
	case errors.Is(err, service.ErrTooManyOptions):
		httperr.Domain(c, "Maximum 5 options")
	default:
		log.Error().Err(err).Msg("meal options operation failed")
		httperr.Internal(c)
	}
}

// List handles GET /api/mealOptions: the authenticated restaurant's sets
func (h *MealOptionsHandler) List(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	sets, err := h.service.ByRestaurant(c.Request.Context(), subjectID)
	if err != nil {
		h.mealOptionsError(c, err)
		return
	}
	c.JSON(http.StatusOK, sets)
}

// GetByID handles GET /api/mealOptions/:id
func (h *MealOptionsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Domain(c, "Invalid meal options id")
		return
	}

	mealOptions, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.mealOptionsError(c, err)
		return
	}
	c.JSON(http.StatusOK, mealOptions)
}

// Create handles POST /api/mealOptions
func (h *MealOptionsHandler) Create(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	var req model.CreateMealOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	mealOptions, err := h.service.Create(c.Request.Context(), subjectID, req)
	if err != nil {
		h.mealOptionsError(c, err)
		return
	}
	c.JSON(http.StatusOK, mealOptions)
}

// Update handles PUT /api/mealOptions
func (h *MealOptionsHandler) Update(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	var req model.UpdateMealOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	mealOptions, err := h.service.Update(c.Request.Context(), subjectID, req)
	if err != nil {
		h.mealOptionsError(c, err)
		return
	}
	c.JSON(http.StatusOK, mealOptions)
}

// RegisterMealOptionsRoutes registers meal-option routes
func (h *MealOptionsHandler) RegisterMealOptionsRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := rg.Group("/mealOptions", authMW)
	{
		group.GET("", h.List)
		group.GET("/:id", h.GetByID)
		group.POST("", h.Create)
		group.PUT("", h.Update)
	}
}
