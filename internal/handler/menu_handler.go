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

// MenuHandler handles daily-menu requests
type MenuHandler struct {
	service service.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(s service.MenuService) *MenuHandler {
	return &MenuHandler{service: s}
}

func (h *MenuHandler) menuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMenuNotFound):
		httperr.Domain(c, "Menu does not exists")
	case errors.Is(err, service.ErrMenuDateTaken):
		httperr.Domain(c, "Already exists menu to this date")
	case errors.Is(err, service.ErrInvalidDate):
		httperr.Domain(c, "Date is invalid, use DD/MM/YYYY")
	case errors.Is(err, service.ErrTooManyDishes):
		httperr.Domain(c, "Too many dishes in a menu section")
	default:
		log.Error().Err(err).Msg("menu operation failed")
		httperr.Internal(c)
	}
}

// List handles GET /api/menu
func (h *MenuHandler) List(c *gin.Context) {
	menus, err := h.service.List(c.Request.Context())
	if err != nil {
		h.menuError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

// MyMenus handles GET /api/menu/restaurant: the authenticated restaurant's
// menus.
func (h *MenuHandler) MyMenus(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	menus, err := h.service.ByRestaurant(c.Request.Context(), subjectID)
	if err != nil {
		h.menuError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

// ByRestaurant handles GET /api/menu/restaurant/:id
func (h *MenuHandler) ByRestaurant(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Domain(c, "Invalid restaurant id")
		return
	}

	menus, err := h.service.ByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		h.menuError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

// GetByID handles GET /api/menu/:id
func (h *MenuHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Domain(c, "Invalid menu id")
		return
	}

	menu, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.menuError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// Create handles POST /api/menu
func (h *MenuHandler) Create(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	var req model.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	menu, err := h.service.Create(c.Request.Context(), subjectID, req)
	if err != nil {
		h.menuError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// Update handles PUT /api/menu
func (h *MenuHandler) Update(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	var req model.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	menu, err := h.service.Update(c.Request.Context(), subjectID, req)
	if err != nil {
		h.menuError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// Delete handles DELETE /api/menu/:date
func (h *MenuHandler) Delete(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), subjectID, c.Param("date")); err != nil {
		h.menuError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Menu successfully deleted"})
}

// RegisterMenuRoutes registers menu routes
func (h *MenuHandler) RegisterMenuRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := rg.Group("/menu", authMW)
	{
		group.GET("", h.List)
		group.GET("/restaurant", h.MyMenus)
		group.GET("/restaurant/:id", h.ByRestaurant)
		group.GET("/:id", h.GetByID)
		group.POST("", h.Create)
		group.PUT("", h.Update)
		group.DELETE("/:date", h.Delete)
	}
}
