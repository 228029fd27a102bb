package handler

import (
	"errors"
	"net/http"
	"strconv"

	"marmitapp/internal/httperr"
	"marmitapp/internal/middleware"
	"marmitapp/internal/model"
	"marmitapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RestaurantHandler handles restaurant account and profile requests
type RestaurantHandler struct {
	service service.RestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler
func NewRestaurantHandler(s service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: s}
}

// Register handles POST /api/restaurant
func (h *RestaurantHandler) Register(c *gin.Context) {
	var req model.RegisterRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCNPJ):
			httperr.Domain(c, "Please include a valid CNPJ")
		case errors.Is(err, service.ErrRestaurantExists):
			httperr.Domain(c, "Restaurant already exists")
		default:
			log.Error().Err(err).Msg("restaurant registration failed")
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// List handles GET /api/restaurant
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("restaurant listing failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// Filtered handles GET /api/restaurant/filter/:filter?/:page?/:limit?.
// Page and limit arrive as path strings and are coerced here.
func (h *RestaurantHandler) Filtered(c *gin.Context) {
	filters := model.RestaurantFilters{
		Filter: c.Param("filter"),
		Page:   1,
		Limit:  10,
	}
	if pageParam := c.Param("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil {
			httperr.Domain(c, "Invalid page")
			return
		}
		filters.Page = page
	}
	if limitParam := c.Param("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil {
			httperr.Domain(c, "Invalid limit")
			return
		}
		filters.Limit = limit
	}

	restaurants, err := h.service.Filtered(c.Request.Context(), filters)
	if err != nil {
		log.Error().Err(err).Msg("restaurant filtering failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// Favorites handles GET /api/restaurant/favorites: the restaurants the
// authenticated user has favorited.
func (h *RestaurantHandler) Favorites(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	restaurants, err := h.service.FavoritesOf(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httperr.Domain(c, "User does not exists")
			return
		}
		log.Error().Err(err).Msg("favorites listing failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetByID handles GET /api/restaurant/:id
func (h *RestaurantHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Domain(c, "Invalid restaurant id")
		return
	}

	restaurant, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			httperr.Domain(c, "Restaurant does not exists")
			return
		}
		log.Error().Err(err).Msg("restaurant lookup failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// CompleteInfo handles PUT /api/restaurant/completeinfo. The updated row is
// always the authenticated restaurant; any id in the payload is ignored.
func (h *RestaurantHandler) CompleteInfo(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	var req model.CompleteInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	restaurant, err := h.service.CompleteInfo(c.Request.Context(), subjectID, req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			httperr.Domain(c, "Restaurant does not exists")
			return
		}
		log.Error().Err(err).Msg("restaurant info update failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// ChangePassword handles PUT /api/restaurant/password
func (h *RestaurantHandler) ChangePassword(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), subjectID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			httperr.Domain(c, "Restaurant does not exists")
		case errors.Is(err, service.ErrWrongPassword):
			httperr.Domain(c, "Invalid Credentials")
		default:
			log.Error().Err(err).Msg("restaurant password change failed")
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Password successfully changed"})
}

// Delete handles DELETE /api/restaurant: the authenticated restaurant
// deletes its own account.
func (h *RestaurantHandler) Delete(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), subjectID); err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			httperr.Domain(c, "Restaurant does not exists")
			return
		}
		log.Error().Err(err).Msg("restaurant deletion failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Restaurant successfully deleted"})
}

// RegisterRestaurantRoutes registers restaurant routes
func (h *RestaurantHandler) RegisterRestaurantRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := rg.Group("/restaurant")
	{
		group.POST("", h.Register)
		group.GET("", authMW, h.List)
		group.GET("/favorites", authMW, h.Favorites)
		group.GET("/filter", authMW, h.Filtered)
		group.GET("/filter/:filter", authMW, h.Filtered)
		group.GET("/filter/:filter/:page", authMW, h.Filtered)
		group.GET("/filter/:filter/:page/:limit", authMW, h.Filtered)
		group.GET("/:id", authMW, h.GetByID)
		group.PUT("/completeinfo", authMW, h.CompleteInfo)
		group.PUT("/password", authMW, h.ChangePassword)
		group.DELETE("", authMW, h.Delete)
	}
}
