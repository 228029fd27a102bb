package handler

import (
	"errors"
	"net/http"

	"marmitapp/internal/httperr"
	"marmitapp/internal/middleware"
	"marmitapp/internal/model"
	"marmitapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles login requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// LoginUser handles POST /api/auth/users
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	token, err := h.service.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httperr.Domain(c, "Invalid Credentials")
			return
		}
		log.Error().Err(err).Msg("user login failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// LoginRestaurant handles POST /api/auth/restaurants
func (h *AuthHandler) LoginRestaurant(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	token, err := h.service.LoginRestaurant(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httperr.Domain(c, "Invalid Credentials")
			return
		}
		log.Error().Err(err).Msg("restaurant login failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RestaurantProfile handles GET /api/auth/restaurants: the authenticated
// restaurant's own record.
func (h *AuthHandler) RestaurantProfile(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	restaurant, err := h.service.RestaurantProfile(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			httperr.Domain(c, "Restaurant does not exists")
			return
		}
		log.Error().Err(err).Msg("restaurant profile lookup failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/users", h.LoginUser)
		authGroup.POST("/restaurants", h.LoginRestaurant)
		authGroup.GET("/restaurants", authMW, h.RestaurantProfile)
	}
}
