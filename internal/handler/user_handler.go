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

// UserHandler handles user registration and profile requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register handles POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			httperr.Domain(c, "User already exists")
			return
		}
		log.Error().Err(err).Msg("user registration failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// List handles GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("user listing failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateFavorites handles PUT /api/users/favorites. The favorites list is
// replaced wholesale for the authenticated user.
func (h *UserHandler) UpdateFavorites(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	var req model.UpdateFavoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(req.Favorites))
	for _, raw := range req.Favorites {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.Domain(c, "Please check favorites list")
			return
		}
		ids = append(ids, id)
	}

	favorites, err := h.service.ReplaceFavorites(c.Request.Context(), subjectID, ids)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httperr.Domain(c, "User does not exists")
		case errors.Is(err, service.ErrUnknownFavorite):
			httperr.Domain(c, "Please check favorites list")
		default:
			log.Error().Err(err).Msg("favorites update failed")
			httperr.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// UpdateAddress handles PUT /api/users/address
func (h *UserHandler) UpdateAddress(c *gin.Context) {
	subjectID, err := middleware.AuthSubject(c)
	if err != nil {
		httperr.Unauthorized(c, err.Error())
		return
	}

	var req model.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	address, err := h.service.UpdateAddress(c.Request.Context(), subjectID, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httperr.Domain(c, "User does not exists")
			return
		}
		log.Error().Err(err).Msg("address update failed")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, address)
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	userGroup := rg.Group("/users")
	{
		userGroup.POST("", h.Register)
		userGroup.GET("", authMW, h.List)
		userGroup.PUT("/favorites", authMW, h.UpdateFavorites)
		userGroup.PUT("/address", authMW, h.UpdateAddress)
	}
}
