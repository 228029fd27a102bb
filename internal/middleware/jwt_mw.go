package middleware

import (
	"errors"
	"strings"

	"marmitapp/internal/httperr"
	"marmitapp/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthSubjectKey is the context key under which the verified token subject
// id is stored for handlers.
const AuthSubjectKey = "authSubject"

// Legacy response bodies; clients match on these strings.
const (
	msgNoToken      = "No token, authorization denied"
	msgInvalidToken = "Token is not valid"
)

// JWTAuthMiddleware verifies the caller's token and attaches the subject id
// to the request context. Tokens are read from the Authorization header
// (bare or Bearer-prefixed) or the legacy x-auth-token header. The subject
// kind (user vs restaurant) is not checked; a verified token of either kind
// passes, which is the platform's documented single authorization mechanism.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			httperr.Unauthorized(c, msgNoToken)
			return
		}

		subjectID, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			httperr.Unauthorized(c, msgInvalidToken)
			return
		}

		c.Set(AuthSubjectKey, subjectID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return header
	}
	return c.GetHeader("x-auth-token")
}

// AuthSubject returns the verified subject id set by JWTAuthMiddleware
func AuthSubject(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(AuthSubjectKey)
	if !exists {
		return uuid.Nil, errors.New("subject id not found in context")
	}
	subjectID, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("invalid subject id type in context")
	}
	return subjectID, nil
}
