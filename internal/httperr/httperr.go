// Package httperr defines the single error-response schema of the API.
// Field-validation failures carry an "errors" array of {field, message}
// pairs; domain, auth, and internal failures carry a single "msg".
package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Field errors are reported under the json names clients sent, not the
// Go struct field names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FieldError is one failed request-validation rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Fields converts a gin binding error into the wire field-error list. A
// malformed body (not a validator error) is reported against the whole
// request.
func Fields(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "request", Message: "Invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please include a valid email"
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must be numeric", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Validation rejects a request whose body failed binding
func Validation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": Fields(err)})
}

// Domain rejects a request that violated a domain rule (conflict,
// not-found, ownership). The legacy API reports these as 400.
func Domain(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"msg": msg})
}

// Unauthorized fails a request that carried no usable token
func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msg})
}

// Internal hides the cause of a server-side failure from the client
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
}
