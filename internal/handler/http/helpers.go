package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloghub/bloghub/internal/domain/entity"
	"github.com/bloghub/bloghub/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// RespondError maps a domain error to its HTTP status. Validation messages
// name the offending field; everything internal collapses to a generic
// server error so store details never leak to clients.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrUnauthenticated):
		ErrorHandler(c, http.StatusUnauthorized, "Unauthenticated")
	case errors.Is(err, entity.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, "Not authorized for this action")
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrDuplicate):
		ErrorHandler(c, http.StatusConflict, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Server error")
	}
}

// CallerFromContext returns the authenticated caller attached by the auth
// middleware.
func CallerFromContext(c *gin.Context) (entity.Caller, bool) {
	v, exists := c.Get("caller")
	if !exists {
		return entity.Caller{}, false
	}
	caller, ok := v.(entity.Caller)
	return caller, ok
}
