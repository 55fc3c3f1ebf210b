package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vedor-app/backend/internal/models"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"there is no Category matching your query"`
}

// NewError writes an error response with the given status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{Error: err.Error()})
}

// ErrorStatus returns the appropriate response status for an error
// from the models or repository layer.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrCategorySlugNotUnique),
		errors.Is(err, models.ErrBudgetExists),
		errors.Is(err, models.ErrTransactionDuplicate):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// Error writes the error response for an error from the models or
// repository layer. Server side errors are logged with the request id
// so they can be correlated.
func Error(c *gin.Context, err error) {
	status := ErrorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	NewError(c, status, err)
}
