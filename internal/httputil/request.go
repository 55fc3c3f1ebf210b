package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestHost returns the base URL for the request, honoring the
// x-forwarded-proto, x-forwarded-host and x-forwarded-prefix headers
// a reverse proxy sets.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost
		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
	}

	return scheme + "://" + host + forwardedPrefix
}

// BindData binds the request body to the struct passed in the interface.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			e := errors.New("request body must not be empty")
			NewError(c, http.StatusBadRequest, e)
			return e
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		e := errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
		NewError(c, http.StatusBadRequest, e)
		return e
	}

	return nil
}
