package controllers

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vedor-app/backend/internal/httputil"
	"github.com/vedor-app/backend/internal/models"
)

var backendVersion string

// ExportResponse is a dump of all resources of the instance.
type ExportResponse struct {
	Version      string                     `json:"version"`      // The version of the backend the export was made with
	Data         map[string]json.RawMessage `json:"data"`         // The exported data, keyed by entity name
	CreationTime time.Time                  `json:"creationTime"` // Time the export was created
}

// RegisterExportRoutes registers the routes for exports with the
// RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// OptionsExport returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Export
//	@Success		204
//	@Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetExport returns all resources of the instance
//
//	@Summary		Export
//	@Description	Exports all resources for the instance
//	@Tags			Export
//	@Produce		json
//	@Success		200	{object}	ExportResponse
//	@Failure		500	{object}	httpError
//	@Router			/v1/export [get]
func GetExport(c *gin.Context) {
	resources := make(map[string]json.RawMessage)

	for _, model := range models.Registry {
		b, err := model.Export()
		if err != nil {
			httputil.Error(c, err)
			return
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      backendVersion,
		Data:         resources,
		CreationTime: time.Now(),
	})
}
