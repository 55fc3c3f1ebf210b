package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedor-app/backend/internal/httputil"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/repository"
)

// RegisterSettingsRoutes registers the routes for the user settings
// with the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
	r.DELETE("", ResetSettings)
}

// OptionsSettings returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Settings
//	@Success		204
//	@Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// GetSettings returns the user settings
//
//	@Summary		Get settings
//	@Description	Returns the user settings. Defaults apply when nothing is stored yet.
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	SettingsResponse
//	@Failure		500	{object}	httpError
//	@Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := repository.NewSettings(models.DB).Get()
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// UpdateSettings updates the user settings
//
//	@Summary		Update settings
//	@Description	Update the user settings. Only values to be updated need to be specified.
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	SettingsResponse
//	@Failure		400			{object}	httpError
//	@Param			settings	body		models.UserSettingsEditable	true	"Settings"
//	@Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	var editable models.UserSettingsEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	updated, err := repository.NewSettings(models.DB).Update(editable)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &updated})
}

// ResetSettings resets the user settings to the defaults
//
//	@Summary		Reset settings
//	@Description	Resets the user settings to the defaults
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	SettingsResponse
//	@Failure		500	{object}	httpError
//	@Router			/v1/settings [delete]
func ResetSettings(c *gin.Context) {
	reset, err := repository.NewSettings(models.DB).Reset()
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &reset})
}
