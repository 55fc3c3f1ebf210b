package controllers_test

import (
	"net/http"

	"github.com/vedor-app/backend/internal/controllers"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/test"
)

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/settings", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.ThemeDark, response.Data.Theme)
	suite.Assert().Equal(models.LocaleEsES, response.Data.Locale)
}

func (suite *TestSuiteStandard) TestSettingsUpdate() {
	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/settings", models.UserSettingsEditable{Theme: models.ThemeLight})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ThemeLight, response.Data.Theme)
	suite.Assert().Equal(models.LocaleEsES, response.Data.Locale)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/settings", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ThemeLight, response.Data.Theme)
}

func (suite *TestSuiteStandard) TestSettingsUpdateInvalid() {
	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/settings", `{ "theme": "sepia" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPatch, "/v1/settings", `{ "locale": "en-US" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSettingsReset() {
	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/settings", models.UserSettingsEditable{Theme: models.ThemeLight})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete, "/v1/settings", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ThemeDark, response.Data.Theme)
}
