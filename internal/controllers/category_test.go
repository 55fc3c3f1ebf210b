package controllers_test

import (
	"net/http"

	"github.com/vedor-app/backend/internal/controllers"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/test"
)

func (suite *TestSuiteStandard) createTestCategory(editable models.CategoryEditable) controllers.CategoryResponse {
	if editable.ColorHex == "" {
		editable.ColorHex = "#FF5733"
	}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", editable)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestCategoriesEmptyList() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{ "data": [] }`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	response := suite.createTestCategory(models.CategoryEditable{Name: "Comida", ColorHex: "#4ECDC4"})

	suite.Require().NotNil(response.Data)
	suite.Assert().NotEmpty(response.Data.ID)
	suite.Assert().Equal("Comida", response.Data.Name)
	suite.Assert().Equal("comida", response.Data.Slug)
}

func (suite *TestSuiteStandard) TestCategoriesCreateInvalid() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", models.CategoryEditable{ColorHex: "#4ECDC4"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/categories", models.CategoryEditable{Name: "Comida", ColorHex: "azul"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesCreateDuplicateSlug() {
	suite.createTestCategory(models.CategoryEditable{Name: "Comida"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", models.CategoryEditable{Name: "comida"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	created := suite.createTestCategory(models.CategoryEditable{Name: "Comida"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories/"+created.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Comida", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories/missing", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	created := suite.createTestCategory(models.CategoryEditable{Name: "Comida", ColorHex: "#4ECDC4"})

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/categories/"+created.Data.ID, models.CategoryEditable{Name: "Restaurantes"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Restaurantes", response.Data.Name)
	suite.Assert().Equal("#4ECDC4", response.Data.ColorHex)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	created := suite.createTestCategory(models.CategoryEditable{Name: "Comida"})

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/categories/"+created.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/categories/"+created.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))

	created := suite.createTestCategory(models.CategoryEditable{Name: "Comida"})
	recorder = test.Request(suite.T(), http.MethodOptions, "/v1/categories/"+created.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH, DELETE", recorder.Header().Get("allow"))
}
