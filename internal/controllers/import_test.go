package controllers_test

import (
	"net/http"

	"github.com/vedor-app/backend/internal/controllers"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/test"
)

const testCSV = "fecha;descripcion;categoria;importe\n" +
	"01/01/2024;Nómina enero;Ingresos;2500,00\n" +
	"05/01/2024;Supermercado Dia;;-85,50\n" +
	"azul;Compra;;-12,30\n"

func (suite *TestSuiteStandard) importCSV(url, content string) controllers.ImportRunResponse {
	body, headers := test.CSVFile(suite.T(), "movimientos.csv", content)

	recorder := test.Request(suite.T(), http.MethodPost, url, body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.ImportRunResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestImport() {
	category := suite.createTestCategory(models.CategoryEditable{Name: "Ingresos"})

	response := suite.importCSV("/v1/import", testCSV)

	suite.Assert().Equal(2, response.Imported)
	suite.Assert().Zero(response.Duplicates)
	suite.Require().Len(response.Errors, 1)
	suite.Assert().Equal(4, response.Errors[0].Line)

	// The category name must have been resolved to its ID
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?category="+category.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var transactions controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	suite.Require().Len(transactions.Data, 1)
	suite.Assert().Equal("Nómina enero", transactions.Data[0].Description)
}

func (suite *TestSuiteStandard) TestImportDeduplicates() {
	first := suite.importCSV("/v1/import", testCSV)
	suite.Assert().Equal(2, first.Imported)

	second := suite.importCSV("/v1/import", testCSV)
	suite.Assert().Zero(second.Imported)
	suite.Assert().Equal(2, second.Duplicates)
}

func (suite *TestSuiteStandard) TestImportWithoutDedupe() {
	suite.importCSV("/v1/import", testCSV)

	response := suite.importCSV("/v1/import?dedupe=false", testCSV)
	suite.Assert().Equal(2, response.Imported)
	suite.Assert().Zero(response.Duplicates)
}

func (suite *TestSuiteStandard) TestImportTextBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import", testCSV, map[string]string{"Content-Type": "text/csv"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.ImportRunResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(2, response.Imported)
}

func (suite *TestSuiteStandard) TestImportMatchRules() {
	category := suite.createTestCategory(models.CategoryEditable{Name: "Supermercado"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", models.MatchRuleEditable{
		Match:      "Supermercado*",
		CategoryID: category.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	suite.importCSV("/v1/import", "fecha;descripcion;categoria;importe\n05/01/2024;Supermercado Dia;;-85,50\n")

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/transactions?category="+category.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var transactions controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	suite.Assert().Len(transactions.Data, 1)
}

func (suite *TestSuiteStandard) TestImportNoData() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportExample() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/import/example", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Contains(recorder.Body.String(), "fecha;descripcion;categoria;importe")
}
