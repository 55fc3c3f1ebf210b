package controllers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vedor-app/backend/internal/controllers"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/test"
)

// TestExport verifies that the export works correctly
//
// Thorough checks are only executed for the non-data fields since
// the data fields are populated by the Export() methods of the models
func (suite *TestSuiteStandard) TestExport() {
	category := suite.createTestCategory(models.CategoryEditable{Name: "Comida"})
	budget := suite.createTestBudget(models.BudgetEditable{
		CategoryID:   category.Data.ID,
		MonthlyLimit: suite.mustAmount(300),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/export", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("0.0.0", response.Version)

	difference := time.Since(response.CreationTime).Seconds()
	suite.Assert().Less(difference, float64(10))

	// Basic tests for the data fields. Full testing is done in the
	// respective Export() methods of the models
	suite.Assert().Len(response.Data, len(models.Registry), "Number of entities in export does not match registry")

	var categories []models.Category
	suite.Require().NoError(json.Unmarshal(response.Data["Category"], &categories))
	suite.Require().Len(categories, 1)
	suite.Assert().Equal(category.Data.ID, categories[0].ID)

	var budgets []models.Budget
	suite.Require().NoError(json.Unmarshal(response.Data["Budget"], &budgets))
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal(budget.Data.ID, budgets[0].ID)
}

func (suite *TestSuiteStandard) TestExportOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/export", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}
