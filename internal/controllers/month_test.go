package controllers_test

import (
	"net/http"
	"time"

	"github.com/vedor-app/backend/internal/controllers"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/reports"
	"github.com/vedor-app/backend/test"
)

func (suite *TestSuiteStandard) TestMonthReport() {
	salary := suite.createTestCategory(models.CategoryEditable{Name: "Salario"})
	food := suite.createTestCategory(models.CategoryEditable{Name: "Comida"})
	health := suite.createTestCategory(models.CategoryEditable{Name: "Salud"})

	suite.createTestBudget(models.BudgetEditable{
		CategoryID:   food.Data.ID,
		MonthlyLimit: suite.mustAmount(200),
	})

	for _, editable := range []models.TransactionEditable{
		{Date: suite.testDate(2024, time.January, 1), Description: "Nómina", CategoryID: salary.Data.ID, Amount: suite.mustAmount(2500.00)},
		{Date: suite.testDate(2024, time.January, 5), Description: "Supermercado", CategoryID: food.Data.ID, Amount: suite.mustAmount(-85.50)},
		{Date: suite.testDate(2024, time.January, 12), Description: "Farmacia", CategoryID: health.Data.ID, Amount: suite.mustAmount(-12.30)},
		{Date: suite.testDate(2024, time.January, 20), Description: "Restaurante", CategoryID: food.Data.ID, Amount: suite.mustAmount(-45.80)},
	} {
		suite.createTestTransaction(editable)
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/months/2024-01", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Equal("2500.00", response.Data.Totals.Income.String())
	suite.Assert().Equal("143.60", response.Data.Totals.Expenses.String())
	suite.Assert().Equal("2356.40", response.Data.Totals.Savings.String())

	suite.Require().Len(response.Data.TopCategories, 2)
	suite.Assert().Equal("Comida", response.Data.TopCategories[0].CategoryName)
	suite.Assert().Equal("131.30", response.Data.TopCategories[0].Amount.String())
	suite.Assert().InDelta(91.43, response.Data.TopCategories[0].Percentage, 0.001)

	suite.Require().Len(response.Data.Budgets, 1)
	progress := response.Data.Budgets[0]
	suite.Assert().Equal("131.30", progress.Spent.String())
	suite.Assert().Equal("68.70", progress.Remaining.String())
	suite.Assert().InDelta(65.65, progress.Percentage, 0.001)
	suite.Assert().Equal(reports.StatusOK, progress.Status)
}

func (suite *TestSuiteStandard) TestMonthReportEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/months/2024-03", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("0.00", response.Data.Totals.Income.String())
	suite.Assert().Empty(response.Data.TopCategories)
}

func (suite *TestSuiteStandard) TestMonthReportLimit() {
	food := suite.createTestCategory(models.CategoryEditable{Name: "Comida"})
	health := suite.createTestCategory(models.CategoryEditable{Name: "Salud"})

	suite.createTestTransaction(models.TransactionEditable{
		Date: suite.testDate(2024, time.January, 5), Description: "Supermercado", CategoryID: food.Data.ID, Amount: suite.mustAmount(-85.50),
	})
	suite.createTestTransaction(models.TransactionEditable{
		Date: suite.testDate(2024, time.January, 12), Description: "Farmacia", CategoryID: health.Data.ID, Amount: suite.mustAmount(-12.30),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/months/2024-01?limit=1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data.TopCategories, 1)
	suite.Assert().Equal("Comida", response.Data.TopCategories[0].CategoryName)
}

func (suite *TestSuiteStandard) TestMonthReportInvalidMonth() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/months/enero", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
