package controllers_test

import (
	"net/http"

	"github.com/vedor-app/backend/internal/controllers"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/test"
)

func (suite *TestSuiteStandard) createTestMatchRule(editable models.MatchRuleEditable) controllers.MatchRuleResponse {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", editable)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.MatchRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestMatchRulesEmptyList() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/match-rules", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{ "data": [] }`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestMatchRuleCreate() {
	category := suite.createTestCategory(models.CategoryEditable{Name: "Supermercado"})
	response := suite.createTestMatchRule(models.MatchRuleEditable{
		Priority:   1,
		Match:      "Mercadona*",
		CategoryID: category.Data.ID,
	})

	suite.Assert().Equal("Mercadona*", response.Data.Match)
	suite.Assert().Equal(category.Data.ID, response.Data.CategoryID)
}

func (suite *TestSuiteStandard) TestMatchRuleCreateInvalid() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", models.MatchRuleEditable{Match: "   "})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMatchRulesOrdered() {
	category := suite.createTestCategory(models.CategoryEditable{Name: "Supermercado"})

	suite.createTestMatchRule(models.MatchRuleEditable{Priority: 2, Match: "Amazon*", CategoryID: category.Data.ID})
	suite.createTestMatchRule(models.MatchRuleEditable{Priority: 1, Match: "Mercadona*", CategoryID: category.Data.ID})
	suite.createTestMatchRule(models.MatchRuleEditable{Priority: 1, Match: "Carrefour*", CategoryID: category.Data.ID})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/match-rules", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("Carrefour*", response.Data[0].Match)
	suite.Assert().Equal("Mercadona*", response.Data[1].Match)
	suite.Assert().Equal("Amazon*", response.Data[2].Match)
}

func (suite *TestSuiteStandard) TestMatchRuleOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/match-rules", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, "/v1/match-rules/some-id", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMatchRuleDelete() {
	category := suite.createTestCategory(models.CategoryEditable{Name: "Supermercado"})
	rule := suite.createTestMatchRule(models.MatchRuleEditable{Priority: 1, Match: "Mercadona*", CategoryID: category.Data.ID})

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/match-rules/"+rule.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodDelete, "/v1/match-rules/"+rule.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
