package repository_test

import (
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/repository"
)

func (suite *TestSuiteStandard) TestMatchRulesOrder() {
	repo := repository.NewMatchRules(models.DB)

	for _, rule := range []models.MatchRuleEditable{
		{Priority: 2, Match: "Amazon*"},
		{Priority: 1, Match: "Mercadona*"},
		{Priority: 1, Match: "Carrefour*"},
	} {
		created, err := models.NewMatchRule(rule)
		suite.Require().NoError(err)

		_, err = repo.Add(created)
		suite.Require().NoError(err)
	}

	all, err := repo.FindAll()
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Assert().Equal("Carrefour*", all[0].Match)
	suite.Assert().Equal("Mercadona*", all[1].Match)
	suite.Assert().Equal("Amazon*", all[2].Match)
}

func (suite *TestSuiteStandard) TestMatchRulesRemove() {
	repo := repository.NewMatchRules(models.DB)

	rule, err := models.NewMatchRule(models.MatchRuleEditable{Match: "Netflix*"})
	suite.Require().NoError(err)

	created, err := repo.Add(rule)
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Remove(created.ID))
	suite.Assert().ErrorIs(repo.Remove(created.ID), models.ErrResourceNotFound)
}
