package repository_test

import (
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/repository"
)

func (suite *TestSuiteStandard) TestSeedIfEmpty() {
	result, err := repository.SeedIfEmpty(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Equal(8, result.Categories)
	suite.Assert().Equal(14, result.Transactions)
	suite.Assert().Equal(6, result.Budgets)

	categories, err := repository.NewCategories(models.DB).FindAll()
	suite.Require().NoError(err)
	suite.Assert().Len(categories, 8)

	// A second run must not touch the seeded data.
	result, err = repository.SeedIfEmpty(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Zero(result.Categories)
	suite.Assert().Zero(result.Transactions)
	suite.Assert().Zero(result.Budgets)
}
