package repository_test

import (
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/repository"
)

func (suite *TestSuiteStandard) createBudget(categoryID string, limit float64) models.Budget {
	budget, err := models.NewBudget(models.BudgetEditable{
		CategoryID:   categoryID,
		MonthlyLimit: suite.mustAmount(limit),
	})
	suite.Require().NoError(err)

	created, err := repository.NewBudgets(models.DB).Add(budget)
	suite.Require().NoError(err)

	return created
}

func (suite *TestSuiteStandard) TestBudgetsAddFind() {
	repo := repository.NewBudgets(models.DB)
	category := suite.createCategory("Comida", "#4ECDC4")
	created := suite.createBudget(category.ID, 300)

	found, err := repo.Find(created.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal("300.00", found.MonthlyLimit.String())

	byCategory, err := repo.FindByCategory(category.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal(created.ID, byCategory.ID)

	_, err = repo.FindByCategory("missing")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsOnePerCategory() {
	category := suite.createCategory("Comida", "#4ECDC4")
	suite.createBudget(category.ID, 300)

	duplicate, err := models.NewBudget(models.BudgetEditable{
		CategoryID:   category.ID,
		MonthlyLimit: suite.mustAmount(100),
	})
	suite.Require().NoError(err)

	_, err = repository.NewBudgets(models.DB).Add(duplicate)
	suite.Assert().ErrorIs(err, models.ErrBudgetExists)
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	repo := repository.NewBudgets(models.DB)
	category := suite.createCategory("Comida", "#4ECDC4")
	created := suite.createBudget(category.ID, 300)

	updated, err := repo.Update(created.ID, models.BudgetEditable{
		MonthlyLimit: suite.mustAmount(450),
	})
	suite.Require().NoError(err)
	suite.Assert().Equal("450.00", updated.MonthlyLimit.String())
	suite.Assert().Equal(category.ID, updated.CategoryID)
}

func (suite *TestSuiteStandard) TestBudgetsRemove() {
	repo := repository.NewBudgets(models.DB)
	category := suite.createCategory("Comida", "#4ECDC4")
	created := suite.createBudget(category.ID, 300)

	suite.Require().NoError(repo.Remove(created.ID))

	_, err := repo.Find(created.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	exists, err := repo.ExistsByCategory(category.ID)
	suite.Require().NoError(err)
	suite.Assert().False(exists)
}

func (suite *TestSuiteStandard) TestBudgetsExistsByCategory() {
	repo := repository.NewBudgets(models.DB)
	category := suite.createCategory("Comida", "#4ECDC4")
	suite.createBudget(category.ID, 300)

	exists, err := repo.ExistsByCategory(category.ID)
	suite.Require().NoError(err)
	suite.Assert().True(exists)
}
