package repository_test

import (
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/money"
	"github.com/vedor-app/backend/internal/repository"
)

func (suite *TestSuiteStandard) mustAmount(value float64) money.Amount {
	amount, err := money.New(value)
	if err != nil {
		suite.Assert().FailNowf("Invalid amount", "%v", err)
	}

	return amount
}

func (suite *TestSuiteStandard) createCategory(name, color string) models.Category {
	category, err := models.NewCategory(models.CategoryEditable{Name: name, ColorHex: color})
	suite.Require().NoError(err)

	created, err := repository.NewCategories(models.DB).Add(category)
	suite.Require().NoError(err)

	return created
}

func (suite *TestSuiteStandard) TestCategoriesAddFind() {
	repo := repository.NewCategories(models.DB)

	created := suite.createCategory("Comida", "#4ECDC4")
	suite.Assert().NotEmpty(created.ID)
	suite.Assert().Equal("comida", created.Slug)

	found, err := repo.Find(created.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal(created.Name, found.Name)

	bySlug, err := repo.FindBySlug("comida")
	suite.Require().NoError(err)
	suite.Assert().Equal(created.ID, bySlug.ID)
}

func (suite *TestSuiteStandard) TestCategoriesFindNotFound() {
	_, err := repository.NewCategories(models.DB).Find("missing")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesFindAllSorted() {
	suite.createCategory("Transporte", "#45B7D1")
	suite.createCategory("Alquiler", "#FF6B6B")

	all, err := repository.NewCategories(models.DB).FindAll()
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Assert().Equal("Alquiler", all[0].Name)
	suite.Assert().Equal("Transporte", all[1].Name)
}

func (suite *TestSuiteStandard) TestCategoriesSlugUnique() {
	suite.createCategory("Comida", "#4ECDC4")

	duplicate, err := models.NewCategory(models.CategoryEditable{Name: "comida"})
	suite.Require().NoError(err)

	_, err = repository.NewCategories(models.DB).Add(duplicate)
	suite.Assert().ErrorIs(err, models.ErrCategorySlugNotUnique)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	repo := repository.NewCategories(models.DB)
	created := suite.createCategory("Comida", "#4ECDC4")

	updated, err := repo.Update(created.ID, models.CategoryEditable{Name: "Restaurantes"})
	suite.Require().NoError(err)
	suite.Assert().Equal("Restaurantes", updated.Name)
	suite.Assert().Equal("restaurantes", updated.Slug)
	suite.Assert().Equal("#4ECDC4", updated.ColorHex)

	found, err := repo.Find(created.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal("Restaurantes", found.Name)
}

func (suite *TestSuiteStandard) TestCategoriesRemove() {
	repo := repository.NewCategories(models.DB)
	created := suite.createCategory("Comida", "#4ECDC4")

	suite.Require().NoError(repo.Remove(created.ID))

	_, err := repo.Find(created.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	suite.Assert().ErrorIs(repo.Remove("missing"), models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesExists() {
	repo := repository.NewCategories(models.DB)
	created := suite.createCategory("Comida", "#4ECDC4")

	exists, err := repo.Exists(created.ID)
	suite.Require().NoError(err)
	suite.Assert().True(exists)

	exists, err = repo.Exists("missing")
	suite.Require().NoError(err)
	suite.Assert().False(exists)

	exists, err = repo.ExistsBySlug("comida")
	suite.Require().NoError(err)
	suite.Assert().True(exists)

	exists, err = repo.ExistsBySlug("ocio")
	suite.Require().NoError(err)
	suite.Assert().False(exists)
}
