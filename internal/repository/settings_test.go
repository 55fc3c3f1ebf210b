package repository_test

import (
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/repository"
)

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	settings, err := repository.NewSettings(models.DB).Get()
	suite.Require().NoError(err)
	suite.Assert().Equal(models.ThemeDark, settings.Theme)
	suite.Assert().Equal(models.LocaleEsES, settings.Locale)
}

func (suite *TestSuiteStandard) TestSettingsUpdate() {
	repo := repository.NewSettings(models.DB)

	updated, err := repo.Update(models.UserSettingsEditable{Theme: models.ThemeLight})
	suite.Require().NoError(err)
	suite.Assert().Equal(models.ThemeLight, updated.Theme)
	suite.Assert().Equal(models.LocaleEsES, updated.Locale)

	stored, err := repo.Get()
	suite.Require().NoError(err)
	suite.Assert().Equal(models.ThemeLight, stored.Theme)
}

func (suite *TestSuiteStandard) TestSettingsUpdateInvalid() {
	_, err := repository.NewSettings(models.DB).Update(models.UserSettingsEditable{Theme: "sepia"})
	suite.Assert().ErrorIs(err, models.ErrInvalidTheme)
}

func (suite *TestSuiteStandard) TestSettingsReset() {
	repo := repository.NewSettings(models.DB)

	_, err := repo.Update(models.UserSettingsEditable{Theme: models.ThemeLight})
	suite.Require().NoError(err)

	reset, err := repo.Reset()
	suite.Require().NoError(err)
	suite.Assert().Equal(models.ThemeDark, reset.Theme)

	stored, err := repo.Get()
	suite.Require().NoError(err)
	suite.Assert().Equal(models.ThemeDark, stored.Theme)
}
