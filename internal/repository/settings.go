package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vedor-app/backend/internal/models"
)

// settingsRowID pins the single settings record.
const settingsRowID = 1

type settings struct {
	db *gorm.DB
}

// NewSettings returns a gorm-backed Settings repository.
func NewSettings(db *gorm.DB) Settings {
	return &settings{db: db}
}

// Get returns the stored settings or the defaults when none are
// stored yet.
func (r *settings) Get() (models.UserSettings, error) {
	var stored models.UserSettings
	err := r.db.First(&stored, "id = ?", settingsRowID).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.UserSettings{}, err
	}

	return stored, nil
}

func (r *settings) Update(editable models.UserSettingsEditable) (models.UserSettings, error) {
	current, err := r.Get()
	if err != nil {
		return models.UserSettings{}, err
	}

	updated, err := current.Update(editable)
	if err != nil {
		return models.UserSettings{}, err
	}

	updated.ID = settingsRowID
	if err := r.db.Save(&updated).Error; err != nil {
		return models.UserSettings{}, err
	}

	return updated, nil
}

// Reset deletes the stored settings, falling back to the defaults.
func (r *settings) Reset() (models.UserSettings, error) {
	err := r.db.Delete(&models.UserSettings{}, "id = ?", settingsRowID).Error
	if err != nil {
		return models.UserSettings{}, err
	}

	return models.DefaultSettings(), nil
}
