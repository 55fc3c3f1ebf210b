package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Theme is the UI theme preference.
type Theme string

// Locale is the display locale. Only es-ES is supported.
type Locale string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	LocaleEsES Locale = "es-ES"
)

// UserSettings are the per-user preferences. There is a single row.
type UserSettings struct {
	ID uint `json:"-" gorm:"primaryKey"`
	UserSettingsEditable
}

// UserSettingsEditable represents all user configurable settings.
type UserSettingsEditable struct {
	Theme  Theme  `json:"theme" example:"dark" default:"dark"`    // UI theme
	Locale Locale `json:"locale" example:"es-ES" default:"es-ES"` // Display locale
}

func (UserSettings) Self() string {
	return "User Settings"
}

// DefaultSettings returns the settings used until the user changes
// them: dark theme, es-ES locale.
func DefaultSettings() UserSettings {
	return UserSettings{
		UserSettingsEditable: UserSettingsEditable{
			Theme:  ThemeDark,
			Locale: LocaleEsES,
		},
	}
}

// NewUserSettings creates validated settings. Empty fields fall back
// to the defaults.
func NewUserSettings(editable UserSettingsEditable) (UserSettings, error) {
	settings := UserSettings{UserSettingsEditable: editable}
	if err := settings.validate(); err != nil {
		return UserSettings{}, err
	}

	return settings, nil
}

// Update returns new settings. Zero values in the editable keep the
// current value.
func (s UserSettings) Update(editable UserSettingsEditable) (UserSettings, error) {
	if editable.Theme == "" {
		editable.Theme = s.Theme
	}
	if editable.Locale == "" {
		editable.Locale = s.Locale
	}

	updated := UserSettings{ID: s.ID, UserSettingsEditable: editable}
	if err := updated.validate(); err != nil {
		return UserSettings{}, err
	}

	return updated, nil
}

func (s *UserSettings) validate() error {
	if s.Theme == "" {
		s.Theme = ThemeDark
	}
	if s.Locale == "" {
		s.Locale = LocaleEsES
	}

	if s.Theme != ThemeDark && s.Theme != ThemeLight {
		return ErrInvalidTheme
	}
	if s.Locale != LocaleEsES {
		return ErrInvalidLocale
	}

	return nil
}

// BeforeSave validates the settings so that nothing unvalidated
// reaches the database.
func (s *UserSettings) BeforeSave(_ *gorm.DB) error {
	return s.validate()
}

func (s UserSettings) IsDarkTheme() bool {
	return s.Theme == ThemeDark
}

func (s UserSettings) IsLightTheme() bool {
	return s.Theme == ThemeLight
}

func (UserSettings) Export() (json.RawMessage, error) {
	var settings []UserSettings
	if err := DB.Find(&settings).Error; err != nil {
		return nil, err
	}

	return json.Marshal(settings)
}
