// Package models implements the domain entities and their persistence.
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all entities.
//
// IDs are opaque non-empty strings. When no ID is supplied, a random
// one is generated before the entity is first saved.
type DefaultModel struct {
	ID        string    `json:"id" gorm:"primaryKey" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the resource
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T19:28:44.491514Z"`                     // Time the resource was created
}

// BeforeCreate generates an ID for the resource if it has none.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	return nil
}

// Model is the interface all entities implement.
type Model interface {
	Self() string                     // The name of the entity
	Export() (json.RawMessage, error) // All instances of this entity for export
}

// The "Registry" is a slice of all models available.
//
// It is maintained so that operations that affect all models do not
// need to explicitly iterate over every single model.
var Registry = []Model{
	Budget{},
	Category{},
	MatchRule{},
	Transaction{},
	UserSettings{},
}
