package repository

import (
	"gorm.io/gorm"

	"github.com/vedor-app/backend/internal/models"
)

type matchRules struct {
	db *gorm.DB
}

// NewMatchRules returns a gorm-backed MatchRules repository.
func NewMatchRules(db *gorm.DB) MatchRules {
	return &matchRules{db: db}
}

// FindAll returns all rules ordered for evaluation: lowest priority
// value first, ties broken by the match string.
func (r *matchRules) FindAll() ([]models.MatchRule, error) {
	var all []models.MatchRule
	err := r.db.Order("priority ASC, match ASC").Find(&all).Error

	return all, err
}

func (r *matchRules) Add(rule models.MatchRule) (models.MatchRule, error) {
	err := r.db.Create(&rule).Error
	return rule, err
}

func (r *matchRules) Remove(id string) error {
	var rule models.MatchRule
	if err := r.db.First(&rule, "id = ?", id).Error; err != nil {
		return err
	}

	return r.db.Delete(&rule).Error
}
