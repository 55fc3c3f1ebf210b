package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// MatchRule maps free-text category names from CSV imports to an
// existing category. Rules are applied in priority order; the Match
// field supports * globbing.
type MatchRule struct {
	DefaultModel
	MatchRuleEditable
}

// MatchRuleEditable represents all user configurable parameters of a
// MatchRule.
type MatchRuleEditable struct {
	Priority   uint   `json:"priority" example:"1" default:"0"`                                    // Rules with lower priority are evaluated first
	Match      string `json:"match" example:"Supermercado*" default:""`                            // Glob pattern matched against the description of uncategorized imports
	CategoryID string `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`           // Category imported rows are assigned to
}

func (MatchRule) Self() string {
	return "Match Rule"
}

// NewMatchRule creates a validated MatchRule.
func NewMatchRule(editable MatchRuleEditable) (MatchRule, error) {
	rule := MatchRule{MatchRuleEditable: editable}
	if err := rule.validate(); err != nil {
		return MatchRule{}, err
	}

	return rule, nil
}

func (r *MatchRule) validate() error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrMatchPatternRequired
	}

	return nil
}

// BeforeSave validates the rule so that nothing unvalidated reaches
// the database.
func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	return r.validate()
}

func (MatchRule) Export() (json.RawMessage, error) {
	var rules []MatchRule
	if err := DB.Find(&rules).Error; err != nil {
		return nil, err
	}

	return json.Marshal(rules)
}
