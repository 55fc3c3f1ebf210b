package models

import (
	"encoding/json"
	"strings"

	"github.com/vedor-app/backend/internal/money"
	"gorm.io/gorm"
)

// Budget is a monthly spending limit for a single category.
//
// A budget holds no spent total of its own. The spent amount is
// computed from transactions by the reports package and passed in.
type Budget struct {
	DefaultModel
	BudgetEditable
}

// BudgetEditable represents all user configurable parameters of a Budget.
type BudgetEditable struct {
	CategoryID   string       `json:"categoryId" gorm:"uniqueIndex" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the limit applies to
	MonthlyLimit money.Amount `json:"monthlyLimit" example:"200.00"`                                                // Spending limit per calendar month
}

// UsageStatus classifies how much of a budget has been used.
type UsageStatus string

const (
	UsageUnder    UsageStatus = "under"    // below 80 %
	UsageNear     UsageStatus = "near"     // 80 % to just under 100 %
	UsageExceeded UsageStatus = "exceeded" // 100 % or more
)

func (Budget) Self() string {
	return "Budget"
}

// NewBudget creates a validated Budget.
func NewBudget(editable BudgetEditable) (Budget, error) {
	budget := Budget{BudgetEditable: editable}
	if err := budget.validate(); err != nil {
		return Budget{}, err
	}

	return budget, nil
}

// Update returns a new Budget with the same ID and creation time.
// Zero values in the editable keep the current value.
func (b Budget) Update(editable BudgetEditable) (Budget, error) {
	if editable.CategoryID == "" {
		editable.CategoryID = b.CategoryID
	}
	if editable.MonthlyLimit.Decimal().IsZero() {
		editable.MonthlyLimit = b.MonthlyLimit
	}

	updated := Budget{DefaultModel: b.DefaultModel, BudgetEditable: editable}
	if err := updated.validate(); err != nil {
		return Budget{}, err
	}

	return updated, nil
}

func (b *Budget) validate() error {
	b.CategoryID = strings.TrimSpace(b.CategoryID)
	if b.CategoryID == "" {
		return ErrBudgetCategoryRequired
	}

	return nil
}

// BeforeSave validates the budget so that nothing unvalidated reaches
// the database.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	return b.validate()
}

// Exceeded reports whether the spent amount is over the limit.
func (b Budget) Exceeded(spent money.Amount) bool {
	return spent.GreaterThan(b.MonthlyLimit)
}

// Remaining returns the limit minus the spent amount. The result is
// negative when the budget is exceeded.
func (b Budget) Remaining(spent money.Amount) money.Amount {
	return b.MonthlyLimit.Sub(spent)
}

// UsagePercentage returns how much of the limit has been spent, as a
// percentage capped at 100 for display. A limit of zero yields 0.
func (b Budget) UsagePercentage(spent money.Amount) float64 {
	percentage := b.usage(spent)
	if percentage > 100 {
		return 100
	}

	return percentage
}

// UsageStatus classifies the spend-vs-limit ratio: under below 80 %,
// near from 80 %, exceeded from 100 %.
func (b Budget) UsageStatus(spent money.Amount) UsageStatus {
	percentage := b.usage(spent)
	switch {
	case percentage >= 100:
		return UsageExceeded
	case percentage >= 80:
		return UsageNear
	default:
		return UsageUnder
	}
}

// usage returns the uncapped spent/limit ratio in percent.
func (b Budget) usage(spent money.Amount) float64 {
	if b.MonthlyLimit.Decimal().IsZero() {
		return 0
	}

	ratio, _ := spent.Decimal().Div(b.MonthlyLimit.Decimal()).Float64()
	return ratio * 100
}

func (Budget) Export() (json.RawMessage, error) {
	var budgets []Budget
	if err := DB.Find(&budgets).Error; err != nil {
		return nil, err
	}

	return json.Marshal(budgets)
}
