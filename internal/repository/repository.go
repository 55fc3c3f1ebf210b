// Package repository provides the persistence ports for the
// application and their gorm-backed implementations.
package repository

import (
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/money"
	"github.com/vedor-app/backend/internal/types"
)

// Categories persists spending categories.
type Categories interface {
	Find(id string) (models.Category, error)
	FindBySlug(slug string) (models.Category, error)
	FindAll() ([]models.Category, error)
	Add(models.Category) (models.Category, error)
	Update(id string, editable models.CategoryEditable) (models.Category, error)
	Remove(id string) error
	Exists(id string) (bool, error)
	ExistsBySlug(slug string) (bool, error)
}

// Budgets persists monthly category limits.
type Budgets interface {
	Find(id string) (models.Budget, error)
	FindByCategory(categoryID string) (models.Budget, error)
	FindAll() ([]models.Budget, error)
	Add(models.Budget) (models.Budget, error)
	Update(id string, editable models.BudgetEditable) (models.Budget, error)
	Remove(id string) error
	ExistsByCategory(categoryID string) (bool, error)
}

// ImportResult summarizes a batch import.
type ImportResult struct {
	Imported   int `json:"imported" example:"10"`   // Transactions stored
	Duplicates int `json:"duplicates" example:"2"` // Transactions skipped because they were already stored
}

// Transactions persists monetary movements.
type Transactions interface {
	Find(id string) (models.Transaction, error)
	FindAll() ([]models.Transaction, error)
	FindByMonth(year, month int) ([]models.Transaction, error)
	FindByDateRange(from, to types.Date) ([]models.Transaction, error)
	FindByCategory(categoryID string) ([]models.Transaction, error)
	FindByAccount(accountID string) ([]models.Transaction, error)
	Add(models.Transaction) (models.Transaction, error)
	Update(id string, update models.TransactionUpdate) (models.Transaction, error)
	Remove(id string) error
	ImportMany(transactions []models.Transaction, dedupe bool) (ImportResult, error)
}

// Settings persists the single user settings record.
type Settings interface {
	Get() (models.UserSettings, error)
	Update(editable models.UserSettingsEditable) (models.UserSettings, error)
	Reset() (models.UserSettings, error)
}

// MatchRules persists the import category match rules.
type MatchRules interface {
	FindAll() ([]models.MatchRule, error)
	Add(models.MatchRule) (models.MatchRule, error)
	Remove(id string) error
}

// moneyFromFloat is a seed helper, the values are known to be valid.
func moneyFromFloat(value float64) money.Amount {
	amount, _ := money.New(value)
	return amount
}
