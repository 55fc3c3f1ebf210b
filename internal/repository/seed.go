package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/types"
)

// SeedResult reports how many records a seed run created.
type SeedResult struct {
	Categories   int `json:"categories" example:"8"`
	Transactions int `json:"transactions" example:"14"`
	Budgets      int `json:"budgets" example:"6"`
}

var seedCategories = []models.CategoryEditable{
	{Name: "Alquiler", ColorHex: "#FF6B6B"},
	{Name: "Comida", ColorHex: "#4ECDC4"},
	{Name: "Transporte", ColorHex: "#45B7D1"},
	{Name: "Suscripciones", ColorHex: "#96CEB4"},
	{Name: "Ocio", ColorHex: "#FFEAA7"},
	{Name: "Supermercado", ColorHex: "#DDA0DD"},
	{Name: "Salud", ColorHex: "#98D8C8"},
	{Name: "Ingresos", ColorHex: "#6C5CE7"},
}

type seedTransaction struct {
	day         int
	description string
	category    string
	amount      float64
	merchant    string
}

var seedTransactions = []seedTransaction{
	{1, "Sueldo mensual", "Ingresos", 2500.00, ""},
	{12, "Freelance proyecto web", "Ingresos", 800.00, ""},
	{3, "Alquiler piso", "Alquiler", -800.00, ""},
	{5, "Seguro de coche", "Transporte", -120.00, ""},
	{8, "Compra semanal Mercadona", "Supermercado", -85.50, "Mercadona"},
	{20, "Cena restaurante", "Comida", -45.80, "Restaurante El Buen Sabor"},
	{25, "Compra Carrefour", "Supermercado", -62.30, "Carrefour"},
	{10, "Abono transporte mensual", "Transporte", -40.00, ""},
	{22, "Gasolina", "Transporte", -55.00, "Repsol"},
	{15, "Netflix", "Suscripciones", -15.99, "Netflix"},
	{18, "Spotify Premium", "Suscripciones", -9.99, "Spotify"},
	{20, "Cine", "Ocio", -12.50, "Cinesa"},
	{27, "Libros Amazon", "Ocio", -28.90, "Amazon"},
	{28, "Farmacia", "Salud", -35.60, "Farmacia Central"},
}

var seedBudgets = []struct {
	category string
	limit    float64
}{
	{"Alquiler", 800.00},
	{"Comida", 300.00},
	{"Transporte", 150.00},
	{"Suscripciones", 50.00},
	{"Ocio", 200.00},
	{"Supermercado", 400.00},
}

// SeedIfEmpty fills an empty database with demo data for the current
// month: default categories with colors, a set of transactions and
// budgets for the common categories. A database that already has
// categories is left untouched.
func SeedIfEmpty(db *gorm.DB) (SeedResult, error) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return SeedResult{}, err
	}
	if count > 0 {
		return SeedResult{}, nil
	}

	var result SeedResult
	err := db.Transaction(func(tx *gorm.DB) error {
		ids := make(map[string]string, len(seedCategories))
		for _, editable := range seedCategories {
			category, err := models.NewCategory(editable)
			if err != nil {
				return err
			}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}

			ids[category.Name] = category.ID
			result.Categories++
		}

		now := time.Now().UTC()
		lastDay := types.DateOf(now).EndOfMonth()

		for _, seed := range seedTransactions {
			day := seed.day
			if day > lastDay.Day() {
				day = lastDay.Day()
			}

			date, err := types.NewDate(now.Year(), now.Month(), day)
			if err != nil {
				return err
			}

			transaction, err := models.NewTransaction(models.TransactionEditable{
				Date:        date,
				Description: seed.description,
				CategoryID:  ids[seed.category],
				Amount:      moneyFromFloat(seed.amount),
				Merchant:    seed.merchant,
			})
			if err != nil {
				return err
			}
			if err := tx.Create(&transaction).Error; err != nil {
				return err
			}

			result.Transactions++
		}

		for _, seed := range seedBudgets {
			budget, err := models.NewBudget(models.BudgetEditable{
				CategoryID:   ids[seed.category],
				MonthlyLimit: moneyFromFloat(seed.limit),
			})
			if err != nil {
				return err
			}
			if err := tx.Create(&budget).Error; err != nil {
				return err
			}

			result.Budgets++
		}

		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	return result, nil
}
