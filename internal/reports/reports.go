// Package reports implements the aggregation over the current data
// snapshot: monthly totals, category rankings and budget progress.
//
// Everything in this package is a pure function over a Snapshot. The
// snapshot is never mutated and identical input always yields
// identical output.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/money"
)

// FallbackCategoryName is used when a category id does not resolve.
const FallbackCategoryName = "Sin categoría"

// DefaultTopCategories is the ranking size when no limit is given.
const DefaultTopCategories = 5

// Snapshot is the in-memory state the selectors operate on.
type Snapshot struct {
	Transactions []models.Transaction
	Categories   []models.Category
	Budgets      []models.Budget
}

// Status classifies budget progress for display.
type Status string

const (
	StatusOK     Status = "ok"     // below 80 %
	StatusWarn   Status = "warn"   // 80 % to just under 100 %
	StatusDanger Status = "danger" // 100 % or more
)

// Totals are the aggregated amounts for one calendar month.
type Totals struct {
	Income   money.Amount `json:"income" example:"2500.00"`   // Sum of all positive amounts
	Expenses money.Amount `json:"expenses" example:"143.60"`  // Sum of the absolute values of all negative amounts
	Savings  money.Amount `json:"savings" example:"2356.40"`  // Income minus expenses
}

// MonthlyTotals partitions the month's transactions by sign.
// Transactions with a zero amount contribute to neither side.
func MonthlyTotals(s Snapshot, year, month int) Totals {
	income := money.Zero()
	expenses := money.Zero()

	for _, transaction := range s.Transactions {
		if !transaction.IsInMonth(year, month) {
			continue
		}

		switch {
		case transaction.IsIncome():
			income = income.Add(transaction.Amount)
		case transaction.IsExpense():
			expenses = expenses.Add(transaction.AbsoluteAmount())
		}
	}

	return Totals{
		Income:   income,
		Expenses: expenses,
		Savings:  income.Sub(expenses),
	}
}

// MonthlyBalance returns income minus expenses for the month.
func MonthlyBalance(s Snapshot, year, month int) money.Amount {
	return MonthlyTotals(s, year, month).Savings
}

// MonthlyIncome returns the summed income for the month.
func MonthlyIncome(s Snapshot, year, month int) money.Amount {
	return MonthlyTotals(s, year, month).Income
}

// MonthlyExpenses returns the summed expenses for the month.
func MonthlyExpenses(s Snapshot, year, month int) money.Amount {
	return MonthlyTotals(s, year, month).Expenses
}

// CategorySpending is one entry of the top spending ranking.
type CategorySpending struct {
	CategoryID   string       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Raw category id, kept even when it does not resolve
	CategoryName string       `json:"categoryName" example:"Comida"`                             // Display name, falls back to "Sin categoría"
	Amount       money.Amount `json:"amount" example:"131.30"`                                   // Absolute amount spent in the category
	Percentage   float64      `json:"percentage" example:"91.43"`                                // Share of all grouped expenses, rounded to 2 decimals
}

// TopSpendingCategories ranks the month's expense categories by the
// absolute amount spent. Only expenses with a category id are
// grouped; an id that does not resolve to a known category keeps the
// raw id with a placeholder name. Equal totals are ordered by name,
// then by id, so the ranking is deterministic.
func TopSpendingCategories(s Snapshot, year, month, limit int) []CategorySpending {
	if limit <= 0 {
		limit = DefaultTopCategories
	}

	totals := make(map[string]money.Amount)
	for _, transaction := range s.Transactions {
		if !transaction.IsInMonth(year, month) || !transaction.IsExpense() || transaction.CategoryID == "" {
			continue
		}

		totals[transaction.CategoryID] = totals[transaction.CategoryID].Add(transaction.AbsoluteAmount())
	}

	grandTotal := money.Zero()
	for _, amount := range totals {
		grandTotal = grandTotal.Add(amount)
	}

	names := make(map[string]string, len(s.Categories))
	for _, category := range s.Categories {
		names[category.ID] = category.Name
	}

	ranking := make([]CategorySpending, 0, len(totals))
	for id, amount := range totals {
		name, ok := names[id]
		if !ok {
			name = FallbackCategoryName
		}

		percentage := 0.0
		if !grandTotal.IsZero() {
			percentage, _ = amount.Decimal().
				Div(grandTotal.Decimal()).
				Mul(decimal.NewFromInt(100)).
				Round(2).
				Float64()
		}

		ranking = append(ranking, CategorySpending{
			CategoryID:   id,
			CategoryName: name,
			Amount:       amount,
			Percentage:   percentage,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if !ranking[i].Amount.Equal(ranking[j].Amount) {
			return ranking[i].Amount.GreaterThan(ranking[j].Amount)
		}
		if ranking[i].CategoryName != ranking[j].CategoryName {
			return ranking[i].CategoryName < ranking[j].CategoryName
		}
		return ranking[i].CategoryID < ranking[j].CategoryID
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}

	return ranking
}

// Progress is the budget progress for one budget in one month.
type Progress struct {
	BudgetID     string       `json:"budgetId" example:"65392deb-5e92-4268-b114-297faad6cdce"`   // ID of the budget
	CategoryID   string       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Category the limit applies to
	CategoryName string       `json:"categoryName" example:"Comida"`                             // Display name, falls back to "Sin categoría"
	Limit        money.Amount `json:"limit" example:"200.00"`                                    // Monthly limit
	Spent        money.Amount `json:"spent" example:"131.30"`                                    // Absolute expenses for the category in the month
	Remaining    money.Amount `json:"remaining" example:"68.70"`                                 // Limit minus spent, floored at zero
	Percentage   float64      `json:"percentage" example:"65.65"`                                // Spent share of the limit, rounded to 2 decimals
	Status       Status       `json:"status" example:"ok"`                                       // ok, warn or danger
}

// BudgetProgress resolves the spent amount for every budget in the
// snapshot. The displayed percentage is rounded to 2 decimals, the
// status thresholds use the unrounded value.
func BudgetProgress(s Snapshot, year, month int) []Progress {
	names := make(map[string]string, len(s.Categories))
	for _, category := range s.Categories {
		names[category.ID] = category.Name
	}

	progress := make([]Progress, 0, len(s.Budgets))
	for _, budget := range s.Budgets {
		name, ok := names[budget.CategoryID]
		if !ok {
			name = FallbackCategoryName
		}

		spent := TotalSpentByCategory(s, budget.CategoryID, year, month)

		remaining := budget.Remaining(spent)
		if remaining.IsNegative() {
			remaining = money.Zero()
		}

		percentage := 0.0
		displayed := 0.0
		if !budget.MonthlyLimit.Decimal().IsZero() {
			ratio := spent.Decimal().Div(budget.MonthlyLimit.Decimal()).Mul(decimal.NewFromInt(100))
			percentage, _ = ratio.Float64()
			displayed, _ = ratio.Round(2).Float64()
		}

		status := StatusOK
		switch {
		case percentage >= 100:
			status = StatusDanger
		case percentage >= 80:
			status = StatusWarn
		}

		progress = append(progress, Progress{
			BudgetID:     budget.ID,
			CategoryID:   budget.CategoryID,
			CategoryName: name,
			Limit:        budget.MonthlyLimit,
			Spent:        spent,
			Remaining:    remaining,
			Percentage:   displayed,
			Status:       status,
		})
	}

	return progress
}

// TransactionsByCategory returns all transactions referencing the
// category. When year and month are non-zero, only that month's
// transactions are returned.
func TransactionsByCategory(s Snapshot, categoryID string, year, month int) []models.Transaction {
	var transactions []models.Transaction
	for _, transaction := range s.Transactions {
		if transaction.CategoryID != categoryID {
			continue
		}
		if year != 0 && month != 0 && !transaction.IsInMonth(year, month) {
			continue
		}

		transactions = append(transactions, transaction)
	}

	return transactions
}

// TotalSpentByCategory sums the absolute expense amounts for the
// category. When year and month are non-zero, only that month's
// expenses are summed.
func TotalSpentByCategory(s Snapshot, categoryID string, year, month int) money.Amount {
	total := money.Zero()
	for _, transaction := range TransactionsByCategory(s, categoryID, year, month) {
		if transaction.IsExpense() {
			total = total.Add(transaction.AbsoluteAmount())
		}
	}

	return total
}

// BudgetByCategory returns the budget referencing the category, if any.
func BudgetByCategory(s Snapshot, categoryID string) (models.Budget, bool) {
	for _, budget := range s.Budgets {
		if budget.CategoryID == categoryID {
			return budget, true
		}
	}

	return models.Budget{}, false
}

// BudgetStatus classifies the category's spend against its budget for
// the month. Categories without a budget are always ok.
func BudgetStatus(s Snapshot, categoryID string, year, month int) Status {
	budget, ok := BudgetByCategory(s, categoryID)
	if !ok {
		return StatusOK
	}

	if budget.MonthlyLimit.Decimal().IsZero() {
		return StatusOK
	}

	spent := TotalSpentByCategory(s, categoryID, year, month)
	percentage, _ := spent.Decimal().
		Div(budget.MonthlyLimit.Decimal()).
		Mul(decimal.NewFromInt(100)).
		Float64()

	switch {
	case percentage >= 100:
		return StatusDanger
	case percentage >= 80:
		return StatusWarn
	default:
		return StatusOK
	}
}

// AvailableCategories returns all categories sorted by name.
func AvailableCategories(s Snapshot) []models.Category {
	categories := make([]models.Category, len(s.Categories))
	copy(categories, s.Categories)

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})

	return categories
}

// CategoriesWithBudget returns the categories referenced by at least
// one budget.
func CategoriesWithBudget(s Snapshot) []models.Category {
	return partitionByBudget(s, true)
}

// CategoriesWithoutBudget returns the categories no budget references.
func CategoriesWithoutBudget(s Snapshot) []models.Category {
	return partitionByBudget(s, false)
}

func partitionByBudget(s Snapshot, withBudget bool) []models.Category {
	budgeted := make(map[string]bool, len(s.Budgets))
	for _, budget := range s.Budgets {
		budgeted[budget.CategoryID] = true
	}

	var categories []models.Category
	for _, category := range s.Categories {
		if budgeted[category.ID] == withBudget {
			categories = append(categories, category)
		}
	}

	return categories
}
