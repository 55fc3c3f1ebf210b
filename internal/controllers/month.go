package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vedor-app/backend/internal/httputil"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/reports"
	"github.com/vedor-app/backend/internal/repository"
	"github.com/vedor-app/backend/internal/types"
)

// URIMonth is the URI parameter for routes with a month.
type URIMonth struct {
	Month string `uri:"month" binding:"required"` // Month in the format 2024-01
}

// MonthReport is the aggregated report for one month.
type MonthReport struct {
	Month         types.Month                `json:"month" example:"2024-01"` // The month the report is for
	Totals        reports.Totals             `json:"totals"`                  // Income, expenses and savings
	TopCategories []reports.CategorySpending `json:"topCategories"`           // Expense ranking by category
	Budgets       []reports.Progress         `json:"budgets"`                 // Budget progress for the month
}

type MonthResponse struct {
	Data *MonthReport `json:"data"` // The month report
}

// RegisterMonthRoutes registers the routes for month reports with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsMonth)
	r.GET("/:month", GetMonth)
}

// OptionsMonth returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Months
//	@Success		204
//	@Router			/v1/months/{month} [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetMonth returns the aggregated report for a month
//
//	@Summary		Get month report
//	@Description	Returns the totals, top spending categories and budget progress for a month
//	@Tags			Months
//	@Produce		json
//	@Success		200		{object}	MonthResponse
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			month	path		string	true	"Month in the format 2024-01"
//	@Param			limit	query		int		false	"Size of the top category ranking. Defaults to 5."
//	@Router			/v1/months/{month} [get]
func GetMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	month, err := types.ParseMonth(uri.Month)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	limit := reports.DefaultTopCategories
	if raw, ok := c.GetQuery("limit"); ok {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			httputil.Error(c, err)
			return
		}
	}

	snapshot, err := monthSnapshot(month)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	year, monthNumber := month.Year(), month.MonthNumber()

	c.JSON(http.StatusOK, MonthResponse{
		Data: &MonthReport{
			Month:         month,
			Totals:        reports.MonthlyTotals(snapshot, year, monthNumber),
			TopCategories: reports.TopSpendingCategories(snapshot, year, monthNumber, limit),
			Budgets:       reports.BudgetProgress(snapshot, year, monthNumber),
		},
	})
}

// monthSnapshot materializes the reporting snapshot for a month from
// the repositories.
func monthSnapshot(month types.Month) (reports.Snapshot, error) {
	transactions, err := repository.NewTransactions(models.DB).FindByMonth(month.Year(), month.MonthNumber())
	if err != nil {
		return reports.Snapshot{}, err
	}

	categories, err := repository.NewCategories(models.DB).FindAll()
	if err != nil {
		return reports.Snapshot{}, err
	}

	budgets, err := repository.NewBudgets(models.DB).FindAll()
	if err != nil {
		return reports.Snapshot{}, err
	}

	return reports.Snapshot{
		Transactions: transactions,
		Categories:   categories,
		Budgets:      budgets,
	}, nil
}
