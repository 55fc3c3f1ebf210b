package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedor-app/backend/internal/httputil"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/repository"
	"github.com/vedor-app/backend/internal/types"
)

// TransactionQueryFilter are the supported query filters for the
// transaction list endpoint.
type TransactionQueryFilter struct {
	Month    string `form:"month"`    // Filter by month, format 2024-01
	Category string `form:"category"` // Filter by category ID
	Account  string `form:"account"`  // Filter by account ID
}

// RegisterTransactionRoutes registers the routes for transactions
// with the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// OptionsTransactionList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsTransactionDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Failure		404	{object}	httpError
//	@Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	if _, err := repository.NewTransactions(models.DB).Find(uri.ID); err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// GetTransactions returns transactions, optionally filtered
//
//	@Summary		Get transactions
//	@Description	Returns a list of transactions, newest first
//	@Tags			Transactions
//	@Produce		json
//	@Success		200			{object}	TransactionListResponse
//	@Failure		400			{object}	httpError
//	@Failure		500			{object}	httpError
//	@Param			month		query		string	false	"Filter by month, format 2024-01"
//	@Param			category	query		string	false	"Filter by category ID"
//	@Param			account		query		string	false	"Filter by account ID"
//	@Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	_ = c.Bind(&filter)

	repo := repository.NewTransactions(models.DB)

	var transactions []models.Transaction
	var err error

	switch {
	case filter.Month != "":
		var month types.Month
		month, err = types.ParseMonth(filter.Month)
		if err != nil {
			httputil.Error(c, err)
			return
		}

		transactions, err = repo.FindByMonth(month.Year(), month.MonthNumber())
	case filter.Category != "":
		transactions, err = repo.FindByCategory(filter.Category)
	case filter.Account != "":
		transactions, err = repo.FindByAccount(filter.Account)
	default:
		transactions, err = repo.FindAll()
	}
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// CreateTransaction creates a new transaction
//
//	@Summary		Create transaction
//	@Description	Creates a new transaction. A positive amount is income, a negative amount an expense.
//	@Tags			Transactions
//	@Produce		json
//	@Success		201			{object}	TransactionResponse
//	@Failure		400			{object}	httpError
//	@Param			transaction	body		models.TransactionEditable	true	"Transaction"
//	@Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable models.TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	transaction, err := models.NewTransaction(editable)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	created, err := repository.NewTransactions(models.DB).Add(transaction)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &created})
}

// GetTransaction returns a single transaction
//
//	@Summary		Get transaction
//	@Description	Returns a specific transaction
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	TransactionResponse
//	@Failure		404	{object}	httpError
//	@Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	transaction, err := repository.NewTransactions(models.DB).Find(uri.ID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// UpdateTransaction updates an existing transaction
//
//	@Summary		Update transaction
//	@Description	Update an existing transaction. Only values to be updated need to be specified.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	TransactionResponse
//	@Failure		400			{object}	httpError
//	@Failure		404			{object}	httpError
//	@Param			transaction	body		models.TransactionUpdate	true	"Transaction"
//	@Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	var update models.TransactionUpdate
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	updated, err := repository.NewTransactions(models.DB).Update(uri.ID, update)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &updated})
}

// DeleteTransaction deletes a transaction
//
//	@Summary		Delete transaction
//	@Description	Deletes a transaction
//	@Tags			Transactions
//	@Success		204
//	@Failure		404	{object}	httpError
//	@Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	if err := repository.NewTransactions(models.DB).Remove(uri.ID); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
