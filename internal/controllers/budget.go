package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedor-app/backend/internal/httputil"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/repository"
)

// RegisterBudgetRoutes registers the routes for budgets with the
// RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// OptionsBudgetList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsBudgetDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Failure		404	{object}	httpError
//	@Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	if _, err := repository.NewBudgets(models.DB).Find(uri.ID); err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// GetBudgets returns all budgets
//
//	@Summary		Get budgets
//	@Description	Returns a list of budgets
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetListResponse
//	@Failure		500	{object}	httpError
//	@Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	budgets, err := repository.NewBudgets(models.DB).FindAll()
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}

// CreateBudget creates a new budget
//
//	@Summary		Create budget
//	@Description	Creates a new budget. Each category can have at most one budget.
//	@Tags			Budgets
//	@Produce		json
//	@Success		201		{object}	BudgetResponse
//	@Failure		400		{object}	httpError
//	@Failure		409		{object}	httpError
//	@Param			budget	body		models.BudgetEditable	true	"Budget"
//	@Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable models.BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	budget, err := models.NewBudget(editable)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	created, err := repository.NewBudgets(models.DB).Add(budget)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &created})
}

// GetBudget returns a single budget
//
//	@Summary		Get budget
//	@Description	Returns a specific budget
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		404	{object}	httpError
//	@Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	budget, err := repository.NewBudgets(models.DB).Find(uri.ID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// UpdateBudget updates an existing budget
//
//	@Summary		Update budget
//	@Description	Update an existing budget. Only values to be updated need to be specified.
//	@Tags			Budgets
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	BudgetResponse
//	@Failure		400		{object}	httpError
//	@Failure		404		{object}	httpError
//	@Param			budget	body		models.BudgetEditable	true	"Budget"
//	@Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	var editable models.BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	updated, err := repository.NewBudgets(models.DB).Update(uri.ID, editable)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &updated})
}

// DeleteBudget deletes a budget
//
//	@Summary		Delete budget
//	@Description	Deletes a budget
//	@Tags			Budgets
//	@Success		204
//	@Failure		404	{object}	httpError
//	@Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	if err := repository.NewBudgets(models.DB).Remove(uri.ID); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
