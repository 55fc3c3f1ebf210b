// Package controllers implements the gin handlers for the API. Each
// resource registers its routes with a RegisterXRoutes function and
// speaks to the persistence layer through the repository package.
package controllers

import "github.com/vedor-app/backend/internal/models"

type httpError struct {
	Error string `json:"error" example:"there is no Category matching your query"`
}

// URIID is the URI parameter for routes with a resource id.
type URIID struct {
	ID string `uri:"id" binding:"required"`
}

type CategoryResponse struct {
	Data *models.Category `json:"data"` // The category
}

type CategoryListResponse struct {
	Data []models.Category `json:"data"` // List of categories
}

type BudgetResponse struct {
	Data *models.Budget `json:"data"` // The budget
}

type BudgetListResponse struct {
	Data []models.Budget `json:"data"` // List of budgets
}

type TransactionResponse struct {
	Data *models.Transaction `json:"data"` // The transaction
}

type TransactionListResponse struct {
	Data []models.Transaction `json:"data"` // List of transactions
}

type SettingsResponse struct {
	Data *models.UserSettings `json:"data"` // The user settings
}

type MatchRuleResponse struct {
	Data *models.MatchRule `json:"data"` // The match rule
}

type MatchRuleListResponse struct {
	Data []models.MatchRule `json:"data"` // List of match rules
}
