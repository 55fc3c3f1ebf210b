package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Category errors
var (
	ErrCategoryNameRequired  = errors.New("the category name must not be empty")
	ErrCategoryNameTooLong   = errors.New("the category name must not be longer than 50 characters")
	ErrCategoryColorInvalid  = errors.New("the category color must be a hex value in #RRGGBB format")
	ErrCategorySlugNotUnique = errors.New("a category with this slug already exists")
)

// Transaction errors
var (
	ErrTransactionDateRequired = errors.New("the transaction date must be set")
	ErrDescriptionRequired     = errors.New("the transaction description must not be empty")
	ErrDescriptionTooLong      = errors.New("the transaction description must not be longer than 255 characters")
	ErrTransactionDuplicate    = errors.New("a transaction with the same content already exists")
)

// Budget errors
var (
	ErrBudgetCategoryRequired = errors.New("the budget must reference a category")
	ErrBudgetExists           = errors.New("a budget already exists for this category")
)

// Settings errors
var (
	ErrInvalidTheme  = errors.New("the theme must be either 'dark' or 'light'")
	ErrInvalidLocale = errors.New("the only supported locale is 'es-ES'")
)

// Match rule errors
var (
	ErrMatchPatternRequired = errors.New("the match rule pattern must not be empty")
)
