package models

import (
	"encoding/json"
	"strings"

	"github.com/vedor-app/backend/internal/money"
	"github.com/vedor-app/backend/internal/types"
	"gorm.io/gorm"
)

// DescriptionMaxLength is the longest allowed transaction description.
const DescriptionMaxLength = 255

// Transaction is a single monetary movement. The sign of the amount
// encodes the direction: positive for income, negative for expenses.
type Transaction struct {
	DefaultModel
	TransactionEditable

	// The SHA256 hash of a unique combination of values to use in
	// duplicate detection when importing transactions
	ImportHash string `json:"-" gorm:"index"`
}

// TransactionEditable represents all user configurable parameters of
// a Transaction.
type TransactionEditable struct {
	AccountID   string       `json:"accountId,omitempty" example:"main" default:""`                          // Optional account reference
	Date        types.Date   `json:"date" example:"2024-01-15T00:00:00Z"`                                    // Day the transaction took place
	Description string       `json:"description" example:"Compra en supermercado" default:""`                // What the transaction was for
	CategoryID  string       `json:"categoryId,omitempty" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // Optional category reference, resolved by lookup
	Amount      money.Amount `json:"amount" example:"-45.50"`                                                // Amount, sign encodes income (+) or expense (-)
	Merchant    string       `json:"merchant,omitempty" example:"Mercadona" default:""`                      // Optional merchant name
}

func (Transaction) Self() string {
	return "Transaction"
}

// NewTransaction creates a validated Transaction.
func NewTransaction(editable TransactionEditable) (Transaction, error) {
	transaction := Transaction{TransactionEditable: editable}
	if err := transaction.validate(); err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// TransactionUpdate is a partial update of a Transaction. Nil fields
// keep the current value, set fields replace it, explicit zero values
// included: an amount can be set to 0 and the category and account
// references can be cleared with an empty string.
type TransactionUpdate struct {
	AccountID   *string       `json:"accountId" example:"main"`                                  // Account reference, empty string clears it
	Date        *types.Date   `json:"date" example:"2024-01-15T00:00:00Z"`                       // Day the transaction took place
	Description *string       `json:"description" example:"Compra en supermercado"`              // What the transaction was for
	CategoryID  *string       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Category reference, empty string clears it
	Amount      *money.Amount `json:"amount" example:"-45.50"`                                   // Amount, sign encodes income (+) or expense (-)
	Merchant    *string       `json:"merchant" example:"Mercadona"`                              // Merchant name, empty string clears it
}

// Update returns a new Transaction with the same ID, creation time and
// import hash.
func (t Transaction) Update(update TransactionUpdate) (Transaction, error) {
	editable := t.TransactionEditable
	if update.AccountID != nil {
		editable.AccountID = *update.AccountID
	}
	if update.Date != nil {
		editable.Date = *update.Date
	}
	if update.Description != nil {
		editable.Description = *update.Description
	}
	if update.CategoryID != nil {
		editable.CategoryID = *update.CategoryID
	}
	if update.Amount != nil {
		editable.Amount = *update.Amount
	}
	if update.Merchant != nil {
		editable.Merchant = *update.Merchant
	}

	updated := Transaction{DefaultModel: t.DefaultModel, TransactionEditable: editable, ImportHash: t.ImportHash}
	if err := updated.validate(); err != nil {
		return Transaction{}, err
	}

	return updated, nil
}

func (t *Transaction) validate() error {
	if t.Date.IsZero() {
		return ErrTransactionDateRequired
	}

	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		return ErrDescriptionRequired
	}
	if len([]rune(t.Description)) > DescriptionMaxLength {
		return ErrDescriptionTooLong
	}

	t.Merchant = strings.TrimSpace(t.Merchant)
	t.ImportHash = strings.TrimSpace(t.ImportHash)

	return nil
}

// BeforeSave validates the transaction so that nothing unvalidated
// reaches the database.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	return t.validate()
}

// IsIncome reports whether the transaction is an income. A zero
// amount is neither income nor expense.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// AbsoluteAmount returns the amount with the sign stripped.
func (t Transaction) AbsoluteAmount() money.Amount {
	return t.Amount.Abs()
}

// IsInMonth reports whether the transaction date falls in the given
// calendar month. month is 1-based.
func (t Transaction) IsInMonth(year, month int) bool {
	return t.Date.InMonth(year, month)
}

// IsInDateRange reports whether the transaction date is within
// [from, to], inclusive.
func (t Transaction) IsInDateRange(from, to types.Date) bool {
	return t.Date.InRange(from, to)
}

func (Transaction) Export() (json.RawMessage, error) {
	var transactions []Transaction
	if err := DB.Find(&transactions).Error; err != nil {
		return nil, err
	}

	return json.Marshal(transactions)
}
