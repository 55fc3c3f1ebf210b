package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/vedor-app/backend/internal/importer"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/types"
)

type transactions struct {
	db *gorm.DB
}

// NewTransactions returns a gorm-backed Transactions repository.
func NewTransactions(db *gorm.DB) Transactions {
	return &transactions{db: db}
}

func (r *transactions) Find(id string) (models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.First(&transaction, "id = ?", id).Error

	return transaction, err
}

func (r *transactions) FindAll() ([]models.Transaction, error) {
	var all []models.Transaction
	err := r.db.Order("date DESC, created_at DESC").Find(&all).Error

	return all, err
}

func (r *transactions) FindByMonth(year, month int) ([]models.Transaction, error) {
	from, err := types.NewDate(year, time.Month(month), 1)
	if err != nil {
		return nil, err
	}

	return r.FindByDateRange(from, from.EndOfMonth())
}

func (r *transactions) FindByDateRange(from, to types.Date) ([]models.Transaction, error) {
	var all []models.Transaction
	err := r.db.
		Where("date >= ? AND date <= ?", from, to).
		Order("date DESC, created_at DESC").
		Find(&all).Error

	return all, err
}

func (r *transactions) FindByCategory(categoryID string) ([]models.Transaction, error) {
	var all []models.Transaction
	err := r.db.
		Where("category_id = ?", categoryID).
		Order("date DESC, created_at DESC").
		Find(&all).Error

	return all, err
}

func (r *transactions) FindByAccount(accountID string) ([]models.Transaction, error) {
	var all []models.Transaction
	err := r.db.
		Where("account_id = ?", accountID).
		Order("date DESC, created_at DESC").
		Find(&all).Error

	return all, err
}

// Add stores a single transaction. A transaction carrying an import
// hash that is already stored is rejected with ErrTransactionDuplicate.
func (r *transactions) Add(transaction models.Transaction) (models.Transaction, error) {
	if transaction.ImportHash != "" {
		exists, err := r.hashExists(transaction.ImportHash)
		if err != nil {
			return models.Transaction{}, err
		}
		if exists {
			return models.Transaction{}, models.ErrTransactionDuplicate
		}
	}

	err := r.db.Create(&transaction).Error
	return transaction, err
}

func (r *transactions) Update(id string, update models.TransactionUpdate) (models.Transaction, error) {
	transaction, err := r.Find(id)
	if err != nil {
		return models.Transaction{}, err
	}

	updated, err := transaction.Update(update)
	if err != nil {
		return models.Transaction{}, err
	}

	err = r.db.Save(&updated).Error
	return updated, err
}

func (r *transactions) Remove(id string) error {
	transaction, err := r.Find(id)
	if err != nil {
		return err
	}

	return r.db.Delete(&transaction).Error
}

// ImportMany stores a parsed batch. With dedupe enabled, rows whose
// content hash matches an already stored transaction are skipped and
// counted. Rows without a hash get one computed first.
func (r *transactions) ImportMany(batch []models.Transaction, dedupe bool) (ImportResult, error) {
	var result ImportResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, transaction := range batch {
			if transaction.ImportHash == "" {
				transaction.ImportHash = importer.Hash(transaction)
			}

			if dedupe {
				var count int64
				err := tx.Model(&models.Transaction{}).
					Where("import_hash = ?", transaction.ImportHash).
					Count(&count).Error
				if err != nil {
					return err
				}

				if count > 0 {
					result.Duplicates++
					continue
				}
			}

			if err := tx.Create(&transaction).Error; err != nil {
				return err
			}
			result.Imported++
		}

		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	return result, nil
}

func (r *transactions) hashExists(hash string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).Where("import_hash = ?", hash).Count(&count).Error

	return count > 0, err
}
