package repository

import (
	"gorm.io/gorm"

	"github.com/vedor-app/backend/internal/models"
)

type budgets struct {
	db *gorm.DB
}

// NewBudgets returns a gorm-backed Budgets repository.
func NewBudgets(db *gorm.DB) Budgets {
	return &budgets{db: db}
}

func (r *budgets) Find(id string) (models.Budget, error) {
	var budget models.Budget
	err := r.db.First(&budget, "id = ?", id).Error

	return budget, err
}

func (r *budgets) FindByCategory(categoryID string) (models.Budget, error) {
	var budget models.Budget
	err := r.db.First(&budget, "category_id = ?", categoryID).Error

	return budget, err
}

func (r *budgets) FindAll() ([]models.Budget, error) {
	var all []models.Budget
	err := r.db.Order("created_at ASC").Find(&all).Error

	return all, err
}

func (r *budgets) Add(budget models.Budget) (models.Budget, error) {
	err := r.db.Create(&budget).Error
	return budget, err
}

func (r *budgets) Update(id string, editable models.BudgetEditable) (models.Budget, error) {
	budget, err := r.Find(id)
	if err != nil {
		return models.Budget{}, err
	}

	updated, err := budget.Update(editable)
	if err != nil {
		return models.Budget{}, err
	}

	err = r.db.Save(&updated).Error
	return updated, err
}

func (r *budgets) Remove(id string) error {
	budget, err := r.Find(id)
	if err != nil {
		return err
	}

	return r.db.Delete(&budget).Error
}

func (r *budgets) ExistsByCategory(categoryID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Budget{}).Where("category_id = ?", categoryID).Count(&count).Error

	return count > 0, err
}
