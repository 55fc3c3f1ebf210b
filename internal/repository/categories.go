package repository

import (
	"gorm.io/gorm"

	"github.com/vedor-app/backend/internal/models"
)

type categories struct {
	db *gorm.DB
}

// NewCategories returns a gorm-backed Categories repository.
func NewCategories(db *gorm.DB) Categories {
	return &categories{db: db}
}

func (r *categories) Find(id string) (models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error

	return category, err
}

func (r *categories) FindBySlug(slug string) (models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "slug = ?", slug).Error

	return category, err
}

func (r *categories) FindAll() ([]models.Category, error) {
	var all []models.Category
	err := r.db.Order("name ASC").Find(&all).Error

	return all, err
}

func (r *categories) Add(category models.Category) (models.Category, error) {
	err := r.db.Create(&category).Error
	return category, err
}

func (r *categories) Update(id string, editable models.CategoryEditable) (models.Category, error) {
	category, err := r.Find(id)
	if err != nil {
		return models.Category{}, err
	}

	updated, err := category.Update(editable)
	if err != nil {
		return models.Category{}, err
	}

	err = r.db.Save(&updated).Error
	return updated, err
}

func (r *categories) Remove(id string) error {
	category, err := r.Find(id)
	if err != nil {
		return err
	}

	return r.db.Delete(&category).Error
}

func (r *categories) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error

	return count > 0, err
}

func (r *categories) ExistsBySlug(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error

	return count > 0, err
}
