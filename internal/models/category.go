package models

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// Category groups transactions, e.g. "Comida" or "Vivienda".
type Category struct {
	DefaultModel
	CategoryEditable
}

// CategoryEditable represents all user configurable parameters of a Category.
type CategoryEditable struct {
	Name     string `json:"name" example:"Comida" default:""`                          // Name of the category
	ColorHex string `json:"colorHex" example:"#FF5733" default:""`                     // Display color in #RRGGBB format
	Slug     string `json:"slug" gorm:"uniqueIndex" example:"comida" default:""`       // URL-safe identifier, derived from the name when empty
}

// CategoryNameMaxLength is the maximum length of a category name in
// characters, not bytes.
const CategoryNameMaxLength = 50

func (Category) Self() string {
	return "Category"
}

var colorHexPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// NewCategory creates a validated Category. The slug is derived from
// the name unless it is supplied explicitly.
func NewCategory(editable CategoryEditable) (Category, error) {
	category := Category{CategoryEditable: editable}
	if err := category.validate(); err != nil {
		return Category{}, err
	}

	return category, nil
}

// Update returns a new Category with the same ID and creation time.
// Zero values in the editable keep the current value.
func (c Category) Update(editable CategoryEditable) (Category, error) {
	if editable.Name == "" {
		editable.Name = c.Name
	}
	if editable.ColorHex == "" {
		editable.ColorHex = c.ColorHex
	}
	if editable.Slug == "" {
		editable.Slug = c.Slug
	}

	updated := Category{DefaultModel: c.DefaultModel, CategoryEditable: editable}
	if err := updated.validate(); err != nil {
		return Category{}, err
	}

	return updated, nil
}

func (c *Category) validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameRequired
	}
	if len([]rune(c.Name)) > CategoryNameMaxLength {
		return ErrCategoryNameTooLong
	}

	c.ColorHex = strings.ToUpper(strings.TrimSpace(c.ColorHex))
	if !colorHexPattern.MatchString(c.ColorHex) {
		return ErrCategoryColorInvalid
	}

	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}

	return nil
}

// BeforeSave validates the category so that nothing unvalidated
// reaches the database.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	return c.validate()
}

func (Category) Export() (json.RawMessage, error) {
	var categories []Category
	if err := DB.Find(&categories).Error; err != nil {
		return nil, err
	}

	return json.Marshal(categories)
}

// stripDiacritics removes combining marks after NFD decomposition, so
// that "Alimentación" slugifies to "alimentacion".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe slug from a category name: lowercased,
// diacritics stripped, everything except letters and digits dropped,
// whitespace replaced by single hyphens.
func Slugify(name string) string {
	normalized, _, err := transform.String(stripDiacritics, strings.ToLower(name))
	if err != nil {
		normalized = strings.ToLower(name)
	}

	var b strings.Builder
	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-':
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
