package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is the fixed set of catalog categories.
type Category string

const (
	CategoryPainRelief Category = "Pain Relief"
	CategoryDiabetes   Category = "Diabetes"
	CategoryHeartCare  Category = "Heart Care"
	CategoryColdCough  Category = "Cold & Cough"
	CategoryVitamins   Category = "Vitamins"
	CategorySkinCare   Category = "Skin Care"
	CategoryDigestive  Category = "Digestive"
	CategoryOther      Category = "Other"
)

// CategoryAll is the filter sentinel meaning "no category filter".
const CategoryAll = "All"

// Categories lists every valid category value.
func Categories() []Category {
	return []Category{
		CategoryPainRelief,
		CategoryDiabetes,
		CategoryHeartCare,
		CategoryColdCough,
		CategoryVitamins,
		CategorySkinCare,
		CategoryDigestive,
		CategoryOther,
	}
}

// IsValid checks if the Category is part of the fixed set.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}

// Review is a customer review embedded in a medicine record.
type Review struct {
	User    string    `json:"user"`
	Comment string    `json:"comment"`
	Rating  float64   `json:"rating"`
	Date    time.Time `json:"date"`
}

// Medicine is a sellable catalog item. Stock is never negative; the only
// mutators are admin edits and the order workflow's conditional decrement.
type Medicine struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     Category        `json:"category"`
	Dosage       string          `json:"dosage"`
	Manufacturer string          `json:"manufacturer"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	SideEffects  []string        `json:"sideEffects"`
	Warnings     []string        `json:"warnings"`
	SuitableFor  []string        `json:"suitableFor"`
	Image        string          `json:"image"`
	Rating       float64         `json:"rating"`
	Reviews      []Review        `json:"reviews"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// FieldError describes a single invalid field on an entity.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the medicine's fields and returns one error per invalid
// field. An empty slice means the entity is valid.
func (m *Medicine) Validate() []FieldError {
	var errs []FieldError

	if m.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if len(m.Name) > 100 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 100 characters"})
	}
	if m.Description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	}
	if !m.Category.IsValid() {
		errs = append(errs, FieldError{Field: "category", Message: "unknown category"})
	}
	if m.Dosage == "" {
		errs = append(errs, FieldError{Field: "dosage", Message: "dosage is required"})
	}
	if m.Manufacturer == "" {
		errs = append(errs, FieldError{Field: "manufacturer", Message: "manufacturer is required"})
	}
	if m.Price.IsNegative() {
		errs = append(errs, FieldError{Field: "price", Message: "price must not be negative"})
	}
	if m.Stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "stock must not be negative"})
	}
	if m.Rating < 0 || m.Rating > 5 {
		errs = append(errs, FieldError{Field: "rating", Message: "rating must be between 0 and 5"})
	}

	return errs
}
