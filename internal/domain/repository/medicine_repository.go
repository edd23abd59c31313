package repository

import (
	"context"
	"errors"

	"pharmastore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrMedicineNotFound is returned when a catalog item does not exist.
	ErrMedicineNotFound = errors.New("medicine not found")
	// ErrInsufficientStock is returned by DecrementStock when the current
	// stock is lower than the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// MedicineFilter describes the catalog listing options. Zero values mean
// "no filter"; Category uses the "All" sentinel the same way.
type MedicineFilter struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	Limit    int
}

// Offset returns the number of rows to skip for the requested page.
func (f MedicineFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// MedicineRepository defines the standard operations for catalog persistence.
type MedicineRepository interface {
	// FindByID retrieves a single medicine by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)

	// List returns one page of medicines matching the filter plus the total
	// match count. Results are ordered by name then ID so pagination is
	// deterministic.
	List(ctx context.Context, filter MedicineFilter) ([]*entity.Medicine, int64, error)

	// Categories returns the distinct category values present in the store.
	Categories(ctx context.Context) ([]string, error)

	// Create persists a new medicine.
	Create(ctx context.Context, medicine *entity.Medicine) error

	// Update modifies an existing medicine.
	Update(ctx context.Context, medicine *entity.Medicine) error

	// Delete removes a medicine from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity from the item's stock,
	// failing with ErrInsufficientStock when stock < quantity. The check and
	// the decrement are a single conditional update so concurrent orders can
	// never oversell.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
