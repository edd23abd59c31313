package repository

import (
	"context"
	"errors"

	"pharmastore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderStatusUpdate carries the optional status changes applied by an admin.
// A nil field means "leave unchanged".
type OrderStatusUpdate struct {
	Status        *entity.OrderStatus
	PaymentStatus *entity.PaymentStatus
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns all orders owned by the given account, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAll returns every order in the store, newest first.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus applies the present fields of the update to the order.
	UpdateStatus(ctx context.Context, id uuid.UUID, update OrderStatusUpdate) (*entity.Order, error)
}
