package usecase

import (
	"context"

	"pharmastore/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLineInput references one catalog item and the quantity to purchase.
type OrderLineInput struct {
	MedicineID uuid.UUID
	Quantity   int
}

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	Lines           []OrderLineInput
	ShippingAddress entity.ShippingAddress
}

// UpdateOrderStatusInput carries the optional status changes applied by an
// admin. A nil field means "leave unchanged".
type UpdateOrderStatusInput struct {
	Status        *entity.OrderStatus
	PaymentStatus *entity.PaymentStatus
}

// OrderUsecase defines the interface for the order workflow.
type OrderUsecase interface {
	// PlaceOrder validates the requested lines against current stock,
	// snapshots name/price per line, decrements stock and persists the order —
	// all within a single transaction.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder returns the order if the requester owns it or is an admin.
	GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole entity.Role) (*entity.Order, error)

	// ListOrders returns the requester's own orders.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAllOrders returns every order. Admin only; enforced at the route.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus applies whichever of the two optional fields are
	// present. Admin only; enforced at the route.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
}
