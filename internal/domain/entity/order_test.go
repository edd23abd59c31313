package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderItem_Subtotal(t *testing.T) {
	item := OrderItem{
		Price:    decimal.RequireFromString("120.50"),
		Quantity: 3,
	}

	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("361.50")))
}

func TestOrder_IsOwnedBy(t *testing.T) {
	owner := uuid.New()
	order := &Order{UserID: owner}

	assert.True(t, order.IsOwnedBy(owner))
	assert.False(t, order.IsOwnedBy(uuid.New()))
}

func TestOrderStatus_IsValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, OrderStatus("returned").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestPaymentStatus_IsValid(t *testing.T) {
	valid := []PaymentStatus{
		PaymentStatusPending,
		PaymentStatusCompleted,
		PaymentStatusFailed,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, PaymentStatus("refunded").IsValid())
}
