package handler

import (
	"log/slog"
	"net/http"

	"pharmastore/internal/delivery/http/middleware"
	"pharmastore/internal/delivery/http/response"
	"pharmastore/internal/domain/entity"
	"pharmastore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// orderLineRequest references one catalog item in the order payload.
type orderLineRequest struct {
	MedicineID string `json:"medicineId" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,gte=1"`
}

type shippingAddressRequest struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// placeOrderRequest is the wire shape of the order placement payload.
type placeOrderRequest struct {
	Medicines       []orderLineRequest     `json:"medicines" validate:"dive"`
	ShippingAddress shippingAddressRequest `json:"shippingAddress" validate:"required"`
}

// updateOrderStatusRequest carries the optional admin status changes.
type updateOrderStatusRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Place handles the order placement request.
func (h *OrderHandler) Place(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lines := make([]usecase.OrderLineInput, 0, len(req.Medicines))
	for _, line := range req.Medicines {
		medicineID, err := uuid.Parse(line.MedicineID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid medicine ID in order")
		}
		lines = append(lines, usecase.OrderLineInput{
			MedicineID: medicineID,
			Quantity:   line.Quantity,
		})
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), userID, &usecase.PlaceOrderInput{
		Lines: lines,
		ShippingAddress: entity.ShippingAddress{
			Street:     req.ShippingAddress.Street,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// Get returns one order, restricted to its owner or an admin.
func (h *OrderHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	role, ok := middleware.Role(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid role in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID, userID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// List returns the authenticated account's own orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListAll returns every order in the store. Admin only.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateStatus applies the admin's fulfilment or payment status change.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	input := &usecase.UpdateOrderStatusInput{}
	if req.Status != nil {
		input.Status = lo.ToPtr(entity.OrderStatus(*req.Status))
	}
	if req.PaymentStatus != nil {
		input.PaymentStatus = lo.ToPtr(entity.PaymentStatus(*req.PaymentStatus))
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}
