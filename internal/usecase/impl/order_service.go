package impl

import (
	"context"
	"log/slog"

	deliverycontext "pharmastore/internal/delivery/context"
	"pharmastore/internal/domain/entity"
	domainerrors "pharmastore/internal/domain/errors"
	"pharmastore/internal/domain/repository"
	"pharmastore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// taxRate is the flat surcharge persisted on every order at creation time.
var taxRate = decimal.NewFromFloat(0.05)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder runs the whole order workflow inside one transaction: per line,
// the medicine is fetched, its stock conditionally decremented, and its
// name/price snapshotted. The first failing line rolls back every decrement
// already applied, so a failed order never changes the catalog.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, errors.Wrap(domainerrors.ErrEmptyOrder, "order has no lines")
	}
	for _, line := range input.Lines {
		if line.Quantity < 1 {
			return nil, errors.Wrap(
				domainerrors.ErrValidationFailed.WithMessage("Quantity must be at least 1"),
				"invalid line quantity",
			)
		}
	}

	order := &entity.Order{
		UserID:          userID,
		ShippingAddress: input.ShippingAddress,
		Status:          entity.OrderStatusPending,
		PaymentStatus:   entity.PaymentStatusPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		medicineRepo := repoFactory.MedicineRepo()
		orderRepo := repoFactory.OrderRepo()

		total := decimal.Zero
		for _, line := range input.Lines {
			medicine, err := medicineRepo.FindByID(ctx, line.MedicineID)
			if err != nil {
				if errors.Is(err, repository.ErrMedicineNotFound) {
					return errors.Wrap(
						domainerrors.ErrMedicineNotFound.WithMessage("Medicine "+line.MedicineID.String()+" not found"),
						"dangling medicine reference",
					)
				}

				return errors.Wrap(err, "failed to load medicine for order line")
			}

			// The decrement is a single conditional update; stock can never
			// go negative even under concurrent orders.
			if err := medicineRepo.DecrementStock(ctx, medicine.ID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return errors.Wrap(
						domainerrors.ErrInsufficientStock.WithMessage("Insufficient stock for "+medicine.Name),
						"stock below requested quantity",
					)
				}

				return errors.Wrap(err, "failed to decrement stock")
			}

			item := entity.OrderItem{
				MedicineID: medicine.ID,
				Name:       medicine.Name,
				Price:      medicine.Price,
				Quantity:   line.Quantity,
			}
			order.Items = append(order.Items, item)
			total = total.Add(item.Subtotal())
		}

		order.TotalPrice = total
		order.Tax = total.Mul(taxRate).Round(2)

		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order transaction")
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("userID", userID),
		slog.Int("lines", len(order.Items)),
		slog.String("total", order.TotalPrice.String()),
	)

	return order, nil
}

// GetOrder returns the order if the requester owns it or is an admin.
func (srv *orderService) GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole entity.Role) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, orderID.String())
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !order.IsOwnedBy(requesterID) && !requesterRole.HasRole(entity.RoleAdmin) {
		srv.log(ctx).Warn("Order access denied",
			slog.Any("orderID", orderID),
			slog.Any("requesterID", requesterID),
		)

		return nil, errors.Wrap(domainerrors.ErrOrderAccessDenied, "requester is neither owner nor admin")
	}

	return order, nil
}

// ListOrders returns the requester's own orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListAllOrders returns every order in the store, newest first.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// UpdateOrderStatus applies whichever of the two optional status fields are
// present. Values are checked against the enums; no transition graph is
// enforced (delivered back to pending is allowed, matching the flat
// field-set semantics).
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithMessage("Unknown order status"),
			"invalid status value",
		)
	}
	if input.PaymentStatus != nil && !input.PaymentStatus.IsValid() {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithMessage("Unknown payment status"),
			"invalid payment status value",
		)
	}

	order, err := srv.orderRepo.UpdateStatus(ctx, orderID, repository.OrderStatusUpdate{
		Status:        input.Status,
		PaymentStatus: input.PaymentStatus,
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, orderID.String())
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID))

	return order, nil
}
