package postgres

import (
	"context"

	"pharmastore/internal/domain/entity"
	domainerrors "pharmastore/internal/domain/errors"
	"pharmastore/internal/domain/repository"
	"pharmastore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order together with its line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single order with its line items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		First(&orderM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns all orders owned by the given account, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var rows []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return lo.Map(rows, func(row *model.OrderModel, _ int) *entity.Order {
		return toOrderDomain(row)
	}), nil
}

// ListAll returns every order in the store, newest first.
func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	var rows []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return lo.Map(rows, func(row *model.OrderModel, _ int) *entity.Order {
		return toOrderDomain(row)
	}), nil
}

// UpdateStatus applies the present fields of the update and returns the
// refreshed order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, update repository.OrderStatusUpdate) (*entity.Order, error) {
	columns := map[string]any{}
	if update.Status != nil {
		columns["status"] = string(*update.Status)
	}
	if update.PaymentStatus != nil {
		columns["payment_status"] = string(*update.PaymentStatus)
	}

	if len(columns) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Updates(columns)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrOrderNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := lo.Map(data.Items, func(it model.OrderItemModel, _ int) entity.OrderItem {
		return entity.OrderItem{
			MedicineID: it.MedicineID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		}
	})

	return &entity.Order{
		ID:         data.ID,
		UserID:     data.UserID,
		Items:      items,
		TotalPrice: data.TotalPrice,
		Tax:        data.Tax,
		ShippingAddress: entity.ShippingAddress{
			Street:     data.Street,
			City:       data.City,
			PostalCode: data.PostalCode,
			Country:    data.Country,
		},
		Status:        entity.OrderStatus(data.Status),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := lo.Map(data.Items, func(it entity.OrderItem, _ int) model.OrderItemModel {
		return model.OrderItemModel{
			OrderID:    data.ID,
			MedicineID: it.MedicineID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		}
	})

	return &model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		TotalPrice:    data.TotalPrice,
		Tax:           data.Tax,
		Street:        data.ShippingAddress.Street,
		City:          data.ShippingAddress.City,
		PostalCode:    data.ShippingAddress.PostalCode,
		Country:       data.ShippingAddress.Country,
		Status:        string(data.Status),
		PaymentStatus: string(data.PaymentStatus),
		Items:         items,
	}
}
