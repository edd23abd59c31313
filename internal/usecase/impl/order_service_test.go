package impl

import (
	"context"
	"testing"

	"pharmastore/internal/domain/entity"
	domainerrors "pharmastore/internal/domain/errors"
	"pharmastore/internal/domain/repository"
	mockRepo "pharmastore/internal/mocks/repository"
	"pharmastore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewOrderService(
		txManager,
		orderRepo,
		newDiscardLogger(),
	)

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

func testShippingAddress() entity.ShippingAddress {
	return entity.ShippingAddress{
		Street:     "12 Main Street",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "USA",
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	aspirin := &entity.Medicine{
		ID:    uuid.New(),
		Name:  "Aspirin 500mg",
		Price: decimal.NewFromInt(120),
		Stock: 150,
	}
	vitamins := &entity.Medicine{
		ID:    uuid.New(),
		Name:  "Vitamin D3 1000IU",
		Price: decimal.NewFromInt(180),
		Stock: 300,
	}

	input := &usecase.PlaceOrderInput{
		Lines: []usecase.OrderLineInput{
			{MedicineID: aspirin.ID, Quantity: 2},
			{MedicineID: vitamins.ID, Quantity: 1},
		},
		ShippingAddress: testShippingAddress(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMedicineRepo := mockRepo.NewMockMedicineRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().MedicineRepo().Return(mockMedicineRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockMedicineRepo.EXPECT().FindByID(ctx, aspirin.ID).Return(aspirin, nil)
			mockMedicineRepo.EXPECT().FindByID(ctx, vitamins.ID).Return(vitamins, nil)
			mockMedicineRepo.EXPECT().DecrementStock(ctx, aspirin.ID, 2).Return(nil)
			mockMedicineRepo.EXPECT().DecrementStock(ctx, vitamins.ID, 1).Return(nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, testShippingAddress(), order.ShippingAddress)

	// 2 x 120 + 1 x 180 = 420, tax 5% = 21
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(420)), "total %s", order.TotalPrice)
	assert.True(t, order.Tax.Equal(decimal.NewFromInt(21)), "tax %s", order.Tax)

	// The items carry purchase-time snapshots of name and price.
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Aspirin 500mg", order.Items[0].Name)
	assert.True(t, order.Items[0].Price.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestOrderService_PlaceOrder_Empty(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		ShippingAddress: testShippingAddress(),
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyOrder))
}

func TestOrderService_PlaceOrder_InvalidQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		Lines: []usecase.OrderLineInput{
			{MedicineID: uuid.New(), Quantity: 0},
		},
		ShippingAddress: testShippingAddress(),
	})

	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_PlaceOrder_MedicineNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	missingID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMedicineRepo := mockRepo.NewMockMedicineRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().MedicineRepo().Return(mockMedicineRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockMedicineRepo.EXPECT().
				FindByID(ctx, missingID).
				Return(nil, repository.ErrMedicineNotFound)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		Lines: []usecase.OrderLineInput{
			{MedicineID: missingID, Quantity: 1},
		},
		ShippingAddress: testShippingAddress(),
	})

	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "MEDICINE_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "Medicine "+missingID.String()+" not found", appErr.Message())
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	aspirin := &entity.Medicine{
		ID:    uuid.New(),
		Name:  "Aspirin 500mg",
		Price: decimal.NewFromInt(120),
		Stock: 1,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMedicineRepo := mockRepo.NewMockMedicineRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().MedicineRepo().Return(mockMedicineRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockMedicineRepo.EXPECT().FindByID(ctx, aspirin.ID).Return(aspirin, nil)
			mockMedicineRepo.EXPECT().
				DecrementStock(ctx, aspirin.ID, 5).
				Return(repository.ErrInsufficientStock)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		Lines: []usecase.OrderLineInput{
			{MedicineID: aspirin.ID, Quantity: 5},
		},
		ShippingAddress: testShippingAddress(),
	})

	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	assert.Equal(t, "Insufficient stock for Aspirin 500mg", appErr.Message())
}

func TestOrderService_GetOrder_Owner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: ownerID}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, order.ID, ownerID, entity.RoleUser)

	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_GetOrder_DeniedForOtherUser(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, order.ID, uuid.New(), entity.RoleUser)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderAccessDenied))
}

func TestOrderService_GetOrder_AdminCanReadAny(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, order.ID, uuid.New(), entity.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	got, err := fx.service.GetOrder(ctx, orderID, uuid.New(), entity.RoleUser)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New(), UserID: userID}}

	fx.orderRepo.EXPECT().ListByUser(ctx, userID).Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	newStatus := entity.OrderStatusShipped

	updated := &entity.Order{ID: orderID, Status: newStatus}
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, repository.OrderStatusUpdate{Status: &newStatus}).
		Return(updated, nil)

	got, err := fx.service.UpdateOrderStatus(ctx, orderID, &usecase.UpdateOrderStatusInput{
		Status: &newStatus,
	})

	require.NoError(t, err)
	assert.Equal(t, newStatus, got.Status)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	bogus := entity.OrderStatus("teleported")

	got, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), &usecase.UpdateOrderStatusInput{
		Status: &bogus,
	})

	require.Error(t, err)
	assert.Nil(t, got)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	paid := entity.PaymentStatusCompleted

	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, repository.OrderStatusUpdate{PaymentStatus: &paid}).
		Return(nil, repository.ErrOrderNotFound)

	got, err := fx.service.UpdateOrderStatus(ctx, orderID, &usecase.UpdateOrderStatusInput{
		PaymentStatus: &paid,
	})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
