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

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	medicineRepo *mockRepo.MockMedicineRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	medicineRepo := mockRepo.NewMockMedicineRepository(t)

	service := NewCatalogService(
		medicineRepo,
		newDiscardLogger(),
	)

	return catalogServiceFixtures{
		service:      service,
		medicineRepo: medicineRepo,
	}
}

func validMedicineInput() *usecase.SaveMedicineInput {
	return &usecase.SaveMedicineInput{
		Name:         "Aspirin 500mg",
		Description:  "Pain reliever and fever reducer.",
		Category:     entity.CategoryPainRelief,
		Dosage:       "500mg",
		Manufacturer: "Bayer",
		Price:        decimal.NewFromInt(120),
		Stock:        150,
	}
}

func TestCatalogService_ListMedicines_Defaults(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.medicineRepo.EXPECT().
		List(ctx, repository.MedicineFilter{Page: 1, Limit: 12}).
		Return([]*entity.Medicine{{ID: uuid.New()}}, int64(25), nil)

	page, err := fx.service.ListMedicines(ctx, &usecase.ListMedicinesInput{})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, int64(25), page.Total)
	// ceil(25 / 12) = 3
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Items, 1)
}

func TestCatalogService_ListMedicines_AllCategorySentinel(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	// "All" must reach the repository as an empty category filter.
	fx.medicineRepo.EXPECT().
		List(ctx, repository.MedicineFilter{Category: "", Page: 1, Limit: 12}).
		Return(nil, int64(0), nil)

	page, err := fx.service.ListMedicines(ctx, &usecase.ListMedicinesInput{Category: entity.CategoryAll})

	require.NoError(t, err)
	assert.Equal(t, 0, page.Pages)
	assert.Empty(t, page.Items)
}

func TestCatalogService_ListMedicines_PassesFilters(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	minPrice := decimal.NewFromInt(50)
	maxPrice := decimal.NewFromInt(200)

	fx.medicineRepo.EXPECT().
		List(ctx, repository.MedicineFilter{
			Search:   "aspirin",
			Category: string(entity.CategoryPainRelief),
			MinPrice: &minPrice,
			MaxPrice: &maxPrice,
			Page:     2,
			Limit:    5,
		}).
		Return(nil, int64(7), nil)

	page, err := fx.service.ListMedicines(ctx, &usecase.ListMedicinesInput{
		Search:   " aspirin ",
		Category: string(entity.CategoryPainRelief),
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Page:     2,
		Limit:    5,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Pages)
}

func TestCatalogService_GetMedicine_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.medicineRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMedicineNotFound)

	got, err := fx.service.GetMedicine(ctx, id)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}

func TestCatalogService_ListCategories_Deduplicates(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.medicineRepo.EXPECT().
		Categories(ctx).
		Return([]string{"Pain Relief", "Vitamins", "Pain Relief"}, nil)

	categories, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Pain Relief", "Vitamins"}, categories)
}

func TestCatalogService_CreateMedicine_AppliesDefaults(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.medicineRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Medicine")).
		Run(func(ctx context.Context, medicine *entity.Medicine) {
			medicine.ID = uuid.New()
		}).
		Return(nil)

	medicine, err := fx.service.CreateMedicine(ctx, validMedicineInput())

	require.NoError(t, err)
	require.NotNil(t, medicine)
	assert.Equal(t, 4.5, medicine.Rating)
	assert.NotEmpty(t, medicine.Image)
}

func TestCatalogService_CreateMedicine_KeepsExplicitRating(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := validMedicineInput()
	rating := 3.8
	input.Rating = &rating

	fx.medicineRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Medicine")).
		Return(nil)

	medicine, err := fx.service.CreateMedicine(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 3.8, medicine.Rating)
}

func TestCatalogService_CreateMedicine_ValidationFailure(t *testing.T) {
	fx := createTestCatalogService(t)

	input := validMedicineInput()
	input.Category = "Homeopathy"
	input.Price = decimal.NewFromInt(-5)

	medicine, err := fx.service.CreateMedicine(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, medicine)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "category")
	assert.Contains(t, appErr.Details(), "price")
}

func TestCatalogService_UpdateMedicine_PreservesIdentityAndReviews(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Medicine{
		ID:      id,
		Name:    "Old Name",
		Reviews: []entity.Review{{User: "alice", Rating: 5}},
	}

	fx.medicineRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.medicineRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Medicine")).
		Return(nil)

	medicine, err := fx.service.UpdateMedicine(ctx, id, validMedicineInput())

	require.NoError(t, err)
	assert.Equal(t, id, medicine.ID)
	assert.Equal(t, "Aspirin 500mg", medicine.Name)
	assert.Equal(t, existing.Reviews, medicine.Reviews)
}

func TestCatalogService_UpdateMedicine_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.medicineRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMedicineNotFound)

	medicine, err := fx.service.UpdateMedicine(ctx, id, validMedicineInput())

	require.Error(t, err)
	assert.Nil(t, medicine)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}

func TestCatalogService_DeleteMedicine_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.medicineRepo.EXPECT().Delete(ctx, id).Return(repository.ErrMedicineNotFound)

	err := fx.service.DeleteMedicine(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}
