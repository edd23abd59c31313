package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	deliverycontext "pharmastore/internal/delivery/context"
	"pharmastore/internal/domain/entity"
	domainerrors "pharmastore/internal/domain/errors"
	"pharmastore/internal/domain/repository"
	"pharmastore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	defaultPage  = 1
	defaultLimit = 12

	defaultRating = 4.5
	defaultImage  = "https://via.placeholder.com/300x300?text=Medicine"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	medicineRepo repository.MedicineRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		medicineRepo: medicineRepo,
		logger:       logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMedicines returns one page of the catalog with pagination totals.
func (srv *catalogService) ListMedicines(ctx context.Context, input *usecase.ListMedicinesInput) (*usecase.MedicinePage, error) {
	filter := repository.MedicineFilter{
		Search:   strings.TrimSpace(input.Search),
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Page:     input.Page,
		Limit:    input.Limit,
	}
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	// "All" is the sentinel for "no category filter".
	if filter.Category == entity.CategoryAll {
		filter.Category = ""
	}

	items, total, err := srv.medicineRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}

	return &usecase.MedicinePage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Pages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// GetMedicine returns a single catalog item.
func (srv *catalogService) GetMedicine(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	medicine, err := srv.medicineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMedicineNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to find medicine")
	}

	return medicine, nil
}

// ListCategories returns the distinct categories present in the store,
// not the full enumerated domain.
func (srv *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := srv.medicineRepo.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return lo.Uniq(categories), nil
}

// CreateMedicine adds a new catalog item. Admin only; enforced at the route.
func (srv *catalogService) CreateMedicine(ctx context.Context, input *usecase.SaveMedicineInput) (*entity.Medicine, error) {
	medicine := medicineFromInput(input)

	if fieldErrs := medicine.Validate(); len(fieldErrs) > 0 {
		return nil, errors.Wrap(validationError(fieldErrs), "invalid medicine input")
	}

	if err := srv.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, errors.Wrap(err, "failed to create medicine")
	}
	srv.log(ctx).Info("Medicine created", slog.Any("medicineID", medicine.ID), slog.String("name", medicine.Name))

	return medicine, nil
}

// UpdateMedicine replaces an existing catalog item's fields.
func (srv *catalogService) UpdateMedicine(ctx context.Context, id uuid.UUID, input *usecase.SaveMedicineInput) (*entity.Medicine, error) {
	existing, err := srv.medicineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMedicineNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to find medicine for update")
	}

	medicine := medicineFromInput(input)
	medicine.ID = existing.ID
	medicine.Reviews = existing.Reviews
	medicine.CreatedAt = existing.CreatedAt

	if fieldErrs := medicine.Validate(); len(fieldErrs) > 0 {
		return nil, errors.Wrap(validationError(fieldErrs), "invalid medicine input")
	}

	if err := srv.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, errors.Wrap(err, "failed to update medicine")
	}
	srv.log(ctx).Info("Medicine updated", slog.Any("medicineID", medicine.ID))

	return medicine, nil
}

// DeleteMedicine removes a catalog item.
func (srv *catalogService) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	if err := srv.medicineRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return errors.Wrap(domainerrors.ErrMedicineNotFound, id.String())
		}

		return errors.Wrap(err, "failed to delete medicine")
	}
	srv.log(ctx).Info("Medicine deleted", slog.Any("medicineID", id))

	return nil
}

func medicineFromInput(input *usecase.SaveMedicineInput) *entity.Medicine {
	medicine := &entity.Medicine{
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Category:     input.Category,
		Dosage:       input.Dosage,
		Manufacturer: input.Manufacturer,
		Price:        input.Price,
		Stock:        input.Stock,
		SideEffects:  input.SideEffects,
		Warnings:     input.Warnings,
		SuitableFor:  input.SuitableFor,
		Image:        input.Image,
		Rating:       defaultRating,
	}
	if input.Rating != nil {
		medicine.Rating = *input.Rating
	}
	if medicine.Image == "" {
		medicine.Image = defaultImage
	}

	return medicine
}

func validationError(fieldErrs []entity.FieldError) error {
	messages := lo.Map(fieldErrs, func(fe entity.FieldError, _ int) string {
		return fe.Field + ": " + fe.Message
	})

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}
