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

// medicineRepository implements the domain.MedicineRepository interface using GORM.
type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository is the constructor for medicineRepository.
func NewMedicineRepository(db *gorm.DB) repository.MedicineRepository {
	return &medicineRepository{db: db}
}

// FindByID retrieves a single medicine with its reviews.
func (repo *medicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	var medM model.MedicineModel
	err := repo.db.WithContext(ctx).
		Preload("Reviews").
		First(&medM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine by id")
	}

	return toMedicineDomain(&medM), nil
}

// List returns one page of medicines matching the filter plus the total match
// count. Ordering is name then ID so identical names still paginate stably.
func (repo *medicineRepository) List(ctx context.Context, filter repository.MedicineFilter) ([]*entity.Medicine, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.MedicineModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count medicines")
	}

	var rows []*model.MedicineModel
	err := query.
		Preload("Reviews").
		Order("name ASC, id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list medicines")
	}

	items := lo.Map(rows, func(row *model.MedicineModel, _ int) *entity.Medicine {
		return toMedicineDomain(row)
	})

	return items, total, nil
}

// Categories returns the distinct category values present in the store.
func (repo *medicineRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Create persists a new medicine with its reviews.
func (repo *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	medM := fromMedicineDomain(medicine)

	if err := repo.db.WithContext(ctx).Create(medM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("medicine violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create medicine")
	}

	medicine.ID = medM.ID
	medicine.CreatedAt = medM.CreatedAt
	medicine.UpdatedAt = medM.UpdatedAt

	return nil
}

// Update replaces the stored medicine with the given entity. The row must
// already exist.
func (repo *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	medM := fromMedicineDomain(medicine)

	result := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("id = ?", medicine.ID).
		Select("*").
		Omit("id", "created_at", "Reviews").
		Updates(medM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("medicine violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update medicine")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

// Delete removes a medicine. Review rows follow via ON DELETE CASCADE.
func (repo *medicineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.MedicineModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete medicine")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

// DecrementStock subtracts quantity in a single conditional UPDATE. The
// stock >= quantity guard lives in the statement itself, so two concurrent
// orders can never both succeed past the available stock.
func (repo *medicineRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing row from an out-of-stock row.
		var exists bool
		err := repo.db.WithContext(ctx).
			Model(&model.MedicineModel{}).
			Select("count(*) > 0").
			Where("id = ?", id).
			Find(&exists).Error
		if err != nil {
			return errors.Wrap(err, "failed to check medicine existence")
		}
		if !exists {
			return repository.ErrMedicineNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// --- Mapper Functions ---

// toMedicineDomain converts a GORM MedicineModel to a domain Medicine entity.
func toMedicineDomain(data *model.MedicineModel) *entity.Medicine {
	if data == nil {
		return nil
	}

	reviews := lo.Map(data.Reviews, func(r model.ReviewModel, _ int) entity.Review {
		return entity.Review{
			User:    r.UserName,
			Comment: r.Comment,
			Rating:  r.Rating,
			Date:    r.Date,
		}
	})

	return &entity.Medicine{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     entity.Category(data.Category),
		Dosage:       data.Dosage,
		Manufacturer: data.Manufacturer,
		Price:        data.Price,
		Stock:        data.Stock,
		SideEffects:  data.SideEffects,
		Warnings:     data.Warnings,
		SuitableFor:  data.SuitableFor,
		Image:        data.Image,
		Rating:       data.Rating,
		Reviews:      reviews,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromMedicineDomain converts a domain Medicine entity to a GORM MedicineModel.
func fromMedicineDomain(data *entity.Medicine) *model.MedicineModel {
	if data == nil {
		return nil
	}

	reviews := lo.Map(data.Reviews, func(r entity.Review, _ int) model.ReviewModel {
		return model.ReviewModel{
			MedicineID: data.ID,
			UserName:   r.User,
			Comment:    r.Comment,
			Rating:     r.Rating,
			Date:       r.Date,
		}
	})

	return &model.MedicineModel{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     string(data.Category),
		Dosage:       data.Dosage,
		Manufacturer: data.Manufacturer,
		Price:        data.Price,
		Stock:        data.Stock,
		SideEffects:  data.SideEffects,
		Warnings:     data.Warnings,
		SuitableFor:  data.SuitableFor,
		Image:        data.Image,
		Rating:       data.Rating,
		Reviews:      reviews,
	}
}
