package usecase

import (
	"context"

	"pharmastore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListMedicinesInput carries the catalog listing options. Zero values mean
// "no filter"; Category additionally treats "All" as no filter.
type ListMedicinesInput struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	Limit    int
}

// MedicinePage is one page of catalog results with pagination totals.
type MedicinePage struct {
	Items []*entity.Medicine
	Total int64
	Page  int
	Pages int
}

// SaveMedicineInput defines the data for creating or replacing a catalog item.
// Nil Rating and empty Image fall back to the catalog defaults.
type SaveMedicineInput struct {
	Name         string
	Description  string
	Category     entity.Category
	Dosage       string
	Manufacturer string
	Price        decimal.Decimal
	Stock        int
	SideEffects  []string
	Warnings     []string
	SuitableFor  []string
	Image        string
	Rating       *float64
}

// CatalogUsecase defines the interface for catalog browsing and admin
// catalog management.
type CatalogUsecase interface {
	ListMedicines(ctx context.Context, input *ListMedicinesInput) (*MedicinePage, error)
	GetMedicine(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreateMedicine(ctx context.Context, input *SaveMedicineInput) (*entity.Medicine, error)
	UpdateMedicine(ctx context.Context, id uuid.UUID, input *SaveMedicineInput) (*entity.Medicine, error)
	DeleteMedicine(ctx context.Context, id uuid.UUID) error
}
