package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pharmastore/internal/delivery/http/response"
	"pharmastore/internal/domain/entity"
	"pharmastore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// medicineRequest is the wire shape of the admin create/update payload.
type medicineRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Description  string   `json:"description" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	Dosage       string   `json:"dosage" validate:"required"`
	Manufacturer string   `json:"manufacturer" validate:"required"`
	Price        float64  `json:"price" validate:"gte=0"`
	Stock        int      `json:"stock" validate:"gte=0"`
	SideEffects  []string `json:"sideEffects"`
	Warnings     []string `json:"warnings"`
	SuitableFor  []string `json:"suitableFor"`
	Image        string   `json:"image"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

func (req *medicineRequest) toInput() *usecase.SaveMedicineInput {
	return &usecase.SaveMedicineInput{
		Name:         req.Name,
		Description:  req.Description,
		Category:     entity.Category(req.Category),
		Dosage:       req.Dosage,
		Manufacturer: req.Manufacturer,
		Price:        decimal.NewFromFloat(req.Price),
		Stock:        req.Stock,
		SideEffects:  req.SideEffects,
		Warnings:     req.Warnings,
		SuitableFor:  req.SuitableFor,
		Image:        req.Image,
		Rating:       req.Rating,
	}
}

// MedicineHandler holds dependencies for catalog handlers.
type MedicineHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewMedicineHandler is the constructor for MedicineHandler, injected by Fx.
func NewMedicineHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *MedicineHandler {
	return &MedicineHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the catalog listing request with search, category and price
// filters plus pagination.
func (h *MedicineHandler) List(c echo.Context) error {
	input := &usecase.ListMedicinesInput{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "minPrice must be a number")
		}
		input.MinPrice = &price
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "maxPrice must be a number")
		}
		input.MaxPrice = &price
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return response.BadRequest(c, "INVALID_INPUT", "page must be a positive integer")
		}
		input.Page = page
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a positive integer")
		}
		input.Limit = limit
	}

	page, err := h.uc.ListMedicines(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page.Items, response.Pagination{
		Total: page.Total,
		Page:  page.Page,
		Pages: page.Pages,
	}, "Medicines retrieved successfully")
}

// Get handles the single-item lookup request.
func (h *MedicineHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid medicine ID")
	}

	medicine, err := h.uc.GetMedicine(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicine, "Medicine retrieved successfully")
}

// Categories returns the distinct category values present in the store.
func (h *MedicineHandler) Categories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// Create handles the admin catalog creation request.
func (h *MedicineHandler) Create(c echo.Context) error {
	var req medicineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medicine input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	medicine, err := h.uc.CreateMedicine(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, medicine, "Medicine created successfully")
}

// Update handles the admin catalog replacement request.
func (h *MedicineHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid medicine ID")
	}

	var req medicineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medicine input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	medicine, err := h.uc.UpdateMedicine(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicine, "Medicine updated successfully")
}

// Delete handles the admin catalog removal request.
func (h *MedicineHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid medicine ID")
	}

	if err := h.uc.DeleteMedicine(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Medicine deleted successfully")
}
