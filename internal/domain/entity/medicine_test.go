package entity

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validMedicine() *Medicine {
	return &Medicine{
		Name:         "Aspirin 500mg",
		Description:  "Pain reliever and fever reducer.",
		Category:     CategoryPainRelief,
		Dosage:       "500mg",
		Manufacturer: "Bayer",
		Price:        decimal.NewFromInt(120),
		Stock:        150,
		Rating:       4.5,
	}
}

func TestMedicine_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Medicine)
		wantField string
	}{
		{
			name:   "valid",
			mutate: func(m *Medicine) {},
		},
		{
			name:      "missing name",
			mutate:    func(m *Medicine) { m.Name = "" },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(m *Medicine) { m.Name = strings.Repeat("x", 101) },
			wantField: "name",
		},
		{
			name:      "unknown category",
			mutate:    func(m *Medicine) { m.Category = "Homeopathy" },
			wantField: "category",
		},
		{
			name:      "negative price",
			mutate:    func(m *Medicine) { m.Price = decimal.NewFromInt(-1) },
			wantField: "price",
		},
		{
			name:      "negative stock",
			mutate:    func(m *Medicine) { m.Stock = -1 },
			wantField: "stock",
		},
		{
			name:      "rating out of range",
			mutate:    func(m *Medicine) { m.Rating = 5.1 },
			wantField: "rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMedicine()
			tt.mutate(m)

			errs := m.Validate()
			if tt.wantField == "" {
				assert.Empty(t, errs)

				return
			}

			fields := make([]string, 0, len(errs))
			for _, fe := range errs {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.IsValid(), string(c))
	}

	assert.False(t, Category("Homeopathy").IsValid())
	// The filter sentinel is not a storable category.
	assert.False(t, Category(CategoryAll).IsValid())
}
