package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// MedicineModel mirrors the 'medicines' table. Stock carries a CHECK
// constraint so the database itself rejects a negative value.
type MedicineModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string          `gorm:"type:varchar(100);not null;index"`
	Description  string          `gorm:"type:text;not null"`
	Category     string          `gorm:"type:varchar(50);not null;index"`
	Dosage       string          `gorm:"type:varchar(50);not null"`
	Manufacturer string          `gorm:"type:varchar(100);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock        int             `gorm:"not null;check:stock >= 0"`
	SideEffects  pq.StringArray  `gorm:"type:text[]"`
	Warnings     pq.StringArray  `gorm:"type:text[]"`
	SuitableFor  pq.StringArray  `gorm:"type:text[]"`
	Image        string          `gorm:"type:text"`
	Rating       float64         `gorm:"type:numeric(3,2);not null;default:4.5"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Reviews []ReviewModel `gorm:"foreignKey:MedicineID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MedicineModel) TableName() string {
	return "medicines"
}

// ReviewModel mirrors the 'medicine_reviews' table, one row per embedded
// review entry.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MedicineID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserName   string    `gorm:"type:varchar(100)"`
	Comment    string    `gorm:"type:text"`
	Rating     float64   `gorm:"type:numeric(3,2)"`
	Date       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "medicine_reviews"
}
