// Command seed populates the database with demo accounts and a starter
// catalog so a fresh environment is immediately browsable.
package main

import (
	"context"
	"log/slog"
	"os"

	"pharmastore/config"
	"pharmastore/internal/domain/entity"
	"pharmastore/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	if err := run(ctx, db, logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seeding completed")
}

func run(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.MedicineModel{},
		&model.ReviewModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	); err != nil {
		return err
	}

	if err := seedUsers(ctx, db); err != nil {
		return err
	}
	logger.Info("Demo accounts ready")

	if err := seedMedicines(ctx, db); err != nil {
		return err
	}
	logger.Info("Starter catalog ready")

	return nil
}

func seedUsers(ctx context.Context, db *gorm.DB) error {
	users := []struct {
		name     string
		email    string
		password string
		role     entity.Role
	}{
		{name: "Demo User", email: "demo@pharmastore.dev", password: "demo1234", role: entity.RoleUser},
		{name: "Store Admin", email: "admin@pharmastore.dev", password: "admin1234", role: entity.RoleAdmin},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		row := model.UserModel{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role.String(),
		}
		// Re-running the seeder must not duplicate accounts.
		err = db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoNothing: true,
			}).
			Create(&row).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func seedMedicines(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.MedicineModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	medicines := []model.MedicineModel{
		{
			Name:         "Aspirin 500mg",
			Description:  "Pain reliever and fever reducer for headaches, muscle aches and minor arthritis pain.",
			Category:     string(entity.CategoryPainRelief),
			Dosage:       "500mg",
			Manufacturer: "Bayer",
			Price:        decimal.NewFromInt(120),
			Stock:        150,
			SideEffects:  []string{"Stomach upset", "Heartburn"},
			Warnings:     []string{"Do not use with blood thinners", "Not for children under 12"},
			SuitableFor:  []string{"Adults"},
			Rating:       4.5,
		},
		{
			Name:         "Metformin 850mg",
			Description:  "First-line oral medication for managing type 2 diabetes.",
			Category:     string(entity.CategoryDiabetes),
			Dosage:       "850mg",
			Manufacturer: "Merck",
			Price:        decimal.NewFromInt(240),
			Stock:        80,
			SideEffects:  []string{"Nausea", "Metallic taste"},
			Warnings:     []string{"Take with meals", "Monitor kidney function"},
			SuitableFor:  []string{"Adults"},
			Rating:       4.6,
		},
		{
			Name:         "Atorvastatin 20mg",
			Description:  "Statin that lowers cholesterol and reduces the risk of heart disease.",
			Category:     string(entity.CategoryHeartCare),
			Dosage:       "20mg",
			Manufacturer: "Pfizer",
			Price:        decimal.NewFromInt(320),
			Stock:        60,
			SideEffects:  []string{"Muscle pain", "Digestive problems"},
			Warnings:     []string{"Avoid grapefruit juice", "Report unexplained muscle pain"},
			SuitableFor:  []string{"Adults"},
			Rating:       4.4,
		},
		{
			Name:         "Cough Syrup DX",
			Description:  "Dextromethorphan-based syrup for dry cough relief.",
			Category:     string(entity.CategoryColdCough),
			Dosage:       "10ml every 6 hours",
			Manufacturer: "Himalaya",
			Price:        decimal.NewFromInt(95),
			Stock:        200,
			SideEffects:  []string{"Drowsiness"},
			Warnings:     []string{"Do not drive after use"},
			SuitableFor:  []string{"Adults", "Children over 6"},
			Rating:       4.2,
		},
		{
			Name:         "Vitamin D3 1000IU",
			Description:  "Daily supplement supporting bone health and immune function.",
			Category:     string(entity.CategoryVitamins),
			Dosage:       "1000IU daily",
			Manufacturer: "Nature Made",
			Price:        decimal.NewFromInt(180),
			Stock:        300,
			SideEffects:  []string{},
			Warnings:     []string{"Do not exceed recommended dose"},
			SuitableFor:  []string{"Adults", "Elderly"},
			Rating:       4.7,
		},
		{
			Name:         "Hydrocortisone Cream 1%",
			Description:  "Topical cream for itching, redness and minor skin irritation.",
			Category:     string(entity.CategorySkinCare),
			Dosage:       "Apply thin layer twice daily",
			Manufacturer: "Cipla",
			Price:        decimal.NewFromInt(75),
			Stock:        120,
			SideEffects:  []string{"Mild burning at application site"},
			Warnings:     []string{"External use only", "Avoid contact with eyes"},
			SuitableFor:  []string{"Adults", "Children over 2"},
			Rating:       4.3,
		},
		{
			Name:         "Omeprazole 20mg",
			Description:  "Proton pump inhibitor for heartburn and acid reflux.",
			Category:     string(entity.CategoryDigestive),
			Dosage:       "20mg before breakfast",
			Manufacturer: "AstraZeneca",
			Price:        decimal.NewFromInt(150),
			Stock:        90,
			SideEffects:  []string{"Headache", "Abdominal pain"},
			Warnings:     []string{"Long-term use may affect B12 absorption"},
			SuitableFor:  []string{"Adults"},
			Rating:       4.5,
		},
		{
			Name:         "ORS Rehydration Salts",
			Description:  "Oral rehydration salts for fluid replacement during dehydration.",
			Category:     string(entity.CategoryOther),
			Dosage:       "1 sachet in 1L water",
			Manufacturer: "WHO Formula",
			Price:        decimal.NewFromInt(25),
			Stock:        500,
			SideEffects:  []string{},
			Warnings:     []string{"Use prepared solution within 24 hours"},
			SuitableFor:  []string{"Adults", "Children", "Elderly"},
			Rating:       4.8,
		},
	}

	return db.WithContext(ctx).Create(&medicines).Error
}
