package database

import (
	"fmt"

	"trivia-api-backend/internal/config"
	"trivia-api-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, log *zap.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	log.Info("database connected", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	return db
}

func AutoMigrate(db *gorm.DB, log *zap.Logger) {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Question{},
	)
	if err != nil {
		log.Fatal("failed to auto-migrate", zap.Error(err))
	}
	log.Info("database migrated")
}
