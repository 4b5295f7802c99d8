package database

import (
	"trivia-api-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed inserts the default category set on an empty database. Categories have
// no create endpoint, so a fresh install would otherwise have nothing to
// attach questions to.
func Seed(db *gorm.DB, log *zap.Logger) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		log.Warn("category count failed, skipping seed", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	defaultCategories := []models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "Geography"},
		{Type: "History"},
		{Type: "Entertainment"},
		{Type: "Sports"},
	}
	if err := db.Create(&defaultCategories).Error; err != nil {
		log.Warn("category seed failed", zap.Error(err))
		return
	}
	log.Info("seeded default categories", zap.Int("count", len(defaultCategories)))
}
