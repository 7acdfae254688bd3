package db

import (
	"github.com/mfodor/fitplan/internal/models"
	"gorm.io/gorm"
)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

func (repo *MealRepository) Create(entry *models.MealEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *MealRepository) ListByUserAndDate(userID uint, date string) ([]models.MealEntry, error) {
	entries := make([]models.MealEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Order("id").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MealRepository) SumCaloriesByUserAndDate(userID uint, date string) (int, error) {
	var total int64
	if err := repo.database.Model(&models.MealEntry{}).
		Where("user_id = ? AND date = ?", userID, date).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}
