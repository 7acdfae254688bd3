package db

import (
	"errors"

	"github.com/mfodor/fitplan/internal/models"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	database *gorm.DB
}

func NewCatalogRepository(database *gorm.DB) *CatalogRepository {
	return &CatalogRepository{database: database}
}

// SeedIfEmpty loads the builtin reference catalogs on first start. The
// catalogs are read-only afterwards.
func (repo *CatalogRepository) SeedIfEmpty() error {
	var foodCount int64
	if err := repo.database.Model(&models.CatalogFood{}).Count(&foodCount).Error; err != nil {
		return err
	}
	if foodCount == 0 {
		foods := models.DefaultCatalogFoods()
		if err := repo.database.Create(&foods).Error; err != nil {
			return err
		}
	}

	var exerciseCount int64
	if err := repo.database.Model(&models.CatalogExercise{}).Count(&exerciseCount).Error; err != nil {
		return err
	}
	if exerciseCount == 0 {
		exercises := models.DefaultCatalogExercises()
		if err := repo.database.Create(&exercises).Error; err != nil {
			return err
		}
	}

	return nil
}

func (repo *CatalogRepository) ListFoodsByCategory(category string) ([]models.CatalogFood, error) {
	foods := make([]models.CatalogFood, 0)
	if err := repo.database.
		Where("category = ?", category).
		Order("name").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (repo *CatalogRepository) FindFood(category string, name string) (models.CatalogFood, bool, error) {
	var food models.CatalogFood
	err := repo.database.Where("category = ? AND name = ?", category, name).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CatalogFood{}, false, nil
	}
	if err != nil {
		return models.CatalogFood{}, false, err
	}
	return food, true, nil
}

func (repo *CatalogRepository) ListExercisesByMuscleGroup(muscleGroup string) ([]models.CatalogExercise, error) {
	exercises := make([]models.CatalogExercise, 0)
	if err := repo.database.
		Where("muscle_group = ?", muscleGroup).
		Order("name").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *CatalogRepository) FindExercise(muscleGroup string, name string) (models.CatalogExercise, bool, error) {
	var exercise models.CatalogExercise
	err := repo.database.Where("muscle_group = ? AND name = ?", muscleGroup, name).First(&exercise).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CatalogExercise{}, false, nil
	}
	if err != nil {
		return models.CatalogExercise{}, false, err
	}
	return exercise, true, nil
}
