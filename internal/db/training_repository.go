package db

import (
	"errors"

	"github.com/mfodor/fitplan/internal/models"
	"gorm.io/gorm"
)

type TrainingRepository struct {
	database *gorm.DB
}

func NewTrainingRepository(database *gorm.DB) *TrainingRepository {
	return &TrainingRepository{database: database}
}

func (repo *TrainingRepository) CountDays(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.TrainingDay{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListDayNames returns the user's day names in alphabetical order, the same
// order whether the list was just reloaded or a day was just created.
func (repo *TrainingRepository) ListDayNames(userID uint) ([]string, error) {
	names := make([]string, 0)
	if err := repo.database.Model(&models.TrainingDay{}).
		Where("user_id = ?", userID).
		Order("day_name").
		Pluck("day_name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (repo *TrainingRepository) DayExists(userID uint, dayName string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.TrainingDay{}).
		Where("user_id = ? AND day_name = ?", userID, dayName).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *TrainingRepository) FindDay(userID uint, dayName string) (models.TrainingDay, bool, error) {
	var day models.TrainingDay
	err := repo.database.Where("user_id = ? AND day_name = ?", userID, dayName).First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.TrainingDay{}, false, nil
	}
	if err != nil {
		return models.TrainingDay{}, false, err
	}
	return day, true, nil
}

func (repo *TrainingRepository) CreateDay(day *models.TrainingDay) error {
	return repo.database.Create(day).Error
}

// DeleteDayWithExercises removes the day and everything it owns in one
// transaction, so a crash between the two statements cannot orphan rows.
func (repo *TrainingRepository) DeleteDayWithExercises(dayID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("day_id = ?", dayID).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TrainingDay{}, dayID).Error
	})
}

func (repo *TrainingRepository) ListExercises(dayID uint) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.
		Where("day_id = ?", dayID).
		Order("id").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *TrainingRepository) CreateExercise(exercise *models.Exercise) error {
	return repo.database.Create(exercise).Error
}

func (repo *TrainingRepository) FindExerciseInDay(dayID uint, exerciseID uint) (models.Exercise, bool, error) {
	var exercise models.Exercise
	err := repo.database.Where("id = ? AND day_id = ?", exerciseID, dayID).First(&exercise).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Exercise{}, false, nil
	}
	if err != nil {
		return models.Exercise{}, false, err
	}
	return exercise, true, nil
}

func (repo *TrainingRepository) DeleteExercise(exerciseID uint) error {
	return repo.database.Delete(&models.Exercise{}, exerciseID).Error
}
