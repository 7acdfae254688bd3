package services

import (
	"fmt"
	"strings"

	"github.com/mfodor/fitplan/internal/models"
)

// AddDayEntryLabel is the synthetic trailing list entry that opens the
// add-day flow. It is an affordance, never a day.
const AddDayEntryLabel = "+ Új nap"

type TrainingDayRepository interface {
	CountDays(userID uint) (int64, error)
	ListDayNames(userID uint) ([]string, error)
	DayExists(userID uint, dayName string) (bool, error)
	FindDay(userID uint, dayName string) (models.TrainingDay, bool, error)
	CreateDay(day *models.TrainingDay) error
	DeleteDayWithExercises(dayID uint) error
	ListExercises(dayID uint) ([]models.Exercise, error)
	CreateExercise(exercise *models.Exercise) error
	FindExerciseInDay(dayID uint, exerciseID uint) (models.Exercise, bool, error)
	DeleteExercise(exerciseID uint) error
}

type TrainingCatalogRepository interface {
	ListExercisesByMuscleGroup(muscleGroup string) ([]models.CatalogExercise, error)
	FindExercise(muscleGroup string, name string) (models.CatalogExercise, bool, error)
}

type TrainingService struct {
	training TrainingDayRepository
	catalog  TrainingCatalogRepository
}

func NewTrainingService(training TrainingDayRepository, catalog TrainingCatalogRepository) *TrainingService {
	return &TrainingService{training: training, catalog: catalog}
}

// ListDays returns the user's day names in alphabetical order, without the
// synthetic add entry; the screen layer appends that.
func (service *TrainingService) ListDays(userID uint) ([]string, error) {
	names, err := service.training.ListDayNames(userID)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	return names, nil
}

// AddDay creates a named training day: at most 7 per user, name non-empty,
// at most 10 characters, unique per user.
func (service *TrainingService) AddDay(userID uint, rawName string) (models.TrainingDay, error) {
	count, err := service.training.CountDays(userID)
	if err != nil {
		return models.TrainingDay{}, fmt.Errorf("count days: %w", err)
	}
	if count >= models.MaxTrainingDays {
		return models.TrainingDay{}, validation("a maximum of 7 days can be created")
	}

	name := strings.TrimSpace(rawName)
	if name == "" {
		return models.TrainingDay{}, validation("please enter a day name")
	}
	if len([]rune(name)) > models.MaxDayNameLength {
		return models.TrainingDay{}, validation("the day name cannot be longer than 10 characters")
	}

	exists, err := service.training.DayExists(userID, name)
	if err != nil {
		return models.TrainingDay{}, fmt.Errorf("check day name: %w", err)
	}
	if exists {
		return models.TrainingDay{}, validation("a day with this name already exists")
	}

	day := models.TrainingDay{UserID: userID, DayName: name}
	if err := service.training.CreateDay(&day); err != nil {
		return models.TrainingDay{}, fmt.Errorf("save day: %w", err)
	}
	return day, nil
}

// DeleteDay removes the day and all of its exercises. The caller passes the
// currently selected day; no selection and the synthetic entry are both
// rejected.
func (service *TrainingService) DeleteDay(userID uint, dayName string) error {
	if dayName == "" || dayName == AddDayEntryLabel {
		return validation("no day selected")
	}
	day, found, err := service.training.FindDay(userID, dayName)
	if err != nil {
		return fmt.Errorf("look up day: %w", err)
	}
	if !found {
		return notFound("the selected day no longer exists")
	}
	if err := service.training.DeleteDayWithExercises(day.ID); err != nil {
		return fmt.Errorf("delete day: %w", err)
	}
	return nil
}

// LoadPlan returns the exercises of a day. A day that no longer exists
// yields an empty plan rather than an error, so reloads stay quiet.
func (service *TrainingService) LoadPlan(userID uint, dayName string) ([]models.Exercise, error) {
	day, found, err := service.training.FindDay(userID, dayName)
	if err != nil {
		return nil, fmt.Errorf("look up day: %w", err)
	}
	if !found {
		return []models.Exercise{}, nil
	}
	exercises, err := service.training.ListExercises(day.ID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// CatalogOptions lists the reference exercises for a muscle group.
func (service *TrainingService) CatalogOptions(muscleGroup string) ([]models.CatalogExercise, error) {
	if !models.IsMuscleGroup(muscleGroup) {
		return nil, validation("unknown muscle group")
	}
	exercises, err := service.catalog.ListExercisesByMuscleGroup(muscleGroup)
	if err != nil {
		return nil, fmt.Errorf("list catalog exercises: %w", err)
	}
	return exercises, nil
}

// AddExercise resolves the catalog entry and the day, then inserts the
// exercise with the catalog's equipment, difficulty and description copied
// onto the row.
func (service *TrainingService) AddExercise(userID uint, dayName string, input ExerciseInput) (models.Exercise, error) {
	if dayName == "" || dayName == AddDayEntryLabel {
		return models.Exercise{}, validation("choose or create a day first")
	}
	if input.Name == "" {
		return models.Exercise{}, validation("please choose an exercise")
	}
	if !models.IsMuscleGroup(input.MuscleGroup) {
		return models.Exercise{}, validation("unknown muscle group")
	}

	sets, ok := parseOptionalInt(input.Sets)
	if !ok {
		return models.Exercise{}, validation("values must be numeric")
	}
	reps, ok := parseOptionalInt(input.Reps)
	if !ok {
		return models.Exercise{}, validation("values must be numeric")
	}
	weight, ok := parseOptionalFloat(input.Weight)
	if !ok {
		return models.Exercise{}, validation("values must be numeric")
	}

	catalogEntry, found, err := service.catalog.FindExercise(input.MuscleGroup, input.Name)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("look up catalog exercise: %w", err)
	}
	if !found {
		return models.Exercise{}, notFound("exercise not found in the catalog")
	}

	day, found, err := service.training.FindDay(userID, dayName)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("look up day: %w", err)
	}
	if !found {
		return models.Exercise{}, notFound("the selected day no longer exists")
	}

	exercise := models.Exercise{
		DayID:       day.ID,
		Name:        catalogEntry.Name,
		Sets:        sets,
		Reps:        reps,
		Weight:      weight,
		Equipment:   catalogEntry.Equipment,
		Difficulty:  catalogEntry.Difficulty,
		Description: catalogEntry.Description,
	}
	if err := service.training.CreateExercise(&exercise); err != nil {
		return models.Exercise{}, fmt.Errorf("save exercise: %w", err)
	}
	return exercise, nil
}

// DeleteExercise removes one exercise row by id, scoped to the selected
// day. Deleting by row identity keeps duplicate entries of the same
// exercise distinguishable.
func (service *TrainingService) DeleteExercise(userID uint, dayName string, exerciseID uint) error {
	if dayName == "" || dayName == AddDayEntryLabel {
		return validation("no day selected")
	}
	if exerciseID == 0 {
		return validation("please select an exercise to delete")
	}
	day, found, err := service.training.FindDay(userID, dayName)
	if err != nil {
		return fmt.Errorf("look up day: %w", err)
	}
	if !found {
		return notFound("the selected day no longer exists")
	}
	_, found, err = service.training.FindExerciseInDay(day.ID, exerciseID)
	if err != nil {
		return fmt.Errorf("look up exercise: %w", err)
	}
	if !found {
		return notFound("exercise not found")
	}
	if err := service.training.DeleteExercise(exerciseID); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}
