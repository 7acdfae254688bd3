package services

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/mfodor/fitplan/internal/models"
)

type DietMealRepository interface {
	Create(entry *models.MealEntry) error
	ListByUserAndDate(userID uint, date string) ([]models.MealEntry, error)
	SumCaloriesByUserAndDate(userID uint, date string) (int, error)
}

type DietCatalogRepository interface {
	ListFoodsByCategory(category string) ([]models.CatalogFood, error)
	FindFood(category string, name string) (models.CatalogFood, bool, error)
}

// FoodOption is one catalog entry offered on the add-food screen, with the
// unit the amount is dosed in.
type FoodOption struct {
	Name           string
	CaloriesPer100 int
	Unit           string
}

// DailyMeals groups one day's entries by meal category.
type DailyMeals struct {
	Date       string
	ByCategory map[string][]models.MealEntry
}

type DietService struct {
	meals   DietMealRepository
	catalog DietCatalogRepository
}

func NewDietService(meals DietMealRepository, catalog DietCatalogRepository) *DietService {
	return &DietService{meals: meals, catalog: catalog}
}

// FoodOptions lists the reference foods for a catalog category.
func (service *DietService) FoodOptions(category string) ([]FoodOption, error) {
	if !models.IsFoodCategory(category) {
		return nil, validation("please choose a type")
	}
	foods, err := service.catalog.ListFoodsByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	unit := models.UnitForFoodCategory(category)
	options := make([]FoodOption, 0, len(foods))
	for _, food := range foods {
		options = append(options, FoodOption{
			Name:           food.Name,
			CaloriesPer100: food.CaloriesPer100,
			Unit:           unit,
		})
	}
	return options, nil
}

// LogMeal persists one food item. Catalog mode scales the per-100 rate by
// the amount; custom mode stores the entered calories verbatim with amount
// 0. The stored calories are always the absolute value for the entry.
func (service *DietService) LogMeal(userID uint, input MealInput) (models.MealEntry, error) {
	input, err := validateMealInput(input)
	if err != nil {
		return models.MealEntry{}, err
	}

	entry := models.MealEntry{
		UserID:   userID,
		Category: input.Category,
		Date:     input.Date,
	}

	if input.FoodCategory == models.CustomFoodCategory {
		calories, _ := strconv.Atoi(input.Amount)
		entry.FoodName = input.FoodName
		entry.Calories = calories
		entry.Amount = 0
	} else {
		food, found, err := service.catalog.FindFood(input.FoodCategory, input.FoodName)
		if err != nil {
			return models.MealEntry{}, fmt.Errorf("look up food: %w", err)
		}
		if !found {
			return models.MealEntry{}, notFound("food not found in the catalog")
		}
		amount, _ := strconv.Atoi(input.Amount)
		entry.FoodName = food.Name
		entry.Calories = int(math.Round(float64(food.CaloriesPer100) / 100 * float64(amount)))
		entry.Amount = float64(amount)
	}

	if err := service.meals.Create(&entry); err != nil {
		return models.MealEntry{}, fmt.Errorf("save meal: %w", err)
	}
	return entry, nil
}

// MealsForDate returns the user's entries for a calendar day grouped by
// category. An empty date means today.
func (service *DietService) MealsForDate(userID uint, date string) (DailyMeals, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return DailyMeals{}, err
	}

	entries, err := service.meals.ListByUserAndDate(userID, date)
	if err != nil {
		return DailyMeals{}, fmt.Errorf("load meals: %w", err)
	}

	grouped := make(map[string][]models.MealEntry, 4)
	for _, category := range models.MealCategories() {
		grouped[category] = []models.MealEntry{}
	}
	for _, entry := range entries {
		category := entry.Category
		if !models.IsMealCategory(category) {
			category = models.CategoryOther
		}
		grouped[category] = append(grouped[category], entry)
	}
	return DailyMeals{Date: date, ByCategory: grouped}, nil
}

// TotalCaloriesForDate sums the stored calories across all categories.
func (service *DietService) TotalCaloriesForDate(userID uint, date string) (int, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return 0, err
	}
	total, err := service.meals.SumCaloriesByUserAndDate(userID, date)
	if err != nil {
		return 0, fmt.Errorf("sum calories: %w", err)
	}
	return total, nil
}

func normalizeDate(date string) (string, error) {
	if date == "" {
		return time.Now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", validation("invalid date")
	}
	return date, nil
}
