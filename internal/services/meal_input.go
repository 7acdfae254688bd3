package services

import (
	"strconv"
	"time"

	"github.com/mfodor/fitplan/internal/models"
)

const dateLayout = "2006-01-02"

// MealInput is one "add food" form submission. FoodCategory selects a
// reference catalog category or the custom marker; in custom mode Amount
// carries the calorie count entered by hand.
type MealInput struct {
	Category     string // meal slot tag (breakfast_table, ...)
	FoodCategory string // catalog category or models.CustomFoodCategory
	FoodName     string
	Amount       string
	Date         string
}

// validateMealInput normalizes the date and checks the form fields in entry
// order: first the chosen type, then the mode-specific fields.
func validateMealInput(input MealInput) (MealInput, error) {
	if !models.IsMealCategory(input.Category) {
		return MealInput{}, validation("unknown meal category")
	}
	if input.FoodCategory == "" {
		return MealInput{}, validation("please choose a type")
	}
	if input.FoodCategory != models.CustomFoodCategory && !models.IsFoodCategory(input.FoodCategory) {
		return MealInput{}, validation("please choose a type")
	}

	if input.FoodCategory == models.CustomFoodCategory {
		if input.FoodName == "" {
			return MealInput{}, validation("please enter the food name")
		}
		if !isPositiveInteger(input.Amount) {
			return MealInput{}, validation("please enter a valid calorie value")
		}
	} else {
		if input.FoodName == "" {
			return MealInput{}, validation("please choose a food")
		}
		if !isPositiveInteger(input.Amount) {
			return MealInput{}, validation("please enter a valid amount")
		}
	}

	if input.Date == "" {
		input.Date = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return MealInput{}, validation("invalid date")
	}
	return input, nil
}

func isPositiveInteger(raw string) bool {
	if !isDigits(raw) {
		return false
	}
	value, err := strconv.Atoi(raw)
	return err == nil && value > 0
}
