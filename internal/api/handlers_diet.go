package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfodor/fitplan/internal/models"
	"github.com/mfodor/fitplan/internal/services"
)

// DietScreen renders the calorie meter state for a date: the daily target,
// the meals grouped by category, the running total and the meter tier.
func (handler *Handler) DietScreen(c *fiber.Ctx) error {
	session := currentSession(c)
	user, err := handler.identity.ProfileByEmail(session.Email)
	if err != nil {
		return respondServiceError(c, err)
	}

	target, err := services.DailyEnergyTarget(user)
	if err != nil {
		return respondServiceError(c, err)
	}

	meals, err := handler.diet.MealsForDate(session.UserID, c.Query("date"))
	if err != nil {
		return respondServiceError(c, err)
	}
	total, err := handler.diet.TotalCaloriesForDate(session.UserID, meals.Date)
	if err != nil {
		return respondServiceError(c, err)
	}

	session.Nav.NavigateTo(services.Screen{Kind: services.ScreenDiet, Date: meals.Date})
	return c.JSON(fiber.Map{
		"date":            meals.Date,
		"target":          int(target),
		"total":           total,
		"status":          services.CalorieStatusFor(total, target),
		"meals":           meals.ByCategory,
		"meal_categories": models.MealCategories(),
	})
}

// FoodOptions lists the reference foods of one catalog category for the
// add-food form.
func (handler *Handler) FoodOptions(c *fiber.Ctx) error {
	options, err := handler.diet.FoodOptions(c.Query("category"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"foods": options,
		"unit":  models.UnitForFoodCategory(c.Query("category")),
	})
}

// LogMeal adds one food item and reports the refreshed meter state.
func (handler *Handler) LogMeal(c *fiber.Ctx) error {
	session := currentSession(c)
	input := services.MealInput{
		Category:     c.FormValue("category"),
		FoodCategory: c.FormValue("food_category"),
		FoodName:     c.FormValue("food_name"),
		Amount:       c.FormValue("amount"),
		Date:         c.FormValue("date"),
	}
	entry, err := handler.diet.LogMeal(session.UserID, input)
	if err != nil {
		return respondServiceError(c, err)
	}

	user, err := handler.identity.ProfileByEmail(session.Email)
	if err != nil {
		return respondServiceError(c, err)
	}
	target, err := services.DailyEnergyTarget(user)
	if err != nil {
		return respondServiceError(c, err)
	}
	total, err := handler.diet.TotalCaloriesForDate(session.UserID, entry.Date)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"entry": fiber.Map{
			"food_name": entry.FoodName,
			"calories":  entry.Calories,
			"amount":    entry.Amount,
			"category":  entry.Category,
			"date":      entry.Date,
		},
		"total":  total,
		"target": int(target),
		"status": services.CalorieStatusFor(total, target),
	})
}
