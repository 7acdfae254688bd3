package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Use(handler.ScreenSession)

	app.Get("/healthz", handler.Health)

	auth := app.Group("/api/auth")
	auth.Post("/register/step1", handler.RegisterStep1)
	auth.Post("/register/step2", handler.RegisterStep2)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	nav := app.Group("/api/nav")
	nav.Get("/", handler.NavState)
	nav.Post("/go", handler.NavGo)
	nav.Post("/back", handler.NavBack)

	profile := app.Group("/api/profile", handler.AuthRequired)
	profile.Get("/", handler.Profile)
	profile.Post("/", handler.UpdateProfile)

	diet := app.Group("/api/diet", handler.AuthRequired)
	diet.Get("/", handler.DietScreen)
	diet.Get("/foods", handler.FoodOptions)
	diet.Post("/meals", handler.LogMeal)

	training := app.Group("/api/training", handler.AuthRequired)
	training.Get("/", handler.TrainingScreen)
	training.Post("/days/select", handler.SelectDay)
	training.Post("/days", handler.AddDay)
	training.Delete("/days/current", handler.DeleteDay)
	training.Get("/catalog", handler.ExerciseOptions)
	training.Post("/exercises", handler.AddExercise)
	training.Delete("/exercises", handler.DeleteExercise)
}
