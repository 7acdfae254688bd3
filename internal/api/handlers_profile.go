package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfodor/fitplan/internal/models"
	"github.com/mfodor/fitplan/internal/services"
)

func (handler *Handler) Profile(c *fiber.Ctx) error {
	session := currentSession(c)
	user, err := handler.identity.ProfileByEmail(session.Email)
	if err != nil {
		return respondServiceError(c, err)
	}

	session.Nav.NavigateTo(services.Screen{Kind: services.ScreenProfile})
	return c.JSON(fiber.Map{
		"surname":        user.Surname,
		"name":           user.Name,
		"email":          user.Email,
		"age":            user.Age,
		"height":         user.Height,
		"weight":         user.Weight,
		"sex":            user.Sex,
		"activity":       user.Activity,
		"activity_tiers": models.ActivityTiers(),
	})
}

// UpdateProfile rewrites every field except the email.
func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	session := currentSession(c)
	input := services.ProfileUpdate{
		Surname:  c.FormValue("surname"),
		Name:     c.FormValue("name"),
		Age:      c.FormValue("age"),
		Height:   c.FormValue("height"),
		Weight:   c.FormValue("weight"),
		Sex:      c.FormValue("sex"),
		Activity: c.FormValue("activity"),
	}
	if err := handler.identity.UpdateProfile(session.Email, input); err != nil {
		return respondServiceError(c, err)
	}

	session.Nav.NavigateTo(services.Screen{Kind: services.ScreenProfile})
	return c.JSON(fiber.Map{
		"message": "profile updated",
		"screen":  session.Nav.Current(),
	})
}
