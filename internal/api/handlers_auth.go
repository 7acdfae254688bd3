package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfodor/fitplan/internal/services"
)

// RegisterStep1 validates and buffers the identity fields, then moves the
// screen session to the second form.
func (handler *Handler) RegisterStep1(c *fiber.Ctx) error {
	session := currentSession(c)
	input := services.RegistrationStep1{
		Surname:         c.FormValue("surname"),
		Name:            c.FormValue("name"),
		Email:           c.FormValue("email"),
		Password:        c.FormValue("password"),
		PasswordConfirm: c.FormValue("password_confirm"),
	}
	if err := handler.identity.StartRegistration(session.ID, input); err != nil {
		return respondServiceError(c, err)
	}

	session.Nav.PushAndNavigate(services.Screen{Kind: services.ScreenRegisterStep2})
	return c.JSON(fiber.Map{
		"message": "please fill in your physical details",
		"screen":  session.Nav.Current(),
	})
}

// RegisterStep2 combines the buffered step-1 data with the physical fields
// and creates the account, sending the user to the login screen.
func (handler *Handler) RegisterStep2(c *fiber.Ctx) error {
	session := currentSession(c)
	input := services.RegistrationStep2{
		Age:      c.FormValue("age"),
		Height:   c.FormValue("height"),
		Weight:   c.FormValue("weight"),
		Sex:      c.FormValue("sex"),
		Activity: c.FormValue("activity"),
	}
	if _, err := handler.identity.CompleteRegistration(session.ID, input); err != nil {
		return respondServiceError(c, err)
	}

	session.Nav.Reset(services.Screen{Kind: services.ScreenLogin})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "registration successful",
		"screen":  session.Nav.Current(),
	})
}

// Login establishes the session on an exact credential match and lands on
// the diet screen.
func (handler *Handler) Login(c *fiber.Ctx) error {
	session := currentSession(c)
	user, err := handler.identity.Login(c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		return respondServiceError(c, err)
	}
	if err := handler.setAuthCookie(c, user.ID, user.Email); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	session.BeginUser(user.ID, user.Email)
	return c.JSON(fiber.Map{
		"message": "login successful",
		"screen":  session.Nav.Current(),
	})
}

// Logout clears the identity and returns to the welcome screen.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	session := currentSession(c)
	handler.clearAuthCookie(c)
	handler.identity.AbortRegistration(session.ID)
	session.EndUser()
	return c.JSON(fiber.Map{
		"message": "logged out",
		"screen":  session.Nav.Current(),
	})
}
