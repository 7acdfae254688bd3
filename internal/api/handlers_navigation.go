package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfodor/fitplan/internal/services"
)

var navigableScreens = map[services.ScreenKind]bool{
	services.ScreenWelcome:       true,
	services.ScreenLogin:         true,
	services.ScreenRegisterStep1: true,
	services.ScreenDiet:          true,
	services.ScreenTraining:      true,
	services.ScreenProfile:       true,
}

// NavState reports the current screen and the back-stack depth.
func (handler *Handler) NavState(c *fiber.Ctx) error {
	session := currentSession(c)
	return c.JSON(fiber.Map{
		"screen": session.Nav.Current(),
		"depth":  session.Nav.Depth(),
	})
}

// NavGo enters a screen, optionally recording the current one for a back
// affordance. The register step-2 screen is reachable only through step 1,
// so it cannot be jumped to directly.
func (handler *Handler) NavGo(c *fiber.Ctx) error {
	session := currentSession(c)
	kind := services.ScreenKind(c.FormValue("screen"))
	if !navigableScreens[kind] {
		return apiError(c, fiber.StatusBadRequest, "unknown screen")
	}

	screen := services.Screen{
		Kind: kind,
		Date: c.FormValue("date"),
		Day:  c.FormValue("day"),
	}
	if c.FormValue("push") == "true" {
		session.Nav.PushAndNavigate(screen)
	} else {
		session.Nav.NavigateTo(screen)
	}
	return c.JSON(fiber.Map{"screen": session.Nav.Current()})
}

// NavBack pops the stack and re-enters the previous screen; with an empty
// stack it stays where it is.
func (handler *Handler) NavBack(c *fiber.Ctx) error {
	session := currentSession(c)
	screen, moved := session.Nav.Back()
	if moved && screen.Kind != services.ScreenRegisterStep1 && screen.Kind != services.ScreenRegisterStep2 {
		// leaving the registration flow abandons the buffered step-1 data
		handler.identity.AbortRegistration(session.ID)
	}
	return c.JSON(fiber.Map{
		"screen": screen,
		"moved":  moved,
	})
}
