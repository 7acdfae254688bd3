package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mfodor/fitplan/internal/services"
)

const contextSessionKey = "screen_session"

// ScreenSession attaches the screen session (navigation stack, selected
// training day, pending registration) to the request, minting the session
// cookie on first contact. The session exists before login too.
func (handler *Handler) ScreenSession(c *fiber.Ctx) error {
	sessionID := c.Cookies(sessionCookieName)
	if sessionID == "" {
		sessionID = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookieName,
			Value:    sessionID,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})
	}
	c.Locals(contextSessionKey, handler.sessions.Obtain(sessionID))
	return c.Next()
}

func currentSession(c *fiber.Ctx) *services.Session {
	session, _ := c.Locals(contextSessionKey).(*services.Session)
	return session
}

// AuthRequired gates the logged-in screens. Identity comes from the auth
// cookie; a valid token re-populates a fresh session after a restart.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	claims, err := handler.parseAuthCookie(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "please log in first")
	}

	session := currentSession(c)
	if session != nil && session.UserID != claims.UserID {
		session.BeginUser(claims.UserID, claims.Email)
	}
	return c.Next()
}
