package services

import "sync"

// Session is the per-screen-session state: the logged-in user, the training
// day being edited, and the navigation stack. A session exists before login
// so the welcome/register screens can navigate too.
type Session struct {
	ID         string
	UserID     uint
	Email      string
	CurrentDay string // empty when no day is selected
	Nav        *NavigationState
}

func (session *Session) LoggedIn() bool {
	return session.UserID != 0
}

// BeginUser attaches the logged-in identity and lands on the diet screen.
func (session *Session) BeginUser(userID uint, email string) {
	session.UserID = userID
	session.Email = email
	session.CurrentDay = ""
	session.Nav.Reset(Screen{Kind: ScreenDiet})
}

// EndUser clears the identity and returns to the welcome screen.
func (session *Session) EndUser() {
	session.UserID = 0
	session.Email = ""
	session.CurrentDay = ""
	session.Nav.Reset(Screen{Kind: ScreenWelcome})
}

// SessionManager hands out sessions keyed by the screen-session cookie.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// Obtain returns the session for an id, creating it on first sight.
func (manager *SessionManager) Obtain(sessionID string) *Session {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if session, ok := manager.sessions[sessionID]; ok {
		return session
	}
	session := &Session{ID: sessionID, Nav: NewNavigationState()}
	manager.sessions[sessionID] = session
	return session
}

func (manager *SessionManager) Drop(sessionID string) {
	manager.mu.Lock()
	delete(manager.sessions, sessionID)
	manager.mu.Unlock()
}
