package services

// Screens are plain tagged values carrying their parameters, and the back
// stack stores the values themselves, so re-entering a screen never replays
// stale captured state.

type ScreenKind string

const (
	ScreenWelcome       ScreenKind = "welcome"
	ScreenLogin         ScreenKind = "login"
	ScreenRegisterStep1 ScreenKind = "register_step1"
	ScreenRegisterStep2 ScreenKind = "register_step2"
	ScreenDiet          ScreenKind = "diet"
	ScreenTraining      ScreenKind = "training"
	ScreenProfile       ScreenKind = "profile"
)

// Screen is one navigable screen with its parameters: the diet screen
// carries the date being viewed, the training screen the selected day.
type Screen struct {
	Kind ScreenKind `json:"kind"`
	Date string     `json:"date,omitempty"`
	Day  string     `json:"day,omitempty"`
}

// NavigationState is the back-stack of one screen session. The zero value
// starts on the welcome screen with an empty stack.
type NavigationState struct {
	current Screen
	stack   []Screen
}

func NewNavigationState() *NavigationState {
	return &NavigationState{current: Screen{Kind: ScreenWelcome}}
}

func (nav *NavigationState) Current() Screen {
	return nav.current
}

// NavigateTo replaces the current screen without touching the stack.
func (nav *NavigationState) NavigateTo(screen Screen) {
	nav.current = screen
}

// PushAndNavigate records the caller's screen before moving on, so a back
// affordance can return to it.
func (nav *NavigationState) PushAndNavigate(screen Screen) {
	nav.stack = append(nav.stack, nav.current)
	nav.current = screen
}

// Back pops the stack and re-enters the popped screen. With an empty stack
// it reports false and stays put.
func (nav *NavigationState) Back() (Screen, bool) {
	if len(nav.stack) == 0 {
		return nav.current, false
	}
	last := len(nav.stack) - 1
	nav.current = nav.stack[last]
	nav.stack = nav.stack[:last]
	return nav.current, true
}

// Reset drops the stack and lands on the given screen, used at login and
// logout boundaries.
func (nav *NavigationState) Reset(screen Screen) {
	nav.stack = nav.stack[:0]
	nav.current = screen
}

func (nav *NavigationState) Depth() int {
	return len(nav.stack)
}
