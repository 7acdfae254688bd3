package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mfodor/fitplan/internal/models"
	"github.com/mfodor/fitplan/internal/services"
)

type dayListEntry struct {
	Name      string `json:"name"`
	Synthetic bool   `json:"synthetic"`
	Selected  bool   `json:"selected"`
}

func (handler *Handler) dayList(session *services.Session) ([]dayListEntry, error) {
	names, err := handler.training.ListDays(session.UserID)
	if err != nil {
		return nil, err
	}
	entries := make([]dayListEntry, 0, len(names)+1)
	for _, name := range names {
		entries = append(entries, dayListEntry{
			Name:     name,
			Selected: name == session.CurrentDay,
		})
	}
	entries = append(entries, dayListEntry{Name: services.AddDayEntryLabel, Synthetic: true})
	return entries, nil
}

// TrainingScreen shows the day selector and the plan of the selected day.
func (handler *Handler) TrainingScreen(c *fiber.Ctx) error {
	session := currentSession(c)
	days, err := handler.dayList(session)
	if err != nil {
		return respondServiceError(c, err)
	}

	exercises := []models.Exercise{}
	if session.CurrentDay != "" {
		exercises, err = handler.training.LoadPlan(session.UserID, session.CurrentDay)
		if err != nil {
			return respondServiceError(c, err)
		}
	}

	session.Nav.NavigateTo(services.Screen{Kind: services.ScreenTraining, Day: session.CurrentDay})
	return c.JSON(fiber.Map{
		"days":          days,
		"current_day":   session.CurrentDay,
		"exercises":     exercises,
		"muscle_groups": models.MuscleGroups(),
	})
}

// SelectDay switches the current day and loads its plan. The synthetic list
// entry is the add-day affordance, so selecting it only signals that the
// add flow should open.
func (handler *Handler) SelectDay(c *fiber.Ctx) error {
	session := currentSession(c)
	name := c.FormValue("day")
	if name == services.AddDayEntryLabel {
		return c.JSON(fiber.Map{"action": "add_day"})
	}
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "no day selected")
	}

	exercises, err := handler.training.LoadPlan(session.UserID, name)
	if err != nil {
		return respondServiceError(c, err)
	}

	session.CurrentDay = name
	session.Nav.NavigateTo(services.Screen{Kind: services.ScreenTraining, Day: name})
	return c.JSON(fiber.Map{
		"current_day": name,
		"exercises":   exercises,
	})
}

// AddDay creates a day and auto-selects it.
func (handler *Handler) AddDay(c *fiber.Ctx) error {
	session := currentSession(c)
	day, err := handler.training.AddDay(session.UserID, c.FormValue("day"))
	if err != nil {
		return respondServiceError(c, err)
	}

	session.CurrentDay = day.DayName
	session.Nav.NavigateTo(services.Screen{Kind: services.ScreenTraining, Day: day.DayName})

	days, err := handler.dayList(session)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "day created",
		"days":        days,
		"current_day": session.CurrentDay,
	})
}

// DeleteDay removes the currently selected day with all of its exercises
// and clears the selection.
func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	session := currentSession(c)
	if err := handler.training.DeleteDay(session.UserID, session.CurrentDay); err != nil {
		return respondServiceError(c, err)
	}

	session.CurrentDay = ""
	session.Nav.NavigateTo(services.Screen{Kind: services.ScreenTraining})

	days, err := handler.dayList(session)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":     "day deleted",
		"days":        days,
		"current_day": "",
		"exercises":   []models.Exercise{},
	})
}

// ExerciseOptions lists the reference exercises for a muscle group.
func (handler *Handler) ExerciseOptions(c *fiber.Ctx) error {
	options, err := handler.training.CatalogOptions(c.Query("muscle_group"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"exercises": options})
}

// AddExercise inserts a catalog exercise into the selected day's plan.
func (handler *Handler) AddExercise(c *fiber.Ctx) error {
	session := currentSession(c)
	input := services.ExerciseInput{
		MuscleGroup: c.FormValue("muscle_group"),
		Name:        c.FormValue("exercise"),
		Sets:        c.FormValue("sets"),
		Reps:        c.FormValue("reps"),
		Weight:      c.FormValue("weight"),
	}
	if _, err := handler.training.AddExercise(session.UserID, session.CurrentDay, input); err != nil {
		return respondServiceError(c, err)
	}

	exercises, err := handler.training.LoadPlan(session.UserID, session.CurrentDay)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "exercise added",
		"exercises": exercises,
	})
}

// DeleteExercise removes one plan row by its id.
func (handler *Handler) DeleteExercise(c *fiber.Ctx) error {
	session := currentSession(c)
	exerciseID, err := strconv.ParseUint(c.FormValue("exercise_id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "please select an exercise to delete")
	}
	if err := handler.training.DeleteExercise(session.UserID, session.CurrentDay, uint(exerciseID)); err != nil {
		return respondServiceError(c, err)
	}

	exercises, err := handler.training.LoadPlan(session.UserID, session.CurrentDay)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":   "exercise deleted",
		"exercises": exercises,
	})
}
