package services

import (
	"strconv"
	"strings"
)

// ExerciseInput is one "add exercise" form submission. Sets, reps and
// weight are optional: an empty string persists as an empty (NULL) field,
// a non-numeric string is rejected, a numeric one is stored. All three
// states are distinct.
type ExerciseInput struct {
	MuscleGroup string
	Name        string
	Sets        string
	Reps        string
	Weight      string
}

func parseOptionalInt(raw string) (*int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, true
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, false
	}
	return &value, true
}

func parseOptionalFloat(raw string) (*float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, true
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, false
	}
	return &value, true
}
