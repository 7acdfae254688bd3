package services

import (
	"github.com/mfodor/fitplan/internal/models"
)

// Calorie meter states for a day's total against the daily target. Lower
// bounds are inclusive: warning starts at exactly 75%, over at exactly 100%.
const (
	CalorieStatusNormal  = "normal"
	CalorieStatusWarning = "warning"
	CalorieStatusOver    = "over"
)

// BasalMetabolicRate computes the Mifflin-St Jeor estimate. An unrecognized
// sex on the profile is a rejected input, never a silent zero.
func BasalMetabolicRate(user models.User) (float64, error) {
	base := 10*float64(user.Weight) + 6.25*float64(user.Height) - 5*float64(user.Age)
	switch user.Sex {
	case models.SexMale:
		return base + 5, nil
	case models.SexFemale:
		return base - 161, nil
	default:
		return 0, validation("unrecognized sex on profile")
	}
}

// DailyEnergyTarget is the BMR scaled by the profile's activity tier.
func DailyEnergyTarget(user models.User) (float64, error) {
	bmr, err := BasalMetabolicRate(user)
	if err != nil {
		return 0, err
	}
	factor, ok := models.ActivityFactor(user.Activity)
	if !ok {
		return 0, validation("unrecognized activity level on profile")
	}
	return bmr * factor, nil
}

func CalorieStatusFor(totalCalories int, target float64) string {
	total := float64(totalCalories)
	switch {
	case total >= target:
		return CalorieStatusOver
	case total >= target*3/4:
		return CalorieStatusWarning
	default:
		return CalorieStatusNormal
	}
}
