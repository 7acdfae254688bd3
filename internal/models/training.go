package models

const (
	MaxTrainingDays  = 7
	MaxDayNameLength = 10
)

type TrainingDay struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  uint   `gorm:"not null;uniqueIndex:uidx_user_day"`
	DayName string `gorm:"not null;uniqueIndex:uidx_user_day"`
}

// Exercise belongs to exactly one training day. Equipment, difficulty and
// description are copied from the catalog at insert time. Sets, reps and
// weight are nullable: a nil pointer stands for a field the user left
// empty, which is distinct from both a value and a rejected input.
type Exercise struct {
	ID          uint     `gorm:"primaryKey"`
	DayID       uint     `gorm:"not null;index"`
	Name        string   `gorm:"column:exercise_name;not null"`
	Sets        *int     `gorm:"column:sets"`
	Reps        *int     `gorm:"column:reps"`
	Weight      *float64 `gorm:"column:weight"`
	Equipment   string
	Difficulty  string
	Description string
}
