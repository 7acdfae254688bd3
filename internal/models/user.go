package models

const (
	SexMale   = "Férfi"
	SexFemale = "Nő"
)

// Activity tiers are persisted verbatim; existing database files carry this
// vocabulary.
const (
	ActivityMinimal  = "Csekély"
	ActivityLight    = "Mérsékelt"
	ActivityModerate = "Közepes"
	ActivityHigh     = "Átlagon felüli"
	ActivityVeryHigh = "Nagyon magas"
)

var activityFactors = map[string]float64{
	ActivityMinimal:  1.2,
	ActivityLight:    1.375,
	ActivityModerate: 1.55,
	ActivityHigh:     1.725,
	ActivityVeryHigh: 1.9,
}

// ActivityFactor returns the TDEE multiplier for a tier label.
func ActivityFactor(tier string) (float64, bool) {
	factor, ok := activityFactors[tier]
	return factor, ok
}

func ActivityTiers() []string {
	return []string{
		ActivityMinimal,
		ActivityLight,
		ActivityModerate,
		ActivityHigh,
		ActivityVeryHigh,
	}
}

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Surname  string `gorm:"not null"`
	Name     string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Age      int    `gorm:"not null"`
	Height   int    `gorm:"not null"`
	Weight   int    `gorm:"not null"`
	Sex      string `gorm:"not null"`
	Activity string `gorm:"not null"`
}
