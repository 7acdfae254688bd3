package models

// Meal category tags as persisted in users_meals.table_name. Existing
// database files use these names, so they are part of the on-disk contract.
const (
	CategoryBreakfast = "breakfast_table"
	CategoryLunch     = "lunch_table"
	CategoryDinner    = "dinner_table"
	CategoryOther     = "other_table"
)

func MealCategories() []string {
	return []string{CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryOther}
}

func IsMealCategory(tag string) bool {
	switch tag {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryOther:
		return true
	}
	return false
}

// MealEntry is one logged food item. Calories hold the already-scaled
// absolute value for the entry, never a per-100 rate. Amount is 0 for
// custom items.
type MealEntry struct {
	ID       uint    `gorm:"primaryKey"`
	UserID   uint    `gorm:"not null;index"`
	Category string  `gorm:"column:table_name;not null"`
	FoodName string  `gorm:"not null"`
	Calories int     `gorm:"not null"`
	Amount   float64 `gorm:"not null"`
	Date     string  `gorm:"type:text;not null;index"`
}

func (MealEntry) TableName() string {
	return "users_meals"
}
