package models

// The reference catalogs are read-only seed data, not user-owned. Foods and
// exercises each live in a single table with a discriminant column, so every
// lookup is a parameterized query instead of a dynamic table name.

const CustomFoodCategory = "Egyéni"

func FoodCategories() []string {
	return []string{
		"Alkoholos italok",
		"Gabonafélék és hüvelyesek",
		"Gyümölcsök",
		"Halfélék",
		"Húsfélék",
		"Italok",
		"Olajok",
		"Szénhidrátok",
		"Tejtermékek és tojások",
		"Zöldségek",
	}
}

func IsFoodCategory(category string) bool {
	for _, known := range FoodCategories() {
		if known == category {
			return true
		}
	}
	return false
}

// UnitForFoodCategory returns the measurement unit shown next to a category:
// drinks are dosed in ml, everything else in g.
func UnitForFoodCategory(category string) string {
	if category == "Italok" || category == "Alkoholos italok" {
		return "ml"
	}
	return "g"
}

func MuscleGroups() []string {
	return []string{
		"bicepsz",
		"comb",
		"far",
		"has",
		"hát",
		"kardió",
		"mell",
		"tricepsz",
		"vádli",
		"váll",
	}
}

func IsMuscleGroup(group string) bool {
	for _, known := range MuscleGroups() {
		if known == group {
			return true
		}
	}
	return false
}

// CatalogFood holds calories per 100 units (g or ml) of a reference food.
type CatalogFood struct {
	ID             uint   `gorm:"primaryKey"`
	Category       string `gorm:"not null;uniqueIndex:uidx_food_category_name"`
	Name           string `gorm:"not null;uniqueIndex:uidx_food_category_name"`
	CaloriesPer100 int    `gorm:"column:calories_per100;not null"`
}

func (CatalogFood) TableName() string {
	return "catalog_foods"
}

type CatalogExercise struct {
	ID          uint   `gorm:"primaryKey"`
	MuscleGroup string `gorm:"not null;uniqueIndex:uidx_exercise_group_name"`
	Name        string `gorm:"not null;uniqueIndex:uidx_exercise_group_name"`
	Equipment   string `gorm:"not null"`
	Difficulty  string `gorm:"not null"`
	Description string `gorm:"not null"`
}

func (CatalogExercise) TableName() string {
	return "catalog_exercises"
}

// DefaultCatalogFoods seeds the food reference tables on first start.
func DefaultCatalogFoods() []CatalogFood {
	return []CatalogFood{
		{Category: "Alkoholos italok", Name: "Sör", CaloriesPer100: 43},
		{Category: "Alkoholos italok", Name: "Vörösbor", CaloriesPer100: 85},
		{Category: "Alkoholos italok", Name: "Vodka", CaloriesPer100: 231},
		{Category: "Gabonafélék és hüvelyesek", Name: "Zabpehely", CaloriesPer100: 389},
		{Category: "Gabonafélék és hüvelyesek", Name: "Lencse", CaloriesPer100: 116},
		{Category: "Gabonafélék és hüvelyesek", Name: "Csicseriborsó", CaloriesPer100: 164},
		{Category: "Gyümölcsök", Name: "Alma", CaloriesPer100: 52},
		{Category: "Gyümölcsök", Name: "Banán", CaloriesPer100: 89},
		{Category: "Gyümölcsök", Name: "Narancs", CaloriesPer100: 47},
		{Category: "Halfélék", Name: "Lazac", CaloriesPer100: 208},
		{Category: "Halfélék", Name: "Tonhal", CaloriesPer100: 132},
		{Category: "Halfélék", Name: "Hekk", CaloriesPer100: 90},
		{Category: "Húsfélék", Name: "Csirkemell", CaloriesPer100: 165},
		{Category: "Húsfélék", Name: "Pulykamell", CaloriesPer100: 135},
		{Category: "Húsfélék", Name: "Marhahús", CaloriesPer100: 250},
		{Category: "Italok", Name: "Narancslé", CaloriesPer100: 45},
		{Category: "Italok", Name: "Tej 2,8%", CaloriesPer100: 60},
		{Category: "Italok", Name: "Kóla", CaloriesPer100: 42},
		{Category: "Olajok", Name: "Olívaolaj", CaloriesPer100: 884},
		{Category: "Olajok", Name: "Napraforgóolaj", CaloriesPer100: 884},
		{Category: "Szénhidrátok", Name: "Rizs", CaloriesPer100: 130},
		{Category: "Szénhidrátok", Name: "Tészta", CaloriesPer100: 131},
		{Category: "Szénhidrátok", Name: "Burgonya", CaloriesPer100: 77},
		{Category: "Tejtermékek és tojások", Name: "Tojás", CaloriesPer100: 155},
		{Category: "Tejtermékek és tojások", Name: "Túró", CaloriesPer100: 98},
		{Category: "Tejtermékek és tojások", Name: "Trappista sajt", CaloriesPer100: 340},
		{Category: "Zöldségek", Name: "Paradicsom", CaloriesPer100: 18},
		{Category: "Zöldségek", Name: "Uborka", CaloriesPer100: 15},
		{Category: "Zöldségek", Name: "Brokkoli", CaloriesPer100: 34},
	}
}

// DefaultCatalogExercises seeds the exercise reference tables on first start.
func DefaultCatalogExercises() []CatalogExercise {
	return []CatalogExercise{
		{MuscleGroup: "bicepsz", Name: "Állva bicepsz hajlítás", Equipment: "kézisúlyzó", Difficulty: "kezdő", Description: "Állva, karok a törzs mellett, a súlyzókat vállig hajlítjuk."},
		{MuscleGroup: "bicepsz", Name: "Scott padon hajlítás", Equipment: "scott pad, egyenes rúd", Difficulty: "haladó", Description: "A kar a pad támaszán, csak az alkar mozog."},
		{MuscleGroup: "comb", Name: "Guggolás", Equipment: "rúd, állvány", Difficulty: "haladó", Description: "Vállra helyezett rúddal mély guggolás, egyenes háttal."},
		{MuscleGroup: "comb", Name: "Kitörés", Equipment: "kézisúlyzó", Difficulty: "kezdő", Description: "Nagy lépés előre, a hátsó térd a talaj felé süllyed."},
		{MuscleGroup: "far", Name: "Csípőemelés", Equipment: "rúd, pad", Difficulty: "kezdő", Description: "Háttal a padon, a csípőt a rúddal együtt emeljük."},
		{MuscleGroup: "has", Name: "Hasprés", Equipment: "nincs", Difficulty: "kezdő", Description: "Háton fekve a lapockákat emeljük, a derék a talajon marad."},
		{MuscleGroup: "has", Name: "Lábemelés függeszkedve", Equipment: "húzódzkodó rúd", Difficulty: "haladó", Description: "Függeszkedve a nyújtott lábakat vízszintesig emeljük."},
		{MuscleGroup: "hát", Name: "Húzódzkodás", Equipment: "húzódzkodó rúd", Difficulty: "haladó", Description: "Vállnál szélesebb fogással, mellig húzzuk magunkat."},
		{MuscleGroup: "hát", Name: "Döntött törzsű evezés", Equipment: "rúd", Difficulty: "haladó", Description: "Előre döntött törzzsel a rudat a has felé húzzuk."},
		{MuscleGroup: "kardió", Name: "Futópad", Equipment: "futópad", Difficulty: "kezdő", Description: "Egyenletes tempójú futás vagy gyaloglás."},
		{MuscleGroup: "kardió", Name: "Ugrálókötél", Equipment: "ugrálókötél", Difficulty: "közepes", Description: "Folyamatos szökdelés, lazán tartott csuklóval."},
		{MuscleGroup: "mell", Name: "Fekvenyomás", Equipment: "pad, rúd", Difficulty: "haladó", Description: "Padon fekve a rudat mellről nyomjuk ki."},
		{MuscleGroup: "mell", Name: "Tárogatás", Equipment: "kézisúlyzó, pad", Difficulty: "közepes", Description: "Padon fekve a karokat félkörívben nyitjuk és zárjuk."},
		{MuscleGroup: "tricepsz", Name: "Tricepsz letolás", Equipment: "csiga, kötél", Difficulty: "kezdő", Description: "A kötelet könyökből toljuk le, a felkar nem mozdul."},
		{MuscleGroup: "vádli", Name: "Állva vádliemelés", Equipment: "géppark vagy lépcső", Difficulty: "kezdő", Description: "Lábujjhegyre emelkedés, lassú leengedés."},
		{MuscleGroup: "váll", Name: "Vállból nyomás", Equipment: "kézisúlyzó", Difficulty: "közepes", Description: "Ülve vagy állva a súlyzókat fej fölé nyomjuk."},
		{MuscleGroup: "váll", Name: "Oldalemelés", Equipment: "kézisúlyzó", Difficulty: "kezdő", Description: "A karokat oldalra vállmagasságig emeljük."},
	}
}
