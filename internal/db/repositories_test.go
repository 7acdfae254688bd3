package db

import (
	"path/filepath"
	"testing"

	"github.com/mfodor/fitplan/internal/models"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "fitplan-repos.db"))
	return NewRepositories(database)
}

func TestUserRepositoryCredentialsAreExactMatch(t *testing.T) {
	repos := newTestRepositories(t)

	user := models.User{
		Surname: "Teszt", Name: "Elek",
		Email: "teszt@teszt.hu", Password: "titok",
		Age: 25, Height: 180, Weight: 75,
		Sex: models.SexMale, Activity: models.ActivityLight,
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, found, err := repos.Users.FindByCredentials("teszt@teszt.hu", "titok")
	if err != nil {
		t.Fatalf("find by credentials: %v", err)
	}
	if !found {
		t.Fatal("expected exact credentials to match")
	}

	_, found, err = repos.Users.FindByCredentials("teszt@teszt.hu", "Titok")
	if err != nil {
		t.Fatalf("find by credentials: %v", err)
	}
	if found {
		t.Fatal("expected case-different password to miss")
	}

	exists, err := repos.Users.ExistsByEmail("teszt@teszt.hu")
	if err != nil {
		t.Fatalf("exists by email: %v", err)
	}
	if !exists {
		t.Fatal("expected email to be registered")
	}
}

func TestUserRepositoryUpdateProfileLeavesEmailAndPassword(t *testing.T) {
	repos := newTestRepositories(t)

	user := models.User{
		Surname: "Teszt", Name: "Elek",
		Email: "teszt@teszt.hu", Password: "titok",
		Age: 25, Height: 180, Weight: 75,
		Sex: models.SexMale, Activity: models.ActivityLight,
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	err := repos.Users.UpdateProfileByEmail("teszt@teszt.hu", map[string]any{
		"surname": "Minta", "name": "Anna",
		"age": 30, "height": 165, "weight": 60,
		"sex": models.SexFemale, "activity": models.ActivityModerate,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	updated, found, err := repos.Users.FindByEmail("teszt@teszt.hu")
	if err != nil || !found {
		t.Fatalf("reload user: found=%v err=%v", found, err)
	}
	if updated.Surname != "Minta" || updated.Age != 30 || updated.Sex != models.SexFemale {
		t.Fatalf("profile not rewritten: %+v", updated)
	}
	if updated.Password != "titok" {
		t.Fatalf("password must survive a profile update, got %q", updated.Password)
	}
}

func TestMealRepositorySumsOnlyTheRequestedDay(t *testing.T) {
	repos := newTestRepositories(t)

	entries := []models.MealEntry{
		{UserID: 1, Category: models.CategoryBreakfast, FoodName: "Zabpehely", Calories: 195, Amount: 50, Date: "2026-08-29"},
		{UserID: 1, Category: models.CategoryLunch, FoodName: "Csirkemell", Calories: 330, Amount: 200, Date: "2026-08-29"},
		{UserID: 1, Category: models.CategoryLunch, FoodName: "Rizs", Calories: 260, Amount: 200, Date: "2026-08-30"},
		{UserID: 2, Category: models.CategoryLunch, FoodName: "Lazac", Calories: 312, Amount: 150, Date: "2026-08-29"},
	}
	for i := range entries {
		if err := repos.Meals.Create(&entries[i]); err != nil {
			t.Fatalf("create meal entry: %v", err)
		}
	}

	total, err := repos.Meals.SumCaloriesByUserAndDate(1, "2026-08-29")
	if err != nil {
		t.Fatalf("sum calories: %v", err)
	}
	if total != 525 {
		t.Fatalf("sum = %d, want 525", total)
	}

	total, err = repos.Meals.SumCaloriesByUserAndDate(1, "2026-08-31")
	if err != nil {
		t.Fatalf("sum calories: %v", err)
	}
	if total != 0 {
		t.Fatalf("empty day sum = %d, want 0", total)
	}

	listed, err := repos.Meals.ListByUserAndDate(1, "2026-08-29")
	if err != nil {
		t.Fatalf("list meals: %v", err)
	}
	if len(listed) != 2 || listed[0].FoodName != "Zabpehely" {
		t.Fatalf("unexpected listing: %#v", listed)
	}
}

func TestTrainingRepositoryDeleteDayCascades(t *testing.T) {
	repos := newTestRepositories(t)

	day := models.TrainingDay{UserID: 1, DayName: "Mell"}
	if err := repos.Training.CreateDay(&day); err != nil {
		t.Fatalf("create day: %v", err)
	}
	otherDay := models.TrainingDay{UserID: 1, DayName: "Láb"}
	if err := repos.Training.CreateDay(&otherDay); err != nil {
		t.Fatalf("create other day: %v", err)
	}

	sets := 4
	exercises := []models.Exercise{
		{DayID: day.ID, Name: "Fekvenyomás", Sets: &sets, Equipment: "pad, rúd", Difficulty: "haladó", Description: "..."},
		{DayID: day.ID, Name: "Tárogatás", Equipment: "kézisúlyzó, pad", Difficulty: "közepes", Description: "..."},
		{DayID: otherDay.ID, Name: "Guggolás", Equipment: "rúd, állvány", Difficulty: "haladó", Description: "..."},
	}
	for i := range exercises {
		if err := repos.Training.CreateExercise(&exercises[i]); err != nil {
			t.Fatalf("create exercise: %v", err)
		}
	}

	if err := repos.Training.DeleteDayWithExercises(day.ID); err != nil {
		t.Fatalf("delete day: %v", err)
	}

	_, found, err := repos.Training.FindDay(1, "Mell")
	if err != nil {
		t.Fatalf("find day: %v", err)
	}
	if found {
		t.Fatal("expected the day to be gone")
	}

	orphans, err := repos.Training.ListExercises(day.ID)
	if err != nil {
		t.Fatalf("list exercises: %v", err)
	}
	if len(orphans) != 0 {
		t.Fatalf("expected no orphaned exercises, got %d", len(orphans))
	}

	survivors, err := repos.Training.ListExercises(otherDay.ID)
	if err != nil {
		t.Fatalf("list surviving exercises: %v", err)
	}
	if len(survivors) != 1 {
		t.Fatalf("expected the other day's exercise to survive, got %d", len(survivors))
	}
}

func TestTrainingRepositoryListsDayNamesAlphabetically(t *testing.T) {
	repos := newTestRepositories(t)

	for _, name := range []string{"Váll", "Comb", "Mell"} {
		day := models.TrainingDay{UserID: 1, DayName: name}
		if err := repos.Training.CreateDay(&day); err != nil {
			t.Fatalf("create day %s: %v", name, err)
		}
	}

	names, err := repos.Training.ListDayNames(1)
	if err != nil {
		t.Fatalf("list day names: %v", err)
	}
	if len(names) != 3 || names[0] != "Comb" || names[1] != "Mell" || names[2] != "Váll" {
		t.Fatalf("unexpected order: %v", names)
	}
}

func TestTrainingRepositoryStoresNullNumerics(t *testing.T) {
	repos := newTestRepositories(t)

	day := models.TrainingDay{UserID: 1, DayName: "Hát"}
	if err := repos.Training.CreateDay(&day); err != nil {
		t.Fatalf("create day: %v", err)
	}

	exercise := models.Exercise{DayID: day.ID, Name: "Húzódzkodás", Equipment: "húzódzkodó rúd", Difficulty: "haladó", Description: "..."}
	if err := repos.Training.CreateExercise(&exercise); err != nil {
		t.Fatalf("create exercise: %v", err)
	}

	reloaded, found, err := repos.Training.FindExerciseInDay(day.ID, exercise.ID)
	if err != nil || !found {
		t.Fatalf("reload exercise: found=%v err=%v", found, err)
	}
	if reloaded.Sets != nil || reloaded.Reps != nil || reloaded.Weight != nil {
		t.Fatalf("expected NULL sets/reps/weight, got %+v", reloaded)
	}
}

func TestCatalogRepositorySeedIsIdempotent(t *testing.T) {
	repos := newTestRepositories(t)

	if err := repos.Catalog.SeedIfEmpty(); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := repos.Catalog.SeedIfEmpty(); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	foods, err := repos.Catalog.ListFoodsByCategory("Gyümölcsök")
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(foods) != 3 {
		t.Fatalf("expected 3 seeded fruits, got %d", len(foods))
	}

	food, found, err := repos.Catalog.FindFood("Húsfélék", "Csirkemell")
	if err != nil || !found {
		t.Fatalf("find seeded food: found=%v err=%v", found, err)
	}
	if food.CaloriesPer100 != 165 {
		t.Fatalf("seeded calories = %d, want 165", food.CaloriesPer100)
	}

	exercise, found, err := repos.Catalog.FindExercise("mell", "Fekvenyomás")
	if err != nil || !found {
		t.Fatalf("find seeded exercise: found=%v err=%v", found, err)
	}
	if exercise.Equipment == "" || exercise.Difficulty == "" || exercise.Description == "" {
		t.Fatalf("seeded exercise misses catalog fields: %+v", exercise)
	}
}
