package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Meals    *MealRepository
	Training *TrainingRepository
	Catalog  *CatalogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Meals:    NewMealRepository(database),
		Training: NewTrainingRepository(database),
		Catalog:  NewCatalogRepository(database),
	}
}
