package api

import (
	"time"

	"github.com/mfodor/fitplan/internal/db"
	"github.com/mfodor/fitplan/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName    = "fitplan_token"
	sessionCookieName = "fitplan_session"

	authTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	secretKey []byte

	identity *services.IdentityService
	diet     *services.DietService
	training *services.TrainingService
	sessions *services.SessionManager
	catalog  *db.CatalogRepository
}

func NewHandler(database *gorm.DB, secretKey string) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey: []byte(secretKey),
		identity:  services.NewIdentityService(repositories.Users),
		diet:      services.NewDietService(repositories.Meals, repositories.Catalog),
		training:  services.NewTrainingService(repositories.Training, repositories.Catalog),
		sessions:  services.NewSessionManager(),
		catalog:   repositories.Catalog,
	}
}

// SeedCatalog loads the builtin food and exercise reference data on first run.
func (handler *Handler) SeedCatalog() error {
	return handler.catalog.SeedIfEmpty()
}
