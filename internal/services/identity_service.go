package services

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/mfodor/fitplan/internal/models"
)

type IdentityUserRepository interface {
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (models.User, bool, error)
	FindByCredentials(email string, password string) (models.User, bool, error)
	Create(user *models.User) error
	UpdateProfileByEmail(email string, updates map[string]any) error
}

// RegistrationStep1 carries the identity half of the two-step registration
// form.
type RegistrationStep1 struct {
	Surname         string
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

// RegistrationStep2 carries the physical half. Values arrive as form
// strings and are only parsed once every field is present.
type RegistrationStep2 struct {
	Age      string
	Height   string
	Weight   string
	Sex      string
	Activity string
}

type ProfileUpdate struct {
	Surname  string
	Name     string
	Age      string
	Height   string
	Weight   string
	Sex      string
	Activity string
}

// IdentityService implements registration, login and profile maintenance.
// Step-1 data is buffered per screen session until step 2 commits it;
// nothing touches the database before both forms pass validation.
type IdentityService struct {
	users IdentityUserRepository

	mu      sync.Mutex
	pending map[string]RegistrationStep1
}

func NewIdentityService(users IdentityUserRepository) *IdentityService {
	return &IdentityService{
		users:   users,
		pending: make(map[string]RegistrationStep1),
	}
}

// StartRegistration validates the step-1 fields and buffers them for the
// session. Nothing is persisted yet.
func (service *IdentityService) StartRegistration(sessionID string, input RegistrationStep1) error {
	if input.Surname == "" || input.Name == "" || input.Email == "" ||
		input.Password == "" || input.PasswordConfirm == "" {
		return validation("please fill in every field")
	}
	if !IsValidEmail(input.Email) {
		return validation("please enter a valid email address")
	}
	if input.Password != input.PasswordConfirm {
		return validation("the passwords do not match")
	}

	exists, err := service.users.ExistsByEmail(input.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return validation("this email address is already registered")
	}

	service.mu.Lock()
	service.pending[sessionID] = input
	service.mu.Unlock()
	return nil
}

// HasPendingRegistration reports whether step 1 has been completed for the
// session, so the step-2 screen can refuse to show up out of order.
func (service *IdentityService) HasPendingRegistration(sessionID string) bool {
	service.mu.Lock()
	defer service.mu.Unlock()
	_, ok := service.pending[sessionID]
	return ok
}

// AbortRegistration drops the buffered step-1 data, used when the user
// navigates back out of the flow.
func (service *IdentityService) AbortRegistration(sessionID string) {
	service.mu.Lock()
	delete(service.pending, sessionID)
	service.mu.Unlock()
}

// CompleteRegistration validates the physical fields, combines them with the
// buffered step-1 data and inserts the user row.
func (service *IdentityService) CompleteRegistration(sessionID string, input RegistrationStep2) (models.User, error) {
	service.mu.Lock()
	step1, ok := service.pending[sessionID]
	service.mu.Unlock()
	if !ok {
		return models.User{}, notFound("registration has not been started")
	}

	if input.Age == "" || input.Height == "" || input.Weight == "" ||
		input.Sex == "" || input.Activity == "" {
		return models.User{}, validation("please fill in every field")
	}

	age, height, weight, err := parsePhysicalFields(input.Age, input.Height, input.Weight)
	if err != nil {
		return models.User{}, err
	}
	if input.Sex != models.SexMale && input.Sex != models.SexFemale {
		return models.User{}, validation("please choose a valid sex")
	}
	if _, ok := models.ActivityFactor(input.Activity); !ok {
		return models.User{}, validation("please choose a valid activity level")
	}

	user := models.User{
		Surname:  step1.Surname,
		Name:     step1.Name,
		Email:    step1.Email,
		Password: step1.Password,
		Age:      age,
		Height:   height,
		Weight:   weight,
		Sex:      input.Sex,
		Activity: input.Activity,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	service.mu.Lock()
	delete(service.pending, sessionID)
	service.mu.Unlock()
	return user, nil
}

// Login performs the exact email+password match. The failure never reveals
// which field was wrong.
func (service *IdentityService) Login(email string, password string) (models.User, error) {
	user, found, err := service.users.FindByCredentials(email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("look up credentials: %w", err)
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *IdentityService) ProfileByEmail(email string) (models.User, error) {
	user, found, err := service.users.FindByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("load profile: %w", err)
	}
	if !found {
		return models.User{}, notFound("user not found")
	}
	return user, nil
}

// UpdateProfile rewrites every profile field except the email. Age, height
// and weight must be purely numeric strings.
func (service *IdentityService) UpdateProfile(email string, input ProfileUpdate) error {
	if input.Surname == "" || input.Name == "" || input.Age == "" ||
		input.Height == "" || input.Weight == "" || input.Sex == "" || input.Activity == "" {
		return validation("please fill in every field")
	}
	age, height, weight, err := parsePhysicalFields(input.Age, input.Height, input.Weight)
	if err != nil {
		return err
	}
	if input.Sex != models.SexMale && input.Sex != models.SexFemale {
		return validation("please choose a valid sex")
	}
	if _, ok := models.ActivityFactor(input.Activity); !ok {
		return validation("please choose a valid activity level")
	}

	updates := map[string]any{
		"surname":  input.Surname,
		"name":     input.Name,
		"age":      age,
		"height":   height,
		"weight":   weight,
		"sex":      input.Sex,
		"activity": input.Activity,
	}
	if err := service.users.UpdateProfileByEmail(email, updates); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func parsePhysicalFields(ageRaw string, heightRaw string, weightRaw string) (int, int, int, error) {
	if !isDigits(ageRaw) || !isDigits(heightRaw) || !isDigits(weightRaw) {
		return 0, 0, 0, validation("age, height and weight must be numbers")
	}
	age, err := strconv.Atoi(ageRaw)
	if err != nil {
		return 0, 0, 0, validation("age, height and weight must be numbers")
	}
	height, err := strconv.Atoi(heightRaw)
	if err != nil {
		return 0, 0, 0, validation("age, height and weight must be numbers")
	}
	weight, err := strconv.Atoi(weightRaw)
	if err != nil {
		return 0, 0, 0, validation("age, height and weight must be numbers")
	}
	return age, height, weight, nil
}
