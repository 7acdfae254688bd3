package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mfodor/fitplan/internal/db"
	"github.com/mfodor/fitplan/internal/models"
)

// testClient carries the cookies between requests the way a browser would,
// so the screen-session and auth cookies survive across the flow.
type testClient struct {
	app     *fiber.App
	cookies map[string]string
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "fitplan-api.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret")
	if err := handler.SeedCatalog(); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)

	return &testClient{app: app, cookies: make(map[string]string)}
}

func (client *testClient) do(t *testing.T, method string, path string, form url.Values) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	request := httptest.NewRequest(method, path, body)
	if form != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	}

	pairs := make([]string, 0, len(client.cookies))
	for name, value := range client.cookies {
		pairs = append(pairs, name+"="+value)
	}
	if len(pairs) > 0 {
		request.Header.Set("Cookie", strings.Join(pairs, "; "))
	}

	response, err := client.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	for _, cookie := range response.Cookies() {
		if cookie.Value == "" {
			delete(client.cookies, cookie.Name)
			continue
		}
		client.cookies[cookie.Name] = cookie.Value
	}

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, path, err)
	}
	payload := make(map[string]any)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("%s %s decode body %q: %v", method, path, raw, err)
		}
	}
	return response.StatusCode, payload
}

func (client *testClient) register(t *testing.T, email string) {
	t.Helper()

	status, payload := client.do(t, http.MethodPost, "/api/auth/register/step1", url.Values{
		"surname":          {"Teszt"},
		"name":             {"Elek"},
		"email":            {email},
		"password":         {"titok"},
		"password_confirm": {"titok"},
	})
	if status != http.StatusOK {
		t.Fatalf("register step1 status = %d, body %v", status, payload)
	}

	status, payload = client.do(t, http.MethodPost, "/api/auth/register/step2", url.Values{
		"age":      {"25"},
		"height":   {"180"},
		"weight":   {"75"},
		"sex":      {models.SexMale},
		"activity": {models.ActivityLight},
	})
	if status != http.StatusCreated {
		t.Fatalf("register step2 status = %d, body %v", status, payload)
	}
}

func (client *testClient) login(t *testing.T, email string, password string) {
	t.Helper()

	status, payload := client.do(t, http.MethodPost, "/api/auth/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	if status != http.StatusOK {
		t.Fatalf("login status = %d, body %v", status, payload)
	}
}

func TestRegisterLoginDietFlow(t *testing.T) {
	client := newTestClient(t)
	client.register(t, "teszt@teszt.hu")
	client.login(t, "teszt@teszt.hu", "titok")

	status, payload := client.do(t, http.MethodGet, "/api/diet?date=2026-08-29", nil)
	if status != http.StatusOK {
		t.Fatalf("diet screen status = %d, body %v", status, payload)
	}
	// 25y 180cm 75kg male at the light tier: 1755 * 1.375
	if payload["target"] != float64(2413) {
		t.Fatalf("diet target = %v, want 2413", payload["target"])
	}
	if payload["total"] != float64(0) || payload["status"] != "normal" {
		t.Fatalf("fresh day total/status = %v/%v", payload["total"], payload["status"])
	}

	status, payload = client.do(t, http.MethodPost, "/api/diet/meals", url.Values{
		"category":      {models.CategoryLunch},
		"food_category": {"Húsfélék"},
		"food_name":     {"Csirkemell"},
		"amount":        {"200"},
		"date":          {"2026-08-29"},
	})
	if status != http.StatusCreated {
		t.Fatalf("log meal status = %d, body %v", status, payload)
	}
	if payload["total"] != float64(330) {
		t.Fatalf("total after meal = %v, want 330", payload["total"])
	}

	status, payload = client.do(t, http.MethodPost, "/api/diet/meals", url.Values{
		"category":      {models.CategoryDinner},
		"food_category": {models.CustomFoodCategory},
		"food_name":     {"Házi pizza"},
		"amount":        {"850"},
		"date":          {"2026-08-29"},
	})
	if status != http.StatusCreated {
		t.Fatalf("log custom meal status = %d, body %v", status, payload)
	}
	if payload["total"] != float64(1180) {
		t.Fatalf("total after custom meal = %v, want 1180", payload["total"])
	}

	status, payload = client.do(t, http.MethodGet, "/api/diet?date=2026-08-29", nil)
	if status != http.StatusOK {
		t.Fatalf("diet reload status = %d", status)
	}
	meals, ok := payload["meals"].(map[string]any)
	if !ok {
		t.Fatalf("meals payload = %v", payload["meals"])
	}
	lunch, ok := meals[models.CategoryLunch].([]any)
	if !ok || len(lunch) != 1 {
		t.Fatalf("lunch entries = %v", meals[models.CategoryLunch])
	}
}

func TestTrainingPlanFlow(t *testing.T) {
	client := newTestClient(t)
	client.register(t, "teszt@teszt.hu")
	client.login(t, "teszt@teszt.hu", "titok")

	status, payload := client.do(t, http.MethodPost, "/api/training/days", url.Values{
		"day": {"Mell"},
	})
	if status != http.StatusCreated {
		t.Fatalf("add day status = %d, body %v", status, payload)
	}
	if payload["current_day"] != "Mell" {
		t.Fatalf("expected the new day to be auto-selected, got %v", payload["current_day"])
	}
	days, ok := payload["days"].([]any)
	if !ok || len(days) != 2 {
		t.Fatalf("expected one day plus the add entry, got %v", payload["days"])
	}
	last, ok := days[len(days)-1].(map[string]any)
	if !ok || last["synthetic"] != true {
		t.Fatalf("expected a trailing synthetic entry, got %v", days[len(days)-1])
	}

	status, payload = client.do(t, http.MethodPost, "/api/training/exercises", url.Values{
		"muscle_group": {"mell"},
		"exercise":     {"Fekvenyomás"},
		"sets":         {"4"},
		"reps":         {"10"},
		"weight":       {"60.5"},
	})
	if status != http.StatusCreated {
		t.Fatalf("add exercise status = %d, body %v", status, payload)
	}
	exercises, ok := payload["exercises"].([]any)
	if !ok || len(exercises) != 1 {
		t.Fatalf("expected one exercise, got %v", payload["exercises"])
	}
	row, ok := exercises[0].(map[string]any)
	if !ok || row["Name"] != "Fekvenyomás" {
		t.Fatalf("unexpected exercise row: %v", exercises[0])
	}

	exerciseID, ok := row["ID"].(float64)
	if !ok || exerciseID == 0 {
		t.Fatalf("exercise row has no id: %v", row)
	}
	status, payload = client.do(t, http.MethodDelete, "/api/training/exercises?exercise_id="+strconv.Itoa(int(exerciseID)), nil)
	if status != http.StatusOK {
		t.Fatalf("delete exercise status = %d, body %v", status, payload)
	}
	if remaining, ok := payload["exercises"].([]any); !ok || len(remaining) != 0 {
		t.Fatalf("expected an empty plan, got %v", payload["exercises"])
	}

	status, payload = client.do(t, http.MethodDelete, "/api/training/days/current", nil)
	if status != http.StatusOK {
		t.Fatalf("delete day status = %d, body %v", status, payload)
	}
	if payload["current_day"] != "" {
		t.Fatalf("expected the selection to be cleared, got %v", payload["current_day"])
	}
}

func TestRegisterStep2WithoutStep1(t *testing.T) {
	client := newTestClient(t)

	status, payload := client.do(t, http.MethodPost, "/api/auth/register/step2", url.Values{
		"age":      {"25"},
		"height":   {"180"},
		"weight":   {"75"},
		"sex":      {models.SexMale},
		"activity": {models.ActivityLight},
	})
	if status != http.StatusNotFound {
		t.Fatalf("step2 without step1 status = %d, body %v", status, payload)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	client := newTestClient(t)
	client.register(t, "teszt@teszt.hu")

	status, payload := client.do(t, http.MethodPost, "/api/auth/login", url.Values{
		"email":    {"teszt@teszt.hu"},
		"password": {"rossz"},
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("login status = %d, body %v", status, payload)
	}
	if payload["error"] != "incorrect email address or password" {
		t.Fatalf("login error = %v", payload["error"])
	}
}

func TestProtectedScreensRequireLogin(t *testing.T) {
	client := newTestClient(t)

	for _, path := range []string{"/api/diet", "/api/training", "/api/profile"} {
		status, payload := client.do(t, http.MethodGet, path, nil)
		if status != http.StatusUnauthorized {
			t.Fatalf("GET %s status = %d, body %v", path, status, payload)
		}
	}
}

func TestLogoutClearsTheSession(t *testing.T) {
	client := newTestClient(t)
	client.register(t, "teszt@teszt.hu")
	client.login(t, "teszt@teszt.hu", "titok")

	status, _ := client.do(t, http.MethodGet, "/api/profile", nil)
	if status != http.StatusOK {
		t.Fatalf("profile before logout status = %d", status)
	}

	status, payload := client.do(t, http.MethodPost, "/api/auth/logout", nil)
	if status != http.StatusOK {
		t.Fatalf("logout status = %d, body %v", status, payload)
	}

	status, _ = client.do(t, http.MethodGet, "/api/profile", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("profile after logout status = %d, want 401", status)
	}
}
