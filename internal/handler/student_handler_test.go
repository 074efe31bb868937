package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/safezard/safezard-api/internal/handler"
	"github.com/safezard/safezard-api/internal/models"
	"github.com/safezard/safezard-api/internal/repository"
	"github.com/safezard/safezard-api/internal/service"
	"github.com/safezard/safezard-api/internal/utils"
)

func newHandlerTestDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(entities...))
	return db
}

// fakeSession mimics the JWT middleware by seeding the request context.
func fakeSession(userID, email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("user_email", email)
		c.Locals("user_token", "token-abc")
		return c.Next()
	}
}

func decodeEnvelope(t *testing.T, resp *http.Response) utils.APIResponse {
	t.Helper()
	var envelope utils.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func newStudentTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := newHandlerTestDB(t, &models.Profile{}, &models.ProgressRecord{}, &models.QuizLog{})

	progressRepo := repository.NewProgressRepository(db)
	quizLogRepo := repository.NewQuizLogRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	validate := validator.New(validator.WithRequiredStructEnabled())

	roles := service.NewRoleResolver(profileRepo, zerolog.Nop())
	progressSvc := service.NewProgressService(progressRepo, quizLogRepo, validate, zerolog.Nop())
	studentSvc := service.NewStudentService(progressRepo, roles, zerolog.Nop())

	h := handler.NewStudentHandler(progressSvc, studentSvc, zerolog.Nop())

	app := fiber.New()
	h.Register(app.Group("/api/v1/student", fakeSession("user-1", "jane.doe@example.com")))
	return app, db
}

func TestStudentHandlerSaveProgress(t *testing.T) {
	app, db := newStudentTestApp(t)

	body, _ := json.Marshal(map[string]interface{}{
		"scenario_id":    "PC1",
		"scenario_title": "Chemical Spill Response",
		"score":          80,
		"completed":      true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/student/progress", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.True(t, envelope.Success)
	require.Equal(t, "progress saved", envelope.Message)

	var stored models.ProgressRecord
	require.NoError(t, db.First(&stored, "user_id = ? AND scenario_id = ?", "user-1", "PC1").Error)
	require.Equal(t, 80, stored.Score)
}

func TestStudentHandlerSaveProgressRequiresScenarioID(t *testing.T) {
	app, _ := newStudentTestApp(t)

	body, _ := json.Marshal(map[string]interface{}{"score": 50})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/student/progress", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.False(t, envelope.Success)
	require.Equal(t, "scenario id is required", envelope.Message)
}

func TestStudentHandlerAnalytics(t *testing.T) {
	app, db := newStudentTestApp(t)

	require.NoError(t, db.Create(&models.ProgressRecord{UserID: "user-1", ScenarioID: "PC1", Score: 70}).Error)
	require.NoError(t, db.Create(&models.QuizLog{UserID: "user-1", ScenarioID: "PC1", Score: 70}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/student/analytics", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	require.Len(t, data["progress"], 1)
	require.Len(t, data["logs"], 1)
}

func TestStudentHandlerProfile(t *testing.T) {
	app, db := newStudentTestApp(t)

	require.NoError(t, db.Create(&models.Profile{ID: "user-1", Email: "jane.doe@example.com", Role: models.RoleStudent}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/student/profile", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "jane.doe@example.com", data["email"])
	require.Equal(t, "Student", data["role"])
}
