package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "taskboard/internal/adapter/db"
	httpadapter "taskboard/internal/adapter/http"
	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/app/service"
	"taskboard/internal/config"
	"taskboard/pkg/translator"
)

// APISuite drives the full stack over a throwaway sqlite file: router,
// handlers, services and repositories wired exactly as in main.
type APISuite struct {
	suite.Suite

	db     *sqlx.DB
	router *gin.Engine
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguagePt, translator.LanguageEn},
	})
}

func (s *APISuite) SetupTest() {
	cfg := &config.Config{SQLitePath: filepath.Join(s.T().TempDir(), "board.db")}

	db, err := dbadapter.ConnectDB(cfg)
	s.Require().NoError(err)
	s.db = db

	taskRepository := dbadapter.NewTaskRepository(db)
	userRepository := dbadapter.NewUserRepository(db)
	catalogRepository := dbadapter.NewCatalogRepository(db)

	r := gin.New()
	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(db),
		handlers.NewUserHandler(service.NewUserService(userRepository)),
		handlers.NewTaskHandler(service.NewTaskService(taskRepository, catalogRepository, userRepository)),
		handlers.NewCatalogHandler(service.NewCatalogService(catalogRepository)),
		handlers.NewWeatherHandler(staticWeatherGateway{}),
	)
	s.router = r
}

// staticWeatherGateway stands in for the upstream provider so the route can
// be exercised without network access.
type staticWeatherGateway struct{}

func (staticWeatherGateway) CurrentConditions(context.Context) ([]byte, error) {
	return []byte(`{"latitude":-23.5,"current":{"temperature_2m":21.4,"relative_humidity_2m":67,"rain":0.0,"weather_code":2}}`), nil
}

func (s *APISuite) TearDownTest() {
	if s.db != nil {
		s.Require().NoError(s.db.Close())
	}
}

func (s *APISuite) request(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APISuite) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	var got map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func (s *APISuite) seedCatalog() {
	_, err := s.db.Exec(`
INSERT INTO priorities (name) VALUES ('Alta'), ('Média'), ('Baixa');
INSERT INTO statuses (name) VALUES ('A fazer'), ('Em andamento'), ('Concluído');
INSERT INTO categories (name, description) VALUES ('Backend', 'API work'), ('Frontend', NULL);
`)
	s.Require().NoError(err)
}

func (s *APISuite) countRows(query string, args ...interface{}) int {
	var count int
	s.Require().NoError(s.db.Get(&count, query, args...))
	return count
}

const taskPayload = `{
	"title": "Montar o board",
	"description": "organizar colunas",
	"created_date": "2025-09-06",
	"due_date": "2025-09-15T10:00:00",
	"estimated_time": "5 dias",
	"fk_priority": %d,
	"fk_status": %d,
	"fk_user": %d
}`

func (s *APISuite) TestHealth() {
	rec := s.request(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *APISuite) TestHealthReport() {
	rec := s.request(http.MethodGet, "/health/report", "")
	s.Equal(http.StatusOK, rec.Code)

	got := s.decode(rec)
	status := got["status"].(map[string]interface{})
	s.Equal("ok", status["sqlite"])
	s.Equal("en", got["language"])
}

func (s *APISuite) TestUserLifecycle() {
	rec := s.request(http.MethodPost, "/users", `{"username": "daniel", "password": "123456"}`)
	s.Equal(http.StatusCreated, rec.Code)
	created := s.decode(rec)
	userID := created["id"].(float64)

	rec = s.request(http.MethodPost, "/login", `{"username": "daniel", "password": "123456"}`)
	s.Equal(http.StatusOK, rec.Code)
	login := s.decode(rec)
	s.Equal(userID, login["user_id"])
	s.Equal("daniel", login["username"])

	rec = s.request(http.MethodPost, "/login", `{"username": "daniel", "password": "wrong"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.request(http.MethodPost, "/login", `{"username": "daniela", "password": "123456"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.request(http.MethodPost, "/login", `{"username": "daniel"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodGet, "/users", "")
	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "password")
	s.NotContains(rec.Body.String(), "123456")
}

func (s *APISuite) TestDuplicateUserKeepsSingleRow() {
	rec := s.request(http.MethodPost, "/users", `{"username": "daniel", "password": "123456"}`)
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.request(http.MethodPost, "/users", `{"username": "daniel", "password": "other"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	s.Equal(1, s.countRows(`SELECT COUNT(*) FROM users WHERE username = 'daniel';`))
}

// The pre-check and the insert are separate statements; under racing
// registrations the unique constraint keeps the table at one row.
func (s *APISuite) TestConcurrentRegistrationAtMostOneRow() {
	var wg sync.WaitGroup
	successes := make(chan int, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := s.request(http.MethodPost, "/users", `{"username": "corrida", "password": "123456"}`)
			if rec.Code == http.StatusCreated {
				successes <- rec.Code
			}
		}()
	}
	wg.Wait()
	close(successes)

	s.LessOrEqual(len(successes), 1)
	s.Equal(1, s.countRows(`SELECT COUNT(*) FROM users WHERE username = 'corrida';`))
}

func (s *APISuite) TestTaskLifecycle() {
	s.seedCatalog()

	rec := s.request(http.MethodPost, "/users", `{"username": "daniel", "password": "123456"}`)
	s.Equal(http.StatusCreated, rec.Code)
	userID := int64(s.decode(rec)["id"].(float64))

	rec = s.request(http.MethodPost, "/tasks", fmt.Sprintf(taskPayload, 1, 2, userID))
	s.Equal(http.StatusCreated, rec.Code)
	taskID := int64(s.decode(rec)["id"].(float64))

	rec = s.request(http.MethodGet, "/tasks", "")
	s.Equal(http.StatusOK, rec.Code)
	var list []map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Len(list, 1)
	s.Equal("2025-09-06", list[0]["created_date"])

	rec = s.request(http.MethodGet, "/tasks?status=2", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Len(list, 1)

	rec = s.request(http.MethodGet, "/tasks?status=3", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Empty(list)

	rec = s.request(http.MethodGet, fmt.Sprintf("/tasks?user=%d", userID), "")
	s.Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Len(list, 1)

	rec = s.request(http.MethodGet, fmt.Sprintf("/tasks/%d", taskID), "")
	s.Equal(http.StatusOK, rec.Code)
	detail := s.decode(rec)
	s.Equal("06/09/2025", detail["created_date"])
	s.Equal("15/09/2025", detail["due_date"])
	s.Equal("Alta", detail["priority"])
	s.Equal("Em andamento", detail["status"])
	s.Equal("daniel", detail["user"])

	rec = s.request(http.MethodPut, fmt.Sprintf("/tasks/%d/status", taskID), `{"status_id": 3}`)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, fmt.Sprintf("/tasks/%d", taskID), "")
	s.Equal("Concluído", s.decode(rec)["status"])

	rec = s.request(http.MethodDelete, fmt.Sprintf("/tasks/%d", taskID), "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(0, s.countRows(`SELECT COUNT(*) FROM tasks;`))

	rec = s.request(http.MethodGet, fmt.Sprintf("/tasks/%d", taskID), "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APISuite) TestDeleteMissingTaskLeavesCountUnchanged() {
	s.seedCatalog()
	rec := s.request(http.MethodPost, "/tasks", fmt.Sprintf(taskPayload, 1, 1, 1))
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.request(http.MethodDelete, "/tasks/999", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(1, s.countRows(`SELECT COUNT(*) FROM tasks;`))
}

func (s *APISuite) TestCreateTaskMissingFieldInsertsNothing() {
	fields := []string{"title", "description", "created_date", "due_date", "estimated_time", "fk_priority", "fk_status", "fk_user"}
	full := map[string]interface{}{
		"title": "t", "description": "d", "created_date": "2025-09-06",
		"due_date": "2025-09-15", "estimated_time": "5 dias",
		"fk_priority": 1, "fk_status": 1, "fk_user": 1,
	}

	for _, missing := range fields {
		payload := make(map[string]interface{}, len(full)-1)
		for k, v := range full {
			if k != missing {
				payload[k] = v
			}
		}
		body, err := json.Marshal(payload)
		s.Require().NoError(err)

		rec := s.request(http.MethodPost, "/tasks", string(body))
		s.Equal(http.StatusBadRequest, rec.Code, "missing field %s", missing)
	}

	s.Equal(0, s.countRows(`SELECT COUNT(*) FROM tasks;`))
}

func (s *APISuite) TestTaskDetailWithDanglingForeignKeys() {
	rec := s.request(http.MethodPost, "/tasks", fmt.Sprintf(taskPayload, 99, 99, 99))
	s.Equal(http.StatusCreated, rec.Code)
	taskID := int64(s.decode(rec)["id"].(float64))

	rec = s.request(http.MethodGet, fmt.Sprintf("/tasks/%d", taskID), "")
	s.Equal(http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
	s.Equal("null", string(raw["priority"]))
	s.Equal("null", string(raw["status"]))
	s.Equal("null", string(raw["user"]))
}

func (s *APISuite) TestTaskCategories() {
	s.seedCatalog()
	rec := s.request(http.MethodPost, "/tasks", fmt.Sprintf(taskPayload, 1, 1, 1))
	taskID := int64(s.decode(rec)["id"].(float64))

	rec = s.request(http.MethodGet, fmt.Sprintf("/tasks/%d/categories", taskID), "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq("[]", rec.Body.String())

	rec = s.request(http.MethodPost, "/task-categories", fmt.Sprintf(`{"fk_task": %d, "fk_category": 1}`, taskID))
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.request(http.MethodGet, fmt.Sprintf("/tasks/%d/categories", taskID), "")
	s.Equal(http.StatusOK, rec.Code)
	var categories []map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &categories))
	s.Len(categories, 1)
	s.Equal("Backend", categories[0]["name"])
}

func (s *APISuite) TestWeatherRelay() {
	rec := s.request(http.MethodGet, "/weather", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"temperature_2m":21.4`)
}

func (s *APISuite) TestCatalogEndpoints() {
	s.seedCatalog()

	rec := s.request(http.MethodGet, "/categories", "")
	s.Equal(http.StatusOK, rec.Code)
	var items []map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &items))
	s.Len(items, 2)

	rec = s.request(http.MethodGet, "/priorities", "")
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &items))
	s.Len(items, 3)

	rec = s.request(http.MethodGet, "/statuses", "")
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &items))
	s.Len(items, 3)
}
