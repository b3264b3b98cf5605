package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-todo-api/internal/core/auth"
	"go-todo-api/internal/core/database"
	"go-todo-api/internal/domain"
	"go-todo-api/internal/repo"
	"go-todo-api/internal/service"
	"go-todo-api/internal/transport/http/handler"
	"go-todo-api/pkg/utils"
)

func init() { gin.SetMode(gin.TestMode) }

type testServer struct {
	engine *gin.Engine
	jwter  *auth.JWTer
	db     *gorm.DB
	admin  domain.User
	user   domain.User
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          "file::memory:?_foreign_keys=on",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Category{}, &domain.User{}, &domain.ToDo{}))

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "go-todo-api-test", TTL: time.Hour}
	log := zap.NewNop()

	categorySvc := service.NewCategoryService(repo.NewCategoryRepo(db), nil, 0, log)
	todoSvc := service.NewToDoService(repo.NewToDoRepo(db), log)
	userSvc := service.NewUserService(repo.NewUserRepo(db), jwter, log)

	engine := NewAPIEngine(
		log,
		jwter,
		handler.NewCategoryHandler(categorySvc),
		handler.NewToDoHandler(todoSvc),
		handler.NewUserHandler(userSvc),
	)

	ts := &testServer{engine: engine, jwter: jwter, db: db}
	ts.admin = ts.seedAccount(t, "admin@example.com", domain.RoleAdmin)
	ts.user = ts.seedAccount(t, "user@example.com", domain.RoleUser)
	return ts
}

func (ts *testServer) seedAccount(t *testing.T, email, role string) domain.User {
	t.Helper()
	u := domain.User{
		ID:           utils.NewID(),
		FirstName:    "Test",
		LastName:     "Account",
		Email:        email,
		Username:     email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, ts.db.Create(&u).Error)
	return u
}

func (ts *testServer) token(t *testing.T, u domain.User) string {
	t.Helper()
	tok, err := ts.jwter.Issue(u.ID, u.Role)
	require.NoError(t, err)
	return tok
}

func (ts *testServer) seedCategory(t *testing.T, name string) domain.Category {
	t.Helper()
	c := domain.Category{Name: name}
	require.NoError(t, ts.db.Create(&c).Error)
	return c
}

func (ts *testServer) seedToDo(t *testing.T, title string, categoryID int, userID string) domain.ToDo {
	t.Helper()
	td := domain.ToDo{
		ID:         utils.NewID(),
		Title:      title,
		StartDate:  time.Now().Add(time.Hour),
		EndDate:    time.Now().Add(8 * time.Hour),
		Priority:   domain.PriorityMedium,
		CategoryID: categoryID,
		UserID:     userID,
	}
	require.NoError(t, ts.db.Create(&td).Error)
	return td
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w, env
}

func fields(t *testing.T, env envelope) []string {
	t.Helper()
	var fs []string
	require.NoError(t, json.Unmarshal(env.Data, &fs))
	return fs
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	w, _ := ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCategoriesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	w, env := ts.do(t, http.MethodGet, "/api/categories/getall", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
	assert.Equal(t, "missing token", env.Message)

	w, env = ts.do(t, http.MethodGet, "/api/categories/getall", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid token", env.Message)
}

func TestCategoriesRejectUserRole(t *testing.T) {
	ts := newTestServer(t)

	w, env := ts.do(t, http.MethodGet, "/api/categories/getall", ts.token(t, ts.user), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "forbidden", env.Message)
}

func TestCategoryLifecycle(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.token(t, ts.admin)

	w, env := ts.do(t, http.MethodPost, "/api/categories/add", admin, map[string]any{"name": "Work"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, env.Success)
	assert.Equal(t, "category created", env.Message)

	var created struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Work", created.Name)

	w, env = ts.do(t, http.MethodGet, fmt.Sprintf("/api/categories/getbyid/%d", created.ID), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w, env = ts.do(t, http.MethodPut, "/api/categories/update", admin, map[string]any{"id": created.ID, "name": "Chores"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "category updated", env.Message)

	w, env = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/categories/delete?id=%d", created.ID), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "category deleted", env.Message)

	w, env = ts.do(t, http.MethodGet, fmt.Sprintf("/api/categories/getbyid/%d", created.ID), admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "category not found", env.Message)
}

func TestCategoryAddValidation(t *testing.T) {
	ts := newTestServer(t)

	w, env := ts.do(t, http.MethodPost, "/api/categories/add", ts.token(t, ts.admin), map[string]any{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, []string{"name"}, fields(t, env))
}

func TestCategoryGetByIDRejectsNonInteger(t *testing.T) {
	ts := newTestServer(t)

	w, env := ts.do(t, http.MethodGet, "/api/categories/getbyid/abc", ts.token(t, ts.admin), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"id"}, fields(t, env))
}

func TestToDoGetByIDAdminOnly(t *testing.T) {
	ts := newTestServer(t)
	c := ts.seedCategory(t, "Work")
	td := ts.seedToDo(t, "report", c.ID, ts.user.ID)

	w, env := ts.do(t, http.MethodGet, "/api/todos/getbyid/"+td.ID, ts.token(t, ts.user), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", env.Message)

	w, env = ts.do(t, http.MethodGet, "/api/todos/getbyid/"+td.ID, ts.token(t, ts.admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestToDoAddAndList(t *testing.T) {
	ts := newTestServer(t)
	c := ts.seedCategory(t, "Work")
	user := ts.token(t, ts.user)

	w, env := ts.do(t, http.MethodPost, "/api/todos/add", user, map[string]any{
		"title":       "write report",
		"description": "quarterly numbers",
		"startDate":   time.Now().Add(time.Hour).Format(time.RFC3339),
		"endDate":     time.Now().Add(8 * time.Hour).Format(time.RFC3339),
		"categoryId":  c.ID,
		"priority":    "high",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "todo created", env.Message)

	w, env = ts.do(t, http.MethodGet, "/api/todos/getall", user, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list []struct {
		Title    string `json:"title"`
		Priority string `json:"priority"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "write report", list[0].Title)
	assert.Equal(t, "High", list[0].Priority)
	assert.Equal(t, "Work", list[0].Category)
}

func TestToDoAddRejectsPastEndDate(t *testing.T) {
	ts := newTestServer(t)
	c := ts.seedCategory(t, "Work")

	w, env := ts.do(t, http.MethodPost, "/api/todos/add", ts.token(t, ts.user), map[string]any{
		"title":       "too late",
		"description": "already over",
		"startDate":   time.Now().Add(-8 * time.Hour).Format(time.RFC3339),
		"endDate":     time.Now().Add(-time.Hour).Format(time.RFC3339),
		"categoryId":  c.ID,
		"priority":    "Low",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, []string{"endDate"}, fields(t, env))
}

func TestToDoDeleteMissing(t *testing.T) {
	ts := newTestServer(t)

	w, env := ts.do(t, http.MethodDelete, "/api/todos/delete?id=no-such-id", ts.token(t, ts.user), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "todo not found", env.Message)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	ts := newTestServer(t)
	register := map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"username":  "ada",
		"password":  "Sifre123",
	}

	w, env := ts.do(t, http.MethodPost, "/api/users/create", "", register)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "user registered", env.Message)
	var created struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, domain.RoleUser, created.User.Role)

	w, env = ts.do(t, http.MethodPost, "/api/users/create", "", register)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email already registered", env.Message)

	w, env = ts.do(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "ada@example.com", "password": "Yanlis123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "wrong password", env.Message)

	w, env = ts.do(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "nobody@example.com", "password": "Sifre123",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "user not found", env.Message)

	w, env = ts.do(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "ada@example.com", "password": "Sifre123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "login successful", env.Message)
}

func TestRegisterWeakPasswordLists(t *testing.T) {
	ts := newTestServer(t)

	w, env := ts.do(t, http.MethodPost, "/api/users/create", "", map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"username":  "ada",
		"password":  "alllowercase",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, []string{"password"}, fields(t, env))
}

func TestUserEmailLookupAdminOnly(t *testing.T) {
	ts := newTestServer(t)

	w, env := ts.do(t, http.MethodGet, "/api/users/email?email=user@example.com", ts.token(t, ts.user), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", env.Message)

	w, env = ts.do(t, http.MethodGet, "/api/users/email?email=user@example.com", ts.token(t, ts.admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var u struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &u))
	assert.Equal(t, "user@example.com", u.Email)
}
