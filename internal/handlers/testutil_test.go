package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/bugstack-dev/bugstack/db"
	"github.com/bugstack-dev/bugstack/internal/auth"
	"github.com/bugstack-dev/bugstack/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest wires the handlers against a throwaway sqlite database
// and returns the full router, so tests exercise the same routes,
// binding, and middleware as production.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	if err := auth.InitJWTSecret(); err != nil {
		t.Fatalf("InitJWTSecret: %v", err)
	}

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "bugstack.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	db.DB = gdb

	if err := db.MigrateDatabase(); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return router.NewRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

type identity struct {
	UserID    uint   `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"-"`
}

// registerUser creates a user through the real endpoint and returns
// the assigned identity. Each test runs against a fresh database, so
// name-derived emails stay unique as long as names differ per test.
func registerUser(t *testing.T, r *gin.Engine, firstName, lastName string) identity {
	t.Helper()

	email := strings.ToLower(fmt.Sprintf("%s.%s@example.com", firstName, lastName))
	rec := doJSON(t, r, http.MethodPost, "/api/auth/createuser", gin.H{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"phone":     "0123456789",
		"password":  "hunter22",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s %s: status %d, body %s", firstName, lastName, rec.Code, rec.Body.String())
	}

	var id identity
	decodeJSON(t, rec, &id)
	id.Email = email

	return id
}

// createProject creates a project owned by the given user and returns
// the new project ID.
func createProject(t *testing.T, r *gin.Engine, creator identity, name, description string) uint {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/api/projects/createproject", gin.H{
		"name":              name,
		"description":       description,
		"creatorsId":        creator.UserID,
		"creatorsFirstName": creator.FirstName,
		"creatorsLastName":  creator.LastName,
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("create project %q: status %d, body %s", name, rec.Code, rec.Body.String())
	}

	var resp struct {
		ProjectID uint `json:"projectId"`
	}
	decodeJSON(t, rec, &resp)

	if resp.ProjectID == 0 {
		t.Fatalf("create project %q: no projectId in response %s", name, rec.Body.String())
	}

	return resp.ProjectID
}
