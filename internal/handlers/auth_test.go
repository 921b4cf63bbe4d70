package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bugstack-dev/bugstack/db"
	"github.com/bugstack-dev/bugstack/internal/models"
	"github.com/gin-gonic/gin"
)

func TestCreateUserAndLogin(t *testing.T) {
	r := setupTest(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/createuser", gin.H{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "Ada@Example.com",
		"phone":     "0123456789",
		"password":  "secret1",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status %d, body %s", rec.Code, rec.Body.String())
	}

	var registered identity
	decodeJSON(t, rec, &registered)

	if registered.UserID == 0 {
		t.Fatalf("register: expected assigned userId, got %+v", registered)
	}
	if registered.FirstName != "Ada" || registered.LastName != "Lovelace" {
		t.Errorf("register: unexpected identity %+v", registered)
	}

	// Email is normalized, so login with the lowercased form works.
	rec = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "ada@example.com",
		"password": "secret1",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("login: status %d, body %s", rec.Code, rec.Body.String())
	}

	var loggedIn identity
	decodeJSON(t, rec, &loggedIn)

	if loggedIn != registered {
		t.Errorf("login identity %+v does not match registration %+v", loggedIn, registered)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := setupTest(t)
	user := registerUser(t, r, "Grace", "Hopper")

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    user.Email,
		"password": "not-the-password",
	})

	if rec.Code == http.StatusOK {
		t.Fatalf("login with wrong password succeeded: %s", rec.Body.String())
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	r := setupTest(t)

	body := gin.H{
		"firstName": "Alan",
		"lastName":  "Turing",
		"email":     "a@b.com",
		"phone":     "0123456789",
		"password":  "secret1",
	}

	if rec := doJSON(t, r, http.MethodPost, "/api/auth/createuser", body); rec.Code != http.StatusCreated {
		t.Fatalf("first register: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec := doJSON(t, r, http.MethodPost, "/api/auth/createuser", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: status %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var count int64
	if err := db.DB.Model(&models.User{}).Where("email = ?", "a@b.com").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one user with the email, found %d", count)
	}
}

func TestCreateUserValidation(t *testing.T) {
	r := setupTest(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"short password", gin.H{"firstName": "A", "lastName": "B", "email": "ab@example.com", "password": "12345"}},
		{"invalid email", gin.H{"firstName": "A", "lastName": "B", "email": "not-an-email", "password": "secret1"}},
		{"missing first name", gin.H{"lastName": "B", "email": "ab@example.com", "password": "secret1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/api/auth/createuser", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status %d, want %d (body %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
			}
		})
	}
}

func TestSessionCookieGrantsMe(t *testing.T) {
	r := setupTest(t)

	reg := doJSON(t, r, http.MethodPost, "/api/auth/createuser", gin.H{
		"firstName": "Edsger",
		"lastName":  "Dijkstra",
		"email":     "ewd@example.com",
		"password":  "secret1",
	})
	if reg.Code != http.StatusCreated {
		t.Fatalf("register: status %d, body %s", reg.Code, reg.Body.String())
	}

	cookies := reg.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("register did not set a session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("me: status %d, body %s", rec.Code, rec.Body.String())
	}

	var me identity
	decodeJSON(t, rec, &me)

	if me.FirstName != "Edsger" || me.LastName != "Dijkstra" {
		t.Errorf("me: unexpected identity %+v", me)
	}
}

func TestMeWithoutSessionIsUnauthorized(t *testing.T) {
	r := setupTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("me without session: status %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
