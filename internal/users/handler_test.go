package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"skillmingle-backend/internal/shared/server/middleware"
)

func newUsersRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(NewMemoryRepo(), &recordingProfiles{}, 4))

	r := gin.New()
	api := r.Group("/api")
	h.RegisterPublicRoutes(api)
	authed := api.Group("")
	authed.Use(middleware.Auth())
	h.RegisterRoutes(authed)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRegisterLoginMeFlow(t *testing.T) {
	r := newUsersRouter()

	resp := postJSON(t, r, "/api/auth/register", `{"name":"Ada","email":"ada@example.com","password":"hunter22"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = postJSON(t, r, "/api/auth/login", `{"email":"ada@example.com","password":"hunter22"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if out.Token == "" || out.User.Email != "ada@example.com" {
		t.Fatalf("unexpected login response: %+v", out)
	}

	meReq := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	meReq.Header.Set("Authorization", "Bearer "+out.Token)
	meResp := httptest.NewRecorder()
	r.ServeHTTP(meResp, meReq)
	if meResp.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", meResp.Code, meResp.Body.String())
	}

	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(meResp.Body).Decode(&me); err != nil {
		t.Fatalf("decode me response: %v", err)
	}
	if me.ID != out.User.ID || me.Name != "Ada" {
		t.Fatalf("unexpected me response: %+v", me)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	r := newUsersRouter()

	body := `{"name":"Ada","email":"ada@example.com","password":"hunter22"}`
	if resp := postJSON(t, r, "/api/auth/register", body); resp.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", resp.Code)
	}
	resp := postJSON(t, r, "/api/auth/register", body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newUsersRouter()

	if resp := postJSON(t, r, "/api/auth/register", `{"name":"Ada","email":"ada@example.com","password":"hunter22"}`); resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.Code)
	}
	resp := postJSON(t, r, "/api/auth/login", `{"email":"ada@example.com","password":"wrong"}`)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	r := newUsersRouter()

	resp := postJSON(t, r, "/api/auth/register", `{"name":"Ada","email":"ada@example.com","password":"short"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}
