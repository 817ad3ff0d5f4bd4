package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"egarage/models"
	"egarage/services/auth"
	"egarage/utils"

	"github.com/gin-gonic/gin"
)

type stubAuthService struct {
	resp *auth.AuthResponse
	err  error
}

func (s *stubAuthService) Signup(req models.SignupRequest) (*auth.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Login(email, password string) (*auth.AuthResponse, error) {
	return s.resp, s.err
}

func newAuthTestRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &AuthHandler{Service: svc}
	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	return r
}

func TestSignupHandler(t *testing.T) {
	svc := &stubAuthService{
		resp: &auth.AuthResponse{
			Token: "token-1",
			User:  models.AccountSummary{ID: "acct-1", Name: "Asha Patel", Email: "asha@example.com", Role: models.RoleCustomer},
		},
	}

	body := `{"fullName":"Asha Patel","email":"asha@example.com","password":"p","confirmPassword":"p","role":"Customer"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newAuthTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}

	var resp auth.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Token != "token-1" {
		t.Errorf("token = %q", resp.Token)
	}
	if resp.User.Role != models.RoleCustomer {
		t.Errorf("role = %q", resp.User.Role)
	}
}

func TestSignupHandlerConflict(t *testing.T) {
	svc := &stubAuthService{err: utils.NewConflictError("an account with this email already exists")}

	body := `{"fullName":"A","email":"a@example.com","password":"p","confirmPassword":"p","role":"Customer"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newAuthTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestLoginHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown email", utils.NewNotFoundError("email not found"), http.StatusNotFound},
		{"wrong password", utils.NewAuthError("incorrect password"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAuthService{err: tt.err}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/login",
				strings.NewReader(`{"email":"a@example.com","password":"p"}`))
			req.Header.Set("Content-Type", "application/json")
			newAuthTestRouter(svc).ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestLoginHandlerMalformedBody(t *testing.T) {
	svc := &stubAuthService{}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	newAuthTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
