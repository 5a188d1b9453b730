package delivery

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taskengine-backend/internal/auth/domain"
	"taskengine-backend/internal/auth/repository"
	"taskengine-backend/internal/auth/token"
	"taskengine-backend/internal/auth/usecase"
	"taskengine-backend/pkg/config"
)

type memUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	seq     int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*domain.User{}, byID: map[string]*domain.User{}}
}

func (m *memUserRepo) Create(user *domain.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	m.seq++
	user.UserID = fmt.Sprintf("user-%d", m.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.byEmail[user.Email] = user
	m.byID[user.UserID] = user
	return nil
}

func (m *memUserRepo) FindByEmail(email string) (*domain.User, error) {
	return m.byEmail[email], nil
}

func (m *memUserRepo) FindByID(id string) (*domain.User, error) {
	return m.byID[id], nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{BcryptCost: bcrypt.MinCost}
	tokens := token.NewService([]byte("test-secret"), time.Hour)
	authUc := usecase.NewAuthUsecase(newMemUserRepo(), tokens, cfg)
	handler := NewAuthHandler(authUc)

	r := gin.New()
	r.Use(requestid.New())
	r.POST("/v1/auth/register", handler.Register)
	r.POST("/v1/auth/login", handler.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	r := newAuthRouter(t)

	w := postJSON(r, "/v1/auth/register", `{"email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, w.Header().Get("X-Request-ID"), env.RequestID)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", data["email"])
	assert.NotEmpty(t, data["user_id"])
	assert.NotContains(t, w.Body.String(), "password123")

	w = postJSON(r, "/v1/auth/login", `{"email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	env = decodeEnvelope(t, w)
	data, ok = env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bearer", data["token_type"])
	assert.NotEmpty(t, data["access_token"])
}

func TestRegister_DuplicateEmailEnvelope(t *testing.T) {
	t.Parallel()

	r := newAuthRouter(t)

	w := postJSON(r, "/v1/auth/register", `{"email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/v1/auth/register", `{"email":"alice@example.com","password":"password456"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "email", env.Errors[0].Field)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", env.Errors[0].Code)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	r := newAuthRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"password123"}`},
		{"bad email", `{"email":"not-an-email","password":"password123"}`},
		{"short password", `{"email":"alice@example.com","password":"short"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/v1/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			env := decodeEnvelope(t, w)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Errors)
		})
	}
}

func TestLogin_BadCredentialsEnvelope(t *testing.T) {
	t.Parallel()

	r := newAuthRouter(t)

	w := postJSON(r, "/v1/auth/register", `{"email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/v1/auth/login", `{"email":"alice@example.com","password":"wrongpass"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "credentials", env.Errors[0].Field)
	assert.Equal(t, "INVALID", env.Errors[0].Code)
}
