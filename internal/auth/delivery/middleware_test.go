package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	"taskengine-backend/pkg/response"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(user *domain.User) error { return nil }
func (s *stubUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (s *stubUserRepo) FindByID(id string) (*domain.User, error) {
	return s.users[id], nil
}

func newGuardedRouter(t *testing.T, repo repository.UserRepository, tokens *token.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{BcryptCost: bcrypt.MinCost}
	authUc := usecase.NewAuthUsecase(repo, tokens, cfg)

	r := gin.New()
	r.Use(requestid.New())
	r.GET("/protected", AuthMiddleware(authUc), func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", gin.H{"user_id": c.GetString(ContextUserIDKey)})
	})
	return r
}

func doRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAuthMiddleware_MissingCredential(t *testing.T) {
	t.Parallel()

	tokens := token.NewService([]byte("secret"), time.Hour)
	r := newGuardedRouter(t, &stubUserRepo{users: map[string]*domain.User{}}, tokens)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		w := doRequest(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)

		env := decodeEnvelope(t, w)
		assert.False(t, env.Success)
		assert.NotEmpty(t, env.RequestID)
		assert.Equal(t, w.Header().Get("X-Request-ID"), env.RequestID)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	tokens := token.NewService([]byte("secret"), time.Hour)
	r := newGuardedRouter(t, &stubUserRepo{users: map[string]*domain.User{}}, tokens)

	// Expired token.
	expired, err := token.NewService([]byte("secret"), -time.Minute).Issue("user-1")
	require.NoError(t, err)

	// Token signed with another secret.
	forged, err := token.NewService([]byte("other-secret"), time.Hour).Issue("user-1")
	require.NoError(t, err)

	for _, tok := range []string{"garbage", expired, forged} {
		w := doRequest(r, "Bearer "+tok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Success)
	}
}

func TestAuthMiddleware_SubjectWithoutUser(t *testing.T) {
	t.Parallel()

	tokens := token.NewService([]byte("secret"), time.Hour)
	r := newGuardedRouter(t, &stubUserRepo{users: map[string]*domain.User{}}, tokens)

	tok, err := tokens.Issue("ghost")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+tok)
	assert.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "user not found", env.Message)
}

func TestAuthMiddleware_Success(t *testing.T) {
	t.Parallel()

	tokens := token.NewService([]byte("secret"), time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"user-1": {UserID: "user-1", Email: "alice@example.com"},
	}}
	r := newGuardedRouter(t, repo, tokens)

	tok, err := tokens.Issue("user-1")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, w.Header().Get("X-Request-ID"), env.RequestID)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user-1", data["user_id"])
}
