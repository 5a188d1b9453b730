package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskengine-backend/internal/auth/dto"
	"taskengine-backend/internal/auth/usecase"
	"taskengine-backend/pkg/response"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new account
// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "user registered successfully", dto.UserOut{
		UserID: user.UserID,
		Email:  user.Email,
	})
}

// Login verifies credentials and returns an access token
// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", tokens)
}
