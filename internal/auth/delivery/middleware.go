package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskengine-backend/internal/auth/usecase"
	"taskengine-backend/pkg/apperror"
	"taskengine-backend/pkg/logging"
	"taskengine-backend/pkg/response"
)

// Context keys set on successful authentication.
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
)

// AuthMiddleware resolves the bearer token on each request to an
// authenticated user and stores it in the gin context for ownership checks.
// Every rejection is logged with the request's correlation ID.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logging.From(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("missing authorization header")
			response.Error(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Warn("malformed authorization header")
			response.Error(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}

		user, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			log.Warn("credential rejected", "reason", apperror.From(err).Message)
			response.FromError(c, err)
			c.Abort()
			return
		}

		log.Info("authenticated user", "user_id", user.UserID)
		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.UserID)
		c.Next()
	}
}
