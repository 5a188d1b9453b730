package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authUsecase "taskengine-backend/internal/auth/usecase"
	taskUsecasePkg "taskengine-backend/internal/task/usecase"
	"taskengine-backend/pkg/config"
	"taskengine-backend/pkg/logging"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	taskUsecase taskUsecasePkg.TaskUsecase
	config      *config.Config
	logger      logging.Logger
}

func NewHandler(authUc authUsecase.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, cfg *config.Config, logger logging.Logger) *Handler {
	return &Handler{
		authUsecase: authUc,
		taskUsecase: taskUc,
		config:      cfg,
		logger:      logger,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// requestid must run first: every later middleware and envelope reads
	// the ID it minted.
	r.Use(requestid.New())
	r.Use(RequestLogger(h.logger))
	r.Use(Recovery())
	r.Use(CORS())
	r.Use(RateLimiter(h.config, h.logger))

	SetupRoutes(r, h.authUsecase, h.taskUsecase)

	return r.Run(addr)
}
