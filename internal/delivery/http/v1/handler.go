package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/taskboard/api/internal/services"
)

type Handler interface {
	HandleHealth(c *gin.Context)

	HandleListUsers(c *gin.Context)

	HandleListTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
	users  services.UserService

	startedAt time.Time
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	userService services.UserService,
) Handler {
	return &handlerImpl{
		logger:    logger,
		tasks:     taskService,
		users:     userService,
		startedAt: time.Now(),
	}
}
