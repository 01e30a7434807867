package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/taskboard/api/internal/models"
	"github.com/taskboard/api/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeTaskService struct {
	listFilter *models.TaskFilter
	listResult []models.Task
	listErr    error

	createParams *services.CreateTaskParams
	createResult *models.Task
	createErr    error

	updateID     string
	updatePatch  *models.TaskPatch
	updateResult *models.Task
	updateErr    error

	deleteID  string
	deleteErr error
}

func (s *fakeTaskService) ListTasks(_ context.Context, filter models.TaskFilter) ([]models.Task, error) {
	s.listFilter = &filter
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listResult, nil
}

func (s *fakeTaskService) CreateTask(_ context.Context, params services.CreateTaskParams) (*models.Task, error) {
	s.createParams = &params
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.createResult, nil
}

func (s *fakeTaskService) UpdateTask(_ context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	s.updateID = id
	s.updatePatch = &patch
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updateResult, nil
}

func (s *fakeTaskService) DeleteTask(_ context.Context, id string) error {
	s.deleteID = id
	return s.deleteErr
}

type fakeUserService struct {
	listResult []models.User
	listErr    error
}

func (s *fakeUserService) ListUsers(context.Context) ([]models.User, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listResult, nil
}

func newTestRouter(tasks services.TaskService, users services.UserService) *gin.Engine {
	router := gin.New()

	handler := New(zerolog.Nop(), tasks, users)

	router.GET("/health", handler.HandleHealth)

	api := router.Group("/api")
	api.GET("/users", handler.HandleListUsers)
	api.GET("/tasks", handler.HandleListTasks)
	api.POST("/tasks", handler.HandleCreateTask)
	api.PUT("/tasks/:id", handler.HandleUpdateTask)
	api.DELETE("/tasks/:id", handler.HandleDeleteTask)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
