package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/api/internal/models"
	"github.com/taskboard/api/internal/services"
)

type taskOwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type taskResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Completed   bool               `json:"completed"`
	Priority    string             `json:"priority"`
	DueDate     *time.Time         `json:"dueDate"`
	CreatedAt   time.Time          `json:"createdAt"`
	UserID      string             `json:"userId"`
	User        *taskOwnerResponse `json:"user,omitempty"`
}

func newTaskResponse(task *models.Task) taskResponse {
	response := taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UserID:      task.UserID,
	}
	if task.User != nil {
		response.User = &taskOwnerResponse{
			ID:    task.User.ID,
			Name:  task.User.Name,
			Email: task.User.Email,
		}
	}
	return response
}

// parseDueDate accepts RFC 3339 timestamps and plain dates.
func parseDueDate(value string) (*time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse(time.DateOnly, value)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	var filter models.TaskFilter

	if v := c.Query("userId"); v != "" {
		filter.UserID = &v
	}
	if v := c.Query("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn().
				Str("completed", v).
				Msg("invalid completed filter")
			abort(c, newBadRequestError(msgInvalidCompleted))
			return
		}
		filter.Completed = &completed
	}
	if v := c.Query("priority"); v != "" {
		priority := models.Priority(v)
		filter.Priority = &priority
	}

	tasks, err := h.tasks.ListTasks(c, filter)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPriority) {
			abort(c, newBadRequestError(msgInvalidPriority))
			return
		}

		abort(c, newInternalError())
		return
	}

	response := make([]taskResponse, len(tasks))
	for i := range tasks {
		response[i] = newTaskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	UserID      string  `json:"userId"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.abortOnBodyError(c, err)
		return
	}

	params := services.CreateTaskParams{
		Title:  req.Title,
		UserID: req.UserID,
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	if req.Priority != nil {
		params.Priority = models.Priority(*req.Priority)
	}
	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			h.logger.Warn().
				Str("due_date", *req.DueDate).
				Msg("invalid due date")
			abort(c, newBadRequestError(msgInvalidDueDate))
			return
		}
		params.DueDate = dueDate
	}

	task, err := h.tasks.CreateTask(c, params)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired),
			errors.Is(err, services.ErrUserIDRequired):
			abort(c, newBadRequestError(msgTitleUserRequired))
		case errors.Is(err, services.ErrInvalidPriority):
			abort(c, newBadRequestError(msgInvalidPriority))
		case errors.Is(err, services.ErrUserNotFound):
			abort(c, newBadRequestError(msgUserNotFound))
		default:
			abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.abortOnBodyError(c, err)
		return
	}

	var (
		req      updateTaskRequest
		provided map[string]json.RawMessage
	)
	if len(bytes.TrimSpace(body)) > 0 {
		if err = json.Unmarshal(body, &req); err != nil {
			h.logger.Warn().
				Err(err).
				Msg("failed to unmarshal body")
			abort(c, newBadRequestError(msgInvalidRequestBody))
			return
		}
		if err = json.Unmarshal(body, &provided); err != nil {
			abort(c, newBadRequestError(msgInvalidRequestBody))
			return
		}
	}

	patch := models.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Priority != nil {
		priority := models.Priority(*req.Priority)
		patch.Priority = &priority
	}
	if _, ok := provided["dueDate"]; ok {
		// Present in the payload: null or "" clears the due date,
		// a date string replaces it.
		if req.DueDate == nil || *req.DueDate == "" {
			patch.DueDate = &time.Time{}
		} else {
			dueDate, err := parseDueDate(*req.DueDate)
			if err != nil {
				h.logger.Warn().
					Str("due_date", *req.DueDate).
					Msg("invalid due date")
				abort(c, newBadRequestError(msgInvalidDueDate))
				return
			}
			patch.DueDate = dueDate
		}
	}

	task, err := h.tasks.UpdateTask(c, c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError(msgTaskNotFound))
		case errors.Is(err, services.ErrTitleRequired):
			abort(c, newBadRequestError(msgEmptyTitle))
		case errors.Is(err, services.ErrInvalidPriority):
			abort(c, newBadRequestError(msgInvalidPriority))
		default:
			abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	err := h.tasks.DeleteTask(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(msgTaskNotFound))
			return
		}

		abort(c, newInternalError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) abortOnBodyError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.logger.Warn().
			Int64("limit", maxBytesErr.Limit).
			Msg("request body too large")
		abort(c, newAPIError(http.StatusRequestEntityTooLarge, msgRequestBodyTooBig))
		return
	}

	h.logger.Warn().
		Err(err).
		Msg("failed to bind json")
	abort(c, newBadRequestError(msgInvalidRequestBody))
}
