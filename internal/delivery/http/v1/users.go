package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/api/internal/models"
)

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	TaskCount int       `json:"taskCount"`
}

func newUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		TaskCount: user.TaskCount,
	}
}

func (h *handlerImpl) HandleListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c)
	if err != nil {
		abort(c, newInternalError())
		return
	}

	response := make([]userResponse, len(users))
	for i := range users {
		response[i] = newUserResponse(&users[i])
	}

	c.JSON(http.StatusOK, response)
}
