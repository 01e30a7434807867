package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Messages leaked to callers. Anything more specific stays in the logs.
const (
	msgInternalError      = "Internal server error"
	msgInvalidRequestBody = "Invalid request body"
	msgRequestBodyTooBig  = "Request body too large"
	msgTitleUserRequired  = "Title and userId are required"
	msgEmptyTitle         = "Title must not be empty"
	msgInvalidPriority    = "Invalid priority value"
	msgInvalidCompleted   = "Invalid completed value"
	msgInvalidDueDate     = "Invalid dueDate value"
	msgUserNotFound       = "User not found"
	msgTaskNotFound       = "Task not found"
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newInternalError() apiError {
	return newAPIError(http.StatusInternalServerError, msgInternalError)
}
