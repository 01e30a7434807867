package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank maps priorities onto a comparable scale, LOW (1) to URGENT (4).
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	DueDate     *time.Time
	CreatedAt   time.Time
	UserID      string
	User        *UserSummary
}

// TaskFilter matches tasks against every field that is set.
// A nil field means no constraint on that field.
type TaskFilter struct {
	UserID    *string
	Completed *bool
	Priority  *Priority
}

// TaskPatch carries only the fields a partial update provides.
// A nil field leaves the stored value untouched. DueDate pointing
// at the zero time clears the stored due date.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
	DueDate     *time.Time
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Completed == nil &&
		p.Priority == nil &&
		p.DueDate == nil
}
