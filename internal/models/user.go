package models

import "time"

type User struct {
	ID        string
	Email     string
	Name      string
	Avatar    *string
	CreatedAt time.Time
	TaskCount int
}

// UserSummary is the owner projection attached to task results.
type UserSummary struct {
	ID    string
	Name  string
	Email string
}
