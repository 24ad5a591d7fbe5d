package models

import "time"

// Task is a to-do item.
type Task struct {
	ID          string
	UserID      UserID
	Title       string
	Description string
	DueDate     time.Time
	IsCompleted bool
	CreatedAt   time.Time
}

func (t *Task) Owner() UserID { return t.UserID }
