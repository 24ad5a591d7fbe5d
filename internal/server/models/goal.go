package models

import "time"

// Goal is a long-term objective with optional milestones.
type Goal struct {
	ID          string
	UserID      UserID
	Title       string
	Description string
	Milestones  []string
	DueDate     time.Time
	IsCompleted bool
	CreatedAt   time.Time
}

func (g *Goal) Owner() UserID { return g.UserID }
