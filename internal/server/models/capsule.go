package models

import "time"

// Capsule is a time-capsule message that stays hidden until OpenDate.
type Capsule struct {
	ID        string
	UserID    UserID
	Content   string
	OpenDate  time.Time
	CreatedAt time.Time
}

func (c *Capsule) Owner() UserID { return c.UserID }
