package models

import "time"

// Habit tracks a recurring activity and progress toward a target count.
type Habit struct {
	ID        string
	UserID    UserID
	Title     string
	Frequency string
	Progress  int
	Goal      int
	CreatedAt time.Time
}

func (h *Habit) Owner() UserID { return h.UserID }
