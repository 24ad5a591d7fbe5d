package models

import "time"

// Mood is a mood-tracking record with an optional note and a 0–10 rating.
type Mood struct {
	ID        string
	UserID    UserID
	Mood      string
	Note      string
	Rating    int
	CreatedAt time.Time
}

func (m *Mood) Owner() UserID { return m.UserID }
