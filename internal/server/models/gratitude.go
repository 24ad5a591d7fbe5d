package models

import "time"

// Gratitude is a short gratitude note.
type Gratitude struct {
	ID        string
	UserID    UserID
	Content   string
	Tags      []string
	CreatedAt time.Time
}

func (g *Gratitude) Owner() UserID { return g.UserID }
