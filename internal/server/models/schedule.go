package models

// Schedule is a recurring class or appointment slot.
type Schedule struct {
	ID         string
	UserID     UserID
	CourseName string
	StartTime  string
	EndTime    string
	Location   string
	DaysOfWeek []string
}

func (s *Schedule) Owner() UserID { return s.UserID }
