package models

import "time"

// Attachment is a binary file attached to a diary entry. The bytes live in
// S3-compatible object storage under StorageKey; clients upload and download
// through short-lived presigned URLs.
type Attachment struct {
	ID         string
	EntryID    string
	UserID     UserID
	FileName   string
	StorageKey string
	CreatedAt  time.Time
}

func (a *Attachment) Owner() UserID { return a.UserID }
