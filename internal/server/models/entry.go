package models

import "time"

// Entry is a diary entry. Content holds AES-GCM ciphertext; Key is the
// per-entry content key it was sealed with. The key is stored with the entry
// record; without it the content is permanently unrecoverable.
type Entry struct {
	ID        string
	UserID    UserID
	Title     string
	Content   []byte
	Key       []byte
	Tags      []string
	CreatedAt time.Time
}

func (e *Entry) Owner() UserID { return e.UserID }

// EntrySummary is the listing shape for entries: metadata only, no content.
type EntrySummary struct {
	ID        string
	Title     string
	Tags      []string
	CreatedAt time.Time
}

// DecryptedEntry is an entry as returned to its authenticated owner, with
// Content already decrypted.
type DecryptedEntry struct {
	ID        string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
}
