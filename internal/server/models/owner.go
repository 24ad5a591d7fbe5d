package models

// Owned is implemented by every resource that records its creator.
type Owned interface {
	Owner() UserID
}

// Owns reports whether the resolved caller identity matches the resource's
// stored owner. Callers surface a failed check as a plain not-found so the
// existence of other users' resources never leaks.
func Owns(id UserID, r Owned) bool {
	return id != "" && r.Owner() == id
}
