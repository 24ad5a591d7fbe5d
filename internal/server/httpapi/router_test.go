package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestRouter() http.Handler {
	log := testLogger()
	h := Handlers{
		Auth:        NewAuthHandler(&fakeAuthService{loginToken: "tok"}, log),
		Entries:     NewEntryHandler(&fakeEntryVault{}, log),
		Attachments: NewAttachmentHandler(nil, log),
		Tasks:       NewTaskHandler(nil, log),
		Goals:       NewGoalHandler(nil, log),
		Habits:      NewHabitHandler(nil, log),
		Moods:       NewMoodHandler(nil, log),
		Schedules:   NewScheduleHandler(nil, log),
		Gratitude:   NewGratitudeHandler(nil, log),
		Capsules:    NewCapsuleHandler(nil, log),
	}
	return NewRouter(h, []byte("secret"), []string{"*"})
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "pong\n" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter()

	for _, target := range []string{
		"/api/entries", "/api/tasks", "/api/goals", "/api/habits",
		"/api/moods", "/api/schedules", "/api/gratitude", "/api/capsules",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("GET %s status = %d, want 401", target, rec.Code)
		}
	}
}
