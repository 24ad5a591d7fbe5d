package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Entries     *EntryHandler
	Attachments *AttachmentHandler
	Tasks       *TaskHandler
	Goals       *GoalHandler
	Habits      *HabitHandler
	Moods       *MoodHandler
	Schedules   *ScheduleHandler
	Gratitude   *GratitudeHandler
	Capsules    *CapsuleHandler
}

// NewRouter assembles the chi routing tree. Everything under /api except
// register and login sits behind the bearer-token authenticator.
func NewRouter(h Handlers, jwtSecret []byte, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(Authenticator(jwtSecret))

			r.Route("/entries", func(r chi.Router) {
				r.Get("/", h.Entries.List)
				r.Post("/", h.Entries.Create)
				r.Get("/{id}", h.Entries.Get)
				r.Put("/{id}", h.Entries.Update)
				r.Delete("/{id}", h.Entries.Delete)

				r.Get("/{id}/attachments", h.Attachments.List)
				r.Post("/{id}/attachments", h.Attachments.RequestUpload)
				r.Delete("/{id}/attachments/{attachmentID}", h.Attachments.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Tasks.List)
				r.Post("/", h.Tasks.Create)
				r.Get("/{id}", h.Tasks.Get)
				r.Put("/{id}", h.Tasks.Update)
				r.Delete("/{id}", h.Tasks.Delete)
			})

			r.Route("/goals", func(r chi.Router) {
				r.Get("/", h.Goals.List)
				r.Post("/", h.Goals.Create)
				r.Get("/{id}", h.Goals.Get)
				r.Put("/{id}", h.Goals.Update)
				r.Delete("/{id}", h.Goals.Delete)
			})

			r.Route("/habits", func(r chi.Router) {
				r.Get("/", h.Habits.List)
				r.Post("/", h.Habits.Create)
				r.Get("/{id}", h.Habits.Get)
				r.Put("/{id}", h.Habits.Update)
				r.Delete("/{id}", h.Habits.Delete)
			})

			r.Route("/moods", func(r chi.Router) {
				r.Get("/", h.Moods.List)
				r.Post("/", h.Moods.Create)
				r.Get("/{id}", h.Moods.Get)
				r.Put("/{id}", h.Moods.Update)
				r.Delete("/{id}", h.Moods.Delete)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", h.Schedules.List)
				r.Post("/", h.Schedules.Create)
				r.Get("/{id}", h.Schedules.Get)
				r.Put("/{id}", h.Schedules.Update)
				r.Delete("/{id}", h.Schedules.Delete)
			})

			r.Route("/gratitude", func(r chi.Router) {
				r.Get("/", h.Gratitude.List)
				r.Post("/", h.Gratitude.Create)
				r.Get("/{id}", h.Gratitude.Get)
				r.Put("/{id}", h.Gratitude.Update)
				r.Delete("/{id}", h.Gratitude.Delete)
			})

			r.Route("/capsules", func(r chi.Router) {
				r.Get("/", h.Capsules.List)
				r.Post("/", h.Capsules.Create)
				r.Get("/{id}", h.Capsules.Get)
				r.Delete("/{id}", h.Capsules.Delete)
			})
		})
	})

	return r
}
