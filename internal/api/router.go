package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"task-manager-api/internal/api/handlers"
	"task-manager-api/internal/infrastructure/requestlog"
	"task-manager-api/internal/usecase"
)

func NewRouter(taskService *usecase.TaskService, requestLog *requestlog.Logger, db Pinger, logger *log.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// The UI is served from another origin, so answer preflights from anywhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	taskHandler := handlers.NewTaskHandler(taskService, logger)

	r.Get("/healthz", healthz(db))

	r.Route("/tasks", func(r chi.Router) {
		r.Use(RequestLogMiddleware(requestLog, logger))
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTask)
			r.Put("/", taskHandler.UpdateTask)
			r.Delete("/", taskHandler.DeleteTask)
		})
	})

	return r
}
