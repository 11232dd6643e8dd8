package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(appName, env string, shiftHandler ShiftHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/shifts", func(r chi.Router) {
			r.Post("/", shiftHandler.Create)
			r.Post("/recurring", shiftHandler.CreateRecurring)

			r.Route("/{shiftID}", func(r chi.Router) {
				r.Get("/", shiftHandler.GetByID)
				r.Patch("/times", shiftHandler.UpdateTimes)
				r.Post("/move", shiftHandler.Move)
				r.Delete("/", shiftHandler.Delete)
			})
		})

		r.Route("/sites/{siteID}", func(r chi.Router) {
			r.Get("/shifts", shiftHandler.ListBySite)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/clock-in", attendanceHandler.ClockIn)
			r.Post("/clock-out", attendanceHandler.ClockOut)
			r.Post("/corrections", attendanceHandler.Correct)
		})
	})
	return r
}
