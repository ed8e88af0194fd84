package http

import (
	"log/slog"
	"os"

	"github.com/coreorbit/officehub-backend-go/internal/handler/http/middleware"
	"github.com/coreorbit/officehub-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(JWTService jwt.Service, leaveHandler LeaveHandler, scheduleHandler ScheduleHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "officehub-leave"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		// Requires authentication and a tenant
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.RequireCompany)

			r.Route("/leave", func(r chi.Router) {
				r.Post("/calculate", leaveHandler.Calculate)
				r.Post("/calculate/simple", leaveHandler.CalculateSimple)

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", leaveHandler.ListHolidays)
					r.Post("/", leaveHandler.CreateHoliday)
					r.Delete("/{id}", leaveHandler.DeleteHoliday)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Route("/weekly", func(r chi.Router) {
					r.Get("/", scheduleHandler.GetWeekly)
					r.Put("/", scheduleHandler.UpdateWeekly)
				})
			})
		})
	})
	return r
}
