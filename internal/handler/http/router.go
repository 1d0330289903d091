package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/albaworks/timeclock-backend-go/internal/config"
	"github.com/albaworks/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/jwt"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	collector *metrics.Collector,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	workRecordHandler WorkRecordHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method(http.MethodGet, "/metrics", collector.Handler())

	loginLimiter := middleware.NewRateLimiter(1, 5)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(loginLimiter.Handler)
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
			})
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", workRecordHandler.ClockIn)
				r.Post("/clock-out", workRecordHandler.ClockOut)
				r.Get("/me", workRecordHandler.MyRecords)
			})

			// Manager only
			r.Group(func(r chi.Router) {
				r.Use(middleware.ManagerOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.GetByID)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})

				r.Route("/work-records", func(r chi.Router) {
					r.Get("/", workRecordHandler.List)
					r.Post("/", workRecordHandler.Create)
					r.Put("/{id}", workRecordHandler.Update)
					r.Delete("/{id}", workRecordHandler.Delete)
					r.Post("/import", workRecordHandler.Import)
					r.Get("/template", workRecordHandler.Template)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/", payrollHandler.GetPayroll)
					r.Get("/export", payrollHandler.Export)
				})
			})
		})
	})

	return r
}
