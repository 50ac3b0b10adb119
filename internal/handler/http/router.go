package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-report-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig, reportHandler ReportHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/policy", attendanceHandler.GetPolicy)

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/records", attendanceHandler.ListRecords)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/employees", reportHandler.GetEmployeeReports)
			r.Post("/consolidated", reportHandler.GetConsolidatedReport)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}

// NewLogger builds the ECS-formatted JSON logger used for request logs.
func NewLogger(w io.Writer, level slog.Level, env, version string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-report"),
		slog.String("version", version),
		slog.String("env", env),
	)
}
