package http

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/karthago-hr/paie-backend-go/internal/pkg/metrics"
)

func NewRouter(
	env string,
	m *metrics.Metrics,
	registry *prometheus.Registry,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	masterHandler MasterHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paie-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
	r.Use(requestMetrics(m))

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/{id}", employeeHandler.Get)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", masterHandler.ListShifts)
			r.Post("/", masterHandler.CreateShift)
			r.Delete("/{id}", masterHandler.DeleteShift)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", masterHandler.ListHolidays)
			r.Post("/", masterHandler.CreateHoliday)
			r.Delete("/{id}", masterHandler.DeleteHoliday)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", leaveHandler.List)
			r.Post("/", leaveHandler.Create)
			r.Delete("/{id}", leaveHandler.Delete)
		})

		r.Route("/attendance/events", func(r chi.Router) {
			r.Get("/", attendanceHandler.ListEvents)
			r.Post("/", attendanceHandler.RecordEvent)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/stats/{employeeID}", payrollHandler.GetMonthlyStats)
			r.Get("/prepare/{employeeID}", payrollHandler.Prepare)
			r.Route("/records", func(r chi.Router) {
				r.Get("/", payrollHandler.ListRecords)
				r.Post("/", payrollHandler.Compute)
				r.Get("/{employeeID}", payrollHandler.GetRecord)
			})
		})
	})

	return r
}

// requestMetrics counts finished requests by method, route pattern and status.
func requestMetrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			pattern := chi.RouteContext(r.Context()).RoutePattern()
			if pattern == "" {
				pattern = r.URL.Path
			}
			m.ObserveRequest(r.Method, pattern, strconv.Itoa(ww.Status()))
		})
	}
}
