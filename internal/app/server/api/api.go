// GET    /students        # Список студентов
// POST   /students        # Создать студента
// GET    /students/{id}   # Получить студента
// PUT    /students/{id}   # Заменить запись
// DELETE /students/{id}   # Удалить запись
// GET    /api/v1/health   # Health check
// GET    /metrics         # Метрики prometheus

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	healthAPI "studentdash/internal/app/server/api/http/health"
	"studentdash/internal/app/server/api/http/middleware"
	"studentdash/internal/app/server/api/http/middleware/logger"
	"studentdash/internal/app/server/api/http/middleware/metrics"
	"studentdash/internal/app/server/api/http/middleware/requestid"
	studentAPI "studentdash/internal/app/server/api/http/student"
	"studentdash/internal/domain/student"
	"studentdash/internal/infrastructure/storage"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Student *studentAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(store *storage.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	config := huma.DefaultConfig("Student Dashboard API", "1.0.0")
	// записи отдаются без $schema, как у публичной коллекции
	config.CreateHooks = nil

	API := humachi.New(mux, config)

	h := handlers(store, log, metrics.New(reg))
	h.Health.SetupRoutes(API)
	h.Student.SetupRoutes(API)

	return mux
}

func handlers(store *storage.Storage, log *slog.Logger, m *metrics.Metrics) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(requestid.Middleware())
	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	studentService := student.NewService(store.Students, log)
	middlewares.Add(requestid.Middleware())
	middlewares.Add(m.Middleware())
	middlewares.Add(loggerMW.Middleware())
	studentHandler := studentAPI.NewHandler(studentService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Student: studentHandler,
	}
}
