package router

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	mem "vet-clinic-admin/internal/adapters/storage/memory"
	pg "vet-clinic-admin/internal/adapters/storage/postgres"
	"vet-clinic-admin/internal/domain/records"
	"vet-clinic-admin/internal/flash"
	"vet-clinic-admin/internal/middleware"
	"vet-clinic-admin/internal/platform/logger"
	"vet-clinic-admin/internal/platform/metrics"
	"vet-clinic-admin/internal/views"
	"vet-clinic-admin/internal/web"

	_ "vet-clinic-admin/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AdminOptions struct {
	API   views.Resources
	Flash flash.Store // nil = memoria

	Logger       logger.Logger
	Metrics      *metrics.Collector // nil = sin /metrics
	DismissDelay time.Duration      // 0 = default
}

// NewAdminRouter arma el panel de administración.
func NewAdminRouter(opts AdminOptions) (http.Handler, error) {
	if opts.API == nil {
		return nil, errors.New("router: api required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := newBase(log, opts.Metrics)
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	h, err := web.New(web.Config{
		API:   opts.API,
		Flash: opts.Flash,
		Log:   log,
		Views: views.Options{
			DismissDelay: opts.DismissDelay,
			Log:          log,
		},
	})
	if err != nil {
		return nil, err
	}
	h.RegisterRoutes(r)
	return r, nil
}

type APIOptions struct {
	Logger logger.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

// NewAPIRouter arma la API REST de desarrollo que imita al backend de la clínica.
func NewAPIRouter(ctx context.Context, opts APIOptions) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var repo records.Repository
	if opts.DB != nil {
		if err := pg.EnsureSchema(ctx, opts.DB); err != nil {
			return nil, err
		}
		repo = pg.NewRecordsRepo(opts.DB)
		log.Info("records storage", map[string]any{"backend": "postgres"})
	} else {
		repo = mem.NewRecordRepo()
		log.Info("records storage", map[string]any{"backend": "memory"})
	}

	r := newBase(log, nil)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	records.RegisterRoutes(r, records.NewService(repo))
	return r, nil
}

func newBase(log logger.Logger, m *metrics.Collector) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, m))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}
