package router

import (
	"net/http"

	_ "pawpal-planner/docs" // registra el doc de swagger
	"pawpal-planner/internal/domain/planner"
	"pawpal-planner/internal/middleware"
	"pawpal-planner/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, se crea un planner vacío en memoria.
	Service *planner.Service

	Logger logger.Logger // puede ser nil
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	svc := opts.Service
	if svc == nil {
		svc = planner.NewService(planner.NewSystem(), log)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	planner.RegisterRoutes(r, svc)

	return r
}
