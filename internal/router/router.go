package router

import (
	"net/http"
	"time"

	_ "pet-adoption-api/docs"
	mem "pet-adoption-api/internal/adapters/storage/memory"
	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/media"
	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcionales: si vienen nil se usan los repos in-memory (modo dev/tests).
	PetRepo      pets.Repository
	AdoptionRepo adoptions.Repository

	// Opcional: default "uploads" en el directorio de trabajo.
	Intake *media.Intake
	Logger logger.Logger

	InitialPetStatus pets.Status
	RequestTimeout   time.Duration
	CORSOrigins      []string

	EnableTracing bool
	ServiceName   string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	intake := opts.Intake
	if intake == nil {
		intake = media.NewIntake("uploads")
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	service := opts.ServiceName
	if service == "" {
		service = "pet-adoption-api"
	}

	petRepo := opts.PetRepo
	if petRepo == nil {
		petRepo = mem.NewPetRepo()
	}
	adoptionRepo := opts.AdoptionRepo
	if adoptionRepo == nil {
		adoptionRepo = mem.NewAdoptionRepo()
	}

	r := chi.NewRouter()

	r.Use(middleware.Tracing(opts.EnableTracing, service))
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(chimw.Timeout(timeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Handle("/uploads/*", intake.FileServer())

	// Services por módulo
	petsSvc := pets.NewService(petRepo, opts.InitialPetStatus)
	adoptionsSvc := adoptions.NewService(adoptionRepo)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, intake, log)
	adoptions.RegisterRoutes(r, adoptionsSvc, log)

	return r
}
