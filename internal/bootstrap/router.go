package bootstrap

import (
	"log/slog"

	httpapi "github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/api/http"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/api/http/middleware"
	circuithttp "github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/http"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/repository"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/service"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/live"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Redis       *redis.Client
	Logger      *slog.Logger
	LiveManager *live.Manager
	RateLimit   rate.Limit
	RateBurst   int

	SolverMaxIterations int
	SolverTolerance     float64
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	var runRepo *repository.RunRepository
	if dep.Redis != nil {
		runRepo = repository.NewRunRepository(dep.Redis)
	}
	svc := service.NewCircuitService(runRepo, dep.Logger)
	svc.TuneSolver(dep.SolverMaxIterations, dep.SolverTolerance)

	if dep.RateLimit == 0 {
		dep.RateLimit = 20
	}
	if dep.RateBurst == 0 {
		dep.RateBurst = 40
	}

	api := r.Group("/api/v1")
	api.Use(middleware.APIKeyMiddleware())
	api.Use(middleware.RequestIDMiddleware())
	api.Use(middleware.RateLimitMiddleware(dep.RateLimit, dep.RateBurst))

	circuitHandler := circuithttp.New(svc, dep.LiveManager)
	circuitHandler.Register(api)

	return r
}
