package bootstrap

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/todo-tracker/internal/api/http"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/repository"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/projects/service"
	"github.com/GoSim-25-26J-441/todo-tracker/internal/rpc"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	DB             *sql.DB
	Logger         *slog.Logger
	AllowedOrigins []string
	RateLimit      float64
	RateBurst      int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Logger))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	var pinger httpapi.Pinger
	if dep.DB != nil {
		pinger = dep.DB
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger)
	healthHandler.RegisterRoutes(r)

	todoRepo := repository.NewTodoRepository(dep.DB)
	projectRepo := repository.NewProjectRepository(dep.DB, todoRepo)

	rpcHandler := rpc.New(
		service.NewProjectService(projectRepo),
		service.NewTodoService(todoRepo),
		dep.Logger,
	)
	rpcHandler.Register(r, middleware.RateLimit(dep.RateLimit, dep.RateBurst))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
