package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"armory/cmd/server/docs"
	"armory/internal/api"
	"armory/internal/config"
	"armory/internal/metrics"
	"armory/internal/redis"
	"armory/internal/repository"
	"armory/internal/tracing"
	"armory/internal/worker"
)

// @title Armory API
// @version 1.0
// @description Personal tabletop-equipment inventory API

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description JWT token. Example: Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system envs")
	}

	cfg := config.Load()

	shutdownTracing, err := tracing.Init(ctx, "armory")
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	db, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	rdb := redis.New(cfg)
	if err := redis.Ping(ctx, rdb); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	docs.SwaggerInfo.Host = cfg.HTTPAddr
	if cfg.IsProduction() {
		docs.SwaggerInfo.Schemes = []string{"https"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http"}
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(otelecho.Middleware("armory"))
	e.Use(metrics.PrometheusMiddleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api.SetupRoutes(e, db.DB(), rdb, cfg)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sweeper := worker.NewOrphanSweeper(db.DB(), cfg.Sweeper)
	go sweeper.StartWorker(ctx)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("tracing shutdown failed: %v", err)
	}
}
