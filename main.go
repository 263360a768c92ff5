package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hotelhub/hotel-service/handlers"
	"github.com/hotelhub/hotel-service/internal/config"
	"github.com/hotelhub/hotel-service/internal/database"
	hotelhandler "github.com/hotelhub/hotel-service/internal/hotel/handler"
	"github.com/hotelhub/hotel-service/internal/hotel/service"
	"github.com/hotelhub/hotel-service/pkg/logger"
	"github.com/hotelhub/hotel-service/pkg/metrics"
	"github.com/hotelhub/hotel-service/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

var startTime = time.Now()

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Configure(os.Stdout, cfg.Server.Environment)
	logger.Init(cfg.Log.Level)
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())
	logger.Infof("config loaded: mongo=%v redis=%v rate_limit=%v", cfg.UsesMongo(), cfg.Redis.Addr() != "", cfg.RateLimit.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, mongoClient := openStore(ctx, cfg)
	if mongoClient != nil {
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := mongoClient.Disconnect(dctx); err != nil {
				logger.Warnf("mongo disconnect: %v", err)
			}
		}()
	}

	rdb := openRedis(ctx, cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := newRouter(cfg, svc, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("hotel service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Errorf("server failed: %v", err)
		}
	case <-ctx.Done():
		logger.Infof("shutdown signal received")
	}

	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
	logger.Infof("hotel service stopped")
}

// openStore prefers a Mongo-backed service when MONGODB_URI is provided and
// falls back to the in-memory store otherwise.
func openStore(ctx context.Context, cfg *config.Config) (service.Service, *mongo.Client) {
	if !cfg.UsesMongo() {
		logger.Warnf("MONGODB_URI not set; using in-memory hotel store (data is lost on restart)")
		return service.NewMemoryService(), nil
	}
	client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, cfg.MongoDB.ConnectAttempts, time.Second)
	if err != nil {
		logger.Fatalf("could not connect to MongoDB: %v", err)
	}
	logger.Infof("connected to MongoDB database=%s collection=%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
	col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
	return service.NewMongoService(col), client
}

// openRedis returns a client only when Redis is configured and answers a ping.
func openRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	addr := cfg.Redis.Addr()
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		logger.Warnf("failed to connect to Redis (%s): %v", addr, err)
		_ = client.Close()
		return nil
	}
	logger.Infof("connected to Redis at %s", addr)
	return client
}

func newRouter(cfg *config.Config, svc service.Service, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	deps := map[string]handlers.Pinger{"store": svc}
	if rdb != nil {
		deps["redis"] = handlers.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	handlers.RegisterHealth(r, startTime, deps)
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	hotelhandler.RegisterHotelRoutes(r, svc)
	return r
}
