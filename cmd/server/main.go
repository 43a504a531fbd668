// @title         Task Manager API
// @version       1.0
// @description   Personal task management with JWT authentication.
// @BasePath      /api
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Authorization header in the form "Bearer <JWT>".
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	// internal imports
	httpapi "github.com/artem13815/taskmanager/api/http"
	"github.com/artem13815/taskmanager/api/http/handlers"
	"github.com/artem13815/taskmanager/pkg/auth"
	"github.com/artem13815/taskmanager/pkg/config"
	"github.com/artem13815/taskmanager/pkg/health"
	"github.com/artem13815/taskmanager/pkg/health/checkers"
	"github.com/artem13815/taskmanager/pkg/logging"
	"github.com/artem13815/taskmanager/pkg/repository/cache"
	"github.com/artem13815/taskmanager/pkg/repository/memory"
	pgrepo "github.com/artem13815/taskmanager/pkg/repository/postgres"
	"github.com/artem13815/taskmanager/pkg/security/jwt"
	"github.com/artem13815/taskmanager/pkg/storage/postgres"
	redisstore "github.com/artem13815/taskmanager/pkg/storage/redis"
	"github.com/artem13815/taskmanager/pkg/task"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Config problems are fatal before anything else starts.
	cfg, err := config.Load()
	log := logging.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Error(ctx, "invalid configuration", "err", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *logging.SlogLogger) error {
	var (
		userRepo  auth.UserRepository
		taskRepo  task.Repository
		readiness []health.Checker
	)

	switch cfg.Store {
	case config.StoreMemory:
		log.Warn(ctx, "using in-memory store; data is lost on restart")
		userRepo = memory.NewUserRepository()
		taskRepo = memory.NewTaskRepository()
	default:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.PoolOptions{MaxConns: cfg.DBMaxConns})
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		userRepo = pgrepo.NewUserRepository(pool)
		taskRepo = pgrepo.NewTaskRepository(pool)
		readiness = append(readiness, checkers.NewPostgresChecker(pool))
	}

	if cfg.RedisAddr != "" {
		rdb, err := redisstore.Connect(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		userRepo = cache.NewUserCache(userRepo, rdb, cfg.UserCacheTTL, log.With("component", "user_cache"))
		readiness = append(readiness, checkers.NewRedisChecker(rdb))
	}

	// Token generator
	tokens, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		return err
	}

	authUC := auth.NewAuthService(userRepo, tokens)
	taskUC := task.NewService(taskRepo)
	authn := jwt.NewAuthenticator(tokens, authUC)

	app := httpapi.NewApp(log, httpapi.AppOptions{CORSOrigins: cfg.CORSOrigins, AccessLog: true})
	httpapi.Register(app,
		handlers.NewAuthHandler(authUC),
		handlers.NewHealthHandler(health.NewService(readiness...)),
		handlers.NewTaskHandler(taskUC),
		authn,
	)

	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
	}()

	log.Info(ctx, "HTTP server listening", "port", cfg.Port, "store", cfg.Store)
	return app.Listen(":" + cfg.Port)
}
