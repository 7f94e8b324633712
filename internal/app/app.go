package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/aramvolt/voltbook/internal/config"
	"github.com/aramvolt/voltbook/internal/handlers"
	"github.com/aramvolt/voltbook/internal/pg"
	"github.com/aramvolt/voltbook/internal/repo"
	"github.com/aramvolt/voltbook/internal/service"
	"github.com/aramvolt/voltbook/internal/tariff"
	"github.com/aramvolt/voltbook/pkg/auth"
	"github.com/aramvolt/voltbook/pkg/clients"
	"github.com/aramvolt/voltbook/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	tariff *tariff.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	repos, err := buildRepositories(ctx, cfg)
	if err != nil {
		zap.L().Error("build partner store failed: ", zap.Error(err))
		return fmt.Errorf("can't build partner store: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessions := auth.NewSessionRegistry()

	a.cfg = cfg
	a.repo = repos
	a.srv = service.New(cfg, repos, jwtService, sessions)
	a.tariff = tariff.New(cfg, clients.NewHTTPClient())
	a.api = handlers.New(a.srv, a.tariff)

	if err = a.startHTTPServer(ctx, jwtService, sessions); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.tariff.Start(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func buildRepositories(ctx context.Context, cfg *config.Config) (*repo.Repositories, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		pool, err := getPgxpool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			return nil, fmt.Errorf("can't run migrations: %w", err)
		}
		return repo.New(pg.New(pool), pg.NewTXManager(pool)), nil
	case config.StorageFile:
		return repo.NewFile(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage)
	}
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context, jwtService auth.JWTServiceInterface, sessions auth.SessionRegistryInterface) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router, jwtService, sessions)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
