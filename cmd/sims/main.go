package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	pkgdb "github.com/Skotchmaster/sims/pkg/db"
	"github.com/Skotchmaster/sims/pkg/logging"
	loggingmw "github.com/Skotchmaster/sims/pkg/middleware/logging"

	simscfg "github.com/Skotchmaster/sims/internal/config"
	"github.com/Skotchmaster/sims/internal/events"
	"github.com/Skotchmaster/sims/internal/httpserver"
	"github.com/Skotchmaster/sims/internal/repo"
	"github.com/Skotchmaster/sims/internal/search"
	"github.com/Skotchmaster/sims/internal/service"
)

type publisher interface {
	service.EventPublisher
	Close() error
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := simscfg.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		cancel()
		log.Fatalf("db open: %v", err)
	}

	store := &repo.GormRepo{DB: db}
	if err := store.Migrate(ctx); err != nil {
		cancel()
		log.Fatalf("db migrate: %v", err)
	}

	var producer publisher = events.Nop{}
	if cfg.KafkaEnabled() {
		producer = events.NewProducer(cfg.KafkaBrokers)
		logger.Info("kafka_enabled", "brokers", cfg.KafkaBrokers)
	}

	var indexer service.ItemIndexer = search.Nop{}
	if cfg.SearchEnabled() {
		client, err := search.NewClient(ctx, cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Error("es_unavailable", "url", cfg.ESURL, "error", err)
		} else {
			indexer = search.NewIndexer(client, cfg.ESIndex)
			logger.Info("es_enabled", "url", cfg.ESURL, "index", cfg.ESIndex)
		}
	}
	cancel()

	authSvc := &service.AuthService{
		Repo:          store,
		AccessSecret:  cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		HashKey:       cfg.PasswordHashKey,
		AccessTTL:     cfg.AccessTokenTTL,
		RefreshTTL:    cfg.RefreshTokenTTL,
		Events:        producer,
	}
	itemSvc := &service.ItemService{Repo: store, Events: producer, Index: indexer}
	profitSvc := &service.ProfitService{Repo: store}

	if _, ok := indexer.(*search.Indexer); ok {
		go func() {
			rctx := logging.IntoContext(context.Background(), logger)
			n, err := itemSvc.Reindex(rctx)
			if err != nil {
				logger.Error("reindex_error", "indexed", n, "error", err)
				return
			}
			logger.Info("reindex_done", "indexed", n)
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	httpserver.Register(e, &httpserver.Deps{
		ItemsHandler:  &httpserver.ItemsHTTP{Svc: itemSvc},
		AuthHandler:   &httpserver.AuthHTTP{Svc: authSvc},
		ProfitHandler: &httpserver.ProfitHTTP{Svc: profitSvc},
		AuthService:   authSvc,
		JWTSecret:     cfg.JWTAccessSecret,
		Ready:         store.Ping,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("sims listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_error", "error", err)
	}
	if err := producer.Close(); err != nil {
		logger.Error("kafka_close_error", "error", err)
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Error("db_close_error", "error", err)
	}

	log.Println("sims stopped")
}
