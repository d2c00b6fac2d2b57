package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/avilov-dev/washpay/internal/api"
	"github.com/avilov-dev/washpay/internal/cache"
	"github.com/avilov-dev/washpay/internal/clients/auth"
	"github.com/avilov-dev/washpay/internal/clients/kassa"
	"github.com/avilov-dev/washpay/internal/clients/wash"
	"github.com/avilov-dev/washpay/internal/repository"
	"github.com/avilov-dev/washpay/internal/service"
	"github.com/avilov-dev/washpay/pkg/broker"
	"github.com/avilov-dev/washpay/pkg/config"
	"github.com/avilov-dev/washpay/pkg/job"
	"github.com/avilov-dev/washpay/pkg/logger"
	"github.com/avilov-dev/washpay/pkg/postgres"
)

const (
	ReadTimeout = 3 * time.Second

	// WriteTimeout stays generous: the pay handlers only enqueue work, but
	// promo validation and pricing proxy the wash backend synchronously.
	WriteTimeout = 15 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	washClient := wash.NewClient(cfg.Wash.BaseURL)
	kassaClient := kassa.NewClient(cfg.Kassa.BaseURL)
	authClient := auth.NewClient(cfg.AuthServiceURL)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.PaymentsTopic)
	defer producer.Close()

	latest, err := cache.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	panicOnErr("connect to redis", err)
	defer latest.Close()

	s := service.New(repo, washClient, kassaClient, producer, latest, service.NewTimerSleeper(), cfg.Sessions.StaleAfter)

	runner := job.NewRunner(l)
	runner.Register("fail stale checkout sessions", cfg.Sessions.StaleAfter, s.ExpireStaleSessions)
	runner.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(authClient)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		runner.Stop()

		// Let in-flight payment runs settle before the process exits.
		s.Wait()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
