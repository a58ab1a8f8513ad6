package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/redis/go-redis/v9"

	"github.com/mindwell-app/mindwell/internal/config"
	"github.com/mindwell-app/mindwell/internal/logging"
	"github.com/mindwell-app/mindwell/sentiment"
	"github.com/mindwell-app/mindwell/server"
	"github.com/mindwell-app/mindwell/storage/sqlite"
	"github.com/mindwell-app/mindwell/token"
	"github.com/mindwell-app/mindwell/token/refresh"
	"github.com/mindwell-app/mindwell/token/refresh/redisrepo"
	"github.com/mindwell-app/mindwell/users"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.IsDev())
	displayAppname(cfg.AppName)

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	// Refresh tokens live in Redis when configured, otherwise next to
	// everything else in SQLite.
	refreshRepo := refresh.Repo(store.RefreshRepo())
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		refreshRepo = redisrepo.New(redisClient, cfg.AppName, cfg.RefreshTTL)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("refresh tokens stored in redis")
	}

	var analyzer sentiment.Analyzer = sentiment.NewKeywordAnalyzer()
	if cfg.SentimentURL != "" {
		analyzer = sentiment.NewRemoteAnalyzer(cfg.SentimentURL, logger)
		logger.Info().Str("url", cfg.SentimentURL).Msg("using remote emotion model")
	}

	srv, err := server.New(cfg,
		users.NewService(store.UserRepo()),
		token.NewManager(cfg.JWTSecret, cfg.AppName, cfg.AccessTTL),
		refresh.NewManager(refreshRepo, cfg.RefreshTTL),
		store.WellnessRepos(),
		analyzer,
		logger,
	)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	httpServer := &http.Server{Addr: cfg.Port, Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
