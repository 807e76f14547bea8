package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workhub/internal/auth"
	"workhub/internal/config"
	"workhub/internal/server"
	"workhub/internal/service"
	"workhub/internal/storage"
	"workhub/internal/storage/mongodb"
	"workhub/internal/storage/sqlite"
)

func main() {
	configFlag := flag.String("config", "", "Path to YAML config file")
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides config)")
	dbFlag := flag.String("db", "", "Path to sqlite database file (overrides config)")
	staticFlag := flag.String("static", "", "Directory with built frontend (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}
	if *dbFlag != "" {
		cfg.Database.Path = *dbFlag
	}
	if *staticFlag != "" {
		cfg.StaticDir = *staticFlag
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	logger.Info("workhub starting", slog.String("driver", cfg.Database.Driver))

	store, err := openStore(cfg.Database, logger)
	if err != nil {
		logger.Error("unable to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	opts := server.Options{StaticDir: cfg.StaticDir}
	if cfg.Auth.JWTSecret != "" {
		opts.Verifier = auth.NewHMACVerifier(cfg.Auth.JWTSecret)
	}
	srv := server.New(service.New(store, logger), logger, opts)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Engine(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("starting server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

func openStore(db config.DatabaseConfig, logger *slog.Logger) (storage.Store, error) {
	switch db.Driver {
	case config.DriverMongoDB:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return mongodb.Open(ctx, db.MongoURI, db.MongoDatabase, logger)
	default:
		return sqlite.Open(db.Path, logger)
	}
}
