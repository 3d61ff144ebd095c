package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"statusboard/adapters/postgres"
	"statusboard/internal/config"
	"statusboard/internal/errors"
	"statusboard/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

// initUploadLog connects the optional upload audit repository. A missing
// DATABASE_URL disables it; the service runs stateless in that case.
func initUploadLog(cfg *config.Config) (postgres.UploadLogRepository, func(), error) {
	if cfg.Database.URL == "" {
		log.Println("No DATABASE_URL configured, upload audit log disabled")
		return nil, func() {}, nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to database")
	}

	repo, err := postgres.NewUploadLogRepository(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return repo, func() { db.Close() }, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	uploadLog, closeDB, err := initUploadLog(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize upload audit log: %v", err)
	}
	defer closeDB()

	server := ui.NewServer(cfg, uploadLog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Run)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
