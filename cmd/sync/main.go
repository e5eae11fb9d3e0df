package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ChikaOnyekwere/ServiceHub/app/repository"
	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/catalog"
	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/catalogsync"
	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/database"
	"github.com/ChikaOnyekwere/ServiceHub/internal/pkg/env"
)

// Exit code is 0 unless the fatal storage class is hit; individual skipped
// records never affect it.
func main() {
	env.SetupEnvFile()

	db, err := database.Setup()
	if err != nil {
		log.Printf("sync: %v", err)
		os.Exit(1)
	}
	defer database.Close(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workers := 0
	if raw := env.GetEnv("SYNC_WORKERS", ""); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			workers = parsed
		} else {
			log.Printf("sync: ignoring invalid SYNC_WORKERS=%q", raw)
		}
	}

	engine := catalogsync.New(
		repository.NewRepositories(db),
		catalog.NewLoader(env.GetEnv("CATALOG_DIR", "")),
		workers,
	)

	report, runErr := engine.Run(ctx)
	fmt.Print(report.Summary())
	if runErr != nil {
		log.Printf("sync: aborted: %v", runErr)
		os.Exit(1)
	}
}
