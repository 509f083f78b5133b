package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"exam-simulator/internal/config"
	"exam-simulator/internal/exam"
	"exam-simulator/internal/exam/sqlite"
	"exam-simulator/internal/httpapi"
	"exam-simulator/internal/poolfile"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	flag.Parse()

	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Fatalf("invalid time zone %q: %v", cfg.TimeZone, err)
	}

	raw, err := poolfile.Load(cfg.PoolPath)
	if err != nil {
		log.Fatalf("load question pool: %v", err)
	}
	catalog := exam.BuildCatalog(raw)
	log.Printf("question pool loaded from %s (%d disciplines)", cfg.PoolPath, len(catalog.Names()))

	policy, err := exam.LoadPolicy(cfg.PolicyPath)
	if err != nil {
		log.Fatalf("load policy: %v", err)
	}

	store, err := sqlite.NewStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open attempt store: %v", err)
	}
	defer store.Close()

	service := exam.NewService(store, catalog, policy)

	reload := func() error {
		raw, err := poolfile.Load(cfg.PoolPath)
		if err != nil {
			return err
		}
		catalog.Replace(raw)
		log.Printf("question pool reloaded from %s (%d disciplines)", cfg.PoolPath, len(catalog.Names()))
		return nil
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(service, catalog, reload, location),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("exam-service listening on %s", *addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
