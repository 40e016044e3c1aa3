package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solarops/audit"
	"solarops/db"
	"solarops/pipeline"
	"solarops/protocol"
	"solarops/snapshot"
)

const defaultInterval = 15 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry, err := loadRegistry()
	if err != nil {
		log.Fatalf("bootstrap protocol catalog: %v", err)
	}

	pool, err := db.NewPool(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("bootstrap database pool: %v", err)
	}
	defer pool.Close()

	snapshots := snapshot.NewRepository(pool)
	runner := pipeline.NewRunner(registry, 0)
	recorder := audit.NewRecorder(audit.NewRepository(pool), nil)

	interval := defaultInterval
	if raw := os.Getenv("OPS_REFRESH_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("parse OPS_REFRESH_INTERVAL: %v", err)
		}
		interval = parsed
	}

	log.Printf("opsd ready: %d protocols, pass every %s", len(registry.Protocols()), interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := runPass(ctx, snapshots, runner, recorder); err != nil {
			log.Printf("pass failed: %v", err)
		}
		select {
		case <-ctx.Done():
			log.Printf("opsd stopping: %v", ctx.Err())
			return
		case <-ticker.C:
		}
	}
}

func loadRegistry() (*protocol.Registry, error) {
	if path := os.Getenv("OPS_CATALOG_PATH"); path != "" {
		return protocol.LoadCatalog(path)
	}
	return protocol.NewRegistry(protocol.DefaultCatalog())
}

func runPass(ctx context.Context, snapshots *snapshot.Repository, runner *pipeline.Runner, recorder *audit.Recorder) error {
	started := time.Now()

	records, err := snapshots.List(ctx)
	if err != nil {
		return err
	}

	outcomes, err := runner.Run(ctx, records)
	if err != nil {
		return err
	}

	var actions, auditFailures int
	for _, out := range outcomes {
		if out.Action != nil {
			actions++
		}
		// Shadow write: a failed audit insert never fails the pass.
		if err := recorder.Record(ctx, out); err != nil {
			auditFailures++
			log.Printf("audit write for %s: %v", out.RecordID, err)
		}
	}

	log.Printf("pass done: %d records, %d prescribed actions, %d audit failures in %s",
		len(records), actions, auditFailures, time.Since(started).Round(time.Millisecond))
	return nil
}
