package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"git-activity-feed/config"
	"git-activity-feed/internal/event"
	"git-activity-feed/internal/event/repository/sqlite"
	"git-activity-feed/internal/event/usecase"
	"git-activity-feed/internal/webhook"
	"git-activity-feed/pkg/log"
	"git-activity-feed/pkg/timefmt"
)

// delivery is one recorded webhook, one JSON object per line.
type delivery struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/backfill-events/main.go <path/to/deliveries.jsonl>")
		fmt.Println(`Each line: {"event":"push","payload":{...}}`)
		os.Exit(1)
	}
	inputPath := os.Args[1]

	// Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         log.ModeDevelopment,
		Encoding:     log.EncodingConsole,
		ColorEnabled: true,
	})

	ctx := context.Background()

	store, err := sqlite.New(ctx, cfg.Storage.DSN, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open event database: %v", err)
	}
	defer store.Close()

	uc := usecase.New(store, timefmt.New(nil), cfg.Normalizer.Strict, logger)
	parser := webhook.NewGitHubParser()

	f, err := os.Open(inputPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open %s: %v", inputPath, err)
	}
	defer f.Close()

	logger.Infof(ctx, "Starting backfill from %s...", inputPath)

	var total, stored, ignored int
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 25<<20)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		total++

		var d delivery
		if err := json.Unmarshal(line, &d); err != nil {
			logger.Errorf(ctx, "Line %d: invalid JSON: %v", total, err)
			continue
		}

		payload, err := parser.Parse(d.Event, d.Payload)
		if err != nil {
			logger.Errorf(ctx, "Line %d: failed to parse %q delivery: %v", total, d.Event, err)
			continue
		}

		out, err := uc.Ingest(ctx, event.IngestInput{Payload: payload})
		if err != nil {
			logger.Errorf(ctx, "Line %d: failed to ingest: %v", total, err)
			continue
		}
		if out.Status == event.StatusIgnored {
			ignored++
			continue
		}
		stored++
	}
	if err := scanner.Err(); err != nil {
		logger.Errorf(ctx, "Failed reading %s: %v", inputPath, err)
	}

	logger.Infof(ctx, "Backfill complete! %d stored, %d ignored, %d failed of %d deliveries.",
		stored, ignored, total-stored-ignored, total)
}
