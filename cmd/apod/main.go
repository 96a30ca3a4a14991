package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PayTrain/NASA-Space-Explorer/internal/apod"
	"github.com/PayTrain/NASA-Space-Explorer/internal/app"
	"github.com/PayTrain/NASA-Space-Explorer/internal/config"
	"github.com/PayTrain/NASA-Space-Explorer/internal/storage"
	"github.com/PayTrain/NASA-Space-Explorer/internal/tui"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	if cfg.Debug {
		logFile, err := tea.LogToFile("apod-debug.log", "apod")
		if err != nil {
			log.Fatalf("debug log error: %v", err)
		}
		defer logFile.Close()
	}

	var store app.SnapshotStore
	if !cfg.NoCache {
		repo, err := storage.NewRepository(cfg.DBPath)
		if err != nil {
			log.Fatalf("storage init error: %v", err)
		}
		defer repo.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := repo.Init(ctx); err != nil {
			cancel()
			log.Fatalf("storage schema error (%v). Verify APOD_DB_PATH is writable: %s", err, cfg.DBPath)
		}
		cancel()
		store = repo
	}

	client := apod.NewClient(cfg.APIBaseURL, cfg.APIKey, nil)
	service := app.NewService(client, store)

	cacheLoadStart := time.Now()
	cacheCtx, cacheCancel := context.WithTimeout(context.Background(), 5*time.Second)
	items, err := service.ListCached(cacheCtx, cfg.FetchCount)
	cacheCancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load cached pictures (%v), starting empty\n", err)
		items = nil
	}
	cacheLoadDuration := time.Since(cacheLoadStart)

	model := tui.NewModel(service, items, cfg.FetchCount)
	model.SetStartupCacheStats(cacheLoadDuration, len(items))

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
