package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/category"
	categoryStore "github.com/akiramoriyama0316-alt/money-tracker/internal/category/store"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/config"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/database"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/export"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/goal"
	goalStore "github.com/akiramoriyama0316-alt/money-tracker/internal/goal/store"
	trackerHttp "github.com/akiramoriyama0316-alt/money-tracker/internal/http"
	eventsHandler "github.com/akiramoriyama0316-alt/money-tracker/internal/http/events"
	exportHandler "github.com/akiramoriyama0316-alt/money-tracker/internal/http/exportcsv"
	goalHandler "github.com/akiramoriyama0316-alt/money-tracker/internal/http/goal"
	importHandler "github.com/akiramoriyama0316-alt/money-tracker/internal/http/importcsv"
	summaryHandler "github.com/akiramoriyama0316-alt/money-tracker/internal/http/summary"
	txHandler "github.com/akiramoriyama0316-alt/money-tracker/internal/http/transaction"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/importer"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/notify"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/summary"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
	txStore "github.com/akiramoriyama0316-alt/money-tracker/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DBPool())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		goalService        = goal.NewService(goalStore.New(db), cfg.Goal.DefaultTarget)
		transactionService = transaction.NewService(txStore.New(db), goalService)
		categoryService    = category.NewService(categoryStore.New(db))
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService)
		summaryService     = summary.NewService(transactionService, goalService)
	)

	listener := notify.NewListener(cfg.ConnectionString())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := listener.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("notification listener stopped", "error", err)
		}
	}()

	var (
		transactionH = txHandler.NewHandler(transactionService)
		goalH        = goalHandler.NewHandler(goalService)
		summaryH     = summaryHandler.NewHandler(summaryService)
		importH      = importHandler.NewHandler(importService, transactionService, categoryService)
		exportH      = exportHandler.NewHandler(exportService)
		eventsH      = eventsHandler.NewHandler(listener)
	)

	router := trackerHttp.New(transactionH, goalH, summaryH, importH, exportH, eventsH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
