package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"

	"cpusim/api"
	"cpusim/config"
	"cpusim/internal/logging"
	"cpusim/internal/store"
)

func main() {
	cfg := config.GetSchedulerConfig()
	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	st, err := store.NewSQLiteStore(cfg.DBPath, logger)
	if err != nil {
		logger.Error("open store", "db_path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	handler := api.NewSchedulerHandlerImpl(cfg, st, logger)

	app := fiber.New()
	v1 := app.Group("/api").Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTime)
		v1.Post("/priority", handler.Priority)
		v1.Post("/priority-preemptive", handler.PriorityPreemptive)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/live", handler.LiveProcesses)
		v1.Get("/runs", handler.ListRuns)
		v1.Get("/runs/:id", handler.GetRun)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("server starting", "addr", addr, "db_path", cfg.DBPath)
	if err := app.Listen(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
