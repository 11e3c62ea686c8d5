package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/GuildStock_Go/internal/appraisal"
	"github.com/osse101/GuildStock_Go/internal/config"
	"github.com/osse101/GuildStock_Go/internal/inventory"
	"github.com/osse101/GuildStock_Go/internal/logger"
	"github.com/osse101/GuildStock_Go/internal/metrics"
)

var (
	simDays     int
	stockFile   string
	showMetrics bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Advance the inventory by a number of days",
	Long:  `Load the stock file, revalue every item once per simulated day, and print the inventory after each day.`,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simDays, "days", 0, "number of days to simulate (overrides SIMULATION_DAYS)")
	simulateCmd.Flags().StringVar(&stockFile, "stock", "", "path to the stock file (overrides STOCK_FILE)")
	simulateCmd.Flags().BoolVar(&showMetrics, "metrics", false, "print collected metrics after the run")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override env config
	if cmd.Flags().Changed("days") {
		simDaysValue := simDays
		if simDaysValue < 0 {
			return fmt.Errorf("--days must not be negative, got %d", simDaysValue)
		}
		cfg.Days = simDaysValue
	}
	if stockFile != "" {
		cfg.StockFile = stockFile
	}

	logger.Initialize(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		logger.DefaultVersion,
		cfg.Environment,
		false,
	))

	ctx := logger.WithRunID(cmd.Context(), logger.GenerateRunID())
	log := logger.FromContext(ctx)

	items, err := inventory.LoadStock(cfg.StockFile)
	if err != nil {
		return fmt.Errorf("failed to load stock: %w", err)
	}
	log.Info("Stock loaded", "file", cfg.StockFile, "items", len(items))

	inv := inventory.NewService(items, appraisal.NewService())

	out := cmd.OutOrStdout()
	if err := inventory.WriteReport(out, 0, inv.Items()); err != nil {
		return err
	}
	for day := 1; day <= cfg.Days; day++ {
		if err := inv.Advance(ctx); err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
		if err := inventory.WriteReport(out, day, inv.Items()); err != nil {
			return err
		}
	}

	log.Info("Simulation finished", "days", cfg.Days, "items", len(items))

	if showMetrics {
		if err := metrics.WriteSnapshot(out); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
