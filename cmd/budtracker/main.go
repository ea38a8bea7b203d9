package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Rapou7/BudTracker/internal/backend"
	"github.com/Rapou7/BudTracker/internal/config"
	"github.com/Rapou7/BudTracker/internal/core"
	applog "github.com/Rapou7/BudTracker/internal/log"
	"github.com/Rapou7/BudTracker/internal/services"
	"github.com/Rapou7/BudTracker/internal/stats"
)

func main() {
	addMode := flag.Bool("add", false, "record a new entry before printing the report")
	amount := flag.String("amount", "", "amount spent as a decimal, e.g. 12.50")
	grams := flag.Float64("grams", 0, "quantity in grams")
	category := flag.String("category", string(core.Other), "entry category (Alcohol, Tobacco, Weed, Other)")
	kind := flag.String("kind", "", "what was bought (strain, brand, ...)")
	source := flag.String("source", "", "where it was bought")
	notes := flag.String("notes", "", "free-form notes")
	flag.Parse()

	// Load .env file for local development (ignore errors in production)
	_ = godotenv.Load()

	// Setup structured logging
	logger := applog.New(applog.Config{
		Level: slog.LevelInfo,
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	result, err := backend.Open(backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
	}, logger.WithComponent(applog.ComponentBackend).Logger)
	if err != nil {
		logger.Error("Failed to initialize backend", applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	defer func() {
		if err := result.Cleanup(); err != nil {
			logger.Error("Backend cleanup failed", applog.FieldError, err)
		}
	}()

	svc := services.NewLedgerService(result.Entries, result.Favorites)

	ctx := context.Background()
	today := core.DateOf(time.Now())

	if *addMode {
		cents, err := core.ParseDecimalToCents(*amount)
		if err != nil {
			logger.Error("Invalid amount", applog.FieldError, err)
			os.Exit(1)
		}
		entry, err := svc.AddEntry(ctx, core.Entry{
			Date:     today,
			Amount:   core.Money{Cents: cents},
			Grams:    *grams,
			Source:   *source,
			Kind:     *kind,
			Category: core.Category(*category),
			Notes:    *notes,
		})
		if err != nil {
			logger.Error("Failed to add entry", applog.FieldError, err)
			os.Exit(1)
		}
		logger.Info("Entry added",
			applog.FieldEntryID, entry.ID,
			applog.FieldCategory, entry.Category,
			applog.FieldAmountCents, entry.Amount.Cents)
	}

	dash, err := svc.Dashboard(ctx, today, cfg.HeatmapDays)
	if err != nil {
		logger.Error("Failed to build dashboard", applog.FieldError, err)
		os.Exit(1)
	}
	an, err := svc.Analyze(ctx, today, 30)
	if err != nil {
		logger.Error("Failed to build analysis", applog.FieldError, err)
		os.Exit(1)
	}

	printReport(dash, an, cfg.HeatmapDays)
}

func printReport(dash services.Dashboard, an services.Analysis, heatmapDays int) {
	fmt.Printf("Total spent:       %.2f\n", dash.Summary.TotalSpent.Units())
	fmt.Printf("Total grams:       %.1fg\n", dash.Summary.TotalGrams)
	fmt.Printf("Avg monthly spend: %.2f\n", dash.Summary.AvgMonthly.Units())
	fmt.Println()

	for _, p := range stats.Periods {
		fmt.Printf("%3d-day total: %.2f\n", p, an.Totals[p].Units())
	}
	fmt.Println()

	fmt.Printf("Activity calendar (last %d days):\n", heatmapDays)
	fmt.Print(renderHeatmap(dash.Calendar))
	fmt.Println()

	fmt.Printf("Recent entries: %d\n", len(dash.History))
	for i, e := range dash.History {
		if i == 10 {
			fmt.Println("  ...")
			break
		}
		fmt.Printf("  %s  %-8s %-20s %8.2f  %.1fg\n",
			e.Date.Key(), e.Category, e.Kind, e.Amount.Units(), e.Grams)
	}
}

// renderHeatmap lays the cells out the way the mobile heatmap does: one row
// per weekday, one column per week, the first day's weekday offsetting the
// first column.
func renderHeatmap(cells []stats.CalendarCell) string {
	if len(cells) == 0 {
		return ""
	}
	first := cells[0].Date
	weeks := stats.GridWeeks(first, len(cells))

	grid := make([][]rune, 7)
	for row := range grid {
		grid[row] = make([]rune, weeks)
		for col := range grid[row] {
			grid[row][col] = ' '
		}
	}
	for i, cell := range cells {
		week, weekday := stats.CellPosition(first, i)
		grid[weekday][week] = intensityGlyph(cell.Intensity)
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func intensityGlyph(intensity float64) rune {
	switch {
	case intensity == 0:
		return '.'
	case intensity < 0.25:
		return '░'
	case intensity < 0.5:
		return '▒'
	case intensity < 0.75:
		return '▓'
	default:
		return '█'
	}
}
