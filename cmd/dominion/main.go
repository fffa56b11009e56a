// Command dominion runs the nation economy simulation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/talgya/dominion/internal/api"
	"github.com/talgya/dominion/internal/economy"
	"github.com/talgya/dominion/internal/engine"
	"github.com/talgya/dominion/internal/persistence"
	"github.com/talgya/dominion/internal/registry"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		seed       = flag.Int64("seed", 42, "simulation seed")
		days       = flag.Int("days", 0, "batch mode: run this many days and exit")
		officials  = flag.Int("officials", 8, "cabinet size")
		epoch      = flag.Int("epoch", 1, "starting epoch")
		difficulty = flag.String("difficulty", "normal", "easy, normal, or hard")
		scenario   = flag.String("scenario", "", "path to a scenario YAML overriding the registry")
		dbPath     = flag.String("db", "data/dominion.db", "sqlite database path")
		apiPort    = flag.Int("port", 8080, "HTTP API port")
	)
	flag.Parse()

	slog.Info("Dominion — nation economy simulation",
		"seed", *seed, "epoch", *epoch, "difficulty", *difficulty)

	reg := registry.Default()
	if *scenario != "" {
		loaded, err := registry.LoadScenario(*scenario)
		if err != nil {
			slog.Error("failed to load scenario", "path", *scenario, "error", err)
			os.Exit(1)
		}
		reg = loaded
		slog.Info("scenario loaded", "path", *scenario)
	}

	os.MkdirAll("data", 0755)
	db, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	runID, err := db.NewRun(*seed)
	if err != nil {
		slog.Error("failed to register run", "error", err)
		os.Exit(1)
	}
	slog.Info("run registered", "run", runID, "db", *dbPath)

	sim := engine.NewSimulation(engine.Config{
		Registry:     reg,
		Seed:         *seed,
		Epoch:        *epoch,
		GrowthFactor: economy.GrowthFactorForDifficulty(*difficulty),
		Officials:    *officials,
	})
	eng := engine.NewEngine(sim)

	for _, o := range sim.Officials {
		slog.Info("cabinet member",
			"name", o.Name,
			"stratum", o.Stratum,
			"stance", o.Stance,
			"wealth", fmt.Sprintf("%.0f", o.Wealth),
		)
	}

	if *days > 0 {
		eng.RunDays(*days)
		if err := db.SaveRunState(runID, sim); err != nil {
			slog.Error("final save failed", "error", err)
		}
		printSummary(sim, *days)
		return
	}

	// Live mode: auto-save every 30 days.
	eng.OnDay = func(day int) {
		if day%30 == 0 {
			if err := db.SaveRunState(runID, sim); err != nil {
				slog.Error("periodic save failed", "error", err)
			}
		}
	}

	adminKey := os.Getenv("DOMINION_ADMIN_KEY")
	if adminKey == "" {
		slog.Warn("DOMINION_ADMIN_KEY not set — admin POST endpoints will be disabled")
	}

	apiServer := &api.Server{
		Sim:      sim,
		Eng:      eng,
		DB:       db,
		RunID:    runID,
		Port:     *apiPort,
		AdminKey: adminKey,
	}
	apiServer.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	fmt.Printf("\nDominion is running: %d officials govern %s subjects.\n",
		len(sim.Officials), humanize.Comma(int64(totalPopulation(sim))))
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", *apiPort)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run()

	slog.Info("final save...")
	if err := db.SaveRunState(runID, sim); err != nil {
		slog.Error("final save failed", "error", err)
	}
	fmt.Println("Simulation stopped. Run state saved.")
}

func totalPopulation(sim *engine.Simulation) int {
	total := 0
	for _, n := range sim.Population {
		total += n
	}
	return total
}

func printSummary(sim *engine.Simulation, days int) {
	fmt.Printf("\n── %s (%d days simulated) ──\n", engine.Calendar(sim.Day), days)
	fmt.Printf("Treasury: %s silver\n", humanize.CommafWithDigits(sim.Treasury, 0))
	fmt.Printf("Legitimacy: %.1f (%s), tax efficiency %.0f%%\n",
		sim.Modifiers.Legitimacy, sim.Modifiers.Level, sim.Modifiers.TaxEfficiency*100)

	fmt.Println("\nBuilding stock:")
	for _, id := range sim.Stock.BuildingIDs() {
		count := sim.Stock.Count(id)
		if count == 0 {
			continue
		}
		fmt.Printf("  %-22s %3d", id, count)
		dist := sim.Stock.Distribution(id)
		for lvl := 1; lvl <= 5; lvl++ {
			if n := dist[lvl]; n > 0 {
				fmt.Printf("  (L%d: %d)", lvl, n)
			}
		}
		fmt.Println()
	}

	fmt.Println("\nCabinet:")
	for _, o := range sim.Officials {
		fmt.Printf("  %-20s %-12s %-22s wealth %10s, %d properties\n",
			o.Name, o.Stratum, o.Stance,
			humanize.CommafWithDigits(o.Wealth, 0), len(o.Properties))
	}

	if len(sim.Foreign) > 0 {
		fmt.Println("\nForeign investments:")
		for _, fi := range sim.Foreign {
			fmt.Printf("  %-22s by %-12s mode %-8s profit %.1f/day (retained %.1f, repatriated %.1f)\n",
				fi.BuildingID, fi.OwnerNation, fi.Mode,
				fi.Operating.Profit, fi.Operating.RetainedProfit, fi.Operating.RepatriatedProfit)
		}
	}
}
