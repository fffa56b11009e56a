// Package engine provides the day-based simulation loop.
package engine

import (
	"fmt"
	"log/slog"
	"time"
)

// DaysPerSeason and DaysPerYear fix the simulation calendar.
const (
	DaysPerSeason = 90
	DaysPerYear   = 360
)

// Engine drives the simulation forward.
type Engine struct {
	Sim      *Simulation
	Speed    float64       // Multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // Base day interval (default 1 second)
	Running  bool

	// OnDay runs after each completed day, for persistence and API
	// consumers.
	OnDay func(day int)
}

// NewEngine creates a simulation engine with default pacing.
func NewEngine(sim *Simulation) *Engine {
	return &Engine{
		Sim:      sim,
		Speed:    1.0,
		Interval: time.Second,
	}
}

// Run starts the simulation loop. Blocks until Stop is called.
func (e *Engine) Run() {
	e.Running = true
	slog.Info("simulation engine started", "day", e.Sim.Day, "speed", e.Speed)

	for e.Running {
		if e.Speed <= 0 {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()
		e.Step()

		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("simulation engine stopped", "day", e.Sim.Day)
}

// RunDays advances the simulation a fixed number of days without
// pacing. Used by the CLI's batch mode.
func (e *Engine) RunDays(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}

// Step advances the simulation by one day.
func (e *Engine) Step() {
	e.Sim.RunDay()
	if e.OnDay != nil {
		e.OnDay(e.Sim.Day)
	}
}

// Stop halts the simulation loop.
func (e *Engine) Stop() {
	e.Running = false
}

// Calendar returns a human-readable date string for a day number.
func Calendar(day int) string {
	if day < 1 {
		day = 1
	}
	d := day - 1
	seasonNames := [4]string{"Spring", "Summer", "Autumn", "Winter"}
	season := (d / DaysPerSeason) % 4
	year := d/DaysPerYear + 1
	return fmt.Sprintf("%s Day %d, Year %d", seasonNames[season], d%DaysPerSeason+1, year)
}
