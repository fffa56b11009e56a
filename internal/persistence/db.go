// Package persistence provides SQLite-based run state storage.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/dominion/internal/agents"
	"github.com/talgya/dominion/internal/engine"
)

// DB wraps a SQLite connection for run state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		last_day INTEGER NOT NULL DEFAULT 0,
		treasury REAL NOT NULL DEFAULT 0,
		legitimacy REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS officials (
		run_id TEXT NOT NULL,
		id TEXT NOT NULL,
		name TEXT NOT NULL,
		stratum TEXT NOT NULL,
		stance TEXT NOT NULL,
		wealth REAL NOT NULL,
		salary REAL NOT NULL,
		profile_json TEXT NOT NULL,
		properties_json TEXT NOT NULL,
		PRIMARY KEY (run_id, id)
	);

	CREATE TABLE IF NOT EXISTS stock (
		run_id TEXT NOT NULL,
		building_id TEXT NOT NULL,
		level INTEGER NOT NULL,
		count INTEGER NOT NULL,
		PRIMARY KEY (run_id, building_id, level)
	);

	CREATE TABLE IF NOT EXISTS foreign_investments (
		run_id TEXT NOT NULL,
		id TEXT NOT NULL,
		owner_nation TEXT NOT NULL,
		building_id TEXT NOT NULL,
		amount REAL NOT NULL,
		mode TEXT NOT NULL,
		operating_json TEXT NOT NULL,
		PRIMARY KEY (run_id, id)
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_run_day ON events(run_id, day);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// NewRun registers a run and returns its id.
func (db *DB) NewRun(seed int64) (string, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		"INSERT INTO runs (id, seed, started_at, last_day) VALUES (?, ?, datetime('now'), 0)",
		id, seed,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// SaveOfficials writes the cabinet roster for a run (full replace).
func (db *DB) SaveOfficials(runID string, officials []*agents.Official) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM officials WHERE run_id = ?", runID); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO officials
		(run_id, id, name, stratum, stance, wealth, salary, profile_json, properties_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, o := range officials {
		profileJSON, _ := json.Marshal(o.Profile)
		propsJSON, _ := json.Marshal(o.Properties)
		_, err := stmt.Exec(runID, o.ID, o.Name, o.Stratum, o.Stance,
			o.Wealth, o.Salary, string(profileJSON), string(propsJSON))
		if err != nil {
			return fmt.Errorf("insert official %s: %w", o.ID, err)
		}
	}

	return tx.Commit()
}

// SaveStock writes the building stock for a run (full replace).
func (db *DB) SaveStock(runID string, stock *engine.Stock) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM stock WHERE run_id = ?", runID); err != nil {
		return err
	}

	for _, id := range stock.BuildingIDs() {
		for level, count := range stock.Distribution(id) {
			_, err := tx.Exec(
				"INSERT INTO stock (run_id, building_id, level, count) VALUES (?, ?, ?, ?)",
				runID, id, level, count,
			)
			if err != nil {
				return fmt.Errorf("insert stock %s: %w", id, err)
			}
		}
	}

	return tx.Commit()
}

// SaveForeign writes the foreign investment book for a run.
func (db *DB) SaveForeign(runID string, investments []*agents.ForeignInvestment) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM foreign_investments WHERE run_id = ?", runID); err != nil {
		return err
	}

	for _, fi := range investments {
		opJSON, _ := json.Marshal(fi.Operating)
		_, err := tx.Exec(`INSERT INTO foreign_investments
			(run_id, id, owner_nation, building_id, amount, mode, operating_json)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, fi.ID, fi.OwnerNation, fi.BuildingID, fi.Amount, fi.Mode, string(opJSON))
		if err != nil {
			return fmt.Errorf("insert foreign investment %s: %w", fi.ID, err)
		}
	}

	return tx.Commit()
}

// SaveEvents writes the event log for a run (full replace, so repeated
// periodic saves never duplicate rows).
func (db *DB) SaveEvents(runID string, events []engine.Event) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM events WHERE run_id = ?", runID); err != nil {
		return err
	}

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (run_id, day, description, category) VALUES (?, ?, ?, ?)",
			runID, e.Day, e.Description, e.Category,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveRunState performs a full save of a run's state.
func (db *DB) SaveRunState(runID string, sim *engine.Simulation) error {
	slog.Info("saving run state", "run", runID, "day", sim.Day,
		"officials", len(sim.Officials), "events", len(sim.Events))

	if err := db.SaveOfficials(runID, sim.Officials); err != nil {
		return fmt.Errorf("save officials: %w", err)
	}
	if err := db.SaveStock(runID, sim.Stock); err != nil {
		return fmt.Errorf("save stock: %w", err)
	}
	if err := db.SaveForeign(runID, sim.Foreign); err != nil {
		return fmt.Errorf("save foreign: %w", err)
	}
	if err := db.SaveEvents(runID, sim.Events); err != nil {
		return fmt.Errorf("save events: %w", err)
	}

	_, err := db.conn.Exec(
		"UPDATE runs SET last_day = ?, treasury = ?, legitimacy = ? WHERE id = ?",
		sim.Day, sim.Treasury, sim.Modifiers.Legitimacy, runID,
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	return nil
}

// RecentEvents returns the most recent N events of a run.
func (db *DB) RecentEvents(runID string, limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		"SELECT day, description, category FROM events WHERE run_id = ? ORDER BY id DESC LIMIT ?",
		runID, limit,
	)
	return events, err
}
