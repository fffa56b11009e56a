// Package api provides the HTTP API for observing a running nation.
// GET endpoints are public (read-only observation).
// POST endpoints require a bearer token (admin control plane).
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/talgya/dominion/internal/engine"
	"github.com/talgya/dominion/internal/persistence"
	"github.com/talgya/dominion/internal/politics"
	"github.com/talgya/dominion/internal/registry"
)

// Server serves the simulation state over HTTP.
type Server struct {
	Sim      *engine.Simulation
	Eng      *engine.Engine
	DB       *persistence.DB
	RunID    string
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	eventsLimiter := NewRateLimiter(600, time.Hour)

	mux := http.NewServeMux()

	// Public endpoints (GET, read-only).
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/officials", s.handleOfficials)
	mux.HandleFunc("/api/v1/legitimacy", s.handleLegitimacy)
	mux.HandleFunc("/api/v1/economy", s.handleEconomy)
	mux.HandleFunc("/api/v1/stock", s.handleStock)
	mux.HandleFunc("/api/v1/foreign", s.handleForeign)
	mux.HandleFunc("/api/v1/events", RateLimitMiddleware(eventsLimiter, s.handleEvents))

	// Admin endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/speed", s.adminOnly(s.handleSpeed))
	mux.HandleFunc("/api/v1/taxes", s.adminOnly(s.handleTaxes))
	mux.HandleFunc("/api/v1/coalition", s.adminOnly(s.handleCoalition))
	mux.HandleFunc("/api/v1/snapshot", s.adminOnly(s.handleSnapshot))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		handler := corsMiddleware(mux)
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS to a comma-separated list; localhost dev servers are
// always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on POST
// requests. GET requests pass through.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if s.AdminKey == "" {
				http.Error(w, "admin endpoints disabled (no DOMINION_ADMIN_KEY set)", http.StatusForbidden)
				return
			}
			if !s.checkBearerToken(r) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"run_id":     s.RunID,
		"day":        s.Sim.Day,
		"date":       engine.Calendar(s.Sim.Day),
		"speed":      s.Eng.Speed,
		"running":    s.Eng.Running,
		"epoch":      s.Sim.Epoch,
		"treasury":   s.Sim.Treasury,
		"officials":  len(s.Sim.Officials),
		"nations":    len(s.Sim.Nations),
		"legitimacy": s.Sim.Modifiers.Legitimacy,
		"level":      s.Sim.Modifiers.Level,
	})
}

func (s *Server) handleOfficials(w http.ResponseWriter, r *http.Request) {
	type officialSummary struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Stratum    string  `json:"stratum"`
		Stance     string  `json:"stance"`
		Wealth     float64 `json:"wealth"`
		Properties int     `json:"properties"`
	}

	result := make([]officialSummary, 0, len(s.Sim.Officials))
	for _, o := range s.Sim.Officials {
		result = append(result, officialSummary{
			ID:         o.ID,
			Name:       o.Name,
			Stratum:    string(o.Stratum),
			Stance:     o.Stance,
			Wealth:     o.Wealth,
			Properties: len(o.Properties),
		})
	}
	writeJSON(w, result)
}

func (s *Server) handleLegitimacy(w http.ResponseWriter, r *http.Request) {
	mods := s.Sim.Modifiers
	members := make([]string, 0, len(s.Sim.Coalition.Members))
	for _, m := range s.Sim.Coalition.Members {
		members = append(members, string(m))
	}

	writeJSON(w, map[string]any{
		"legitimacy":       mods.Legitimacy,
		"level":            mods.Level,
		"tax_efficiency":   mods.TaxEfficiency,
		"approval_penalty": mods.ApprovalPenalty,
		"coalition":        members,
		"influence_share":  s.Sim.Coalition.InfluenceShare(),
	})
}

func (s *Server) handleEconomy(w http.ResponseWriter, r *http.Request) {
	prices := map[string]float64{}
	wages := map[string]float64{}
	if snap := s.Sim.Snapshot; snap != nil {
		for res, p := range snap.Prices {
			prices[string(res)] = p
		}
		for st, wg := range snap.Wages {
			wages[string(st)] = wg
		}
	}

	writeJSON(w, map[string]any{
		"day":      s.Sim.Day,
		"treasury": s.Sim.Treasury,
		"prices":   prices,
		"wages":    wages,
	})
}

func (s *Server) handleStock(w http.ResponseWriter, r *http.Request) {
	type stockEntry struct {
		BuildingID string      `json:"building_id"`
		Count      int         `json:"count"`
		Levels     map[int]int `json:"levels"`
	}

	result := make([]stockEntry, 0)
	for _, id := range s.Sim.Stock.BuildingIDs() {
		result = append(result, stockEntry{
			BuildingID: id,
			Count:      s.Sim.Stock.Count(id),
			Levels:     s.Sim.Stock.Distribution(id),
		})
	}
	writeJSON(w, result)
}

func (s *Server) handleForeign(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Foreign)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	events := s.Sim.Events

	if category := r.URL.Query().Get("category"); category != "" {
		var filtered []engine.Event
		for _, e := range events {
			if e.Category == category {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	start := 0
	if len(events) > limit {
		start = len(events) - limit
	}
	writeJSON(w, events[start:])
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		var req struct {
			Speed float64 `json:"speed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Speed < 0 || req.Speed > 1000 {
			http.Error(w, "speed must be 0-1000", http.StatusBadRequest)
			return
		}
		s.Eng.Speed = req.Speed
		slog.Info("speed changed", "speed", req.Speed)
	}
	writeJSON(w, map[string]float64{"speed": s.Eng.Speed})
}

// handleTaxes reads or adjusts the tax policy. A POST body either sets
// one rate or toggles a category entry's sign (tax ↔ subsidy).
func (s *Server) handleTaxes(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		var req struct {
			Category string   `json:"category"` // head, resource, import, export, business
			Key      string   `json:"key"`
			Rate     *float64 `json:"rate"`
			Toggle   bool     `json:"toggle"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p := s.Sim.Policy
		switch req.Category {
		case "head":
			key := registry.Stratum(req.Key)
			if req.Toggle {
				p.ToggleHeadTax(key)
			} else if req.Rate != nil {
				p.HeadTaxRates[key] = *req.Rate
			}
		case "resource":
			key := registry.Resource(req.Key)
			if req.Toggle {
				p.ToggleResourceTax(key)
			} else if req.Rate != nil {
				p.ResourceTaxRates[key] = *req.Rate
			}
		case "import":
			key := registry.Resource(req.Key)
			if req.Toggle {
				p.ToggleImportTariff(key)
			} else if req.Rate != nil {
				p.ImportTariffs[key] = *req.Rate
			}
		case "export":
			key := registry.Resource(req.Key)
			if req.Toggle {
				p.ToggleExportTariff(key)
			} else if req.Rate != nil {
				p.ExportTariffs[key] = *req.Rate
			}
		case "business":
			if req.Toggle {
				p.ToggleBusinessTax(req.Key)
			} else if req.Rate != nil {
				p.BusinessTaxRates[req.Key] = *req.Rate
			}
		default:
			http.Error(w, "unknown tax category", http.StatusBadRequest)
			return
		}
		slog.Info("tax policy changed", "category", req.Category, "key", req.Key)
	}

	writeJSON(w, s.Sim.Policy)
}

// handleCoalition reads or replaces the ruling coalition membership.
// Only eligible strata (politically voiced, non-empty) may be seated.
func (s *Server) handleCoalition(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		var req struct {
			Members []string `json:"members"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		eligible := map[registry.Stratum]bool{}
		for _, key := range politics.EligibleMembers(s.Sim.Registry, s.Sim.Population) {
			eligible[key] = true
		}

		var members []registry.Stratum
		for _, m := range req.Members {
			key := registry.Stratum(m)
			if !eligible[key] {
				http.Error(w, fmt.Sprintf("stratum %q not eligible", m), http.StatusBadRequest)
				return
			}
			members = append(members, key)
		}
		s.Sim.Coalition.Members = members
		slog.Info("coalition changed", "members", req.Members)
	}

	writeJSON(w, map[string]any{
		"members":    s.Sim.Coalition.Members,
		"legitimacy": s.Sim.Coalition.Legitimacy(),
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}

	if err := s.DB.SaveRunState(s.RunID, s.Sim); err != nil {
		slog.Error("snapshot save failed", "error", err)
		http.Error(w, "snapshot failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"day":     s.Sim.Day,
		"message": "snapshot saved",
	})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
