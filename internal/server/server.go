// Package server exposes the layout engine as a local HTTP API.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/analytics"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/compliance"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/cost"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/layout"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/plan"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/routing"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/solution"
	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/pkg/zones"
)

// Engine bundles the resolved engine configuration the server solves with.
type Engine struct {
	Zones     zones.Options
	Placement layout.Options
	Routing   routing.Options
	Rules     compliance.Rules
	Cost      cost.Options
	Spec      layout.SizeSpec
}

// Config configures a server instance.
type Config struct {
	PlanPath string
	Port     int
	Logger   *log.Logger
	Engine   Engine
}

// Server is the local API server for one floor plan.
type Server struct {
	cfg    Config
	logger *log.Logger
	plan   *plan.FloorPlan
}

// New creates a server for the given plan file or project directory.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, logger: logger}
}

// Start loads the plan and launches the HTTP server.
func (s *Server) Start() error {
	fp, err := loadPlan(s.cfg.PlanPath)
	if err != nil {
		return fmt.Errorf("loading plan: %w", err)
	}
	s.plan = fp

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("server listening", "addr", addr, "plan", fp.Name)

	return http.ListenAndServe(addr, s.router())
}

func (s *Server) router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/api/plan", s.handlePlan)
	r.Get("/api/zones", s.handleZones)
	r.Get("/api/analysis", s.handleAnalysis)
	r.Get("/api/compliance", s.handleCompliance)
	r.Post("/api/solve", s.handleSolve)

	return r
}

func loadPlan(path string) (*plan.FloorPlan, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return plan.LoadProject(path)
	}
	return plan.Load(path)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path,
			"duration", time.Since(start))
	})
}

func (s *Server) handlePlan(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"plan":   s.plan,
		"schema": compliance.ValidateSchema(s.plan),
	})
}

func (s *Server) handleZones(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"zones": zones.Detect(s.plan, s.cfg.Engine.Zones),
	})
}

func (s *Server) handleAnalysis(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, analytics.Analyze(s.plan))
}

func (s *Server) handleCompliance(w http.ResponseWriter, _ *http.Request) {
	sol := s.solve(s.cfg.Engine.Routing.Strategy, s.cfg.Engine.Placement.Seed, nil)
	writeJSON(w, http.StatusOK, sol.Compliance)
}

type solveRequest struct {
	Strategy string         `json:"strategy,omitempty"`
	Seed     int64          `json:"seed,omitempty"`
	Mix      map[string]int `json:"mix,omitempty"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
			return
		}
	}

	var spec layout.SizeSpec
	if len(req.Mix) > 0 {
		mix := layout.UnitMix{}
		for unitType, count := range req.Mix {
			mix.Targets = append(mix.Targets, layout.Target{Type: unitType, Count: count})
		}
		spec = mix
	}

	strategy := s.cfg.Engine.Routing.Strategy
	if req.Strategy != "" {
		strategy = routing.Strategy(req.Strategy)
	}
	seed := s.cfg.Engine.Placement.Seed
	if req.Seed != 0 {
		seed = req.Seed
	}

	sol := s.solve(strategy, seed, spec)
	s.logger.Info("solved", "id", sol.ID, "units", sol.Stats.IlotCount,
		"corridors", sol.Stats.CorridorCount)

	writeJSON(w, http.StatusOK, map[string]any{
		"solution": sol,
		"revenue":  cost.Estimate(sol.Ilots, sol.Corridors, s.cfg.Engine.Cost),
	})
}

// solve runs the full pipeline with the configured engine, with optional
// per-request overrides.
func (s *Server) solve(strategy routing.Strategy, seed int64, spec layout.SizeSpec) *solution.Solution {
	if spec == nil {
		spec = s.cfg.Engine.Spec
	}

	zs := zones.Detect(s.plan, s.cfg.Engine.Zones)

	placeOpts := s.cfg.Engine.Placement
	placeOpts.Seed = seed
	placed := layout.Generate(s.plan, zs, spec, placeOpts)

	routeOpts := s.cfg.Engine.Routing
	routeOpts.Strategy = strategy
	corridors := routing.Generate(placed.Ilots, s.plan, routeOpts)

	report := compliance.Check(placed.Ilots, corridors, s.plan, s.cfg.Engine.Rules)

	return solution.Assemble(s.plan, zs, &placed, corridors, report, routeOpts.Strategy, seed)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
