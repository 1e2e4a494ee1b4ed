package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pipecheck/pipecheck/pkg/graph"
	"github.com/pipecheck/pipecheck/pkg/types"
	"github.com/pipecheck/pipecheck/pkg/version"
)

// handleParse accepts a pipeline description and reports its record counts
// and whether the edge structure forms a valid DAG.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer r.Body.Close()

	var p types.Pipeline
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON body: "+err.Error(), start)
		return
	}
	if err := p.Validate(); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error(), start)
		return
	}

	stats, err := graph.Analyze(r.Context(), p.Nodes, p.Edges)
	if err != nil {
		// Only reachable when the client goes away mid-analysis.
		writeFailure(w, http.StatusServiceUnavailable, "analysis aborted: "+err.Error(), start)
		return
	}

	s.metrics.ParseDuration.Observe(time.Since(start).Seconds())
	if !stats.IsDAG {
		s.metrics.CyclesDetected.Inc()
	}

	writeSuccess(w, "pipeline parsed", stats, start)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	writeSuccess(w, "ok", map[string]any{
		"version":        version.String(),
		"uptime_seconds": int64(time.Since(s.started).Seconds()),
	}, start)
}
