/* leaderboard.go
 * HTTP endpoints served alongside the bot: a liveness probe, the prometheus
 * scrape handler and a read-only JSON leaderboard
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"net/http"

	"forsaken-bot/api/shared"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// HealthzHandler answers liveness probes
func (s *Server) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// MetricsHandler returns the prometheus scrape handler for the configured registry
func (s *Server) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// LeaderboardHandler serves a mode's top players as JSON, mirroring what
// $leaderboard prints in Discord. The mode comes from the ?mode= query
// parameter and defaults to 1v1
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes the leaderboard JSON document, or an HTTP error status
func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	modeArg := r.URL.Query().Get("mode")
	if modeArg == "" {
		modeArg = string(shared.Mode1v1)
	}
	mode, err := shared.ParseMode(modeArg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := s.api.LeaderboardRows(mode)
	if err != nil {
		log.WithError(err).Error("leaderboard query failed")
		http.Error(w, "leaderboard unavailable", http.StatusInternalServerError)
		return
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			Username: row.Username,
			Points:   row.Points,
			Wins:     row.Wins,
			Losses:   row.Losses,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(LeaderboardResponse{Mode: string(mode), Entries: entries}); err != nil {
		log.WithError(err).Error("failed to encode leaderboard response")
	}
}
