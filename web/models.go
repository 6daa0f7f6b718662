package web

import (
	"forsaken-bot/api/api"

	"github.com/prometheus/client_golang/prometheus"
)

// Config holds the configuration for the web server
type Config struct {
	Addr     string
	API      *api.API
	Registry *prometheus.Registry
}

// Server is the HTTP server that exposes the ops endpoints
type Server struct {
	api      *api.API
	registry *prometheus.Registry
}

// LeaderboardResponse is the JSON document served by /leaderboard
type LeaderboardResponse struct {
	Mode    string             `json:"mode"`
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardEntry is one row of the JSON leaderboard
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
}
