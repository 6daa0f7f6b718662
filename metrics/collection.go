/* collection.go
 * Registers the prometheus collectors behind the BotMetrics interface. Matches
 * started and completed are counters; the active gauge moves on start and on
 * either completion or cancellation
 * Authors: Zachary Bower
 */

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	commandsTotal        prometheus.CounterVec
	matchesStartedTotal  prometheus.CounterVec
	matchesCompleteTotal prometheus.CounterVec
	activeMatches        prometheus.GaugeVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	commandsTotal := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forsaken_commands_total",
			Help: "A counter of handled bot commands by command name",
		}, []string{"command"})

	matchesStartedTotal := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forsaken_matches_started_total",
			Help: "A counter of matches started by mode",
		}, []string{"mode"})

	matchesCompleteTotal := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forsaken_matches_completed_total",
			Help: "A counter of matches that finalized with a result by mode",
		}, []string{"mode"})

	activeMatches := factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "forsaken_active_matches",
			Help: "A gauge of currently running matches by mode",
		}, []string{"mode"})

	return prometheusMetrics{
		commandsTotal:        *commandsTotal,
		matchesStartedTotal:  *matchesStartedTotal,
		matchesCompleteTotal: *matchesCompleteTotal,
		activeMatches:        *activeMatches,
	}
}

func (metrics prometheusMetrics) CommandReceived(command string) {
	metrics.commandsTotal.With(prometheus.Labels{"command": command}).Add(1)
}

func (metrics prometheusMetrics) MatchStarted(mode string) {
	metrics.matchesStartedTotal.With(prometheus.Labels{"mode": mode}).Add(1)
	metrics.activeMatches.With(prometheus.Labels{"mode": mode}).Inc()
}

func (metrics prometheusMetrics) MatchCompleted(mode string) {
	metrics.matchesCompleteTotal.With(prometheus.Labels{"mode": mode}).Add(1)
	metrics.activeMatches.With(prometheus.Labels{"mode": mode}).Dec()
}

func (metrics prometheusMetrics) MatchCancelled(mode string) {
	metrics.activeMatches.With(prometheus.Labels{"mode": mode}).Dec()
}
