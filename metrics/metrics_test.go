/* metrics_test.go
 * Contains unit tests for the prometheus collectors
 * Authors: Zachary Bower
 */

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestPrometheusMetrics_Counters tests that command and match counters accumulate
func TestPrometheusMetrics_Counters(t *testing.T) {
	m := setupPrometheusMetrics(prometheus.NewRegistry())

	m.CommandReceived("stats")
	m.CommandReceived("stats")
	m.CommandReceived("ban")
	m.MatchStarted("2v2")
	m.MatchCompleted("2v2")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.commandsTotal.With(prometheus.Labels{"command": "stats"})))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commandsTotal.With(prometheus.Labels{"command": "ban"})))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.matchesStartedTotal.With(prometheus.Labels{"mode": "2v2"})))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.matchesCompleteTotal.With(prometheus.Labels{"mode": "2v2"})))
}

// TestPrometheusMetrics_ActiveGauge tests the gauge across start, complete and cancel
func TestPrometheusMetrics_ActiveGauge(t *testing.T) {
	m := setupPrometheusMetrics(prometheus.NewRegistry())
	gauge := m.activeMatches.With(prometheus.Labels{"mode": "1v1"})

	m.MatchStarted("1v1")
	m.MatchStarted("1v1")
	assert.Equal(t, 2.0, testutil.ToFloat64(gauge))

	m.MatchCompleted("1v1")
	assert.Equal(t, 1.0, testutil.ToFloat64(gauge))

	m.MatchCancelled("1v1")
	assert.Equal(t, 0.0, testutil.ToFloat64(gauge))
}

// TestNoopMetrics tests that the noop recorder accepts observations without a registry
func TestNoopMetrics(t *testing.T) {
	m := NewNoop()
	m.CommandReceived("stats")
	m.MatchStarted("1v1")
	m.MatchCompleted("1v1")
	m.MatchCancelled("1v1")
}
