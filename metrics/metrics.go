/* metrics.go
 * Defines the interface the bot and api layers use to record operational metrics,
 * so neither needs to know about prometheus directly
 * Authors: Zachary Bower
 */

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type BotMetrics interface {
	CommandReceived(command string)
	MatchStarted(mode string)
	MatchCompleted(mode string)
	MatchCancelled(mode string)
}

func NewMetrics(registry *prometheus.Registry) BotMetrics {
	return setupPrometheusMetrics(registry)
}

// NewNoop returns a recorder that discards every observation. Used in tests and
// when the web/ops surface is disabled
func NewNoop() BotMetrics {
	return noopMetrics{}
}

type noopMetrics struct{}

func (noopMetrics) CommandReceived(string) {}
func (noopMetrics) MatchStarted(string)    {}
func (noopMetrics) MatchCompleted(string)  {}
func (noopMetrics) MatchCancelled(string)  {}
