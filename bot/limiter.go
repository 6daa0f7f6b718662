/* limiter.go
 * Per-user token bucket rate limiting for inbound commands. Each user gets a
 * small burst and a slow refill; an over-limit user is told to slow down once
 * and then ignored until their bucket refills
 * Authors: Zachary Bower
 */

package bot

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// commandBurst is how many commands a user can send back to back
	commandBurst = 4

	// commandRefill is how long one spent command takes to come back
	commandRefill = 1500 * time.Millisecond
)

// commandLimiter holds one token bucket per user. The zero value is ready to use
type commandLimiter struct {
	mu     sync.Mutex
	users  map[string]*rate.Limiter
	warned map[string]bool
}

// Allow reports whether the user may run another command. The second return is
// true only for the first rejection since the user's last allowed command, so
// callers can warn once instead of spamming the channel
func (l *commandLimiter) Allow(userID string) (bool, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.users == nil {
		l.users = map[string]*rate.Limiter{}
		l.warned = map[string]bool{}
	}
	lim, ok := l.users[userID]
	if !ok {
		lim = rate.NewLimiter(rate.Every(commandRefill), commandBurst)
		l.users[userID] = lim
	}

	if lim.Allow() {
		l.warned[userID] = false
		return true, false
	}
	if l.warned[userID] {
		return false, false
	}
	l.warned[userID] = true
	return false, true
}
