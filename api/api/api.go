/* api.go
 * This file contains the coordinating API: the single owner of the party registry,
 * queues, pending challenges and every active match. Handlers call in from discordgo
 * goroutines, so every exported method takes one mutex. For consistent results callers
 * should go through this package, not api/match or api/party directly
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"
	"sync"

	"forsaken-bot/api/match"
	"forsaken-bot/api/party"
	"forsaken-bot/api/shared"
	"forsaken-bot/api/store"
	"forsaken-bot/metrics"

	log "github.com/sirupsen/logrus"
)

// API provides methods for interacting with the forsaken bot data layer
type API struct {
	Store store.Interface

	mu sync.Mutex

	parties    *party.Registry
	queue      *party.Queue
	challenges *party.Challenges

	// waitingDuel holds at most one player per channel waiting for a 1v1 opponent
	waitingDuel map[string]shared.User

	// duels is keyed by channel id; teams and tournaments are keyed by
	// participant user id, one entry per player
	duels       map[string]*match.Duel
	teams       map[string]*match.TeamMatch
	tournaments map[string]*match.Tournament

	admins  map[string]bool
	metrics metrics.BotMetrics
}

// New creates an API over an existing store. A nil recorder disables metrics
func New(s store.Interface, adminIDs []string, rec metrics.BotMetrics) *API {
	if rec == nil {
		rec = metrics.NewNoop()
	}
	admins := make(map[string]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &API{
		Store:       s,
		parties:     party.NewRegistry(),
		queue:       party.NewQueue(),
		challenges:  party.NewChallenges(),
		waitingDuel: map[string]shared.User{},
		duels:       map[string]*match.Duel{},
		teams:       map[string]*match.TeamMatch{},
		tournaments: map[string]*match.Tournament{},
		admins:      admins,
		metrics:     rec,
	}
}

// NewAPI creates a new API instance backed by MongoDB with the provided configuration
func NewAPI(dbName string, mongoURI string, adminIDs []string, rec metrics.BotMetrics) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return New(s, adminIDs, rec), nil
}

// isAdmin reports whether the user is on the admin allow-list
func (a *API) isAdmin(userID string) bool {
	return a.admins[userID]
}

// busyWith returns a description of the match or queue slot currently occupying
// the user. Callers must hold the mutex
func (a *API) busyWith(userID string) (string, bool) {
	if m, ok := a.teams[userID]; ok {
		return fmt.Sprintf("a %s team battle", m.Mode), true
	}
	if _, ok := a.tournaments[userID]; ok {
		return "a 5v5 tournament", true
	}
	for _, d := range a.duels {
		if d.Players[match.SideA].UserID == userID || d.Players[match.SideB].UserID == userID {
			return "a 1v1 duel", true
		}
	}
	for _, u := range a.waitingDuel {
		if u.UserID == userID {
			return "the 1v1 queue", true
		}
	}
	if mode, ok := a.queue.Queued(userID); ok {
		return fmt.Sprintf("the %s queue", mode), true
	}
	return "", false
}

// recordOutcome applies one player's win or loss to the ledger for a finalized
// match. Points are floored at zero on the way in
func (a *API) recordOutcome(user shared.User, mode shared.Mode, won bool) error {
	row, err := a.Store.GetModeStats(user, mode)
	if err != nil {
		return err
	}
	row.Username = user.Username
	if won {
		row.Points += mode.WinPoints()
		row.Wins++
	} else {
		row.Points += mode.LossPoints()
		row.Losses++
	}
	if row.Points < 0 {
		row.Points = 0
	}
	return a.Store.SaveModeStats(row)
}

// applyPenalty adjusts a player's points only, leaving the win/loss tallies
// untouched. Used for the 1v1 cancel penalty
func (a *API) applyPenalty(user shared.User, mode shared.Mode, delta int) error {
	row, err := a.Store.GetModeStats(user, mode)
	if err != nil {
		return err
	}
	row.Username = user.Username
	row.Points += delta
	if row.Points < 0 {
		row.Points = 0
	}
	return a.Store.SaveModeStats(row)
}

// recordMatchResult writes both rosters' ledger rows once a match finalizes
func (a *API) recordMatchResult(mode shared.Mode, winners []shared.User, losers []shared.User) error {
	for _, u := range winners {
		if err := a.recordOutcome(u, mode, true); err != nil {
			return fmt.Errorf("failed to record win for %s: %w", u.Username, err)
		}
	}
	for _, u := range losers {
		if err := a.recordOutcome(u, mode, false); err != nil {
			return fmt.Errorf("failed to record loss for %s: %w", u.Username, err)
		}
	}
	return nil
}

// dropQueuedEntry removes the host's queue entry after a roster change and
// returns a reply suffix describing what happened
func (a *API) dropQueuedEntry(hostID string) string {
	if mode, ok := a.queue.Leave(hostID); ok {
		log.WithFields(log.Fields{"host": hostID, "mode": mode}).Info("queue entry dropped after roster change")
		return fmt.Sprintf(". The party left the %s queue because its roster changed", mode)
	}
	return ""
}
