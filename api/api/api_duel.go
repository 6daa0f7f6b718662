/* api_duel.go
 * Coordinating API methods for the 1v1 duel flow: queueing into a channel, bans,
 * picks, result reports and cancellation. Duels are keyed by channel, one per
 * channel, with at most one player waiting
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"
	"strings"

	"forsaken-bot/api/match"
	"forsaken-bot/api/roster"
	"forsaken-bot/api/shared"

	log "github.com/sirupsen/logrus"
)

// StartDuel queues the user for a 1v1 in the channel, starting the duel when an
// opponent is already waiting there
// Preconditions: Receives the channel id and the acting user
// Postconditions: Returns a reply describing the queue or match state, or an error
func (a *API) StartDuel(channelID string, user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if desc, busy := a.busyWith(user.UserID); busy {
		return "", fmt.Errorf("%w: you are already in %s", shared.ErrInvalidAction, desc)
	}
	if _, running := a.duels[channelID]; running {
		return "", fmt.Errorf("%w: a duel is already running in this channel, wait for it to finish", shared.ErrInvalidAction)
	}

	waiter, ok := a.waitingDuel[channelID]
	if !ok {
		a.waitingDuel[channelID] = user
		return fmt.Sprintf("%s is waiting for a 1v1 opponent. Type $1v1 to face them", user.Username), nil
	}

	delete(a.waitingDuel, channelID)
	d := match.NewDuel(channelID, waiter, user)
	a.duels[channelID] = d
	a.metrics.MatchStarted(string(shared.Mode1v1))
	log.WithFields(log.Fields{"match": d.ID, "mode": shared.Mode1v1}).Info("duel started")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s vs %s, the duel is on!\n", waiter.Username, user.Username))
	sb.WriteString(fmt.Sprintf("Each player bans two characters from the shared pool. %s bans first with $ban <character>", waiter.Username))
	return sb.String(), nil
}

// DuelBan records a character ban in the channel's duel
func (a *API) DuelBan(channelID string, user shared.User, input string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	d, ok := a.duels[channelID]
	if !ok {
		return "", fmt.Errorf("%w: there is no active duel in this channel", shared.ErrInvalidAction)
	}
	name, err := d.Ban(user.UserID, input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s banned %s.", user.Username, roster.FormatCharacter(name)))
	if d.Phase == match.PhasePick {
		sb.WriteString(fmt.Sprintf("\nBans are locked: %s. %s picks first with $pick <character>",
			strings.Join(d.Bans, ", "), d.Players[match.SideA].Username))
	} else {
		next := d.Players[match.Side(len(d.Bans)%2)]
		sb.WriteString(fmt.Sprintf(" %s bans next", next.Username))
	}
	return sb.String(), nil
}

// DuelPick records a character pick in the channel's duel. The engine validates
// the killer/survivor role for the player's pick number
func (a *API) DuelPick(channelID string, user shared.User, input string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	d, ok := a.duels[channelID]
	if !ok {
		return "", fmt.Errorf("%w: there is no active duel in this channel", shared.ErrInvalidAction)
	}
	name, err := d.Pick(user.UserID, input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s picked %s.", user.Username, roster.FormatCharacter(name)))
	if d.Phase == match.PhaseResults {
		sb.WriteString("\nAll picks are locked in:\n")
		sb.WriteString(duelLineup(d))
		sb.WriteString("\nPlay round 1 and report the result with $won or $loss")
	} else {
		total := len(d.Picks[match.SideA]) + len(d.Picks[match.SideB])
		next := d.Players[match.Side(total%2)]
		sb.WriteString(fmt.Sprintf(" %s picks next", next.Username))
	}
	return sb.String(), nil
}

// DuelReport records the acting player's win or loss claim for the current round
// Postconditions: Returns a waiting note, the round outcome, or the final match
// summary once both claims reconcile; conflicting claims surface as errors
func (a *API) DuelReport(channelID string, user shared.User, won bool) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	d, ok := a.duels[channelID]
	if !ok {
		return "", fmt.Errorf("%w: there is no active duel in this channel", shared.ErrInvalidAction)
	}
	res, err := d.Report(user.UserID, won)
	if err != nil {
		return "", err
	}
	if res == nil {
		other := d.Players[match.SideB]
		if other.UserID == user.UserID {
			other = d.Players[match.SideA]
		}
		return fmt.Sprintf("Result recorded. Waiting for %s to report this round", other.Username), nil
	}

	if !res.MatchComplete {
		return fmt.Sprintf("Round %d goes to %s (%d-%d). Report the next round with $won or $loss",
			d.RoundsCompleted, d.Players[res.Winner].Username,
			d.RoundWins[match.SideA], d.RoundWins[match.SideB]), nil
	}

	winner := d.Players[res.MatchWinner]
	loser := d.Players[res.MatchWinner.Other()]
	delete(a.duels, channelID)
	a.metrics.MatchCompleted(string(shared.Mode1v1))
	log.WithFields(log.Fields{"match": d.ID, "mode": shared.Mode1v1, "winner": winner.UserID}).Info("duel complete")

	if err := a.recordMatchResult(shared.Mode1v1, []shared.User{winner}, []shared.User{loser}); err != nil {
		return "", fmt.Errorf("the duel finished but recording results failed: %w", err)
	}
	return fmt.Sprintf("%s wins the duel %d-%d over %s! %+d points to the winner, %d to the loser",
		winner.Username, d.RoundWins[res.MatchWinner], d.RoundWins[res.MatchWinner.Other()], loser.Username,
		shared.Mode1v1.WinPoints(), shared.Mode1v1.LossPoints()), nil
}

// CancelDuel cancels the channel's duel or removes the user's waiting entry.
// Cancelling an active duel costs the canceller points; leaving the queue is free
func (a *API) CancelDuel(channelID string, user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if waiter, ok := a.waitingDuel[channelID]; ok && waiter.UserID == user.UserID {
		delete(a.waitingDuel, channelID)
		return fmt.Sprintf("%s left the 1v1 queue", user.Username), nil
	}

	d, ok := a.duels[channelID]
	if !ok {
		return "", fmt.Errorf("%w: there is no active duel in this channel", shared.ErrInvalidAction)
	}
	if d.Players[match.SideA].UserID != user.UserID && d.Players[match.SideB].UserID != user.UserID {
		return "", fmt.Errorf("%w: you are not in this duel", shared.ErrInvalidAction)
	}

	delete(a.duels, channelID)
	a.metrics.MatchCancelled(string(shared.Mode1v1))
	log.WithFields(log.Fields{"match": d.ID, "mode": shared.Mode1v1, "user": user.UserID}).Info("duel cancelled")

	if err := a.applyPenalty(user, shared.Mode1v1, match.DuelCancelPenalty); err != nil {
		return "", fmt.Errorf("the duel was cancelled but applying the penalty failed: %w", err)
	}
	return fmt.Sprintf("%s cancelled the duel and forfeits %d points", user.Username, -match.DuelCancelPenalty), nil
}
