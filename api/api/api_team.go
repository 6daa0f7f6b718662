/* api_team.go
 * Coordinating API methods for 2v2/3v3/4v4 team battles: party queueing, the 2v2
 * host ban phase, per-round picks and host result reports. Side A is the party
 * that queued first
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

// QueueTeam queues the user's party for a team mode, starting the match when
// another party is already waiting
// Preconditions: Receives the team mode and the acting user, who must host a
// party of exactly the mode's team size
// Postconditions: Returns a reply describing the queue or match state, or an error
func (a *API) QueueTeam(mode shared.Mode, user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if mode.TeamSize() < 2 || mode == shared.Mode5v5 {
		return "", fmt.Errorf("%w: %s is not a queued team mode", shared.ErrInvalidAction, mode)
	}
	p, ok := a.parties.Get(user.UserID)
	if !ok {
		return "", fmt.Errorf("%w: you are not in a party, create one with $party", shared.ErrInvalidAction)
	}
	if !p.IsHost(user.UserID) {
		return "", fmt.Errorf("%w: only the party host can queue", shared.ErrNotAuthorized)
	}
	for _, member := range p.Members {
		if desc, busy := a.busyWith(member.UserID); busy {
			return "", fmt.Errorf("%w: %s is already in %s", shared.ErrInvalidAction, member.Username, desc)
		}
	}

	opponent, matched, err := a.queue.Join(mode, user.UserID, p.Members)
	if err != nil {
		return "", err
	}
	if !matched {
		return fmt.Sprintf("%s is queued for %s. The match starts when another party joins the queue", p.Name, mode), nil
	}

	// snapshot the roster like the queue does, so later party edits cannot
	// reach into the running match
	m := match.NewTeamMatch(mode, opponent, append([]shared.User(nil), p.Members...))
	for _, side := range m.Players {
		for _, player := range side {
			a.teams[player.UserID] = m
		}
	}
	a.metrics.MatchStarted(string(mode))
	log.WithFields(log.Fields{"match": m.ID, "mode": mode}).Info("team battle started")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s match found: %s vs %s!\n", mode, teamLabel(m, match.SideA), teamLabel(m, match.SideB)))
	if m.Phase == match.PhaseBan {
		sb.WriteString(fmt.Sprintf("Each host bans one character. %s bans first with $teamban <character>",
			m.Players[match.SideA][0].Username))
	} else {
		sb.WriteString(roundOpening(m))
	}
	return sb.String(), nil
}

// CancelQueue removes the user's waiting queue entry, whichever mode holds it
func (a *API) CancelQueue(user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	mode, ok := a.queue.Leave(user.UserID)
	if !ok {
		return "", fmt.Errorf("%w: you have no party waiting in any queue", shared.ErrInvalidAction)
	}
	return fmt.Sprintf("Left the %s queue", mode), nil
}

// TeamBan records a host's character ban in their running team battle
func (a *API) TeamBan(user shared.User, input string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	m, ok := a.teams[user.UserID]
	if !ok {
		return "", fmt.Errorf("%w: you are not in a team battle", shared.ErrInvalidAction)
	}
	name, err := m.Ban(user.UserID, input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s banned %s for the whole match.", user.Username, roster.FormatCharacter(name)))
	if m.Phase == match.PhasePick {
		sb.WriteString("\n")
		sb.WriteString(roundOpening(m))
	} else {
		next := m.Players[match.Side(len(m.Bans)%2)][0]
		sb.WriteString(fmt.Sprintf(" %s bans next", next.Username))
	}
	return sb.String(), nil
}

// TeamPick records the acting player's character for the current round
func (a *API) TeamPick(user shared.User, input string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	m, ok := a.teams[user.UserID]
	if !ok {
		return "", fmt.Errorf("%w: you are not in a team battle", shared.ErrInvalidAction)
	}
	name, err := m.Pick(user.UserID, input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s locked in %s.", user.Username, roster.FormatCharacter(name)))
	if m.Phase == match.PhaseResults {
		sb.WriteString("\nAll picks are in. Play the round, then each host reports with $teamwon or $teamloss")
	}
	return sb.String(), nil
}

// TeamReport records a host's win or loss claim for the current round
// Postconditions: Returns a waiting note, the round outcome with the next
// round's prompt, a tiebreaker announcement, or the final match summary
func (a *API) TeamReport(user shared.User, won bool) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	m, ok := a.teams[user.UserID]
	if !ok {
		return "", fmt.Errorf("%w: you are not in a team battle", shared.ErrInvalidAction)
	}
	res, err := m.Report(user.UserID, won)
	if err != nil {
		return "", err
	}
	if res == nil {
		return "Result recorded. Waiting for the other host to report this round", nil
	}

	if res.Tiebreaker {
		return fmt.Sprintf("%s takes the round and it is %d-%d after %d rounds. %s",
			teamLabel(m, res.Winner), m.RoundWins[match.SideA], m.RoundWins[match.SideB],
			m.RoundsCompleted, roundOpening(m)), nil
	}

	if !res.MatchComplete {
		return fmt.Sprintf("%s takes round %d (%d-%d). %s",
			teamLabel(m, res.Winner), m.RoundsCompleted,
			m.RoundWins[match.SideA], m.RoundWins[match.SideB], roundOpening(m)), nil
	}

	winners := m.Players[res.MatchWinner]
	losers := m.Players[res.MatchWinner.Other()]
	for _, side := range m.Players {
		for _, player := range side {
			delete(a.teams, player.UserID)
		}
	}
	a.metrics.MatchCompleted(string(m.Mode))
	log.WithFields(log.Fields{"match": m.ID, "mode": m.Mode, "winner": winners[0].UserID}).Info("team battle complete")

	if err := a.recordMatchResult(m.Mode, winners, losers); err != nil {
		return "", fmt.Errorf("the match finished but recording results failed: %w", err)
	}
	return fmt.Sprintf("%s wins the %s match %d-%d! %+d points to each winner, %d to each loser",
		teamLabel(m, res.MatchWinner), m.Mode,
		m.RoundWins[res.MatchWinner], m.RoundWins[res.MatchWinner.Other()],
		m.Mode.WinPoints(), m.Mode.LossPoints()), nil
}

// CancelTeam cancels the host's running team battle with no penalty
func (a *API) CancelTeam(user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	m, ok := a.teams[user.UserID]
	if !ok {
		return "", fmt.Errorf("%w: you are not in a team battle", shared.ErrInvalidAction)
	}
	if _, err := m.HostSide(user.UserID); err != nil {
		return "", err
	}

	for _, side := range m.Players {
		for _, player := range side {
			delete(a.teams, player.UserID)
		}
	}
	a.metrics.MatchCancelled(string(m.Mode))
	log.WithFields(log.Fields{"match": m.ID, "mode": m.Mode, "user": user.UserID}).Info("team battle cancelled")

	return fmt.Sprintf("The %s match was cancelled by %s. No points were awarded", m.Mode, user.Username), nil
}
