/* api_tournament.go
 * Coordinating API methods for the 5v5 tournament: the challenge handshake, the
 * per-round map/killer/ban/pick negotiation and score reporting. Side A is the
 * challenging party
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"
	"strings"

	"forsaken-bot/api/match"
	"forsaken-bot/api/party"
	"forsaken-bot/api/roster"
	"forsaken-bot/api/shared"

	log "github.com/sirupsen/logrus"
)

// Challenge records a 5v5 challenge from the user's party to the target's party.
// The target may be any member of the opposing party
// Preconditions: Receives the acting user, who must host a full party of five
// Postconditions: Returns a reply naming the challenged host, or an error
func (a *API) Challenge(user shared.User, target shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.parties.Get(user.UserID)
	if !ok {
		return "", fmt.Errorf("%w: you are not in a party, create one with $party", shared.ErrInvalidAction)
	}
	if !p.IsHost(user.UserID) {
		return "", fmt.Errorf("%w: only the party host can challenge", shared.ErrNotAuthorized)
	}
	if p.Size() != party.MaxSize {
		return "", fmt.Errorf("%w: 5v5 needs a full party of %d, yours has %d", shared.ErrInvalidAction, party.MaxSize, p.Size())
	}

	tp, ok := a.parties.Get(target.UserID)
	if !ok {
		return "", fmt.Errorf("%w: %s is not in a party", shared.ErrInvalidAction, target.Username)
	}
	if tp.Size() != party.MaxSize {
		return "", fmt.Errorf("%w: %s has %d members, 5v5 needs %d", shared.ErrInvalidAction, tp.Name, tp.Size(), party.MaxSize)
	}
	for _, member := range p.Members {
		if desc, busy := a.busyWith(member.UserID); busy {
			return "", fmt.Errorf("%w: %s is already in %s", shared.ErrInvalidAction, member.Username, desc)
		}
	}
	for _, member := range tp.Members {
		if desc, busy := a.busyWith(member.UserID); busy {
			return "", fmt.Errorf("%w: %s is already in %s", shared.ErrInvalidAction, member.Username, desc)
		}
	}

	if err := a.challenges.Issue(user.UserID, tp.Host.UserID); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s challenged %s to a 5v5 tournament! %s can accept with $acceptchallenge",
		p.Name, tp.Name, tp.Host.Username), nil
}

// AcceptChallenge consumes a pending challenge and starts the tournament. The
// challenger argument may be any member of the challenging party
// Preconditions: Receives the acting user, who must host the challenged party;
// both parties must still have exactly five free members
// Postconditions: Returns the opening round prompt, or an error
func (a *API) AcceptChallenge(user shared.User, challenger shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.parties.Get(user.UserID)
	if !ok {
		return "", fmt.Errorf("%w: you are not in a party", shared.ErrInvalidAction)
	}
	if !p.IsHost(user.UserID) {
		return "", fmt.Errorf("%w: only the party host can accept a challenge", shared.ErrNotAuthorized)
	}
	cp, ok := a.parties.Get(challenger.UserID)
	if !ok {
		return "", fmt.Errorf("%w: %s is not in a party", shared.ErrInvalidAction, challenger.Username)
	}
	if p.Size() != party.MaxSize {
		return "", fmt.Errorf("%w: your party has %d members, 5v5 needs %d", shared.ErrInvalidAction, p.Size(), party.MaxSize)
	}
	if cp.Size() != party.MaxSize {
		return "", fmt.Errorf("%w: %s has %d members, 5v5 needs %d", shared.ErrInvalidAction, cp.Name, cp.Size(), party.MaxSize)
	}
	for _, member := range p.Members {
		if desc, busy := a.busyWith(member.UserID); busy {
			return "", fmt.Errorf("%w: %s is already in %s", shared.ErrInvalidAction, member.Username, desc)
		}
	}
	for _, member := range cp.Members {
		if desc, busy := a.busyWith(member.UserID); busy {
			return "", fmt.Errorf("%w: %s is already in %s", shared.ErrInvalidAction, member.Username, desc)
		}
	}

	if err := a.challenges.Accept(user.UserID, cp.Host.UserID); err != nil {
		return "", err
	}

	// snapshot both rosters so later party edits cannot reach into the match
	t := match.NewTournament(
		append([]shared.User(nil), cp.Members...),
		append([]shared.User(nil), p.Members...),
		cp.Name, p.Name)
	for _, side := range t.Players {
		for _, player := range side {
			a.tournaments[player.UserID] = t
		}
	}
	a.metrics.MatchStarted(string(shared.Mode5v5))
	log.WithFields(log.Fields{"match": t.ID, "mode": shared.Mode5v5}).Info("tournament started")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("The 5v5 tournament between %s and %s begins!\n", cp.Name, p.Name))
	sb.WriteString(roundProlog(t))
	return sb.String(), nil
}

// SelectMap records the attacking host's map for the current round
func (a *API) SelectMap(user shared.User, input string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, ok := a.tournaments[user.UserID]
	if !ok {
		return "", fmt.Errorf("%w: you are not in a tournament", shared.ErrInvalidAction)
	}
	name, err := t.SelectMap(user.UserID, input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Map set to %s.", name))
	if _, recs, recErr := roster.RecommendedKillers(name); recErr == nil && len(recs) > 0 {
		sb.WriteString(fmt.Sprintf(" Strong killers here: %s.", strings.Join(recs, ", ")))
	}
	sb.WriteString(fmt.Sprintf("\n%s nominates the killer with $selectkiller <player 1-5> <killer>",
		t.Players[t.Attacker()][0].Username))
	return sb.String(), nil
}

// SelectKiller records which attacking player runs killer this round and their
// character, then prompts the defending host's bans
func (a *API) SelectKiller(user shared.User, playerNumber int, input string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, ok := a.tournaments[user.UserID]
	if !ok {
		return "", fmt.Errorf("%w: you are not in a tournament", shared.ErrInvalidAction)
	}
	player, name, err := t.SelectKiller(user.UserID, playerNumber, input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s will play %s this round.", player.Username, roster.FormatCharacter(name)))
	if _, advice, recErr := roster.RecommendedBans(name); recErr == nil {
		if len(advice.Solo) > 0 {
			sb.WriteString(fmt.Sprintf("\nSurvivors worth banning: %s.", strings.Join(advice.Solo, ", ")))
		}
		if len(advice.Combos) > 0 {
			pairs := make([]string, 0, len(advice.Combos))
			for _, c := range advice.Combos {
				pairs = append(pairs, c[0]+" + "+c[1])
			}
			sb.WriteString(fmt.Sprintf(" Combos: %s.", strings.Join(pairs, "; ")))
		}
	}
	sb.WriteString(fmt.Sprintf("\n%s bans up to %d survivors with $tournamentban <survivor>, or skips with $skipban",
		t.Players[t.Defender()][0].Username, match.TournamentMaxBans))
	return sb.String(), nil
}

// TournamentBan records one survivor ban by the defending host
func (a *API) TournamentBan(user shared.User, input string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, ok := a.tournaments[user.UserID]
	if !ok {
		return "", fmt.Errorf("%w: you are not in a tournament", shared.ErrInvalidAction)
	}
	name, err := t.BanSurvivor(user.UserID, input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s banned %s this round.", user.Username, name))
	if t.Phase == match.PhasePick {
		sb.WriteString("\n")
		sb.WriteString(pickPrompt(t))
	} else {
		sb.WriteString(" One ban left, or $skipban to move on")
	}
	return sb.String(), nil
}

// SkipBan forfeits the defending host's remaining bans and opens the picks
func (a *API) SkipBan(user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, ok := a.tournaments[user.UserID]
	if !ok {
		return "", fmt.Errorf("%w: you are not in a tournament", shared.ErrInvalidAction)
	}
	if err := t.SkipBans(user.UserID); err != nil {
		return "", err
	}
	return "Remaining bans skipped.\n" + pickPrompt(t), nil
}

// TournamentPick records one defending player's survivor for the round
func (a *API) TournamentPick(user shared.User, input string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, ok := a.tournaments[user.UserID]
	if !ok {
		return "", fmt.Errorf("%w: you are not in a tournament", shared.ErrInvalidAction)
	}
	name, err := t.PickSurvivor(user.UserID, input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s locked in %s.", user.Username, name))
	if t.Phase == match.PhaseResults {
		sb.WriteString("\nLineup is set. Play the round, then both hosts report with $reportscore <0-7>")
	}
	return sb.String(), nil
}

// ReportScore records a host's 0-7 score claim for the current round
// Postconditions: Returns a waiting note, the recorded round line with the next
// round's prompt, or the final standings; non-summing claims surface as errors
func (a *API) ReportScore(user shared.User, score int) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, ok := a.tournaments[user.UserID]
	if !ok {
		return "", fmt.Errorf("%w: you are not in a tournament", shared.ErrInvalidAction)
	}
	res, err := t.ReportScore(user.UserID, score)
	if err != nil {
		return "", err
	}
	if res == nil {
		return "Score recorded. Waiting for the other host to report this round", nil
	}

	rec := t.History[len(t.History)-1]
	roundLine := fmt.Sprintf("Round %d on %s: %s %d - %d %s.",
		rec.Round, rec.Map, t.Names[match.SideA], rec.Score[match.SideA], rec.Score[match.SideB], t.Names[match.SideB])

	if !res.MatchComplete {
		return fmt.Sprintf("%s The standing is %d-%d.\n%s",
			roundLine, t.RoundWins[match.SideA], t.RoundWins[match.SideB], roundProlog(t)), nil
	}

	for _, side := range t.Players {
		for _, player := range side {
			delete(a.tournaments, player.UserID)
		}
	}
	a.metrics.MatchCompleted(string(shared.Mode5v5))

	if res.Draw {
		log.WithFields(log.Fields{"match": t.ID, "mode": shared.Mode5v5}).Info("tournament drawn")
		return fmt.Sprintf("%s The tournament ends %d-%d. A draw awards no points",
			roundLine, t.RoundWins[match.SideA], t.RoundWins[match.SideB]), nil
	}

	winners := t.Players[res.MatchWinner]
	losers := t.Players[res.MatchWinner.Other()]
	log.WithFields(log.Fields{"match": t.ID, "mode": shared.Mode5v5, "winner": winners[0].UserID}).Info("tournament complete")

	if err := a.recordMatchResult(shared.Mode5v5, winners, losers); err != nil {
		return "", fmt.Errorf("the tournament finished but recording results failed: %w", err)
	}
	return fmt.Sprintf("%s\n%s wins the tournament %d-%d! %+d points to each winner, %d to each loser",
		roundLine, t.Names[res.MatchWinner],
		t.RoundWins[res.MatchWinner], t.RoundWins[res.MatchWinner.Other()],
		shared.Mode5v5.WinPoints(), shared.Mode5v5.LossPoints()), nil
}

// CancelTournament cancels the host's running tournament with no penalty
func (a *API) CancelTournament(user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, ok := a.tournaments[user.UserID]
	if !ok {
		return "", fmt.Errorf("%w: you are not in a tournament", shared.ErrInvalidAction)
	}
	if _, err := t.HostSide(user.UserID); err != nil {
		return "", err
	}

	for _, side := range t.Players {
		for _, player := range side {
			delete(a.tournaments, player.UserID)
		}
	}
	a.metrics.MatchCancelled(string(shared.Mode5v5))
	log.WithFields(log.Fields{"match": t.ID, "mode": shared.Mode5v5, "user": user.UserID}).Info("tournament cancelled")

	return fmt.Sprintf("The tournament between %s and %s was cancelled. No points were awarded",
		t.Names[match.SideA], t.Names[match.SideB]), nil
}
