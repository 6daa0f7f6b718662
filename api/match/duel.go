/* duel.go
 * The 1v1 duel state machine: alternating character bans (2 each), alternating
 * picks (3 each, with the killer/survivor role resolved per pick number), then
 * three rounds of claim-only results. Player 1 is whoever queued first and
 * always acts first
 * Authors: Zachary Bower
 */

package match

import (
	"fmt"

	"forsaken-bot/api/roster"
	"forsaken-bot/api/shared"

	"github.com/google/uuid"
)

const (
	DuelBansPerPlayer  = 2
	DuelPicksPerPlayer = 3
	DuelRounds         = 3

	// DuelCancelPenalty is applied to the canceller's points only, floored at zero
	DuelCancelPenalty = -8
)

type Duel struct {
	ID        string
	ChannelID string
	Players   [2]shared.User
	Phase     Phase

	// Bans is the shared blocklist; entries alternate P1, P2, P1, P2
	Bans []string

	// Picks holds each player's picks in pick order (pick k plays in round k)
	Picks [2][]string

	RoundWins       [2]int
	RoundsCompleted int

	claims [2]resultClaim
}

// NewDuel starts a duel between the waiting player (p1) and the joiner (p2)
func NewDuel(channelID string, p1, p2 shared.User) *Duel {
	return &Duel{
		ID:        uuid.NewString(),
		ChannelID: channelID,
		Players:   [2]shared.User{p1, p2},
		Phase:     PhaseBan,
	}
}

// side returns which side a participant plays on
func (d *Duel) side(userID string) (Side, error) {
	switch userID {
	case d.Players[SideA].UserID:
		return SideA, nil
	case d.Players[SideB].UserID:
		return SideB, nil
	}
	return 0, fmt.Errorf("%w: you are not in this duel", shared.ErrInvalidAction)
}

// killerPickRole reports whether the given player's k-th pick (1-based) is a
// killer pick. Round 1 has player 1 as killer, round 2 swaps, round 3 swaps back
func killerPickRole(side Side, pickNumber int) bool {
	if side == SideA {
		return pickNumber%2 == 1
	}
	return pickNumber%2 == 0
}

// Ban records one character ban for the acting player
// Preconditions: Receives the acting user's id and the raw character name
// Postconditions: Returns the canonical banned name, or an error and unchanged state
func (d *Duel) Ban(userID string, input string) (string, error) {
	side, err := d.side(userID)
	if err != nil {
		return "", err
	}
	if d.Phase != PhaseBan {
		return "", fmt.Errorf("%w: bans are closed, the duel is in the %s phase", shared.ErrInvalidAction, d.Phase)
	}
	if Side(len(d.Bans)%2) != side {
		return "", fmt.Errorf("%w: it is not your turn to ban", shared.ErrInvalidAction)
	}

	name, err := roster.ResolveCharacter(input)
	if err != nil {
		return "", err
	}
	if contains(d.Bans, name) {
		return "", fmt.Errorf("%w: %s is already banned", shared.ErrInvalidSelection, name)
	}

	d.Bans = append(d.Bans, name)
	if len(d.Bans) == DuelBansPerPlayer*2 {
		d.Phase = PhasePick
	}
	return name, nil
}

// Pick records one character pick for the acting player. The pick number
// decides the pool: player 1 picks killer, survivor, killer; player 2 the inverse
// Preconditions: Receives the acting user's id and the raw character name
// Postconditions: Returns the canonical picked name, or an error and unchanged state
func (d *Duel) Pick(userID string, input string) (string, error) {
	side, err := d.side(userID)
	if err != nil {
		return "", err
	}
	if d.Phase != PhasePick {
		return "", fmt.Errorf("%w: picks are not open, the duel is in the %s phase", shared.ErrInvalidAction, d.Phase)
	}
	totalPicks := len(d.Picks[SideA]) + len(d.Picks[SideB])
	if Side(totalPicks%2) != side {
		return "", fmt.Errorf("%w: it is not your turn to pick", shared.ErrInvalidAction)
	}

	pickNumber := len(d.Picks[side]) + 1
	var name string
	if killerPickRole(side, pickNumber) {
		name, err = roster.ResolveKiller(input)
	} else {
		name, err = roster.ResolveSurvivor(input)
	}
	if err != nil {
		return "", err
	}
	if contains(d.Bans, name) {
		return "", fmt.Errorf("%w: %s is banned this duel", shared.ErrInvalidSelection, name)
	}
	if contains(d.Picks[SideA], name) || contains(d.Picks[SideB], name) {
		return "", fmt.Errorf("%w: %s was already picked this duel", shared.ErrInvalidSelection, name)
	}

	d.Picks[side] = append(d.Picks[side], name)
	if len(d.Picks[SideA]) == DuelPicksPerPlayer && len(d.Picks[SideB]) == DuelPicksPerPlayer {
		d.Phase = PhaseResults
	}
	return name, nil
}

// Report records one player's win/loss claim for the current round. When both
// players have claimed, complementary claims record the round; matching claims
// are discarded so reporting restarts
// Postconditions: Returns the recorded round's result once both claims
// reconcile, nil while waiting on the opponent, or an error
func (d *Duel) Report(userID string, won bool) (*RoundResult, error) {
	side, err := d.side(userID)
	if err != nil {
		return nil, err
	}
	if d.Phase != PhaseResults {
		return nil, fmt.Errorf("%w: the duel is not accepting results, it is in the %s phase", shared.ErrInvalidAction, d.Phase)
	}
	if d.claims[side] != claimNone {
		return nil, fmt.Errorf("%w: you already reported this round", shared.ErrInvalidAction)
	}

	if won {
		d.claims[side] = claimWin
	} else {
		d.claims[side] = claimLoss
	}

	other := side.Other()
	if d.claims[other] == claimNone {
		return nil, nil
	}
	if d.claims[side] == d.claims[other] {
		d.claims = [2]resultClaim{claimNone, claimNone}
		return nil, fmt.Errorf("%w: both players reported the same outcome, report this round again", shared.ErrConflictingClaim)
	}

	winner := side
	if d.claims[other] == claimWin {
		winner = other
	}
	d.claims = [2]resultClaim{claimNone, claimNone}
	d.RoundWins[winner]++
	d.RoundsCompleted++

	result := &RoundResult{Winner: winner}
	if d.RoundsCompleted >= DuelRounds {
		d.Phase = PhaseComplete
		result.MatchComplete = true
		if d.RoundWins[SideA] > d.RoundWins[SideB] {
			result.MatchWinner = SideA
		} else {
			result.MatchWinner = SideB
		}
	}
	return result, nil
}

// CurrentRound returns the 1-based round number being played or reported
func (d *Duel) CurrentRound() int {
	if d.RoundsCompleted >= DuelRounds {
		return DuelRounds
	}
	return d.RoundsCompleted + 1
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
