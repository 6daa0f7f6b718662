/* team.go
 * The 2v2/3v3/4v4 team battle state machine. Killer duty rotates A1, B1, A2,
 * B2, ... so every player is the killer exactly once across 2 x team size
 * rounds. 2v2 opens with a host ban phase (one ban per side); picks are
 * slot-per-player each round and results are host claims
 * Authors: Zachary Bower
 */

package match

import (
	"fmt"

	"forsaken-bot/api/roster"
	"forsaken-bot/api/shared"

	"github.com/google/uuid"
)

type TeamMatch struct {
	ID   string
	Mode shared.Mode

	// Players holds both rosters in queued order; index 0 is the side's host
	Players [2][]shared.User

	Phase Phase
	Round int

	// Bans is shared across sides; entries alternate side A, side B
	Bans []string

	// Picks maps player index to character for the current round only
	Picks [2]map[int]string

	RoundWins       [2]int
	RoundsCompleted int
	Tiebreaker      bool

	claims [2]resultClaim
}

// NewTeamMatch starts a team battle between two queued parties. 2v2 opens in
// the ban phase; 3v3 and 4v4 have no bans and open directly in pick
func NewTeamMatch(mode shared.Mode, teamA, teamB []shared.User) *TeamMatch {
	m := &TeamMatch{
		ID:      uuid.NewString(),
		Mode:    mode,
		Players: [2][]shared.User{teamA, teamB},
		Phase:   PhasePick,
		Round:   1,
		Picks:   [2]map[int]string{{}, {}},
	}
	if m.BanQuota() > 0 {
		m.Phase = PhaseBan
	}
	return m
}

// BanQuota returns how many characters each side may ban before round 1
func (m *TeamMatch) BanQuota() int {
	if m.Mode == shared.Mode2v2 {
		return 1
	}
	return 0
}

// TotalRounds returns the scheduled round count (two per player on a side)
func (m *TeamMatch) TotalRounds() int {
	return 2 * m.Mode.TeamSize()
}

// side returns which side a participant plays on
func (m *TeamMatch) side(userID string) (Side, error) {
	for s := SideA; s <= SideB; s++ {
		for _, p := range m.Players[s] {
			if p.UserID == userID {
				return s, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: you are not in this match", shared.ErrInvalidAction)
}

// HostSide returns the side the given user hosts, or ErrNotAuthorized
func (m *TeamMatch) HostSide(userID string) (Side, error) {
	for s := SideA; s <= SideB; s++ {
		if m.Players[s][0].UserID == userID {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: only team hosts can do that", shared.ErrNotAuthorized)
}

func (m *TeamMatch) playerIndex(side Side, userID string) int {
	for i, p := range m.Players[side] {
		if p.UserID == userID {
			return i
		}
	}
	return -1
}

// killerSlot returns the side and 0-based player index on killer duty in a round
func killerSlot(round int) (Side, int) {
	if round%2 == 1 {
		return SideA, (round+1)/2 - 1
	}
	return SideB, round/2 - 1
}

// KillerDuty returns the player on killer duty for the current round
func (m *TeamMatch) KillerDuty() (Side, shared.User) {
	side, idx := killerSlot(m.Round)
	return side, m.Players[side][idx]
}

// Ban records one character ban for the acting host's side. Sides alternate
// with side A first; the phase closes when both sides exhaust their quota
// Preconditions: Receives the acting user's id and the raw character name
// Postconditions: Returns the canonical banned name, or an error and unchanged state
func (m *TeamMatch) Ban(userID string, input string) (string, error) {
	if m.Phase != PhaseBan {
		return "", fmt.Errorf("%w: bans are closed, the match is in the %s phase", shared.ErrInvalidAction, m.Phase)
	}
	side, err := m.HostSide(userID)
	if err != nil {
		return "", err
	}
	if Side(len(m.Bans)%2) != side {
		return "", fmt.Errorf("%w: it is not your side's turn to ban", shared.ErrInvalidAction)
	}

	name, err := roster.ResolveCharacter(input)
	if err != nil {
		return "", err
	}
	if contains(m.Bans, name) {
		return "", fmt.Errorf("%w: %s is already banned", shared.ErrInvalidSelection, name)
	}

	m.Bans = append(m.Bans, name)
	if len(m.Bans) == m.BanQuota()*2 {
		m.Phase = PhasePick
	}
	return name, nil
}

// Pick records the acting player's character for the current round. The player
// on killer duty picks from the killer pool, everyone else picks a survivor no
// one on either side has taken this round. Players fill their own slot in any
// order
// Postconditions: Returns the canonical picked name, or an error and unchanged state
func (m *TeamMatch) Pick(userID string, input string) (string, error) {
	if m.Phase != PhasePick {
		return "", fmt.Errorf("%w: picks are not open, the match is in the %s phase", shared.ErrInvalidAction, m.Phase)
	}
	side, err := m.side(userID)
	if err != nil {
		return "", err
	}
	idx := m.playerIndex(side, userID)
	if prev, done := m.Picks[side][idx]; done {
		return "", fmt.Errorf("%w: you already picked %s this round", shared.ErrInvalidAction, prev)
	}

	killerSide, killerIdx := killerSlot(m.Round)
	onKillerDuty := side == killerSide && idx == killerIdx

	var name string
	if onKillerDuty {
		name, err = roster.ResolveKiller(input)
		if err != nil {
			return "", fmt.Errorf("%w: you are the killer this round, pick a killer", shared.ErrInvalidSelection)
		}
	} else {
		name, err = roster.ResolveSurvivor(input)
		if err != nil {
			return "", fmt.Errorf("%w: you are a survivor this round, pick a survivor", shared.ErrInvalidSelection)
		}
	}
	if contains(m.Bans, name) {
		return "", fmt.Errorf("%w: %s is banned this match", shared.ErrInvalidSelection, name)
	}
	if !onKillerDuty {
		for s := SideA; s <= SideB; s++ {
			for _, picked := range m.Picks[s] {
				if picked == name {
					return "", fmt.Errorf("%w: %s is already picked this round", shared.ErrInvalidSelection, name)
				}
			}
		}
	}

	m.Picks[side][idx] = name
	if len(m.Picks[SideA]) == m.Mode.TeamSize() && len(m.Picks[SideB]) == m.Mode.TeamSize() {
		m.Phase = PhaseResults
	}
	return name, nil
}

// Report records a host's win/loss claim for the current round. Complementary
// claims advance the match; matching claims are discarded so reporting restarts.
// A tie after the final round schedules one tiebreaker round replaying the last
// round's killer duty
// Postconditions: Returns the recorded round's result once both claims
// reconcile, nil while waiting on the other host, or an error
func (m *TeamMatch) Report(userID string, won bool) (*RoundResult, error) {
	if m.Phase != PhaseResults {
		return nil, fmt.Errorf("%w: finish the pick phase before reporting", shared.ErrInvalidAction)
	}
	side, err := m.HostSide(userID)
	if err != nil {
		return nil, err
	}
	if m.claims[side] != claimNone {
		return nil, fmt.Errorf("%w: your side already reported this round", shared.ErrInvalidAction)
	}

	if won {
		m.claims[side] = claimWin
	} else {
		m.claims[side] = claimLoss
	}

	other := side.Other()
	if m.claims[other] == claimNone {
		return nil, nil
	}
	if m.claims[side] == m.claims[other] {
		m.claims = [2]resultClaim{claimNone, claimNone}
		return nil, fmt.Errorf("%w: both sides reported the same outcome, report this round again", shared.ErrConflictingClaim)
	}

	winner := side
	if m.claims[other] == claimWin {
		winner = other
	}
	m.RoundWins[winner]++
	m.RoundsCompleted++

	result := &RoundResult{Winner: winner}
	if m.RoundsCompleted >= m.TotalRounds() {
		if m.RoundWins[SideA] == m.RoundWins[SideB] {
			m.Tiebreaker = true
			m.Round = m.TotalRounds()
			m.resetRound()
			result.Tiebreaker = true
			return result, nil
		}
		m.Phase = PhaseComplete
		result.MatchComplete = true
		if m.RoundWins[SideA] > m.RoundWins[SideB] {
			result.MatchWinner = SideA
		} else {
			result.MatchWinner = SideB
		}
		return result, nil
	}

	m.Round++
	m.resetRound()
	return result, nil
}

// resetRound clears picks and claims and reopens the pick phase
func (m *TeamMatch) resetRound() {
	m.Picks = [2]map[int]string{{}, {}}
	m.claims = [2]resultClaim{claimNone, claimNone}
	m.Phase = PhasePick
}
