/* tournament.go
 * The 10-round 5v5 tournament state machine. Each round the attacking side's
 * host picks the map and nominates one of their five players as killer, the
 * defending host bans up to two survivors, the four non-host defenders pick
 * distinct survivors, then both hosts report 0-7 scores that must sum to 7.
 * First side to 6 round wins takes the tournament early
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
	TournamentRounds     = 10
	TournamentWinsNeeded = 6
	TournamentMaxBans    = 2
	TournamentScoreTotal = 7
)

type Tournament struct {
	ID string

	// Players holds both rosters of five; index 0 is the side's host
	Players [2][]shared.User

	// Names carries each side's party display name for announcements
	Names [2]string

	Phase Phase
	Round int

	// Per-round negotiation state, cleared when the round is recorded
	Map             string
	KillerIndex     int
	KillerCharacter string
	Bans            []string
	Picks           map[int]string

	RoundWins       [2]int
	RoundsCompleted int
	History         []RoundRecord

	claims [2]scoreClaim
}

// NewTournament starts a 5v5 tournament between the challenger's party (side A)
// and the challenged party (side B)
func NewTournament(teamA, teamB []shared.User, nameA, nameB string) *Tournament {
	return &Tournament{
		ID:          uuid.NewString(),
		Players:     [2][]shared.User{teamA, teamB},
		Names:       [2]string{nameA, nameB},
		Phase:       PhaseMapSelect,
		Round:       1,
		KillerIndex: -1,
		Picks:       map[int]string{},
	}
}

// Attacker returns the side fielding the killer this round. Side A attacks on
// odd rounds
func (t *Tournament) Attacker() Side {
	if t.Round%2 == 1 {
		return SideA
	}
	return SideB
}

// Defender returns the all-survivor side this round
func (t *Tournament) Defender() Side {
	return t.Attacker().Other()
}

// KillerPlayer returns the attacking player nominated as killer this round
func (t *Tournament) KillerPlayer() (shared.User, bool) {
	if t.KillerIndex < 0 {
		return shared.User{}, false
	}
	return t.Players[t.Attacker()][t.KillerIndex], true
}

// HostSide returns the side the given user hosts, or ErrNotAuthorized
func (t *Tournament) HostSide(userID string) (Side, error) {
	for s := SideA; s <= SideB; s++ {
		if t.Players[s][0].UserID == userID {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: only team hosts can do that", shared.ErrNotAuthorized)
}

func (t *Tournament) side(userID string) (Side, error) {
	for s := SideA; s <= SideB; s++ {
		for _, p := range t.Players[s] {
			if p.UserID == userID {
				return s, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: you are not in this tournament", shared.ErrInvalidAction)
}

func (t *Tournament) playerIndex(side Side, userID string) int {
	for i, p := range t.Players[side] {
		if p.UserID == userID {
			return i
		}
	}
	return -1
}

// attackingHost verifies the actor hosts the attacking side
func (t *Tournament) attackingHost(userID string) error {
	side, err := t.HostSide(userID)
	if err != nil {
		return err
	}
	if side != t.Attacker() {
		return fmt.Errorf("%w: only the attacking host can do that this round", shared.ErrNotAuthorized)
	}
	return nil
}

// defendingHost verifies the actor hosts the defending side
func (t *Tournament) defendingHost(userID string) error {
	side, err := t.HostSide(userID)
	if err != nil {
		return err
	}
	if side != t.Defender() {
		return fmt.Errorf("%w: only the defending host can do that this round", shared.ErrNotAuthorized)
	}
	return nil
}

// SelectMap records the attacking host's map choice and opens killer selection
// Preconditions: Receives the acting user's id and the raw map name
// Postconditions: Returns the canonical map name, or an error and unchanged state
func (t *Tournament) SelectMap(userID string, input string) (string, error) {
	if t.Phase != PhaseMapSelect {
		return "", fmt.Errorf("%w: the round is not in map selection, it is in the %s phase", shared.ErrInvalidAction, t.Phase)
	}
	if err := t.attackingHost(userID); err != nil {
		return "", err
	}
	name, err := roster.ResolveMap(input)
	if err != nil {
		return "", err
	}
	t.Map = name
	t.Phase = PhaseKillerSelect
	return name, nil
}

// SelectKiller records which attacking player (1-5 as typed) plays killer this
// round and the killer character, then opens the defending ban phase
// Postconditions: Returns the nominated player and canonical character name,
// or an error and unchanged state
func (t *Tournament) SelectKiller(userID string, playerNumber int, input string) (shared.User, string, error) {
	if t.Phase != PhaseKillerSelect {
		return shared.User{}, "", fmt.Errorf("%w: the round is not in killer selection, it is in the %s phase", shared.ErrInvalidAction, t.Phase)
	}
	if err := t.attackingHost(userID); err != nil {
		return shared.User{}, "", err
	}
	if playerNumber < 1 || playerNumber > len(t.Players[t.Attacker()]) {
		return shared.User{}, "", fmt.Errorf("%w: player number must be 1-%d", shared.ErrInvalidSelection, len(t.Players[t.Attacker()]))
	}
	name, err := roster.ResolveKiller(input)
	if err != nil {
		return shared.User{}, "", err
	}

	t.KillerIndex = playerNumber - 1
	t.KillerCharacter = name
	t.Phase = PhaseBan
	return t.Players[t.Attacker()][t.KillerIndex], name, nil
}

// BanSurvivor records one survivor ban by the defending host. The phase closes
// automatically once both bans are spent; SkipBans closes it early
// Postconditions: Returns the canonical banned name, or an error and unchanged state
func (t *Tournament) BanSurvivor(userID string, input string) (string, error) {
	if t.Phase != PhaseBan {
		return "", fmt.Errorf("%w: the round is not in the ban phase, it is in the %s phase", shared.ErrInvalidAction, t.Phase)
	}
	if err := t.defendingHost(userID); err != nil {
		return "", err
	}
	if len(t.Bans) >= TournamentMaxBans {
		return "", fmt.Errorf("%w: you already banned %d survivors this round", shared.ErrCapacityExceeded, TournamentMaxBans)
	}
	name, err := roster.ResolveSurvivor(input)
	if err != nil {
		return "", err
	}
	if contains(t.Bans, name) {
		return "", fmt.Errorf("%w: %s is already banned", shared.ErrInvalidSelection, name)
	}

	t.Bans = append(t.Bans, name)
	if len(t.Bans) >= TournamentMaxBans {
		t.Phase = PhasePick
	}
	return name, nil
}

// SkipBans forfeits the defending host's remaining bans and opens the pick phase
func (t *Tournament) SkipBans(userID string) error {
	if t.Phase != PhaseBan {
		return fmt.Errorf("%w: the round is not in the ban phase, it is in the %s phase", shared.ErrInvalidAction, t.Phase)
	}
	if err := t.defendingHost(userID); err != nil {
		return err
	}
	t.Phase = PhasePick
	return nil
}

// PickSurvivor records one defending player's survivor. The defending host does
// not pick; the other four defenders fill their own slots in any order and the
// phase closes when all four have picked
// Postconditions: Returns the canonical picked name, or an error and unchanged state
func (t *Tournament) PickSurvivor(userID string, input string) (string, error) {
	if t.Phase != PhasePick {
		return "", fmt.Errorf("%w: the round is not in the pick phase, it is in the %s phase", shared.ErrInvalidAction, t.Phase)
	}
	side, err := t.side(userID)
	if err != nil {
		return "", err
	}
	if side != t.Defender() {
		return "", fmt.Errorf("%w: only the defending side picks survivors", shared.ErrNotAuthorized)
	}
	idx := t.playerIndex(side, userID)
	if idx == 0 {
		return "", fmt.Errorf("%w: the defending host does not pick, your four teammates do", shared.ErrNotAuthorized)
	}
	if prev, done := t.Picks[idx]; done {
		return "", fmt.Errorf("%w: you already picked %s this round", shared.ErrInvalidAction, prev)
	}

	name, err := roster.ResolveSurvivor(input)
	if err != nil {
		return "", err
	}
	if contains(t.Bans, name) {
		return "", fmt.Errorf("%w: %s is banned this round", shared.ErrInvalidSelection, name)
	}
	for _, picked := range t.Picks {
		if picked == name {
			return "", fmt.Errorf("%w: %s is already picked by a teammate", shared.ErrInvalidSelection, name)
		}
	}

	t.Picks[idx] = name
	if len(t.Picks) >= len(t.Players[side])-1 {
		t.Phase = PhaseResults
	}
	return name, nil
}

// ReportScore records one host's 0-7 score claim for the round. When both hosts
// have claimed, the pair must sum to exactly 7 or both claims are discarded.
// The higher claim wins the round and a history record is appended
// Postconditions: Returns the recorded round's result once both claims
// reconcile, nil while waiting on the other host, or an error
func (t *Tournament) ReportScore(userID string, score int) (*RoundResult, error) {
	if t.Phase != PhaseResults {
		return nil, fmt.Errorf("%w: finish the pick phase before reporting scores", shared.ErrInvalidAction)
	}
	side, err := t.HostSide(userID)
	if err != nil {
		return nil, err
	}
	if score < 0 || score > TournamentScoreTotal {
		return nil, fmt.Errorf("%w: score must be between 0 and %d", shared.ErrInvalidSelection, TournamentScoreTotal)
	}
	if t.claims[side].set {
		return nil, fmt.Errorf("%w: your side already reported this round", shared.ErrInvalidAction)
	}

	t.claims[side] = scoreClaim{value: score, set: true}
	other := side.Other()
	if !t.claims[other].set {
		return nil, nil
	}

	total := t.claims[SideA].value + t.claims[SideB].value
	if total != TournamentScoreTotal {
		t.claims = [2]scoreClaim{}
		return nil, fmt.Errorf("%w: scores must add up to %d, got %d, report this round again", shared.ErrConflictingClaim, TournamentScoreTotal, total)
	}

	// Scores sum to an odd total so a round can never tie
	winner := SideA
	if t.claims[SideB].value > t.claims[SideA].value {
		winner = SideB
	}

	killer, _ := t.KillerPlayer()
	record := RoundRecord{
		Round:           t.Round,
		Map:             t.Map,
		Attacker:        t.Attacker(),
		KillerPlayer:    killer.Username,
		KillerCharacter: t.KillerCharacter,
		Bans:            append([]string(nil), t.Bans...),
		Picks:           map[int]string{},
		Score:           [2]int{t.claims[SideA].value, t.claims[SideB].value},
		Winner:          winner,
	}
	for i, p := range t.Picks {
		record.Picks[i] = p
	}
	t.History = append(t.History, record)

	t.RoundWins[winner]++
	t.RoundsCompleted++
	t.claims = [2]scoreClaim{}

	result := &RoundResult{Winner: winner}
	if t.RoundsCompleted >= TournamentRounds ||
		t.RoundWins[SideA] >= TournamentWinsNeeded ||
		t.RoundWins[SideB] >= TournamentWinsNeeded {
		t.Phase = PhaseComplete
		result.MatchComplete = true
		switch {
		case t.RoundWins[SideA] > t.RoundWins[SideB]:
			result.MatchWinner = SideA
		case t.RoundWins[SideB] > t.RoundWins[SideA]:
			result.MatchWinner = SideB
		default:
			result.Draw = true
		}
		return result, nil
	}

	t.Round++
	t.resetRound()
	return result, nil
}

// resetRound clears per-round negotiation state and reopens map selection
func (t *Tournament) resetRound() {
	t.Map = ""
	t.KillerIndex = -1
	t.KillerCharacter = ""
	t.Bans = nil
	t.Picks = map[int]string{}
	t.Phase = PhaseMapSelect
}
