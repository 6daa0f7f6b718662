/* models.go
 * Contains the types shared by the duel, team and tournament state machines:
 * sides, phases, result claims and round outcomes
 * Authors: Zachary Bower
 */

package match

// Side indexes the two competing parties. Which party is side A is fixed when
// the match starts: the first 1v1 queuer, the party whose queue completed the
// pairing, or the tournament challenger.
type Side int

const (
	SideA Side = 0
	SideB Side = 1
)

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Other returns the opposing side
func (s Side) Other() Side {
	return 1 - s
}

// Phase is one stage of a round's negotiation. Matches only move forward
// through phases except for explicit cancel/skip actions and the per-round loop
type Phase string

const (
	PhaseMapSelect    Phase = "map_select"
	PhaseKillerSelect Phase = "killer_select"
	PhaseBan          Phase = "ban"
	PhasePick         Phase = "pick"
	PhaseResults      Phase = "results"
	PhaseComplete     Phase = "complete"
)

// resultClaim is one side's pending win/loss report for the current round
type resultClaim int

const (
	claimNone resultClaim = iota
	claimWin
	claimLoss
)

// scoreClaim is one side's pending 0-7 score report for a tournament round
type scoreClaim struct {
	value int
	set   bool
}

// RoundResult describes a recorded round: who took it and whether it ended the
// match. Returned by the report methods once both sides' claims reconcile
type RoundResult struct {
	Winner        Side
	MatchComplete bool
	MatchWinner   Side
	Draw          bool
	Tiebreaker    bool
}

// RoundRecord is one tournament round's history entry
type RoundRecord struct {
	Round           int
	Map             string
	Attacker        Side
	KillerPlayer    string
	KillerCharacter string
	Bans            []string
	Picks           map[int]string
	Score           [2]int
	Winner          Side
}
