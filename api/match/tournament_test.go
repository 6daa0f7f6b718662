/* tournament_test.go
 * Contains unit tests for the 5v5 tournament state machine
 * Authors: Zachary Bower
 */

package match

import (
	"testing"

	"forsaken-bot/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTournament() *Tournament {
	return NewTournament(makeTeam(100, 5), makeTeam(200, 5), "Alpha Squad", "Bravo Squad")
}

// playTournamentRound plays one full round with skipped bans and the given winner
func playTournamentRound(t *testing.T, tr *Tournament, winner Side) *RoundResult {
	t.Helper()
	attacker := tr.Attacker()
	defender := tr.Defender()
	attackHost := tr.Players[attacker][0]
	defendHost := tr.Players[defender][0]

	_, err := tr.SelectMap(attackHost.UserID, "Glasshouses")
	require.NoError(t, err)
	_, _, err = tr.SelectKiller(attackHost.UserID, 1, "Noli")
	require.NoError(t, err)
	require.NoError(t, tr.SkipBans(defendHost.UserID))

	picks := []string{"Noob", "Chance", "Two Time", "Elliot"}
	for i := 1; i <= 4; i++ {
		_, err := tr.PickSurvivor(tr.Players[defender][i].UserID, picks[i-1])
		require.NoError(t, err)
	}
	require.Equal(t, PhaseResults, tr.Phase)

	res, err := tr.ReportScore(tr.Players[winner][0].UserID, 4)
	require.NoError(t, err)
	require.Nil(t, res)
	res, err = tr.ReportScore(tr.Players[winner.Other()][0].UserID, 3)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, winner, res.Winner)
	return res
}

// TestNewTournament_InitialState tests round 1 setup
func TestNewTournament_InitialState(t *testing.T) {
	tr := newTestTournament()

	assert.Equal(t, PhaseMapSelect, tr.Phase)
	assert.Equal(t, 1, tr.Round)
	assert.Equal(t, SideA, tr.Attacker())
	assert.Equal(t, SideB, tr.Defender())
	assert.Equal(t, "Alpha Squad", tr.Names[SideA])

	_, ok := tr.KillerPlayer()
	assert.False(t, ok)
}

// TestTournamentSelectMap_AttackingHostOnly tests map selection authority and resolution
func TestTournamentSelectMap_AttackingHostOnly(t *testing.T) {
	tr := newTestTournament()

	_, err := tr.SelectMap("200", "Glasshouses")
	assert.ErrorIs(t, err, shared.ErrNotAuthorized)

	_, err = tr.SelectMap("101", "Glasshouses")
	assert.ErrorIs(t, err, shared.ErrNotAuthorized)

	_, err = tr.SelectMap("100", "Atlantis")
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)
	assert.Equal(t, PhaseMapSelect, tr.Phase)

	name, err := tr.SelectMap("100", "pirate bay")
	require.NoError(t, err)
	assert.Equal(t, "Pirate bay", name)
	assert.Equal(t, PhaseKillerSelect, tr.Phase)
}

// TestTournamentSelectKiller_Validation tests player number and character validation
func TestTournamentSelectKiller_Validation(t *testing.T) {
	tr := newTestTournament()
	_, err := tr.SelectMap("100", "Glasshouses")
	require.NoError(t, err)

	_, _, err = tr.SelectKiller("100", 0, "Slasher")
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)
	_, _, err = tr.SelectKiller("100", 6, "Slasher")
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)
	_, _, err = tr.SelectKiller("100", 2, "Noob")
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)
	_, _, err = tr.SelectKiller("200", 2, "Slasher")
	assert.ErrorIs(t, err, shared.ErrNotAuthorized)

	player, name, err := tr.SelectKiller("100", 2, "slasher")
	require.NoError(t, err)
	assert.Equal(t, "101", player.UserID)
	assert.Equal(t, "Slasher", name)
	assert.Equal(t, PhaseBan, tr.Phase)

	killer, ok := tr.KillerPlayer()
	require.True(t, ok)
	assert.Equal(t, "101", killer.UserID)
}

// TestTournamentBan_DefendingHostQuota tests ban authority, pool and auto-advance
func TestTournamentBan_DefendingHostQuota(t *testing.T) {
	tr := newTestTournament()
	_, err := tr.SelectMap("100", "Glasshouses")
	require.NoError(t, err)
	_, _, err = tr.SelectKiller("100", 1, "Noli")
	require.NoError(t, err)

	// Attacking host cannot ban
	_, err = tr.BanSurvivor("100", "Noob")
	assert.ErrorIs(t, err, shared.ErrNotAuthorized)

	// Killers are not in the tournament ban pool
	_, err = tr.BanSurvivor("200", "Slasher")
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)

	_, err = tr.BanSurvivor("200", "Noob")
	require.NoError(t, err)
	assert.Equal(t, PhaseBan, tr.Phase)

	_, err = tr.BanSurvivor("200", "noob")
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)

	_, err = tr.BanSurvivor("200", "Chance")
	require.NoError(t, err)
	assert.Equal(t, PhasePick, tr.Phase)
	assert.Equal(t, []string{"Noob", "Chance"}, tr.Bans)
}

// TestTournamentSkipBans_ClosesBanPhaseEarly tests skipping after a single ban
func TestTournamentSkipBans_ClosesBanPhaseEarly(t *testing.T) {
	tr := newTestTournament()
	_, err := tr.SelectMap("100", "Glasshouses")
	require.NoError(t, err)
	_, _, err = tr.SelectKiller("100", 1, "Noli")
	require.NoError(t, err)

	assert.ErrorIs(t, tr.SkipBans("100"), shared.ErrNotAuthorized)

	_, err = tr.BanSurvivor("200", "Taph")
	require.NoError(t, err)
	require.NoError(t, tr.SkipBans("200"))

	assert.Equal(t, PhasePick, tr.Phase)
	assert.Equal(t, []string{"Taph"}, tr.Bans)
}

// TestTournamentPick_DefenderRules tests who may pick and what they may pick
func TestTournamentPick_DefenderRules(t *testing.T) {
	tr := newTestTournament()
	_, err := tr.SelectMap("100", "Glasshouses")
	require.NoError(t, err)
	_, _, err = tr.SelectKiller("100", 1, "Noli")
	require.NoError(t, err)
	_, err = tr.BanSurvivor("200", "Noob")
	require.NoError(t, err)
	require.NoError(t, tr.SkipBans("200"))

	// The defending host and the attacking side do not pick
	_, err = tr.PickSurvivor("200", "Chance")
	assert.ErrorIs(t, err, shared.ErrNotAuthorized)
	_, err = tr.PickSurvivor("101", "Chance")
	assert.ErrorIs(t, err, shared.ErrNotAuthorized)

	// Banned survivors are out
	_, err = tr.PickSurvivor("201", "Noob")
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)

	_, err = tr.PickSurvivor("201", "Chance")
	require.NoError(t, err)

	// Duplicates and double picks are rejected
	_, err = tr.PickSurvivor("202", "chance")
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)
	_, err = tr.PickSurvivor("201", "Taph")
	assert.ErrorIs(t, err, shared.ErrInvalidAction)

	_, err = tr.PickSurvivor("202", "Two Time")
	require.NoError(t, err)
	_, err = tr.PickSurvivor("203", "Elliot")
	require.NoError(t, err)
	assert.Equal(t, PhasePick, tr.Phase)
	_, err = tr.PickSurvivor("204", "Veeronica")
	require.NoError(t, err)
	assert.Equal(t, PhaseResults, tr.Phase)
}

// TestTournamentReportScore_SumValidation tests the 0-7 range and the sum-to-7 rule
func TestTournamentReportScore_SumValidation(t *testing.T) {
	tr := newTestTournament()
	attacker := tr.Attacker()
	defender := tr.Defender()
	_, err := tr.SelectMap("100", "The Tempest")
	require.NoError(t, err)
	_, _, err = tr.SelectKiller("100", 3, "C00lkidd")
	require.NoError(t, err)
	require.NoError(t, tr.SkipBans("200"))
	for i, pick := range []string{"Noob", "Chance", "Two Time", "Elliot"} {
		_, err := tr.PickSurvivor(tr.Players[defender][i+1].UserID, pick)
		require.NoError(t, err)
	}

	_, err = tr.ReportScore("103", 4)
	assert.ErrorIs(t, err, shared.ErrNotAuthorized)
	_, err = tr.ReportScore("100", 8)
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)
	_, err = tr.ReportScore("100", -1)
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)

	// Claims that do not sum to 7 are discarded
	res, err := tr.ReportScore("100", 4)
	require.NoError(t, err)
	assert.Nil(t, res)
	_, err = tr.ReportScore("100", 4)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)
	_, err = tr.ReportScore("200", 4)
	assert.ErrorIs(t, err, shared.ErrConflictingClaim)

	// Both hosts report again after the reset
	_, err = tr.ReportScore("200", 3)
	require.NoError(t, err)
	res, err = tr.ReportScore("100", 4)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, SideA, res.Winner)
	assert.False(t, res.MatchComplete)

	// The round is recorded and the next one opens at map select with side B attacking
	require.Len(t, tr.History, 1)
	record := tr.History[0]
	assert.Equal(t, 1, record.Round)
	assert.Equal(t, "The Tempest", record.Map)
	assert.Equal(t, attacker, record.Attacker)
	assert.Equal(t, "C00lkidd", record.KillerCharacter)
	assert.Equal(t, [2]int{4, 3}, record.Score)
	assert.Equal(t, SideA, record.Winner)

	assert.Equal(t, 2, tr.Round)
	assert.Equal(t, PhaseMapSelect, tr.Phase)
	assert.Equal(t, SideB, tr.Attacker())
	assert.Empty(t, tr.Map)
	assert.Empty(t, tr.Bans)
	assert.Empty(t, tr.Picks)
	_, ok := tr.KillerPlayer()
	assert.False(t, ok)
}

// TestTournament_EarlyCompletionAtSixWins tests that six round wins end the tournament
func TestTournament_EarlyCompletionAtSixWins(t *testing.T) {
	tr := newTestTournament()

	var res *RoundResult
	for i := 0; i < 6; i++ {
		res = playTournamentRound(t, tr, SideA)
	}

	require.NotNil(t, res)
	assert.True(t, res.MatchComplete)
	assert.Equal(t, SideA, res.MatchWinner)
	assert.False(t, res.Draw)
	assert.Equal(t, PhaseComplete, tr.Phase)
	assert.Equal(t, [2]int{6, 0}, tr.RoundWins)
	assert.Len(t, tr.History, 6)
}

// TestTournament_DrawAfterTenRounds tests a 5-5 split finishing as a draw
func TestTournament_DrawAfterTenRounds(t *testing.T) {
	tr := newTestTournament()

	var res *RoundResult
	for i := 0; i < TournamentRounds; i++ {
		winner := SideA
		if i%2 == 1 {
			winner = SideB
		}
		res = playTournamentRound(t, tr, winner)
	}

	require.NotNil(t, res)
	assert.True(t, res.MatchComplete)
	assert.True(t, res.Draw)
	assert.Equal(t, [2]int{5, 5}, tr.RoundWins)
	assert.Equal(t, PhaseComplete, tr.Phase)
	assert.Len(t, tr.History, TournamentRounds)
}

// TestTournament_AttackerAlternatesByRound tests attack duty swapping every round
func TestTournament_AttackerAlternatesByRound(t *testing.T) {
	tr := newTestTournament()

	assert.Equal(t, SideA, tr.Attacker())
	playTournamentRound(t, tr, SideA)
	assert.Equal(t, SideB, tr.Attacker())
	playTournamentRound(t, tr, SideB)
	assert.Equal(t, SideA, tr.Attacker())
	assert.Equal(t, 3, tr.Round)
}
