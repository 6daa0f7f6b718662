/* models.go
 * Contains the rendering helpers shared by the api reply builders
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"
	"strings"

	"forsaken-bot/api/match"
	"forsaken-bot/api/roster"
	"forsaken-bot/api/shared"

	"github.com/elliotchance/pie/v2"
)

// usernames projects a roster onto its display names
func usernames(players []shared.User) []string {
	return pie.Map(players, func(u shared.User) string { return u.Username })
}

// joinNames renders a roster as a comma separated list
func joinNames(players []shared.User) string {
	return strings.Join(usernames(players), ", ")
}

// teamLabel names a side by its host for replies
func teamLabel(m *match.TeamMatch, side match.Side) string {
	return fmt.Sprintf("%s's team", m.Players[side][0].Username)
}

// duelLineup renders the per-round pairings once a duel's picks are locked
func duelLineup(d *match.Duel) string {
	var sb strings.Builder
	for i := 0; i < match.DuelRounds; i++ {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("Round %d: %s as %s vs %s as %s", i+1,
			d.Players[match.SideA].Username, roster.FormatCharacter(d.Picks[match.SideA][i]),
			d.Players[match.SideB].Username, roster.FormatCharacter(d.Picks[match.SideB][i])))
	}
	return sb.String()
}

// roundOpening renders the pick prompt that opens a team battle round
func roundOpening(m *match.TeamMatch) string {
	side, killer := m.KillerDuty()
	if m.Tiebreaker {
		return fmt.Sprintf("Tiebreaker: %s (%s) is the killer again. Everyone picks with $teampick <character>",
			killer.Username, teamLabel(m, side))
	}
	return fmt.Sprintf("Round %d: %s (%s) is the killer. Everyone picks with $teampick <character>",
		m.Round, killer.Username, teamLabel(m, side))
}

// roundProlog renders the map-select prompt that opens a tournament round
func roundProlog(t *match.Tournament) string {
	attacker := t.Attacker()
	return fmt.Sprintf("Round %d of %d: %s attacks. %s picks the map with $map <name>",
		t.Round, match.TournamentRounds, t.Names[attacker], t.Players[attacker][0].Username)
}

// pickPrompt renders the survivor pick prompt naming the four defenders
func pickPrompt(t *match.Tournament) string {
	defenders := t.Players[t.Defender()][1:]
	return fmt.Sprintf("Picks are open: %s each pick a survivor with $tournamentpick <name>", joinNames(defenders))
}
