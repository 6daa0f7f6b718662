/* ghost.go
 * Ghost members are synthetic party fillers for testing team modes without
 * nine other humans. They get Ghost_N usernames and ids from a reserved high
 * range so they never collide with real Discord snowflakes. Who may use them
 * is decided by the coordinating API's admin allowlist
 * Authors: Zachary Bower
 */

package party

import (
	"fmt"
	"strconv"
	"strings"

	"forsaken-bot/api/shared"
)

// GhostIDBase is the first reserved ghost id; Ghost_N gets GhostIDBase + N
const GhostIDBase int64 = 900000000000000000

const ghostPrefix = "Ghost_"

// IsGhost reports whether a user is a synthetic party filler
func IsGhost(u shared.User) bool {
	return strings.HasPrefix(u.Username, ghostPrefix)
}

// AddGhost creates the next numbered ghost and adds it to the host's party.
// The counter never resets, so ghost names stay unique for the process lifetime
// Postconditions: Returns the new ghost, or an error if the actor does not
// host a party or the party is full
func (r *Registry) AddGhost(hostID string) (shared.User, error) {
	p, err := r.hostParty(hostID)
	if err != nil {
		return shared.User{}, err
	}
	if p.Size() >= MaxSize {
		return shared.User{}, fmt.Errorf("%w: party is full (max %d members)", shared.ErrCapacityExceeded, MaxSize)
	}

	r.ghostCounter++
	ghost := shared.User{
		UserID:   strconv.FormatInt(GhostIDBase+int64(r.ghostCounter), 10),
		Username: fmt.Sprintf("%s%d", ghostPrefix, r.ghostCounter),
	}
	p.Members = append(p.Members, ghost)
	r.byUser[ghost.UserID] = hostID
	return ghost, nil
}

// RemoveGhost removes Ghost_<number> from the host's party
func (r *Registry) RemoveGhost(hostID string, number int) (shared.User, error) {
	p, err := r.hostParty(hostID)
	if err != nil {
		return shared.User{}, err
	}
	name := fmt.Sprintf("%s%d", ghostPrefix, number)
	for _, m := range p.Members {
		if m.Username == name {
			r.removeMember(p, m.UserID)
			return m, nil
		}
	}
	return shared.User{}, fmt.Errorf("%w: %s is not in your party", shared.ErrInvalidSelection, name)
}

// ClearGhosts removes every ghost from the host's party
// Postconditions: Returns how many ghosts were removed; zero ghosts is an error
func (r *Registry) ClearGhosts(hostID string) (int, error) {
	p, err := r.hostParty(hostID)
	if err != nil {
		return 0, err
	}
	var ghosts []shared.User
	for _, m := range p.Members {
		if IsGhost(m) {
			ghosts = append(ghosts, m)
		}
	}
	if len(ghosts) == 0 {
		return 0, fmt.Errorf("%w: no ghost players in your party", shared.ErrInvalidAction)
	}
	for _, g := range ghosts {
		r.removeMember(p, g.UserID)
	}
	return len(ghosts), nil
}
