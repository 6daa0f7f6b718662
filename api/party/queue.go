/* queue.go
 * Matchmaking state for team modes: per-mode waiting pools (first other waiting
 * party wins, no skill pairing) and the 5v5 challenge ledger. Rosters are
 * snapshotted at queue time so later party edits do not leak into a pairing
 * Authors: Zachary Bower
 */

package party

import (
	"fmt"

	"forsaken-bot/api/shared"
)

type queueEntry struct {
	hostID string
	roster []shared.User
}

// Queue holds one waiting slot per mode per host. Not safe for concurrent use;
// the coordinating API serializes access
type Queue struct {
	waiting map[shared.Mode][]queueEntry
}

func NewQueue() *Queue {
	return &Queue{waiting: map[shared.Mode][]queueEntry{}}
}

// Join queues a roster for the mode, pairing immediately when another party is
// already waiting. The earliest waiting party is taken first
// Postconditions: Returns the opponent roster and true when a pairing happened;
// otherwise the roster is left waiting
func (q *Queue) Join(mode shared.Mode, hostID string, roster []shared.User) ([]shared.User, bool, error) {
	if mode.TeamSize() == 0 {
		return nil, false, fmt.Errorf("%w: %s is not a queued team mode", shared.ErrInvalidAction, mode)
	}
	if len(roster) != mode.TeamSize() {
		return nil, false, fmt.Errorf("%w: %s needs exactly %d members, your party has %d", shared.ErrInvalidAction, mode, mode.TeamSize(), len(roster))
	}
	for _, e := range q.waiting[mode] {
		if e.hostID == hostID {
			return nil, false, fmt.Errorf("%w: you are already in the %s queue", shared.ErrInvalidAction, mode)
		}
	}

	if entries := q.waiting[mode]; len(entries) > 0 {
		opponent := entries[0]
		q.waiting[mode] = entries[1:]
		return opponent.roster, true, nil
	}

	snapshot := append([]shared.User(nil), roster...)
	q.waiting[mode] = append(q.waiting[mode], queueEntry{hostID: hostID, roster: snapshot})
	return nil, false, nil
}

// Leave removes the host's waiting entry from whichever mode holds it
// Postconditions: Returns the mode left and whether an entry was removed
func (q *Queue) Leave(hostID string) (shared.Mode, bool) {
	for mode, entries := range q.waiting {
		for i, e := range entries {
			if e.hostID == hostID {
				q.waiting[mode] = append(entries[:i], entries[i+1:]...)
				return mode, true
			}
		}
	}
	return "", false
}

// Queued reports the mode whose waiting roster contains the user, if any.
// Membership counts, not just hosting, so every queued player is accounted for
// Postconditions: Returns the mode and true when the user is in a waiting roster
func (q *Queue) Queued(userID string) (shared.Mode, bool) {
	for mode, entries := range q.waiting {
		for _, e := range entries {
			for _, u := range e.roster {
				if u.UserID == userID {
					return mode, true
				}
			}
		}
	}
	return "", false
}

// Waiting reports whether the host has a queue entry in the given mode
func (q *Queue) Waiting(mode shared.Mode, hostID string) bool {
	for _, e := range q.waiting[mode] {
		if e.hostID == hostID {
			return true
		}
	}
	return false
}

// Challenges is the pending 5v5 challenge ledger: challenger host -> challenged
// host. A new challenge from the same challenger replaces the old one
type Challenges struct {
	pending map[string]string
}

func NewChallenges() *Challenges {
	return &Challenges{pending: map[string]string{}}
}

// Issue records a challenge, replacing any earlier one by the same challenger
func (c *Challenges) Issue(challengerID string, challengedID string) error {
	if challengerID == challengedID {
		return fmt.Errorf("%w: you cannot challenge yourself", shared.ErrInvalidAction)
	}
	c.pending[challengerID] = challengedID
	return nil
}

// Accept consumes the challenge if it exists and targets the accepting host
func (c *Challenges) Accept(challengedID string, challengerID string) error {
	target, ok := c.pending[challengerID]
	if !ok {
		return fmt.Errorf("%w: no pending challenge from that host", shared.ErrInvalidAction)
	}
	if target != challengedID {
		return fmt.Errorf("%w: that challenge was not sent to you", shared.ErrInvalidAction)
	}
	delete(c.pending, challengerID)
	return nil
}

// Drop discards a pending challenge, used when a party dissolves mid-challenge
func (c *Challenges) Drop(challengerID string) {
	delete(c.pending, challengerID)
}
