/* party.go
 * The party registry: create/rename/invite/accept/decline/leave/disband/kick.
 * Parties are keyed by host and every member belongs to at most one party.
 * Host is always member index 0 and can only leave by disbanding
 * Authors: Zachary Bower
 */

package party

import (
	"fmt"
	"time"

	"forsaken-bot/api/shared"
)

const (
	// MaxSize is the hard member cap; 5v5 tournaments need full parties
	MaxSize = 5

	// MaxNameLength bounds custom party names
	MaxNameLength = 50
)

type Party struct {
	Host    shared.User
	Members []shared.User
	Name    string

	// Invites maps a pending target's user id to when they were invited
	Invites map[string]time.Time
}

func (p *Party) Size() int {
	return len(p.Members)
}

func (p *Party) IsHost(userID string) bool {
	return p.Host.UserID == userID
}

func (p *Party) IsMember(userID string) bool {
	for _, m := range p.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// Registry tracks every live party. It is not safe for concurrent use; the
// coordinating API serializes access
type Registry struct {
	parties map[string]*Party // host id -> party
	byUser  map[string]string // member id -> host id

	ghostCounter int
}

func NewRegistry() *Registry {
	return &Registry{
		parties: map[string]*Party{},
		byUser:  map[string]string{},
	}
}

// Get returns the party the given user belongs to
func (r *Registry) Get(userID string) (*Party, bool) {
	hostID, ok := r.byUser[userID]
	if !ok {
		return nil, false
	}
	p, ok := r.parties[hostID]
	return p, ok
}

// Create starts a new party hosted by the given user
// Preconditions: Receives the host's identity
// Postconditions: Returns the new party, or an error if the user is already in one
func (r *Registry) Create(host shared.User) (*Party, error) {
	if _, ok := r.byUser[host.UserID]; ok {
		return nil, fmt.Errorf("%w: you are already in a party", shared.ErrInvalidAction)
	}
	p := &Party{
		Host:    host,
		Members: []shared.User{host},
		Name:    fmt.Sprintf("%s's Party", host.Username),
		Invites: map[string]time.Time{},
	}
	r.parties[host.UserID] = p
	r.byUser[host.UserID] = host.UserID
	return p, nil
}

// Rename sets a custom party name. Any member can rename
func (r *Registry) Rename(userID string, name string) (*Party, error) {
	p, ok := r.Get(userID)
	if !ok {
		return nil, fmt.Errorf("%w: you are not in a party", shared.ErrInvalidAction)
	}
	if len(name) > MaxNameLength {
		return nil, fmt.Errorf("%w: party name too long (max %d characters)", shared.ErrInvalidSelection, MaxNameLength)
	}
	p.Name = name
	return p, nil
}

// Invite records a pending invite from the host to the target
// Postconditions: Returns an error if the actor does not host a party, the
// party is full, or the target is already in a party or already invited
func (r *Registry) Invite(hostID string, target shared.User) error {
	p, err := r.hostParty(hostID)
	if err != nil {
		return err
	}
	if p.Size() >= MaxSize {
		return fmt.Errorf("%w: party is full (max %d members)", shared.ErrCapacityExceeded, MaxSize)
	}
	if _, ok := r.byUser[target.UserID]; ok {
		return fmt.Errorf("%w: %s is already in a party", shared.ErrInvalidAction, target.Username)
	}
	if _, ok := p.Invites[target.UserID]; ok {
		return fmt.Errorf("%w: %s already has a pending invite", shared.ErrInvalidAction, target.Username)
	}
	p.Invites[target.UserID] = time.Now()
	return nil
}

// Accept consumes a pending invite and joins the user to the host's party.
// Capacity is rechecked at accept time; a full party still consumes the invite
func (r *Registry) Accept(user shared.User, hostID string) (*Party, error) {
	if _, ok := r.byUser[user.UserID]; ok {
		return nil, fmt.Errorf("%w: you are already in a party", shared.ErrInvalidAction)
	}
	p, ok := r.parties[hostID]
	if !ok {
		return nil, fmt.Errorf("%w: that party no longer exists", shared.ErrInvalidAction)
	}
	if _, ok := p.Invites[user.UserID]; !ok {
		return nil, fmt.Errorf("%w: you have no pending invite from %s", shared.ErrInvalidAction, p.Host.Username)
	}
	delete(p.Invites, user.UserID)
	if p.Size() >= MaxSize {
		return nil, fmt.Errorf("%w: party is full (max %d members)", shared.ErrCapacityExceeded, MaxSize)
	}
	p.Members = append(p.Members, user)
	r.byUser[user.UserID] = hostID
	return p, nil
}

// Decline consumes a pending invite without joining
func (r *Registry) Decline(userID string, hostID string) error {
	p, ok := r.parties[hostID]
	if !ok {
		return fmt.Errorf("%w: that party no longer exists", shared.ErrInvalidAction)
	}
	if _, ok := p.Invites[userID]; !ok {
		return fmt.Errorf("%w: you have no pending invite from %s", shared.ErrInvalidAction, p.Host.Username)
	}
	delete(p.Invites, userID)
	return nil
}

// Leave removes the user from their party. A leaving host disbands the whole
// party and evicts every member
// Postconditions: Returns the affected party and whether it was disbanded
func (r *Registry) Leave(userID string) (*Party, bool, error) {
	p, ok := r.Get(userID)
	if !ok {
		return nil, false, fmt.Errorf("%w: you are not in a party", shared.ErrInvalidAction)
	}
	if p.IsHost(userID) {
		r.disband(p)
		return p, true, nil
	}
	r.removeMember(p, userID)
	return p, false, nil
}

// Disband dissolves the host's party and evicts every member
func (r *Registry) Disband(hostID string) (*Party, error) {
	p, err := r.hostParty(hostID)
	if err != nil {
		return nil, err
	}
	r.disband(p)
	return p, nil
}

// Kick removes a non-host member from the host's party
// Postconditions: Returns the removed member, or an error if the actor is not
// the host, targets themselves, or targets a non-member
func (r *Registry) Kick(hostID string, targetID string) (shared.User, error) {
	p, err := r.hostParty(hostID)
	if err != nil {
		return shared.User{}, err
	}
	if targetID == hostID {
		return shared.User{}, fmt.Errorf("%w: you cannot kick yourself, disband instead", shared.ErrInvalidAction)
	}
	for _, m := range p.Members {
		if m.UserID == targetID {
			r.removeMember(p, targetID)
			return m, nil
		}
	}
	return shared.User{}, fmt.Errorf("%w: that user is not in your party", shared.ErrInvalidSelection)
}

// hostParty resolves the party the actor hosts, distinguishing "not in a
// party" from "not the host"
func (r *Registry) hostParty(hostID string) (*Party, error) {
	p, ok := r.Get(hostID)
	if !ok {
		return nil, fmt.Errorf("%w: you are not in a party", shared.ErrInvalidAction)
	}
	if !p.IsHost(hostID) {
		return nil, fmt.Errorf("%w: only the party host can do that", shared.ErrNotAuthorized)
	}
	return p, nil
}

func (r *Registry) disband(p *Party) {
	for _, m := range p.Members {
		delete(r.byUser, m.UserID)
	}
	delete(r.parties, p.Host.UserID)
}

func (r *Registry) removeMember(p *Party, userID string) {
	for i, m := range p.Members {
		if m.UserID == userID {
			p.Members = append(p.Members[:i], p.Members[i+1:]...)
			break
		}
	}
	delete(r.byUser, userID)
}
