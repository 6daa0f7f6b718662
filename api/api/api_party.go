/* api_party.go
 * Coordinating API methods for the party lifecycle: create, rename, invites,
 * leave, disband, kick, member listing and the admin-only ghost members. Roster
 * changes drop any stale queue entry the party held
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"
	"strings"

	"forsaken-bot/api/party"
	"forsaken-bot/api/shared"
)

// CreateParty creates a new party hosted by the user
func (a *API) CreateParty(user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.parties.Create(user)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s created. Invite up to %d more players with $partyinvite", p.Name, party.MaxSize-1), nil
}

// RenameParty renames the acting member's party
func (a *API) RenameParty(user shared.User, name string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.parties.Rename(user.UserID, name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("The party is now called %s", p.Name), nil
}

// Invite invites the target to the host's party
func (a *API) Invite(host shared.User, target shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.parties.Invite(host.UserID, target); err != nil {
		return "", err
	}
	return fmt.Sprintf("Invited %s to the party. They can accept with $partyaccept or turn it down with $partydecline", target.Username), nil
}

// AcceptInvite joins the user to the party that invited them. The host argument
// may be any member of that party; it resolves to the party's host
func (a *API) AcceptInvite(user shared.User, host shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	hostID := host.UserID
	if p, ok := a.parties.Get(host.UserID); ok {
		hostID = p.Host.UserID
	}
	p, err := a.parties.Accept(user, hostID)
	if err != nil {
		return "", err
	}
	reply := fmt.Sprintf("%s joined %s (%d/%d)", user.Username, p.Name, p.Size(), party.MaxSize)
	return reply + a.dropQueuedEntry(p.Host.UserID), nil
}

// DeclineInvite consumes the user's pending invite without joining
func (a *API) DeclineInvite(user shared.User, host shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	hostID := host.UserID
	if p, ok := a.parties.Get(host.UserID); ok {
		hostID = p.Host.UserID
	}
	if err := a.parties.Decline(user.UserID, hostID); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s declined the invite", user.Username), nil
}

// LeaveParty removes the user from their party. A host leaving disbands it and
// clears the party's queue entry and pending challenge
func (a *API) LeaveParty(user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, disbanded, err := a.parties.Leave(user.UserID)
	if err != nil {
		return "", err
	}
	if disbanded {
		a.queue.Leave(p.Host.UserID)
		a.challenges.Drop(p.Host.UserID)
		return fmt.Sprintf("%s disbanded because the host left", p.Name), nil
	}
	reply := fmt.Sprintf("%s left %s", user.Username, p.Name)
	return reply + a.dropQueuedEntry(p.Host.UserID), nil
}

// DisbandParty dissolves the host's party and evicts every member
func (a *API) DisbandParty(user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.parties.Disband(user.UserID)
	if err != nil {
		return "", err
	}
	a.queue.Leave(p.Host.UserID)
	a.challenges.Drop(p.Host.UserID)
	return fmt.Sprintf("%s disbanded", p.Name), nil
}

// Kick removes the target from the host's party
func (a *API) Kick(host shared.User, target shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	kicked, err := a.parties.Kick(host.UserID, target.UserID)
	if err != nil {
		return "", err
	}
	reply := fmt.Sprintf("%s was kicked from the party", kicked.Username)
	return reply + a.dropQueuedEntry(host.UserID), nil
}

// PartyMembers renders the user's party roster, host first
func (a *API) PartyMembers(user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.parties.Get(user.UserID)
	if !ok {
		return "", fmt.Errorf("%w: you are not in a party, create one with $party", shared.ErrInvalidAction)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%d/%d):", p.Name, p.Size(), party.MaxSize))
	for i, m := range p.Members {
		tag := ""
		if i == 0 {
			tag = " (host)"
		} else if party.IsGhost(m) {
			tag = " (ghost)"
		}
		sb.WriteString(fmt.Sprintf("\n%d. %s%s", i+1, m.Username, tag))
	}
	return sb.String(), nil
}

// GhostAdd adds a synthetic member to the acting admin's party
func (a *API) GhostAdd(user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isAdmin(user.UserID) {
		return "", fmt.Errorf("%w: ghost members are restricted to admins", shared.ErrNotAuthorized)
	}
	g, err := a.parties.AddGhost(user.UserID)
	if err != nil {
		return "", err
	}
	reply := fmt.Sprintf("%s joined the party", g.Username)
	return reply + a.dropQueuedEntry(user.UserID), nil
}

// GhostRemove removes the numbered ghost from the acting admin's party
func (a *API) GhostRemove(user shared.User, number int) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isAdmin(user.UserID) {
		return "", fmt.Errorf("%w: ghost members are restricted to admins", shared.ErrNotAuthorized)
	}
	g, err := a.parties.RemoveGhost(user.UserID, number)
	if err != nil {
		return "", err
	}
	reply := fmt.Sprintf("%s was removed from the party", g.Username)
	return reply + a.dropQueuedEntry(user.UserID), nil
}

// GhostClear removes every ghost from the acting admin's party
func (a *API) GhostClear(user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isAdmin(user.UserID) {
		return "", fmt.Errorf("%w: ghost members are restricted to admins", shared.ErrNotAuthorized)
	}
	n, err := a.parties.ClearGhosts(user.UserID)
	if err != nil {
		return "", err
	}
	reply := fmt.Sprintf("Removed %d ghosts from the party", n)
	return reply + a.dropQueuedEntry(user.UserID), nil
}
