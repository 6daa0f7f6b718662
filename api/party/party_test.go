/* party_test.go
 * Contains unit tests for the party registry
 * Authors: Zachary Bower
 */

package party

import (
	"strings"
	"testing"

	"forsaken-bot/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = shared.User{UserID: "100", Username: "alice"}
	bob   = shared.User{UserID: "200", Username: "bob"}
	carol = shared.User{UserID: "300", Username: "carol"}
	dave  = shared.User{UserID: "400", Username: "dave"}
	erin  = shared.User{UserID: "500", Username: "erin"}
	frank = shared.User{UserID: "600", Username: "frank"}
)

// partyOf creates a party for alice and joins the given members to it
func partyOf(t *testing.T, members ...shared.User) *Registry {
	t.Helper()
	r := NewRegistry()
	_, err := r.Create(alice)
	require.NoError(t, err)
	for _, m := range members {
		require.NoError(t, r.Invite(alice.UserID, m))
		_, err := r.Accept(m, alice.UserID)
		require.NoError(t, err)
	}
	return r
}

// TestCreate_DefaultName tests party creation and the generated display name
func TestCreate_DefaultName(t *testing.T) {
	r := NewRegistry()

	p, err := r.Create(alice)
	require.NoError(t, err)

	assert.Equal(t, "alice's Party", p.Name)
	assert.Equal(t, 1, p.Size())
	assert.Equal(t, alice, p.Members[0])

	got, ok := r.Get(alice.UserID)
	require.True(t, ok)
	assert.Same(t, p, got)
}

// TestCreate_RejectsSecondParty tests that users in a party cannot create another
func TestCreate_RejectsSecondParty(t *testing.T) {
	r := partyOf(t, bob)

	_, err := r.Create(alice)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)

	_, err = r.Create(bob)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)
}

// TestRename_AnyMemberWithinLimit tests renaming by a non-host member and the length cap
func TestRename_AnyMemberWithinLimit(t *testing.T) {
	r := partyOf(t, bob)

	p, err := r.Rename(bob.UserID, "The Night Shift")
	require.NoError(t, err)
	assert.Equal(t, "The Night Shift", p.Name)

	_, err = r.Rename(alice.UserID, strings.Repeat("x", MaxNameLength+1))
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)
	assert.Equal(t, "The Night Shift", p.Name)

	_, err = r.Rename(carol.UserID, "Outsiders")
	assert.ErrorIs(t, err, shared.ErrInvalidAction)
}

// TestInvite_HostOnly tests invite authority
func TestInvite_HostOnly(t *testing.T) {
	r := partyOf(t, bob)

	err := r.Invite(bob.UserID, carol)
	assert.ErrorIs(t, err, shared.ErrNotAuthorized)

	err = r.Invite(carol.UserID, dave)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)
}

// TestInvite_RejectsTakenAndDuplicateTargets tests target validation
func TestInvite_RejectsTakenAndDuplicateTargets(t *testing.T) {
	r := partyOf(t, bob)

	// bob is already in a party (this one)
	err := r.Invite(alice.UserID, bob)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)

	require.NoError(t, r.Invite(alice.UserID, carol))
	err = r.Invite(alice.UserID, carol)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)
}

// TestAccept_JoinsAndConsumesInvite tests the invite accept path
func TestAccept_JoinsAndConsumesInvite(t *testing.T) {
	r := partyOf(t)
	require.NoError(t, r.Invite(alice.UserID, bob))

	p, err := r.Accept(bob, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Size())
	assert.True(t, p.IsMember(bob.UserID))
	assert.Empty(t, p.Invites)

	// The invite is gone, so accepting again fails even after leaving
	_, _, err = r.Leave(bob.UserID)
	require.NoError(t, err)
	_, err = r.Accept(bob, alice.UserID)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)
}

// TestAccept_WithoutInviteOrParty tests accept error paths
func TestAccept_WithoutInviteOrParty(t *testing.T) {
	r := partyOf(t)

	_, err := r.Accept(bob, alice.UserID)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)

	_, err = r.Accept(bob, "999")
	assert.ErrorIs(t, err, shared.ErrInvalidAction)
}

// TestAccept_FullPartyConsumesInvite tests the capacity recheck at accept time
func TestAccept_FullPartyConsumesInvite(t *testing.T) {
	r := partyOf(t, bob, carol, dave)
	require.NoError(t, r.Invite(alice.UserID, erin))
	require.NoError(t, r.Invite(alice.UserID, frank))

	_, err := r.Accept(erin, alice.UserID)
	require.NoError(t, err) // party now at 5

	err = r.Invite(alice.UserID, shared.User{UserID: "700", Username: "grace"})
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)

	_, err = r.Accept(frank, alice.UserID)
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)

	// frank's invite was consumed by the failed accept
	_, err = r.Accept(frank, alice.UserID)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)
}

// TestDecline_ConsumesInvite tests declining an invite
func TestDecline_ConsumesInvite(t *testing.T) {
	r := partyOf(t)
	require.NoError(t, r.Invite(alice.UserID, bob))

	require.NoError(t, r.Decline(bob.UserID, alice.UserID))

	err := r.Decline(bob.UserID, alice.UserID)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)
	_, err = r.Accept(bob, alice.UserID)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)
}

// TestLeave_MemberRemoval tests a non-host leaving
func TestLeave_MemberRemoval(t *testing.T) {
	r := partyOf(t, bob, carol)

	p, disbanded, err := r.Leave(bob.UserID)
	require.NoError(t, err)

	assert.False(t, disbanded)
	assert.Equal(t, 2, p.Size())
	assert.False(t, p.IsMember(bob.UserID))
	_, ok := r.Get(bob.UserID)
	assert.False(t, ok)

	// bob can start fresh
	_, err = r.Create(bob)
	assert.NoError(t, err)
}

// TestLeave_HostDisbandsParty tests that a leaving host evicts everyone
func TestLeave_HostDisbandsParty(t *testing.T) {
	r := partyOf(t, bob, carol)

	_, disbanded, err := r.Leave(alice.UserID)
	require.NoError(t, err)
	assert.True(t, disbanded)

	for _, u := range []shared.User{alice, bob, carol} {
		_, ok := r.Get(u.UserID)
		assert.False(t, ok, u.Username)
	}
}

// TestDisband_HostOnly tests explicit disband authority
func TestDisband_HostOnly(t *testing.T) {
	r := partyOf(t, bob)

	_, err := r.Disband(bob.UserID)
	assert.ErrorIs(t, err, shared.ErrNotAuthorized)

	_, err = r.Disband(alice.UserID)
	require.NoError(t, err)
	_, ok := r.Get(alice.UserID)
	assert.False(t, ok)
}

// TestKick_Rules tests kick authority and target validation
func TestKick_Rules(t *testing.T) {
	r := partyOf(t, bob, carol)

	_, err := r.Kick(bob.UserID, carol.UserID)
	assert.ErrorIs(t, err, shared.ErrNotAuthorized)

	_, err = r.Kick(alice.UserID, alice.UserID)
	assert.ErrorIs(t, err, shared.ErrInvalidAction)

	_, err = r.Kick(alice.UserID, dave.UserID)
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)

	kicked, err := r.Kick(alice.UserID, bob.UserID)
	require.NoError(t, err)
	assert.Equal(t, bob, kicked)
	_, ok := r.Get(bob.UserID)
	assert.False(t, ok)
}
