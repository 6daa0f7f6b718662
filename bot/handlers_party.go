/* handlers_party.go
 * Contains the party management command handlers, including the admin-only
 * ghost member commands
 * Authors: Zachary Bower
 */

package bot

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// partyHandler handles the $party command with a DiscordSession interface
func (b *Bot) partyHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.CreateParty(messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}

// partyNameHandler handles the $partyname command with a DiscordSession interface
func (b *Bot) partyNameHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	name := strings.Join(args, " ")
	if name == "" {
		session.ChannelMessageSend(message.ChannelID, "Usage: $partyname <name>")
		return
	}
	reply, err := b.APIPtr.RenameParty(messageUser(message), name)
	b.send(session, message.ChannelID, reply, err)
}

// partyInviteHandler handles the $partyinvite command with a DiscordSession interface
func (b *Bot) partyInviteHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	target, ok := firstMention(message)
	if !ok {
		session.ChannelMessageSend(message.ChannelID, "Mention the player you want to invite, e.g. $partyinvite @user")
		return
	}
	reply, err := b.APIPtr.Invite(messageUser(message), target)
	b.send(session, message.ChannelID, reply, err)
}

// partyAcceptHandler handles the $partyaccept command with a DiscordSession interface
func (b *Bot) partyAcceptHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	host, ok := firstMention(message)
	if !ok {
		session.ChannelMessageSend(message.ChannelID, "Mention whose party you are joining, e.g. $partyaccept @host")
		return
	}
	reply, err := b.APIPtr.AcceptInvite(messageUser(message), host)
	b.send(session, message.ChannelID, reply, err)
}

// partyDeclineHandler handles the $partydecline command with a DiscordSession interface
func (b *Bot) partyDeclineHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	host, ok := firstMention(message)
	if !ok {
		session.ChannelMessageSend(message.ChannelID, "Mention whose invite you are declining, e.g. $partydecline @host")
		return
	}
	reply, err := b.APIPtr.DeclineInvite(messageUser(message), host)
	b.send(session, message.ChannelID, reply, err)
}

// partyKickHandler handles the $partykick command with a DiscordSession interface
func (b *Bot) partyKickHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	target, ok := firstMention(message)
	if !ok {
		session.ChannelMessageSend(message.ChannelID, "Mention the player to kick, e.g. $partykick @user")
		return
	}
	reply, err := b.APIPtr.Kick(messageUser(message), target)
	b.send(session, message.ChannelID, reply, err)
}

// partyLeaveHandler handles the $partyleave command with a DiscordSession interface
func (b *Bot) partyLeaveHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.LeaveParty(messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}

// partyDisbandHandler handles the $partydisband command with a DiscordSession interface
func (b *Bot) partyDisbandHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.DisbandParty(messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}

// partyMembersHandler handles the $partymembers command with a DiscordSession interface
func (b *Bot) partyMembersHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.PartyMembers(messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}

// ghostAddHandler handles the $ghostadd command with a DiscordSession interface
func (b *Bot) ghostAddHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.GhostAdd(messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}

// ghostRemoveHandler handles the $ghostremove command with a DiscordSession interface
func (b *Bot) ghostRemoveHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $ghostremove <ghost number>")
		return
	}
	number, err := strconv.Atoi(args[0])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "The ghost number must be a number")
		return
	}
	reply, err := b.APIPtr.GhostRemove(messageUser(message), number)
	b.send(session, message.ChannelID, reply, err)
}

// ghostClearHandler handles the $ghostclear command with a DiscordSession interface
func (b *Bot) ghostClearHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.GhostClear(messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}
