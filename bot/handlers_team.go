/* handlers_team.go
 * Contains the 2v2/3v3/4v4 team battle command handlers
 * Authors: Zachary Bower
 */

package bot

import (
	"strings"

	"forsaken-bot/api/shared"

	"github.com/bwmarrin/discordgo"
)

// queue2v2Handler handles the $2v2 command with a DiscordSession interface
func (b *Bot) queue2v2Handler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.QueueTeam(shared.Mode2v2, messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}

// queue3v3Handler handles the $3v3 command with a DiscordSession interface
func (b *Bot) queue3v3Handler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.QueueTeam(shared.Mode3v3, messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}

// queue4v4Handler handles the $4v4 command with a DiscordSession interface
func (b *Bot) queue4v4Handler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.QueueTeam(shared.Mode4v4, messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}

// cancelQueueHandler handles the $cancelqueue command with a DiscordSession interface
func (b *Bot) cancelQueueHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.CancelQueue(messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}

// teamBanHandler handles the $teamban command with a DiscordSession interface
func (b *Bot) teamBanHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $teamban <character>")
		return
	}
	reply, err := b.APIPtr.TeamBan(messageUser(message), strings.Join(args, " "))
	b.send(session, message.ChannelID, reply, err)
}

// teamPickHandler handles the $teampick command with a DiscordSession interface
func (b *Bot) teamPickHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $teampick <character>")
		return
	}
	reply, err := b.APIPtr.TeamPick(messageUser(message), strings.Join(args, " "))
	b.send(session, message.ChannelID, reply, err)
}

// teamWonHandler handles the $teamwon command with a DiscordSession interface
func (b *Bot) teamWonHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.TeamReport(messageUser(message), true)
	b.send(session, message.ChannelID, reply, err)
}

// teamLossHandler handles the $teamloss command with a DiscordSession interface
func (b *Bot) teamLossHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.TeamReport(messageUser(message), false)
	b.send(session, message.ChannelID, reply, err)
}

// teamCancelHandler handles the $teamcancel command with a DiscordSession interface
func (b *Bot) teamCancelHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.CancelTeam(messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}
