/* handlers_duel.go
 * Contains the 1v1 duel command handlers. Duels are keyed by the channel the
 * command was typed in, so every handler passes the message's channel id through
 * Authors: Zachary Bower
 */

package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// oneVOneHandler handles the $1v1 command with a DiscordSession interface
func (b *Bot) oneVOneHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.StartDuel(message.ChannelID, messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}

// duelBanHandler handles the $ban command with a DiscordSession interface
func (b *Bot) duelBanHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $ban <character>")
		return
	}
	reply, err := b.APIPtr.DuelBan(message.ChannelID, messageUser(message), strings.Join(args, " "))
	b.send(session, message.ChannelID, reply, err)
}

// duelPickHandler handles the $pick command with a DiscordSession interface
func (b *Bot) duelPickHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $pick <character>")
		return
	}
	reply, err := b.APIPtr.DuelPick(message.ChannelID, messageUser(message), strings.Join(args, " "))
	b.send(session, message.ChannelID, reply, err)
}

// duelWonHandler handles the $won command with a DiscordSession interface
func (b *Bot) duelWonHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.DuelReport(message.ChannelID, messageUser(message), true)
	b.send(session, message.ChannelID, reply, err)
}

// duelLossHandler handles the $loss command with a DiscordSession interface
func (b *Bot) duelLossHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.DuelReport(message.ChannelID, messageUser(message), false)
	b.send(session, message.ChannelID, reply, err)
}

// cancelDuelHandler handles the $cancel1v1 command with a DiscordSession interface
func (b *Bot) cancelDuelHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.CancelDuel(message.ChannelID, messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}
