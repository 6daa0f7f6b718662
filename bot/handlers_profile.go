/* handlers_profile.go
 * Contains the stats, leaderboard, profile and admin command handlers
 * Authors: Zachary Bower
 */

package bot

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// statsHandler handles the $stats command with a DiscordSession interface
func (b *Bot) statsHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	modeArg := ""
	if len(args) > 0 {
		modeArg = args[0]
	}
	reply, err := b.APIPtr.Stats(messageUser(message), modeArg)
	b.send(session, message.ChannelID, reply, err)
}

// leaderboardHandler handles the $leaderboard command with a DiscordSession interface
func (b *Bot) leaderboardHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	modeArg := "1v1"
	if len(args) > 0 {
		modeArg = args[0]
	}
	reply, err := b.APIPtr.Leaderboard(modeArg)
	b.send(session, message.ChannelID, reply, err)
}

// profileHandler handles the $profile command with a DiscordSession interface
func (b *Bot) profileHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.Profile(targetOr(message, messageUser(message)))
	b.send(session, message.ChannelID, reply, err)
}

// profileBannerHandler handles the $profilebanner command with a DiscordSession interface
func (b *Bot) profileBannerHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	args = stripMentions(args)
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $profilebanner <image url>")
		return
	}
	actor := messageUser(message)
	reply, err := b.APIPtr.SetBanner(actor, targetOr(message, actor), args[0])
	b.send(session, message.ChannelID, reply, err)
}

// profileBioHandler handles the $profilebio command with a DiscordSession interface
func (b *Bot) profileBioHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	args = stripMentions(args)
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $profilebio <text>")
		return
	}
	actor := messageUser(message)
	reply, err := b.APIPtr.SetBio(actor, targetOr(message, actor), strings.Join(args, " "))
	b.send(session, message.ChannelID, reply, err)
}

// profileKillerHandler handles the $profilekiller command with a DiscordSession interface
func (b *Bot) profileKillerHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	args = stripMentions(args)
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $profilekiller <killer>")
		return
	}
	actor := messageUser(message)
	reply, err := b.APIPtr.SetMainKiller(actor, targetOr(message, actor), strings.Join(args, " "))
	b.send(session, message.ChannelID, reply, err)
}

// profileSurvivorHandler handles the $profilesurvivor command with a DiscordSession interface
func (b *Bot) profileSurvivorHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	args = stripMentions(args)
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $profilesurvivor <survivor>")
		return
	}
	actor := messageUser(message)
	reply, err := b.APIPtr.SetMainSurvivor(actor, targetOr(message, actor), strings.Join(args, " "))
	b.send(session, message.ChannelID, reply, err)
}

// profilePlaytimeHandler handles the $profileplaytime command with a DiscordSession interface
func (b *Bot) profilePlaytimeHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	args = stripMentions(args)
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $profileplaytime <hours>")
		return
	}
	hours, err := strconv.Atoi(args[0])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "The playtime must be a whole number of hours")
		return
	}
	actor := messageUser(message)
	reply, err := b.APIPtr.SetPlaytime(actor, targetOr(message, actor), hours)
	b.send(session, message.ChannelID, reply, err)
}

// profileKillerWinHandler handles the $profilekillerwin command with a DiscordSession interface
func (b *Bot) profileKillerWinHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	args = stripMentions(args)
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $profilekillerwin <count>")
		return
	}
	wins, err := strconv.Atoi(args[0])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "The win count must be a number")
		return
	}
	actor := messageUser(message)
	reply, err := b.APIPtr.SetKillerWins(actor, targetOr(message, actor), wins)
	b.send(session, message.ChannelID, reply, err)
}

// profileSurvivorWinHandler handles the $profilesurvivorwin command with a DiscordSession interface
func (b *Bot) profileSurvivorWinHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	args = stripMentions(args)
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $profilesurvivorwin <count>")
		return
	}
	wins, err := strconv.Atoi(args[0])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "The win count must be a number")
		return
	}
	actor := messageUser(message)
	reply, err := b.APIPtr.SetSurvivorWins(actor, targetOr(message, actor), wins)
	b.send(session, message.ChannelID, reply, err)
}

// setPointsHandler handles the $setpoints command with a DiscordSession interface
// Preconditions: the message mentions the target player and args contains a mode and a value
// Postconditions: the target's ledger points are overwritten or an error is sent to the channel
func (b *Bot) setPointsHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	target, ok := firstMention(message)
	rest := stripMentions(args)
	if !ok || len(rest) < 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $setpoints @user <mode> <points>")
		return
	}
	value, err := strconv.Atoi(rest[1])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "The points must be a number")
		return
	}
	reply, err := b.APIPtr.AdminSetPoints(messageUser(message), target, rest[0], value)
	b.send(session, message.ChannelID, reply, err)
}

// setWinsHandler handles the $setwins command with a DiscordSession interface
func (b *Bot) setWinsHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	target, ok := firstMention(message)
	rest := stripMentions(args)
	if !ok || len(rest) < 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $setwins @user <mode> <wins>")
		return
	}
	value, err := strconv.Atoi(rest[1])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "The win count must be a number")
		return
	}
	reply, err := b.APIPtr.AdminSetWins(messageUser(message), target, rest[0], value)
	b.send(session, message.ChannelID, reply, err)
}

// setLossesHandler handles the $setlosses command with a DiscordSession interface
func (b *Bot) setLossesHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	target, ok := firstMention(message)
	rest := stripMentions(args)
	if !ok || len(rest) < 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $setlosses @user <mode> <losses>")
		return
	}
	value, err := strconv.Atoi(rest[1])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "The loss count must be a number")
		return
	}
	reply, err := b.APIPtr.AdminSetLosses(messageUser(message), target, rest[0], value)
	b.send(session, message.ChannelID, reply, err)
}
