/* handlers_tournament.go
 * Contains the 5v5 tournament command handlers
 * Authors: Zachary Bower
 */

package bot

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// challengeHandler handles the $challenge command with a DiscordSession interface
func (b *Bot) challengeHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	target, ok := firstMention(message)
	if !ok {
		session.ChannelMessageSend(message.ChannelID, "Mention a member of the party you want to challenge, e.g. $challenge @user")
		return
	}
	reply, err := b.APIPtr.Challenge(messageUser(message), target)
	b.send(session, message.ChannelID, reply, err)
}

// acceptChallengeHandler handles the $acceptchallenge command with a DiscordSession interface
func (b *Bot) acceptChallengeHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	challenger, ok := firstMention(message)
	if !ok {
		session.ChannelMessageSend(message.ChannelID, "Mention a member of the challenging party, e.g. $acceptchallenge @challenger")
		return
	}
	reply, err := b.APIPtr.AcceptChallenge(messageUser(message), challenger)
	b.send(session, message.ChannelID, reply, err)
}

// selectMapHandler handles the $map command with a DiscordSession interface
func (b *Bot) selectMapHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $map <map name>")
		return
	}
	reply, err := b.APIPtr.SelectMap(messageUser(message), strings.Join(args, " "))
	b.send(session, message.ChannelID, reply, err)
}

// selectKillerHandler handles the $selectkiller command with a DiscordSession interface
// Preconditions: args contains a player number between 1 and 5 followed by a killer name
// Postconditions: the nominated teammate's killer is locked in or an error is sent to the channel
func (b *Bot) selectKillerHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	args = stripMentions(args)
	if len(args) < 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $selectkiller <player 1-5> <killer>")
		return
	}
	playerNumber, err := strconv.Atoi(args[0])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "The player number must be a number between 1 and 5")
		return
	}
	reply, err := b.APIPtr.SelectKiller(messageUser(message), playerNumber, strings.Join(args[1:], " "))
	b.send(session, message.ChannelID, reply, err)
}

// tournamentBanHandler handles the $tournamentban command with a DiscordSession interface
func (b *Bot) tournamentBanHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $tournamentban <survivor>")
		return
	}
	reply, err := b.APIPtr.TournamentBan(messageUser(message), strings.Join(args, " "))
	b.send(session, message.ChannelID, reply, err)
}

// skipBanHandler handles the $skipban command with a DiscordSession interface
func (b *Bot) skipBanHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.SkipBan(messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}

// tournamentPickHandler handles the $tournamentpick command with a DiscordSession interface
func (b *Bot) tournamentPickHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $tournamentpick <survivor>")
		return
	}
	reply, err := b.APIPtr.TournamentPick(messageUser(message), strings.Join(args, " "))
	b.send(session, message.ChannelID, reply, err)
}

// reportScoreHandler handles the $reportscore command with a DiscordSession interface
// Preconditions: args contains this side's score for the round, between 0 and 7
// Postconditions: the score claim is recorded or an error is sent to the channel
func (b *Bot) reportScoreHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $reportscore <0-7>")
		return
	}
	score, err := strconv.Atoi(args[0])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "The score must be a number between 0 and 7")
		return
	}
	reply, err := b.APIPtr.ReportScore(messageUser(message), score)
	b.send(session, message.ChannelID, reply, err)
}

// tournamentCancelHandler handles the $tournamentcancel command with a DiscordSession interface
func (b *Bot) tournamentCancelHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	reply, err := b.APIPtr.CancelTournament(messageUser(message))
	b.send(session, message.ChannelID, reply, err)
}
