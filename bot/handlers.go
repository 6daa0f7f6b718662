/* handlers.go
 * Contains the command router and the help/info handlers. Handlers accept the
 * DiscordSession interface so they are testable with a mock session
 * Authors: Zachary Bower
 * AI-Generated: Extracted runtime functionality from bot.go
 */

package bot

import (
	"errors"
	"fmt"
	"strings"

	"forsaken-bot/api/shared"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handlerFunc is one command's implementation
type handlerFunc func(session DiscordSession, message *discordgo.MessageCreate, args []string)

// route maps a command word to its handler, or nil for unknown commands
func (b *Bot) route(command string) handlerFunc {
	switch command {
	case "$help":
		return b.helpMessageHandler

	// 1v1 duels
	case "$1v1":
		return b.oneVOneHandler
	case "$ban":
		return b.duelBanHandler
	case "$pick":
		return b.duelPickHandler
	case "$won":
		return b.duelWonHandler
	case "$loss":
		return b.duelLossHandler
	case "$cancel1v1":
		return b.cancelDuelHandler

	// parties
	case "$party":
		return b.partyHandler
	case "$partyname":
		return b.partyNameHandler
	case "$partyinvite":
		return b.partyInviteHandler
	case "$partyaccept":
		return b.partyAcceptHandler
	case "$partydecline":
		return b.partyDeclineHandler
	case "$partykick":
		return b.partyKickHandler
	case "$partyleave":
		return b.partyLeaveHandler
	case "$partydisband":
		return b.partyDisbandHandler
	case "$partymembers":
		return b.partyMembersHandler
	case "$ghostadd":
		return b.ghostAddHandler
	case "$ghostremove":
		return b.ghostRemoveHandler
	case "$ghostclear":
		return b.ghostClearHandler

	// team battles
	case "$2v2":
		return b.queue2v2Handler
	case "$3v3":
		return b.queue3v3Handler
	case "$4v4":
		return b.queue4v4Handler
	case "$cancelqueue":
		return b.cancelQueueHandler
	case "$teamban":
		return b.teamBanHandler
	case "$teampick":
		return b.teamPickHandler
	case "$teamwon":
		return b.teamWonHandler
	case "$teamloss":
		return b.teamLossHandler
	case "$teamcancel":
		return b.teamCancelHandler

	// 5v5 tournaments
	case "$challenge":
		return b.challengeHandler
	case "$acceptchallenge":
		return b.acceptChallengeHandler
	case "$map":
		return b.selectMapHandler
	case "$selectkiller":
		return b.selectKillerHandler
	case "$tournamentban":
		return b.tournamentBanHandler
	case "$skipban":
		return b.skipBanHandler
	case "$tournamentpick":
		return b.tournamentPickHandler
	case "$reportscore":
		return b.reportScoreHandler
	case "$tournamentcancel":
		return b.tournamentCancelHandler

	// stats and profiles
	case "$stats":
		return b.statsHandler
	case "$leaderboard":
		return b.leaderboardHandler
	case "$profile":
		return b.profileHandler
	case "$profilebanner":
		return b.profileBannerHandler
	case "$profilebio":
		return b.profileBioHandler
	case "$profilekiller":
		return b.profileKillerHandler
	case "$profilesurvivor":
		return b.profileSurvivorHandler
	case "$profileplaytime":
		return b.profilePlaytimeHandler
	case "$profilekillerwin":
		return b.profileKillerWinHandler
	case "$profilesurvivorwin":
		return b.profileSurvivorWinHandler
	case "$setpoints":
		return b.setPointsHandler
	case "$setwins":
		return b.setWinsHandler
	case "$setlosses":
		return b.setLossesHandler

	// rosters and recommendations
	case "$killers":
		return b.killersHandler
	case "$survivors":
		return b.survivorsHandler
	case "$maps":
		return b.mapsHandler
	case "$recommend":
		return b.recommendHandler
	}
	return nil
}

// newMessageHandler routes messages to the matching handler with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}
	if !strings.HasPrefix(message.Content, "$") {
		return
	}

	command, args := splitCommand(message.Content)
	handler := b.route(command)
	if handler == nil {
		return
	}

	allowed, warn := b.limiter.Allow(message.Author.ID)
	if !allowed {
		if warn {
			session.ChannelMessageSend(message.ChannelID, "You are sending commands too quickly, give it a moment")
		}
		return
	}

	if b.Metrics != nil {
		b.Metrics.CommandReceived(strings.TrimPrefix(command, "$"))
	}
	log.WithFields(log.Fields{"user": message.Author.ID, "command": command}).Debug("command received")
	handler(session, message, args)
}

// send posts the reply, or renders the error when the call failed
func (b *Bot) send(session DiscordSession, channelID string, reply string, err error) {
	if err != nil {
		b.sendError(session, channelID, err)
		return
	}
	session.ChannelMessageSend(channelID, reply)
}

// sendError posts rule violations back to the player verbatim; anything else is
// logged and answered with a generic line
func (b *Bot) sendError(session DiscordSession, channelID string, err error) {
	if isPlayerError(err) {
		session.ChannelMessageSend(channelID, err.Error())
		return
	}
	log.WithError(err).Error("command failed")
	session.ChannelMessageSend(channelID, "An unexpected error occured, please try again later")
}

// isPlayerError reports whether the error is a player rule violation rather
// than an infrastructure failure
func isPlayerError(err error) bool {
	for _, sentinel := range []error{
		shared.ErrInvalidAction,
		shared.ErrInvalidSelection,
		shared.ErrCapacityExceeded,
		shared.ErrConflictingClaim,
		shared.ErrNotAuthorized,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	var res strings.Builder
	res.WriteString("Forsaken Bot v1.0\n")
	res.WriteString("1v1 duels:\n")
	res.WriteString("`$1v1`: wait for an opponent in this channel, or face whoever is already waiting\n")
	res.WriteString("`$ban <character>`: ban a character from the duel's shared pool, two bans each\n")
	res.WriteString("`$pick <character>`: pick your character for the next open round, roles alternate each round\n")
	res.WriteString("`$won` / `$loss`: report the current round, both players must report before it counts\n")
	res.WriteString("`$cancel1v1`: leave the 1v1 queue, or forfeit the running duel for a points penalty\n")
	res.WriteString("Parties:\n")
	res.WriteString("`$party`: create a party, then `$partyname <name>`, `$partyinvite @user`, `$partyaccept @host`, `$partydecline @host`\n")
	res.WriteString("`$partymembers`: list the party. `$partykick @user`, `$partyleave` and `$partydisband` manage it\n")
	res.WriteString("Team battles:\n")
	res.WriteString("`$2v2` / `$3v3` / `$4v4`: queue your full party, the match starts when another party queues. `$cancelqueue` leaves the queue\n")
	res.WriteString("`$teamban <character>`: 2v2 only, one ban per host. `$teampick <character>` each round, `$teamwon` / `$teamloss` to report, `$teamcancel` to abandon\n")
	res.WriteString("5v5 tournaments:\n")
	res.WriteString("`$challenge @user`: challenge another full party. They accept with `$acceptchallenge @challenger`\n")
	res.WriteString("`$map <name>`, `$selectkiller <player 1-5> <killer>`, `$tournamentban <survivor>` or `$skipban`, `$tournamentpick <survivor>`, then both hosts `$reportscore <0-7>`. `$tournamentcancel` abandons\n")
	res.WriteString("Stats and profiles:\n")
	res.WriteString("`$stats [mode]`, `$leaderboard <mode>`, `$profile [@user]`\n")
	res.WriteString("`$profilebanner <url>`, `$profilebio <text>`, `$profilekiller <killer>`, `$profilesurvivor <survivor>`, `$profileplaytime <hours>`, `$profilekillerwin <n>`, `$profilesurvivorwin <n>`\n")
	res.WriteString("Rosters:\n")
	res.WriteString("`$killers`, `$survivors`, `$maps`, `$recommend <map or killer>`\n")
	res.WriteString("Names with spaces need double quotes (e.g. \"Guest 1337\")\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// killersHandler handles the $killers command with a DiscordSession interface
func (b *Bot) killersHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	session.ChannelMessageSend(message.ChannelID, b.APIPtr.KillersList())
}

// survivorsHandler handles the $survivors command with a DiscordSession interface
func (b *Bot) survivorsHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	session.ChannelMessageSend(message.ChannelID, b.APIPtr.SurvivorsList())
}

// mapsHandler handles the $maps command with a DiscordSession interface
func (b *Bot) mapsHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	session.ChannelMessageSend(message.ChannelID, b.APIPtr.MapsList())
}

// recommendHandler handles the $recommend command with a DiscordSession
// interface. The argument is tried as a map first, then as a killer
func (b *Bot) recommendHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	name := strings.Join(args, " ")
	if name == "" {
		session.ChannelMessageSend(message.ChannelID, "Usage: $recommend <map or killer>")
		return
	}

	reply, err := b.APIPtr.RecommendKillers(name)
	if err != nil {
		reply, err = b.APIPtr.RecommendBans(name)
	}
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%q does not match any map or killer", name))
		return
	}
	session.ChannelMessageSend(message.ChannelID, reply)
}
