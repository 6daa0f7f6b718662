/* bot.go
 * Contains logic used for creating the bot and parsing inbound commands. Requires a discord bot token, and APIPtr
 * both of which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"

	"forsaken-bot/api/api"
	"forsaken-bot/api/shared"
	"forsaken-bot/metrics"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
	Metrics  metrics.BotMetrics

	limiter commandLimiter
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
	}, nil
}

// splitCommand splits a message into its lowercased command word and arguments.
// Double-quoted arguments keep their spaces so multi-word names like
// "Guest 1337" or "Work At A Pizza Place" parse as one argument
// Preconditions: Receives the raw message content
// Postconditions: Returns the command word and the remaining arguments with
// quotes stripped
func splitCommand(content string) (string, []string) {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes) //we use splitter here instead of go's built in splitter because now we can have names that contain spaces e.g. "Guest 1337" recognised as one argument not two
	parts, err := spaceSplitter.Split(content)
	if err != nil || len(parts) == 0 {
		return "", nil
	}

	args := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		part = strings.ReplaceAll(part, "\"", "")
		part = strings.ReplaceAll(part, "“", "")
		part = strings.ReplaceAll(part, "”", "")
		if part != "" {
			args = append(args, part)
		}
	}
	return strings.ToLower(parts[0]), args
}

// messageUser builds the acting user from a discord message author
func messageUser(message *discordgo.MessageCreate) shared.User {
	return shared.User{UserID: message.Author.ID, Username: message.Author.Username}
}

// firstMention returns the first user mentioned in the message
func firstMention(message *discordgo.MessageCreate) (shared.User, bool) {
	for _, mentioned := range message.Mentions {
		if mentioned.Bot {
			continue
		}
		return shared.User{UserID: mentioned.ID, Username: mentioned.Username}, true
	}
	return shared.User{}, false
}

// targetOr returns the first mentioned user, falling back to the author for
// commands that default to acting on yourself
func targetOr(message *discordgo.MessageCreate, fallback shared.User) shared.User {
	if target, ok := firstMention(message); ok {
		return target
	}
	return fallback
}

// stripMentions drops raw mention tokens like <@123> from an argument list so
// positional arguments keep their positions when a target is mentioned
func stripMentions(args []string) []string {
	kept := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "<@") && strings.HasSuffix(arg, ">") {
			continue
		}
		kept = append(kept, arg)
	}
	return kept
}
