/* handlers.go
 * Contains the event routing for messages and member joins. Handlers accept the DiscordSession interface so they
 * can be tested with a mock session
 */

package bot

import (
	"strings"

	"ducs-bot/process"

	"github.com/bwmarrin/discordgo"
)

const updateTitleCommand = "!update-title"

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	defer b.recoverHandler("message create")

	if message.Author == nil || message.Author.Bot || message.Author.ID == botUserID {
		return
	}

	// Direct messages are only ever answers to onboarding questions
	if message.GuildID == "" {
		b.replies.deliver(message.Message)
		return
	}

	if startsWith(message.Content, updateTitleCommand) {
		b.updateTitleHandler(session, message)
		return
	}

	channel, err := session.Channel(message.ChannelID)
	if err != nil {
		b.logger.Error("failed to look up channel", "channel", message.ChannelID, "err", err)
		return
	}
	if process.IsProcessChannel(channel.Name, b.Settings.ProcessChannels) {
		b.processChannelHandler(session, message)
	}
}

// memberJoinHandler starts onboarding for a member who just joined the guild
func (b *Bot) memberJoinHandler(session DiscordSession, event *discordgo.GuildMemberAdd) {
	defer b.recoverHandler("member join")

	if event.Member == nil || event.User == nil || event.User.Bot {
		return
	}
	b.onboardMember(session, event.GuildID, event.User)
}

// Helper function to check if a string starts with a given command, ignoring case
// Preconditions: Receives an input string and a command
// Postconditions: Returns true if the command is at the start of the string, else returns false
func startsWith(inputString string, command string) bool {
	if len(inputString) < len(command) {
		return false
	}
	return strings.EqualFold(inputString[:len(command)], command)
}
