//go:build !test

/* bot_runtime.go
 * Contains runtime-only Discord bot methods that use *discordgo.Session directly.
 * Delegates to testable handlers in handlers.go to avoid code duplication.
 */

package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

// Run starts the Discord bot and listens for events until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	// create a session
	discord, err := discordgo.New("Bot " + b.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create discord session: %w", err)
	}
	discord.Identify.Intents = intents

	// add event handlers
	discord.AddHandler(b.newMessage)
	discord.AddHandler(b.memberJoin)

	// open session
	if err := discord.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	defer discord.Close() // close session, after function termination

	b.logger.Info("DUCS Bot started")
	<-ctx.Done()
	b.logger.Info("DUCS Bot stopping")
	return nil
}

// newMessage delegates to the testable newMessageHandler
func (b *Bot) newMessage(discord *discordgo.Session, message *discordgo.MessageCreate) {
	b.newMessageHandler(cachedSession{discord}, message, discord.State.User.ID)
}

// memberJoin delegates to the testable memberJoinHandler
func (b *Bot) memberJoin(discord *discordgo.Session, event *discordgo.GuildMemberAdd) {
	b.memberJoinHandler(cachedSession{discord}, event)
}

// cachedSession answers channel and role lookups from the gateway state before falling back to the REST API
type cachedSession struct {
	*discordgo.Session
}

func (s cachedSession) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if ch, err := s.State.Channel(channelID); err == nil {
		return ch, nil
	}
	return s.Session.Channel(channelID, options...)
}

func (s cachedSession) GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error) {
	if g, err := s.State.Guild(guildID); err == nil && len(g.Roles) > 0 {
		return g.Roles, nil
	}
	return s.Session.GuildRoles(guildID, options...)
}
