/* bot.go
 * Contains the Bot struct and NewBot function. The bot requires a discord bot token and the settings loaded by the
 * config package, both of which are passed in from main.go
 */

package bot

import (
	"fmt"
	"log/slog"
	"time"
)

// Settings are the community specific values the handlers work with
type Settings struct {
	EmailDomain     string
	MemberRole      string
	ProcessChannels []string
	PromptTimeout   time.Duration
	NoticeTTL       time.Duration
	ReplyTTL        time.Duration
}

type Bot struct {
	BotToken string
	Settings Settings

	replies  *replyWaiter
	logger   *slog.Logger
	now      func() time.Time
	schedule func(time.Duration, func())
}

func NewBot(botToken string, settings Settings) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		Settings: settings,
		replies:  newReplyWaiter(),
		logger:   slog.Default(),
		now:      time.Now,
		schedule: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}, nil
}

// PendingPrompts returns the number of onboarding questions currently waiting on a reply
func (b *Bot) PendingPrompts() int {
	return b.replies.count()
}

// deleteLater deletes a message after the delay. There is no cancellation, and the deletion is lost if the
// process stops first
func (b *Bot) deleteLater(session DiscordSession, channelID string, messageIDs []string, delay time.Duration) {
	b.schedule(delay, func() {
		for _, id := range messageIDs {
			if err := session.ChannelMessageDelete(channelID, id); err != nil {
				b.logger.Error("failed to delete message", "channel", channelID, "message", id, "err", err)
			}
		}
	})
}

// recoverHandler stops a panic in one event handler from taking down the bot
func (b *Bot) recoverHandler(handler string) {
	if r := recover(); r != nil {
		b.logger.Error("handler panicked", "handler", handler, "panic", r)
	}
}
