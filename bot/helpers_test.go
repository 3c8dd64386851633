/* helpers_test.go
 * Contains helpers shared by the bot package tests
 */

package bot

import (
	"io"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

// testNow is the fixed clock used by every test bot, so 2024 and earlier are graduates
var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

// createTestBot creates a Bot with the default community settings, a fixed clock and a short prompt timeout
func createTestBot() *Bot {
	b, _ := NewBot("test_token", Settings{
		EmailDomain:     "@denison.edu",
		MemberRole:      "Students/Alumni",
		ProcessChannels: []string{"intern-process", "new-grad-process"},
		PromptTimeout:   50 * time.Millisecond,
		NoticeTTL:       10 * time.Second,
		ReplyTTL:        5 * time.Second,
	})
	b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	b.now = func() time.Time { return testNow }
	return b
}

// recordSchedule makes scheduled work run immediately and returns the delays that were requested
func recordSchedule(b *Bot) *[]time.Duration {
	delays := &[]time.Duration{}
	b.schedule = func(d time.Duration, f func()) {
		*delays = append(*delays, d)
		f()
	}
	return delays
}

// createTestSession creates a mock session that knows the two process channels and a general channel
func createTestSession() *MockDiscordSession {
	mockSession := NewMockDiscordSession()
	mockSession.Channels["intern_channel"] = &discordgo.Channel{ID: "intern_channel", Name: "intern-process"}
	mockSession.Channels["newgrad_channel"] = &discordgo.Channel{ID: "newgrad_channel", Name: "new-grad-process"}
	mockSession.Channels["general_channel"] = &discordgo.Channel{ID: "general_channel", Name: "general"}
	mockSession.Roles = []*discordgo.Role{
		{ID: "everyone_role", Name: "@everyone"},
		{ID: "lowercase_role", Name: "students/alumni"},
		{ID: "member_role", Name: "Students/Alumni"},
	}
	return mockSession
}

// createGuildMessage creates a guild message. An empty nick leaves the member without a nickname
func createGuildMessage(content, userID, nick, channelID string) *discordgo.MessageCreate {
	message := &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "command_message",
			GuildID:   "guild123",
			ChannelID: channelID,
			Content:   content,
			Author: &discordgo.User{
				ID:       userID,
				Username: "ada_lovelace",
			},
			Member: &discordgo.Member{},
		},
	}
	message.Member.Nick = nick
	return message
}

// createJoinEvent creates a member join event for the guild
func createJoinEvent(userID string) *discordgo.GuildMemberAdd {
	return &discordgo.GuildMemberAdd{
		Member: &discordgo.Member{
			GuildID: "guild123",
			User:    &discordgo.User{ID: userID, Username: "newbie"},
		},
	}
}

// scriptReplies answers each onboarding question with the next answer, as if the member typed it in their DMs.
// Retry prompts are not answered because nothing waits on them
func scriptReplies(b *Bot, mockSession *MockDiscordSession, userID string, answers ...string) {
	mockSession.OnSend = func(channelID string, content string) {
		if len(answers) == 0 || !b.replies.waiting(channelID, userID) {
			return
		}
		answer := answers[0]
		answers = answers[1:]
		b.replies.deliver(dmMessage(channelID, userID, answer))
	}
}
