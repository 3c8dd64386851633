/* process_channel_test.go
 * Contains unit tests for the process channel handler using mock Discord session
 */

package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region valid submission tests

func TestProcessChannel_ValidSubmissionGetsReaction(t *testing.T) {
	bot := createTestBot()
	mockSession := createTestSession()
	message := createGuildMessage("!process Google OA", "user123", "Ada - 2026", "intern_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	require.Len(t, mockSession.Reactions, 1)
	assert.Equal(t, MockReaction{ChannelID: "intern_channel", MessageID: "command_message", Emoji: "✅"}, mockSession.Reactions[0])
	assert.Empty(t, mockSession.SentMessages)
	assert.Empty(t, mockSession.DeletedMessages)
}

func TestProcessChannel_OfferIsCelebrated(t *testing.T) {
	bot := createTestBot()
	mockSession := createTestSession()
	message := createGuildMessage("!process Google offer", "user123", "Ada - 2026", "newgrad_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	require.Len(t, mockSession.Reactions, 1)
	require.Len(t, mockSession.SentMessages, 1)
	assert.Equal(t, "newgrad_channel", mockSession.GetLastMessage().ChannelID)
	assert.Equal(t, "Congrats 💐!", mockSession.GetLastMessage().Content)
}

func TestProcessChannel_SubmissionWithNote(t *testing.T) {
	bot := createTestBot()
	mockSession := createTestSession()
	message := createGuildMessage("!process Jane Street final (super round)", "user123", "", "intern_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Len(t, mockSession.Reactions, 1)
	assert.Empty(t, mockSession.DeletedMessages)
}

func TestProcessChannel_ReactionFailureStillCelebrates(t *testing.T) {
	bot := createTestBot()
	mockSession := createTestSession()
	mockSession.ReactionError = errors.New("unknown emoji")
	message := createGuildMessage("!process Google OFFER", "user123", "", "intern_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	require.Len(t, mockSession.SentMessages, 1)
	assert.Equal(t, offerReply, mockSession.GetLastMessage().Content)
}

// endregion

// region invalid submission tests

func TestProcessChannel_InvalidSubmissionDeletedWithNotice(t *testing.T) {
	bot := createTestBot()
	delays := recordSchedule(bot)
	mockSession := createTestSession()
	message := createGuildMessage("!process Google blah", "user123", "", "intern_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Empty(t, mockSession.Reactions)
	require.Len(t, mockSession.SentMessages, 1)
	notice := mockSession.GetLastMessage()
	assert.Equal(t, "intern_channel", notice.ChannelID)
	assert.Contains(t, notice.Content, "<@user123>, please follow the format")
	assert.NotContains(t, notice.Content, "Did you mean")

	assert.Equal(t, []time.Duration{10 * time.Second}, *delays)
	assert.Equal(t, []MockMessageRef{
		{ChannelID: "intern_channel", MessageID: "command_message"},
		{ChannelID: "intern_channel", MessageID: notice.ID},
	}, mockSession.DeletedMessages)
}

func TestProcessChannel_NoticeSuggestsStage(t *testing.T) {
	bot := createTestBot()
	recordSchedule(bot)
	mockSession := createTestSession()
	message := createGuildMessage("!process Google ofer", "user123", "", "intern_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	require.Len(t, mockSession.SentMessages, 1)
	assert.Contains(t, mockSession.GetLastMessage().Content, "Did you mean \"offer\"?")
}

func TestProcessChannel_ChatterIsDeleted(t *testing.T) {
	bot := createTestBot()
	delays := recordSchedule(bot)
	mockSession := createTestSession()
	message := createGuildMessage("congrats!!", "user123", "", "newgrad_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Len(t, mockSession.DeletedMessages, 2)
	assert.Len(t, *delays, 1)
}

func TestProcessChannel_DeleteFailureStillSendsNotice(t *testing.T) {
	bot := createTestBot()
	delays := recordSchedule(bot)
	mockSession := createTestSession()
	mockSession.DeleteError = errors.New("missing permissions")
	message := createGuildMessage("!process Google blah", "user123", "", "intern_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Len(t, mockSession.SentMessages, 1)
	assert.Len(t, *delays, 1)
}

func TestProcessChannel_NoticeSendFailure(t *testing.T) {
	bot := createTestBot()
	delays := recordSchedule(bot)
	mockSession := createTestSession()
	mockSession.SendError = errors.New("discord unavailable")
	message := createGuildMessage("!process Google blah", "user123", "", "intern_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Len(t, mockSession.DeletedMessages, 1)
	assert.Empty(t, *delays)
}

// endregion

// region routing tests

func TestProcessChannel_OtherChannelsIgnored(t *testing.T) {
	bot := createTestBot()
	mockSession := createTestSession()
	message := createGuildMessage("!process Google blah", "user123", "", "general_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Empty(t, mockSession.SentMessages)
	assert.Empty(t, mockSession.Reactions)
	assert.Empty(t, mockSession.DeletedMessages)
}

func TestProcessChannel_BotMessagesIgnored(t *testing.T) {
	bot := createTestBot()
	mockSession := createTestSession()
	message := createGuildMessage("Congrats 💐!", "other_bot", "", "intern_channel")
	message.Author.Bot = true

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Empty(t, mockSession.DeletedMessages)
}

func TestProcessChannel_OwnMessagesIgnored(t *testing.T) {
	bot := createTestBot()
	mockSession := createTestSession()
	message := createGuildMessage("Congrats 💐!", "bot_id", "", "intern_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Empty(t, mockSession.DeletedMessages)
}

func TestProcessChannel_ChannelLookupFailure(t *testing.T) {
	bot := createTestBot()
	mockSession := createTestSession()
	mockSession.ChannelError = errors.New("unknown channel")
	message := createGuildMessage("!process Google blah", "user123", "", "intern_channel")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Empty(t, mockSession.DeletedMessages)
	assert.Empty(t, mockSession.SentMessages)
}

// endregion
