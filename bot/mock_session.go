/* mock_session.go
 * Contains mock implementation of DiscordSession for testing
 */

package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// MockDiscordSession implements DiscordSession for testing purposes
type MockDiscordSession struct {
	// SentMessages stores all messages sent during tests, including replies
	SentMessages []MockMessage
	// DeletedMessages stores every message deletion
	DeletedMessages []MockMessageRef
	// Reactions stores every reaction added
	Reactions []MockReaction
	// Nicknames stores every nickname change
	Nicknames []MockMemberChange
	// RolesAdded stores every role grant, Value holds the role ID
	RolesAdded []MockMemberChange

	// Data returned by lookups
	Roles       []*discordgo.Role
	Channels    map[string]*discordgo.Channel
	Members     map[string]*discordgo.Member
	DMChannelID string

	// Errors allow tests to simulate failures per method
	SendError        error
	ReplyError       error
	DeleteError      error
	ReactionError    error
	ChannelError     error
	UserChannelError error
	MemberError      error
	NicknameError    error
	RoleAddError     error
	RolesError       error

	// OnSend is called after every successful ChannelMessageSend
	OnSend func(channelID string, content string)

	nextID int
}

// MockMessage represents a message sent to a channel
type MockMessage struct {
	ID        string
	ChannelID string
	Content   string
	// ReplyTo is the ID of the message being replied to, empty for plain sends
	ReplyTo string
}

// MockMessageRef identifies a message by channel and ID
type MockMessageRef struct {
	ChannelID string
	MessageID string
}

// MockReaction represents a reaction added to a message
type MockReaction struct {
	ChannelID string
	MessageID string
	Emoji     string
}

// MockMemberChange represents a change applied to a guild member
type MockMemberChange struct {
	GuildID string
	UserID  string
	Value   string
}

// ChannelMessageSend implements DiscordSession.ChannelMessageSend
func (m *MockDiscordSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if m.SendError != nil {
		return nil, m.SendError
	}
	msg := m.record(channelID, content, "")
	if m.OnSend != nil {
		m.OnSend(channelID, content)
	}
	return msg, nil
}

// ChannelMessageSendReply implements DiscordSession.ChannelMessageSendReply
func (m *MockDiscordSession) ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if m.ReplyError != nil {
		return nil, m.ReplyError
	}
	replyTo := ""
	if reference != nil {
		replyTo = reference.MessageID
	}
	return m.record(channelID, content, replyTo), nil
}

// ChannelMessageDelete implements DiscordSession.ChannelMessageDelete
func (m *MockDiscordSession) ChannelMessageDelete(channelID string, messageID string, options ...discordgo.RequestOption) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.DeletedMessages = append(m.DeletedMessages, MockMessageRef{ChannelID: channelID, MessageID: messageID})
	return nil
}

// MessageReactionAdd implements DiscordSession.MessageReactionAdd
func (m *MockDiscordSession) MessageReactionAdd(channelID string, messageID string, emojiID string, options ...discordgo.RequestOption) error {
	if m.ReactionError != nil {
		return m.ReactionError
	}
	m.Reactions = append(m.Reactions, MockReaction{ChannelID: channelID, MessageID: messageID, Emoji: emojiID})
	return nil
}

// Channel implements DiscordSession.Channel
func (m *MockDiscordSession) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if m.ChannelError != nil {
		return nil, m.ChannelError
	}
	if ch, ok := m.Channels[channelID]; ok {
		return ch, nil
	}
	return nil, fmt.Errorf("unknown channel %s", channelID)
}

// UserChannelCreate implements DiscordSession.UserChannelCreate
func (m *MockDiscordSession) UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if m.UserChannelError != nil {
		return nil, m.UserChannelError
	}
	return &discordgo.Channel{
		ID:   m.DMChannelID,
		Type: discordgo.ChannelTypeDM,
	}, nil
}

// GuildMember implements DiscordSession.GuildMember
func (m *MockDiscordSession) GuildMember(guildID string, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error) {
	if m.MemberError != nil {
		return nil, m.MemberError
	}
	if member, ok := m.Members[userID]; ok {
		return member, nil
	}
	return nil, fmt.Errorf("unknown member %s", userID)
}

// GuildMemberNickname implements DiscordSession.GuildMemberNickname
func (m *MockDiscordSession) GuildMemberNickname(guildID string, userID string, nickname string, options ...discordgo.RequestOption) error {
	if m.NicknameError != nil {
		return m.NicknameError
	}
	m.Nicknames = append(m.Nicknames, MockMemberChange{GuildID: guildID, UserID: userID, Value: nickname})
	return nil
}

// GuildMemberRoleAdd implements DiscordSession.GuildMemberRoleAdd
func (m *MockDiscordSession) GuildMemberRoleAdd(guildID string, userID string, roleID string, options ...discordgo.RequestOption) error {
	if m.RoleAddError != nil {
		return m.RoleAddError
	}
	m.RolesAdded = append(m.RolesAdded, MockMemberChange{GuildID: guildID, UserID: userID, Value: roleID})
	return nil
}

// GuildRoles implements DiscordSession.GuildRoles
func (m *MockDiscordSession) GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error) {
	if m.RolesError != nil {
		return nil, m.RolesError
	}
	return m.Roles, nil
}

// GetLastMessage returns the last message sent, or empty MockMessage if none
func (m *MockDiscordSession) GetLastMessage() MockMessage {
	if len(m.SentMessages) == 0 {
		return MockMessage{}
	}
	return m.SentMessages[len(m.SentMessages)-1]
}

// MessagesTo returns the content of every message sent to a channel, in order
func (m *MockDiscordSession) MessagesTo(channelID string) []string {
	var contents []string
	for _, msg := range m.SentMessages {
		if msg.ChannelID == channelID {
			contents = append(contents, msg.Content)
		}
	}
	return contents
}

// ClearMessages clears all stored messages
func (m *MockDiscordSession) ClearMessages() {
	m.SentMessages = nil
}

func (m *MockDiscordSession) record(channelID string, content string, replyTo string) *discordgo.Message {
	m.nextID++
	msg := MockMessage{
		ID:        fmt.Sprintf("mock_message_%d", m.nextID),
		ChannelID: channelID,
		Content:   content,
		ReplyTo:   replyTo,
	}
	m.SentMessages = append(m.SentMessages, msg)
	return &discordgo.Message{
		ID:        msg.ID,
		ChannelID: channelID,
		Content:   content,
	}
}

// NewMockDiscordSession creates a new MockDiscordSession for testing
func NewMockDiscordSession() *MockDiscordSession {
	return &MockDiscordSession{
		SentMessages: make([]MockMessage, 0),
		Channels:     make(map[string]*discordgo.Channel),
		Members:      make(map[string]*discordgo.Member),
		DMChannelID:  "dm_channel",
	}
}
