/* rename.go
 * Contains the "!update-title" command which lets graduates change the company part of their nickname
 */

package bot

import (
	"errors"
	"fmt"
	"strings"

	"ducs-bot/profile"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
	"github.com/samber/lo"
)

const (
	noNameReply       = "Unable to determine your name from your profile."
	noYearReply       = "Couldn't determine your graduation year."
	notGraduateReply  = "This command is only available to graduates or those graduating this year."
	titleUpdatedReply = "Your nickname has been updated to: %s"
	titleFailedReply  = "I couldn't update your nickname. Please contact an admin."
)

var spaceSplitter, _ = splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)

// updateTitleHandler handles the !update-title command
// Preconditions: Receives a guild message starting with !update-title
// Postconditions: The member's nickname has its company replaced (or cleared) if the nickname can be parsed and the
// member has graduated. The reply and the command message are deleted after the reply TTL
func (b *Bot) updateTitleHandler(session DiscordSession, message *discordgo.MessageCreate) {
	log := b.logger.With("guild", message.GuildID, "user", message.Author.ID)

	company := parseTitleArgument(message.Content)
	current := b.currentName(session, message)

	p, err := profile.ParseDisplayName(current)
	switch {
	case errors.Is(err, profile.ErrNoName):
		b.replyAndDelete(session, message, noNameReply)
		return
	case err != nil:
		b.replyAndDelete(session, message, noYearReply)
		return
	}

	if p.ClassYear > b.now().Year() {
		b.replyAndDelete(session, message, notGraduateReply)
		return
	}

	p.Company = company
	nickname := p.DisplayName()
	if err := session.GuildMemberNickname(message.GuildID, message.Author.ID, nickname); err != nil {
		log.Error("failed to update nickname", "nickname", nickname, "err", err)
		b.replyAndDelete(session, message, titleFailedReply)
		return
	}
	log.Info("nickname updated", "nickname", nickname)
	b.replyAndDelete(session, message, fmt.Sprintf(titleUpdatedReply, nickname))
}

// currentName returns the member's nickname, falling back to their account username when none is set
func (b *Bot) currentName(session DiscordSession, message *discordgo.MessageCreate) string {
	member := message.Member
	if member == nil {
		var err error
		member, err = session.GuildMember(message.GuildID, message.Author.ID)
		if err != nil {
			b.logger.Warn("failed to look up member", "guild", message.GuildID, "user", message.Author.ID, "err", err)
		}
	}
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	return message.Author.Username
}

// replyAndDelete replies to the command, then deletes the reply and the command after the reply TTL
func (b *Bot) replyAndDelete(session DiscordSession, message *discordgo.MessageCreate, content string) {
	toDelete := []string{}
	reply, err := session.ChannelMessageSendReply(message.ChannelID, content, message.Reference())
	if err != nil {
		b.logger.Error("failed to reply to command", "channel", message.ChannelID, "err", err)
	} else {
		toDelete = append(toDelete, reply.ID)
	}
	toDelete = append(toDelete, message.ID)
	b.deleteLater(session, message.ChannelID, toDelete, b.Settings.ReplyTTL)
}

// parseTitleArgument returns everything after the command word as the new company, with quotes removed.
// An empty result means the company should be cleared
func parseTitleArgument(content string) string {
	args, err := spaceSplitter.Split(content)
	if err != nil {
		// Unbalanced quotes, fall back to plain whitespace splitting
		args = strings.Fields(content)
	}
	if len(args) < 2 {
		return ""
	}

	words := lo.Map(args[1:], func(arg string, _ int) string {
		arg = strings.ReplaceAll(arg, "\"", "")
		arg = strings.ReplaceAll(arg, "“", "")
		arg = strings.ReplaceAll(arg, "”", "")
		return strings.TrimSpace(arg)
	})
	return strings.Join(lo.Compact(words), " ")
}
