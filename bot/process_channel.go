/* process_channel.go
 * Contains the handler that enforces the "!process <company> <stage>" format in the interview process channels
 */

package bot

import (
	"ducs-bot/process"

	"github.com/bwmarrin/discordgo"
)

const (
	acceptedReaction = "✅"
	offerReply       = "Congrats 💐!"
)

// processChannelHandler checks a message posted in a process channel
// Preconditions: Receives a non-bot message from a process channel
// Postconditions: A valid submission gets a reaction (and a congratulation for offers). An invalid one is deleted
// and a correction notice is posted, which is itself deleted after the notice TTL
func (b *Bot) processChannelHandler(session DiscordSession, message *discordgo.MessageCreate) {
	log := b.logger.With("channel", message.ChannelID, "user", message.Author.ID, "message", message.ID)

	submission, ok := process.Parse(message.Content)
	if ok {
		if err := session.MessageReactionAdd(message.ChannelID, message.ID, acceptedReaction); err != nil {
			log.Error("failed to react to submission", "err", err)
		}
		if submission.IsOffer() {
			if _, err := session.ChannelMessageSend(message.ChannelID, offerReply); err != nil {
				log.Error("failed to send offer reply", "err", err)
			}
		}
		return
	}

	if err := session.ChannelMessageDelete(message.ChannelID, message.ID); err != nil {
		log.Error("failed to delete invalid submission", "err", err)
	}

	suggestion, _ := process.SuggestStage(message.Content)
	notice, err := session.ChannelMessageSend(message.ChannelID, process.FormatNotice(message.Author.ID, suggestion))
	if err != nil {
		log.Error("failed to send format notice", "err", err)
		return
	}
	b.deleteLater(session, notice.ChannelID, []string{notice.ID}, b.Settings.NoticeTTL)
}
