/* replies.go
 * Contains the registry of members the bot is waiting on for a direct message reply. Onboarding registers a wait
 * before sending each question, and the message handler hands matching DMs over
 */

package bot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

var ErrReplyTimeout = errors.New("timed out waiting for a reply")

type replyKey struct {
	channelID string
	userID    string
}

type pendingReply struct {
	ch chan *discordgo.Message
}

type replyWaiter struct {
	mu      sync.Mutex
	pending map[replyKey]*pendingReply
}

func newReplyWaiter() *replyWaiter {
	return &replyWaiter{pending: make(map[replyKey]*pendingReply)}
}

// expect registers interest in the next message from userID in channelID. The returned release func must be
// called once the caller stops waiting. A newer expect for the same key replaces an older one.
func (w *replyWaiter) expect(channelID string, userID string) (<-chan *discordgo.Message, func()) {
	key := replyKey{channelID: channelID, userID: userID}
	p := &pendingReply{ch: make(chan *discordgo.Message, 1)}

	w.mu.Lock()
	w.pending[key] = p
	w.mu.Unlock()

	release := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.pending[key] == p {
			delete(w.pending, key)
		}
	}
	return p.ch, release
}

// deliver hands a message to the wait registered for its channel and author, if any.
// Only the first message satisfies a wait.
func (w *replyWaiter) deliver(message *discordgo.Message) bool {
	if message == nil || message.Author == nil {
		return false
	}
	key := replyKey{channelID: message.ChannelID, userID: message.Author.ID}

	w.mu.Lock()
	p, ok := w.pending[key]
	if ok {
		delete(w.pending, key)
	}
	w.mu.Unlock()

	if !ok {
		return false
	}
	p.ch <- message
	return true
}

// waiting reports whether a wait is registered for the member in the channel
func (w *replyWaiter) waiting(channelID string, userID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.pending[replyKey{channelID: channelID, userID: userID}]
	return ok
}

// count returns the number of registered waits
func (w *replyWaiter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// await blocks until a message arrives on replies, the timeout passes or ctx is cancelled
func await(ctx context.Context, replies <-chan *discordgo.Message, timeout time.Duration) (*discordgo.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case message := <-replies:
		return message, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrReplyTimeout
		}
		return nil, ctx.Err()
	}
}
