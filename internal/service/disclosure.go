package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"custodial-wallet-vault/internal/core/domain"
	"custodial-wallet-vault/internal/core/ports"
)

type messageRef struct {
	chatID    int64
	messageID int
}

// Disclosure delivers sensitive content through the transport and
// guarantees its timed removal. Timers are process-local: a restart
// forgets pending deletions, which is why every send schedules before
// returning rather than lazily.
type Disclosure struct {
	transport ports.Transport
	log       zerolog.Logger

	// deleteTimeout bounds the transport call made from a timer, which has
	// no caller context to inherit.
	deleteTimeout time.Duration

	mu      sync.Mutex
	pending map[messageRef]*time.Timer
}

func NewDisclosure(transport ports.Transport, log zerolog.Logger) *Disclosure {
	return &Disclosure{
		transport:     transport,
		log:           log,
		deleteTimeout: 10 * time.Second,
		pending:       make(map[messageRef]*time.Timer),
	}
}

// SendSensitive sends content under the level's disclosure policy and
// schedules its deletion. A failed send schedules nothing.
func (d *Disclosure) SendSensitive(ctx context.Context, chatID int64, content string, level domain.SensitivityLevel, keyboard [][]ports.KeyboardButton) (int, error) {
	policy := level.Policy()

	messageID, err := d.transport.SendMessage(ctx, chatID, content, ports.SendOptions{
		Protect:  policy.Protect,
		Keyboard: keyboard,
	})
	if err != nil {
		return 0, fmt.Errorf("sending %s message: %w", level, err)
	}

	d.ScheduleDeletion(chatID, messageID, policy.TTL)

	d.log.Debug().
		Int64("chat_id", chatID).
		Int("message_id", messageID).
		Str("level", level.String()).
		Dur("ttl", policy.TTL).
		Msg("sensitive message sent")
	return messageID, nil
}

// ScheduleDeletion arranges best-effort deletion after the delay.
// Rescheduling the same message replaces the previous timer.
func (d *Disclosure) ScheduleDeletion(chatID int64, messageID int, delay time.Duration) {
	ref := messageRef{chatID: chatID, messageID: messageID}

	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.pending[ref]; ok {
		prev.Stop()
	}
	d.pending[ref] = time.AfterFunc(delay, func() {
		d.fire(ref)
	})
}

// DeleteNow cancels any pending timer and deletes immediately. Used for
// user-triggered early removal; failures are swallowed like timer fires.
func (d *Disclosure) DeleteNow(ctx context.Context, chatID int64, messageID int) {
	ref := messageRef{chatID: chatID, messageID: messageID}

	d.mu.Lock()
	if t, ok := d.pending[ref]; ok {
		t.Stop()
		delete(d.pending, ref)
	}
	d.mu.Unlock()

	d.delete(ctx, ref)
}

// Stop cancels every pending timer without deleting anything. Called on
// shutdown so in-flight timers don't race process exit.
func (d *Disclosure) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for ref, t := range d.pending {
		t.Stop()
		delete(d.pending, ref)
	}
}

func (d *Disclosure) fire(ref messageRef) {
	d.mu.Lock()
	delete(d.pending, ref)
	d.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), d.deleteTimeout)
	defer cancel()
	d.delete(ctx, ref)
}

// delete is the single best-effort deletion path. The user may have
// removed the message or the chat already, so not-found is normal here.
func (d *Disclosure) delete(ctx context.Context, ref messageRef) {
	if err := d.transport.DeleteMessage(ctx, ref.chatID, ref.messageID); err != nil {
		d.log.Debug().Err(err).
			Int64("chat_id", ref.chatID).
			Int("message_id", ref.messageID).
			Msg("message deletion failed")
		return
	}
	d.log.Debug().
		Int64("chat_id", ref.chatID).
		Int("message_id", ref.messageID).
		Msg("message deleted")
}

var _ ports.DisclosureService = (*Disclosure)(nil)
