// Package eventbus implements the in-process fan-out used to get decoded
// row events from the single replication driver out to every connected
// gRPC session. It mirrors the broadcast/watch pair the original relay
// built on tokio: one broadcast channel for events, three watch cells for
// the LSN watermarks.
package eventbus

import (
	"errors"
	"sync"

	"github.com/msavela/walstream/proto"
	"github.com/rs/zerolog/log"
)

// subscriberCapacity bounds how many undelivered events a slow subscriber
// may accumulate before the bus starts dropping its oldest events.
const subscriberCapacity = 1024

// ErrNoSubscribers is returned by Publish when nobody is listening. The
// replication driver drops the event without advancing last_sent_lsn;
// it pauses streaming by checking SubscriberCount, not this error.
var ErrNoSubscribers = errors.New("eventbus: no subscribers")

// Bus is the process-wide fan-out of ServerMessage events to connected
// sessions, plus the three watermark cells every session reads from.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[uint64]chan *proto.ServerMessage
	nextID      uint64

	lastReceived *Watermark
	lastSent     *Watermark
	lastAck      *Watermark
}

// New returns an empty Bus with all three watermarks at zero.
func New() *Bus {
	return &Bus{
		subscribers:  make(map[uint64]chan *proto.ServerMessage),
		lastReceived: NewWatermark(),
		lastSent:     NewWatermark(),
		lastAck:      NewWatermark(),
	}
}

// LastReceived is the highest LSN the replication driver has decoded off
// the wire, regardless of whether it was published.
func (b *Bus) LastReceived() *Watermark { return b.lastReceived }

// LastSent is the LSN of the most recent event Publish delivered, updated
// once per relation per Truncate event and once per Insert/Update/Delete.
func (b *Bus) LastSent() *Watermark { return b.lastSent }

// LastAck is the most recent LSN any session has reported back via
// ClientAck; a later, lower ack overwrites a higher one. Sessions call
// LastAck().Set directly; it is not derived from Publish.
func (b *Bus) LastAck() *Watermark { return b.lastAck }

// Subscribe registers a new receiver and returns a Subscription the
// caller must Close when done. The returned channel delivers events in
// publish order; if the caller falls behind, the bus drops its oldest
// buffered event to make room for the newest rather than blocking the
// publisher.
func (b *Bus) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan *proto.ServerMessage, subscriberCapacity)
	b.subscribers[id] = ch

	return &Subscription{bus: b, id: id, ch: ch}
}

// SubscriberCount reports how many sessions are currently subscribed.
// The replication driver gates streaming on this being non-zero.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Publish fans msg out to every current subscriber. It never blocks: a
// subscriber whose buffer is full has its oldest event dropped to make
// room, and the drop is logged at the lagged subscriber's id. Publish
// returns ErrNoSubscribers if there is nobody to deliver to, so callers
// can treat that as backpressure rather than silently discarding data.
func (b *Bus) Publish(msg *proto.ServerMessage) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.subscribers) == 0 {
		return ErrNoSubscribers
	}

	for id, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			select {
			case <-ch:
				log.Warn().Uint64("subscriber_id", id).Msg("subscriber lagging, dropped oldest event")
			default:
			}
			select {
			case ch <- msg:
			default:
				log.Warn().Uint64("subscriber_id", id).Msg("subscriber still full after drop, dropping new event")
			}
		}
	}
	return nil
}

func (b *Bus) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subscribers[id]; ok {
		delete(b.subscribers, id)
		close(ch)
	}
}

// Subscription is a single session's view onto the bus.
type Subscription struct {
	bus *Bus
	id  uint64
	ch  chan *proto.ServerMessage
}

// Events returns the channel of events for this subscription. It is
// closed when Close is called.
func (s *Subscription) Events() <-chan *proto.ServerMessage { return s.ch }

// Close removes the subscription from the bus and closes its channel.
// Safe to call more than once.
func (s *Subscription) Close() {
	s.bus.unsubscribe(s.id)
}

// Watermark is a latest-write-wins LSN cell, analogous to a tokio
// watch channel: readers always see the most recent value, and writes
// that arrive out of order are not rejected. Per the relay's design,
// watermarks are not guaranteed monotonic; callers must not assume
// Set is only ever called with increasing values.
type Watermark struct {
	mu    sync.RWMutex
	value uint64
}

// NewWatermark returns a Watermark initialized to zero.
func NewWatermark() *Watermark {
	return &Watermark{}
}

// Get returns the current value.
func (w *Watermark) Get() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.value
}

// Set overwrites the current value unconditionally.
func (w *Watermark) Set(v uint64) {
	w.mu.Lock()
	w.value = v
	w.mu.Unlock()
}
