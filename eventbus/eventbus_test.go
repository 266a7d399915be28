package eventbus

import (
	"sync"
	"testing"

	"github.com/msavela/walstream/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishNoSubscribers(t *testing.T) {
	b := New()
	err := b.Publish(&proto.ServerMessage{})
	assert.ErrorIs(t, err, ErrNoSubscribers)
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	defer sub.Close()

	assert.Equal(t, 1, b.SubscriberCount())

	msg := &proto.ServerMessage{Msg: &proto.ServerMessage_Insert{Insert: &proto.InsertEvent{PgLsn: 42}}}
	require.NoError(t, b.Publish(msg))

	got := <-sub.Events()
	assert.Equal(t, uint64(42), got.GetInsert().GetPgLsn())
}

func TestSubscribeFanOut(t *testing.T) {
	b := New()
	a := b.Subscribe()
	c := b.Subscribe()
	defer a.Close()
	defer c.Close()

	require.NoError(t, b.Publish(&proto.ServerMessage{Msg: &proto.ServerMessage_Truncate{Truncate: &proto.TruncateEvent{Table: "t"}}}))

	ga := <-a.Events()
	gc := <-c.Events()
	assert.Equal(t, "t", ga.GetTruncate().GetTable())
	assert.Equal(t, "t", gc.GetTruncate().GetTable())
}

func TestCloseRemovesSubscriber(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	require.Equal(t, 1, b.SubscriberCount())
	sub.Close()
	assert.Equal(t, 0, b.SubscriberCount())

	_, ok := <-sub.Events()
	assert.False(t, ok, "channel should be closed")
}

func TestLaggingSubscriberDropsOldest(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	defer sub.Close()

	for i := 0; i < subscriberCapacity+10; i++ {
		require.NoError(t, b.Publish(&proto.ServerMessage{
			Msg: &proto.ServerMessage_Insert{Insert: &proto.InsertEvent{PgLsn: uint64(i)}},
		}))
	}

	first := <-sub.Events()
	assert.Greater(t, first.GetInsert().GetPgLsn(), uint64(0), "oldest events should have been dropped")
}

func TestWatermarkLatestWriteWins(t *testing.T) {
	w := NewWatermark()
	assert.Equal(t, uint64(0), w.Get())

	w.Set(100)
	assert.Equal(t, uint64(100), w.Get())

	// Non-monotonic writes are accepted; the bus does not enforce ordering.
	w.Set(50)
	assert.Equal(t, uint64(50), w.Get())
}

func TestWatermarkConcurrentAccess(t *testing.T) {
	w := NewWatermark()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(v uint64) {
			defer wg.Done()
			w.Set(v)
		}(uint64(i))
	}
	wg.Wait()
	assert.Less(t, w.Get(), uint64(100))
}
