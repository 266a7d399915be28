package replication

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msavela/walstream/eventbus"
	"github.com/msavela/walstream/proto"
)

func TestRelationCacheUpsertAndGet(t *testing.T) {
	c := make(relationCache)
	_, ok := c.get(1)
	assert.False(t, ok)

	c.upsert(1, RelationInfo{Schema: "public", Table: "t", Columns: []string{"id"}})
	info, ok := c.get(1)
	require.True(t, ok)
	assert.Equal(t, "public", info.Schema)
	assert.Equal(t, "t", info.Table)
}

func TestGateOnSubscribersUnblocksWhenSubscriberJoins(t *testing.T) {
	bus := eventbus.New()
	d := NewDriver("", bus)

	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		done <- d.gateOnSubscribers(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	sub := bus.Subscribe()
	defer sub.Close()

	require.NoError(t, <-done)
}

func TestGateOnSubscribersCanceledContext(t *testing.T) {
	bus := eventbus.New()
	d := NewDriver("", bus)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.gateOnSubscribers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPublishRowEventAdvancesLastSent(t *testing.T) {
	bus := eventbus.New()
	d := NewDriver("", bus)
	sub := bus.Subscribe()
	defer sub.Close()

	d.publishRowEvent(&proto.ServerMessage{Msg: &proto.ServerMessage_Insert{Insert: &proto.InsertEvent{PgLsn: 7}}}, 7)

	assert.Equal(t, uint64(7), bus.LastSent().Get())
	evt := <-sub.Events()
	assert.Equal(t, uint64(7), evt.GetInsert().GetPgLsn())
}

func TestPublishRowEventNoSubscribersLeavesWatermark(t *testing.T) {
	bus := eventbus.New()
	d := NewDriver("", bus)

	d.publishRowEvent(&proto.ServerMessage{Msg: &proto.ServerMessage_Insert{Insert: &proto.InsertEvent{PgLsn: 7}}}, 7)

	assert.Equal(t, uint64(0), bus.LastSent().Get())
}
