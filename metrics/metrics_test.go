package metrics

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msavela/walstream/eventbus"
)

func TestWatchSamplesWatermarks(t *testing.T) {
	bus := eventbus.New()
	bus.LastReceived().Set(42)
	sub := bus.Subscribe()
	defer sub.Close()

	reg := NewRegistry()
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		reg.Watch(ctx, bus)
		close(done)
	}()
	<-done

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "walstream_last_received_lsn 42")
	assert.Contains(t, rec.Body.String(), "walstream_subscriber_count 1")
}
