package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	"github.com/msavela/walstream/eventbus"
	"github.com/msavela/walstream/proto"
)

// fakeStream is a minimal proto.PluginService_SessionServer for testing
// the Session handler without a real gRPC transport.
type fakeStream struct {
	ctx context.Context

	mu      sync.Mutex
	sent    []*proto.ServerMessage
	recvQ   chan *proto.ClientMessage
	recvErr error
}

func newFakeStream() *fakeStream {
	return &fakeStream{ctx: context.Background(), recvQ: make(chan *proto.ClientMessage, 8)}
}

func (f *fakeStream) Send(m *proto.ServerMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeStream) Recv() (*proto.ClientMessage, error) {
	m, ok := <-f.recvQ
	if !ok {
		if f.recvErr != nil {
			return nil, f.recvErr
		}
		return nil, io.EOF
	}
	return m, nil
}

func (f *fakeStream) closeRecv(err error) {
	f.recvErr = err
	close(f.recvQ)
}

func (f *fakeStream) Context() context.Context           { return f.ctx }
func (f *fakeStream) SetHeader(metadata.MD) error         { return nil }
func (f *fakeStream) SendHeader(metadata.MD) error        { return nil }
func (f *fakeStream) SetTrailer(metadata.MD)              {}
func (f *fakeStream) SendMsg(m interface{}) error         { return f.Send(m.(*proto.ServerMessage)) }
func (f *fakeStream) RecvMsg(m interface{}) error         { return nil }

func (f *fakeStream) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func TestSessionForwardsPublishedEvent(t *testing.T) {
	bus := eventbus.New()
	srv := NewServer(bus)
	stream := newFakeStream()

	done := make(chan error, 1)
	go func() { done <- srv.Session(stream) }()

	// Wait for subscription to register before publishing.
	for bus.SubscriberCount() == 0 {
		time.Sleep(time.Millisecond)
	}

	require.NoError(t, bus.Publish(&proto.ServerMessage{Msg: &proto.ServerMessage_Insert{Insert: &proto.InsertEvent{PgLsn: 9}}}))

	require.Eventually(t, func() bool { return stream.sentCount() == 1 }, time.Second, time.Millisecond)

	stream.closeRecv(nil)
	require.NoError(t, <-done)
}

func TestSessionAckUpdatesWatermark(t *testing.T) {
	bus := eventbus.New()
	srv := NewServer(bus)
	stream := newFakeStream()

	done := make(chan error, 1)
	go func() { done <- srv.Session(stream) }()

	stream.recvQ <- &proto.ClientMessage{Msg: &proto.ClientMessage_Ack{Ack: &proto.ClientAck{PgLsn: 55}}}

	require.Eventually(t, func() bool { return bus.LastAck().Get() == 55 }, time.Second, time.Millisecond)

	stream.closeRecv(nil)
	require.NoError(t, <-done)
}

func TestSessionReadErrorEndsSession(t *testing.T) {
	bus := eventbus.New()
	srv := NewServer(bus)
	stream := newFakeStream()

	done := make(chan error, 1)
	go func() { done <- srv.Session(stream) }()

	stream.closeRecv(errors.New("boom"))
	require.NoError(t, <-done)
}
