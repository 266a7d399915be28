// Package session implements the per-subscriber gRPC session: the
// Session RPC reads client acknowledgements in one goroutine, forwards
// event-bus broadcasts in another, and tears both down independently of
// the replication driver and of any other session.
package session

import (
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/peer"

	"github.com/msavela/walstream/eventbus"
	"github.com/msavela/walstream/proto"
)

// outboundCapacity bounds how many events may be queued for a session's
// client before the forwarder blocks waiting for it to drain.
const outboundCapacity = 32

// Server implements proto.PluginServiceServer: it owns no replication
// state, only a reference to the shared event bus.
type Server struct {
	proto.UnimplementedPluginServiceServer
	bus *eventbus.Bus
}

// NewServer returns a Server that forwards events from bus to every
// connected client and writes client acks back onto bus.
func NewServer(bus *eventbus.Bus) *Server {
	return &Server{bus: bus}
}

// Session implements the single bidirectional-streaming RPC. Per
// session it allocates a bounded outbound queue and a one-shot shutdown
// signal, then runs a reader and a forwarder until either direction
// closes. An I/O error on either direction terminates only this
// session; the replication driver and other sessions are unaffected.
func (s *Server) Session(stream proto.PluginService_SessionServer) error {
	sessionID := uuid.NewString()
	peerAddr := "unknown"
	if p, ok := peer.FromContext(stream.Context()); ok && p.Addr != nil {
		peerAddr = p.Addr.String()
	}
	logger := log.With().Str("session_id", sessionID).Str("peer", peerAddr).Logger()
	logger.Info().Msg("session started")
	defer logger.Info().Msg("session ended")

	sub := s.bus.Subscribe()
	defer sub.Close()

	outbound := make(chan *proto.ServerMessage, outboundCapacity)
	shutdown := make(chan struct{})
	var shutdownOnce sync.Once
	fireShutdown := func() { shutdownOnce.Do(func() { close(shutdown) }) }

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		s.readAcks(stream, &logger, fireShutdown)
	}()

	go func() {
		defer wg.Done()
		defer close(outbound)
		s.forward(sub, outbound, shutdown)
	}()

	sendErr := s.drainToClient(stream, outbound, shutdown)
	fireShutdown()
	wg.Wait()
	return sendErr
}

// readAcks is the reader task: it consumes ClientMessage frames and
// writes every ack's LSN to the bus's last_ack_lsn watermark. EOF or any
// read error fires the shutdown signal so the forwarder and send loop
// unwind.
func (s *Server) readAcks(stream proto.PluginService_SessionServer, logger *zerolog.Logger, fireShutdown func()) {
	defer fireShutdown()
	for {
		msg, err := stream.Recv()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Warn().Err(err).Msg("session read error")
			}
			return
		}
		if ack := msg.GetAck(); ack != nil {
			s.bus.LastAck().Set(ack.GetPgLsn())
		}
	}
}

// forward is the forwarder task: it relays bus events onto outbound
// until the subscription closes (broadcast channel gone) or shutdown
// fires. The bus's own ring buffer already absorbs a lagging
// subscriber by dropping its oldest undelivered events and logging a
// warning; the forwarder itself never blocks the publisher.
func (s *Server) forward(sub *eventbus.Subscription, outbound chan<- *proto.ServerMessage, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		case evt, ok := <-sub.Events():
			if !ok {
				return
			}
			select {
			case outbound <- evt:
			case <-shutdown:
				return
			}
		}
	}
}

// drainToClient is the send loop: it writes everything the forwarder
// enqueues to the client stream until the outbound queue closes or
// shutdown fires, preserving broadcast order for this session.
func (s *Server) drainToClient(stream proto.PluginService_SessionServer, outbound <-chan *proto.ServerMessage, shutdown <-chan struct{}) error {
	for {
		select {
		case evt, ok := <-outbound:
			if !ok {
				return nil
			}
			if err := stream.Send(evt); err != nil {
				return err
			}
		case <-shutdown:
			return nil
		}
	}
}
