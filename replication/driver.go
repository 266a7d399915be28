// Package replication implements the logical replication driver: it
// opens a replication-mode connection to PostgreSQL, ensures a logical
// replication slot exists, decodes the pgoutput stream, and republishes
// row events onto an event bus while feeding the bus's watermarks back
// into PostgreSQL's standby status protocol.
package replication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pglogrepl"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgproto3"
	"github.com/rs/zerolog/log"

	"github.com/msavela/walstream/eventbus"
	"github.com/msavela/walstream/proto"
)

const (
	outputPlugin        = "pgoutput"
	subscriberGateDelay = 100 * time.Millisecond
	reconnectDelay      = 2 * time.Second
	standbyTimeout      = 10 * time.Second
)

// ErrUnknownRelation is returned when a row event references a rel_id
// no Relation message has announced. Per the protocol contract this is
// a fatal error for the current stream_once cycle.
var ErrUnknownRelation = errors.New("replication: row event for unknown relation id")

// Driver owns the lifetime of one upstream replication connection. It
// holds no reference to the session server; all coupling to subscribers
// goes through the event bus.
type Driver struct {
	connString string
	bus        *eventbus.Bus
}

// NewDriver returns a Driver that will connect using connString and
// publish decoded events to bus.
func NewDriver(connString string, bus *eventbus.Bus) *Driver {
	return &Driver{connString: connString, bus: bus}
}

// Start runs stream_once in a supervised loop: every return, whether by
// error or by the subscriber count dropping to zero, is followed by a
// fixed 2 second sleep and another attempt. It only returns when ctx is
// canceled.
func (d *Driver) Start(ctx context.Context, publication, slotName string, temporary bool) {
	for {
		if ctx.Err() != nil {
			return
		}

		resumeLSN, err := d.streamOnce(ctx, publication, slotName, temporary)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Str("slot", slotName).Msg("stream_once exited")
		} else {
			log.Info().Str("slot", slotName).Stringer("resume_lsn", resumeLSN).Msg("stream_once returned")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

// streamOnce runs exactly one cycle: connect, ensure slot, gate on
// subscribers, start streaming, and consume until the connection drops,
// the subscriber count hits zero, or ctx is canceled. The returned LSN
// is the last one observed, logged by the caller but never used to
// override slot state upstream.
func (d *Driver) streamOnce(ctx context.Context, publication, slotName string, temporary bool) (pglogrepl.LSN, error) {
	cfg, err := pgconn.ParseConfig(d.connString)
	if err != nil {
		return 0, fmt.Errorf("parse connection string: %w", err)
	}
	if cfg.RuntimeParams == nil {
		cfg.RuntimeParams = map[string]string{}
	}
	cfg.RuntimeParams["replication"] = "database"

	conn, err := pgconn.ConnectConfig(ctx, cfg)
	if err != nil {
		return 0, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	startLSN, err := d.ensureSlot(ctx, conn, slotName, temporary)
	if err != nil {
		return 0, fmt.Errorf("ensure slot: %w", err)
	}

	if err := d.gateOnSubscribers(ctx); err != nil {
		return startLSN, err
	}

	pluginArgs := []string{
		"proto_version '1'",
		fmt.Sprintf("publication_names '%s'", publication),
	}
	if err := pglogrepl.StartReplication(ctx, conn, slotName, startLSN, pglogrepl.StartReplicationOptions{PluginArgs: pluginArgs}); err != nil {
		return startLSN, fmt.Errorf("start replication: %w", err)
	}
	log.Info().Str("slot", slotName).Str("publication", publication).Stringer("start_lsn", startLSN).Msg("replication started")

	return d.consume(ctx, conn, startLSN)
}

// ensureSlot implements §4.3 phase 2: look up the slot by name, creating
// it if absent. A newly created slot's start position is treated as 0,
// per the relay's design note that confirmed_flush_lsn for a fresh slot
// is assumed rather than read back.
func (d *Driver) ensureSlot(ctx context.Context, conn *pgconn.PgConn, slotName string, temporary bool) (pglogrepl.LSN, error) {
	rr := conn.ExecParams(ctx, "SELECT restart_lsn FROM pg_replication_slots WHERE slot_name = $1",
		[][]byte{[]byte(slotName)}, []uint32{25}, nil, nil)

	var restartLSN []byte
	found := false
	for rr.NextRow() {
		found = true
		vals := rr.Values()
		if len(vals) > 0 && vals[0] != nil {
			restartLSN = append([]byte(nil), vals[0]...)
		}
	}
	if _, err := rr.Close(); err != nil {
		return 0, fmt.Errorf("query pg_replication_slots: %w", err)
	}

	if !found {
		if _, err := pglogrepl.CreateReplicationSlot(ctx, conn, slotName, outputPlugin, pglogrepl.CreateReplicationSlotOptions{
			Temporary: temporary,
		}); err != nil {
			return 0, fmt.Errorf("create replication slot: %w", err)
		}
		log.Info().Str("slot", slotName).Bool("temporary", temporary).Msg("created replication slot")
		return 0, nil
	}

	if restartLSN == nil {
		return 0, nil
	}
	lsn, err := pglogrepl.ParseLSN(string(restartLSN))
	if err != nil {
		return 0, fmt.Errorf("parse restart_lsn: %w", err)
	}
	// PostgreSQL ignores the LSN supplied to START_REPLICATION for an
	// existing slot and resumes from confirmed_flush_lsn regardless; the
	// value is still fetched and passed for parity with the wire protocol.
	return lsn, nil
}

// gateOnSubscribers implements §4.3 phase 3: block until at least one
// subscriber exists so the decoder never consumes WAL nobody is reading.
func (d *Driver) gateOnSubscribers(ctx context.Context) error {
	if d.bus.SubscriberCount() > 0 {
		return nil
	}
	ticker := time.NewTicker(subscriberGateDelay)
	defer ticker.Stop()
	for d.bus.SubscriberCount() == 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// consume implements §4.3 phase 5: the main decode loop.
func (d *Driver) consume(ctx context.Context, conn *pgconn.PgConn, startLSN pglogrepl.LSN) (pglogrepl.LSN, error) {
	relations := make(relationCache)
	lastReceived := startLSN
	var lastAckSent pglogrepl.LSN
	lastStatusAt := time.Now()

	for {
		if ctx.Err() != nil {
			return lastReceived, ctx.Err()
		}

		rawMsg, err := conn.ReceiveMessage(ctx)
		if err != nil {
			if pgconn.Timeout(err) {
				continue
			}
			return lastReceived, fmt.Errorf("receive message: %w", err)
		}

		if errMsg, ok := rawMsg.(*pgproto3.ErrorResponse); ok {
			return lastReceived, fmt.Errorf("replication error from upstream: %+v", errMsg)
		}

		msg, ok := rawMsg.(*pgproto3.CopyData)
		if !ok {
			log.Warn().Type("message", rawMsg).Msg("unexpected message on replication connection")
			continue
		}
		if len(msg.Data) == 0 {
			continue
		}

		switch msg.Data[0] {
		case pglogrepl.PrimaryKeepaliveMessageByteID:
			if _, err := pglogrepl.ParsePrimaryKeepaliveMessage(msg.Data[1:]); err != nil {
				return lastReceived, fmt.Errorf("parse keepalive: %w", err)
			}
			if err := d.maybeSendStandbyStatus(ctx, conn, &lastAckSent, &lastStatusAt); err != nil {
				return lastReceived, fmt.Errorf("send standby status: %w", err)
			}

		case pglogrepl.XLogDataByteID:
			xld, err := pglogrepl.ParseXLogData(msg.Data[1:])
			if err != nil {
				return lastReceived, fmt.Errorf("parse xlog data: %w", err)
			}

			if d.bus.SubscriberCount() == 0 {
				return lastReceived, nil
			}

			lastReceived = xld.ServerWALEnd
			d.bus.LastReceived().Set(uint64(xld.ServerWALEnd))

			if err := d.dispatch(xld, relations); err != nil {
				return lastReceived, err
			}
		}
	}
}

// dispatch decodes one logical message body and publishes the row
// events it describes, per §4.3's consume-loop dispatch table.
func (d *Driver) dispatch(xld pglogrepl.XLogData, relations relationCache) error {
	logicalMsg, err := pglogrepl.Parse(xld.WALData)
	if err != nil {
		return fmt.Errorf("parse logical message: %w", err)
	}

	switch m := logicalMsg.(type) {
	case *pglogrepl.RelationMessage:
		cols := make([]string, len(m.Columns))
		for i, c := range m.Columns {
			cols[i] = c.Name
		}
		relations.upsert(m.RelationID, RelationInfo{Schema: m.Namespace, Table: m.RelationName, Columns: cols})

	case *pglogrepl.InsertMessage:
		rel, ok := relations.get(m.RelationID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownRelation, m.RelationID)
		}
		payload, err := buildPayload(rel.Columns, m.Tuple.Columns)
		if err != nil {
			return fmt.Errorf("build insert payload: %w", err)
		}
		d.publishRowEvent(&proto.ServerMessage{Msg: &proto.ServerMessage_Insert{Insert: &proto.InsertEvent{
			PgLsn: uint64(xld.ServerWALEnd), Schema: rel.Schema, Table: rel.Table, JsonPayload: payload,
		}}}, xld.ServerWALEnd)

	case *pglogrepl.UpdateMessage:
		rel, ok := relations.get(m.RelationID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownRelation, m.RelationID)
		}
		payload, err := buildPayload(rel.Columns, m.NewTuple.Columns)
		if err != nil {
			return fmt.Errorf("build update payload: %w", err)
		}
		d.publishRowEvent(&proto.ServerMessage{Msg: &proto.ServerMessage_Update{Update: &proto.UpdateEvent{
			PgLsn: uint64(xld.ServerWALEnd), Schema: rel.Schema, Table: rel.Table, JsonPayload: payload,
		}}}, xld.ServerWALEnd)

	case *pglogrepl.DeleteMessage:
		rel, ok := relations.get(m.RelationID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownRelation, m.RelationID)
		}
		payload, err := buildPayload(rel.Columns, m.OldTuple.Columns)
		if err != nil {
			return fmt.Errorf("build delete payload: %w", err)
		}
		d.publishRowEvent(&proto.ServerMessage{Msg: &proto.ServerMessage_Delete{Delete: &proto.DeleteEvent{
			PgLsn: uint64(xld.ServerWALEnd), Schema: rel.Schema, Table: rel.Table, JsonPayload: payload,
		}}}, xld.ServerWALEnd)

	case *pglogrepl.TruncateMessage:
		for _, relID := range m.RelationIDs {
			rel, ok := relations.get(relID)
			if !ok {
				return fmt.Errorf("%w: %d", ErrUnknownRelation, relID)
			}
			d.publishRowEvent(&proto.ServerMessage{Msg: &proto.ServerMessage_Truncate{Truncate: &proto.TruncateEvent{
				PgLsn: uint64(xld.ServerWALEnd), Schema: rel.Schema, Table: rel.Table,
			}}}, xld.ServerWALEnd)
		}

	default:
		// Begin, Commit, Origin, Type, Message, and streaming variants carry
		// no row data the relay's contract needs to forward.
	}

	return nil
}

// publishRowEvent publishes evt and, on successful delivery, advances
// last_sent_lsn. Per the upstream implementation this happens once per
// published event rather than once per frame, so a Truncate touching N
// relations produces N updates to the same wal_end value.
func (d *Driver) publishRowEvent(evt *proto.ServerMessage, lsn pglogrepl.LSN) {
	if err := d.bus.Publish(evt); err != nil {
		if !errors.Is(err, eventbus.ErrNoSubscribers) {
			log.Warn().Err(err).Msg("publish failed")
		}
		return
	}
	d.bus.LastSent().Set(uint64(lsn))
}

// maybeSendStandbyStatus implements §4.3's keepalive handling and P3:
// a status update is sent iff last_ack_lsn changed since the last update
// or at least 10 seconds have elapsed. The keepalive payload itself
// (including its reply-requested flag) carries no further weight here,
// matching the upstream implementation's PrimaryKeepAlive handling.
func (d *Driver) maybeSendStandbyStatus(ctx context.Context, conn *pgconn.PgConn, lastAckSent *pglogrepl.LSN, lastStatusAt *time.Time) error {
	currentAck := pglogrepl.LSN(d.bus.LastAck().Get())
	ackChanged := currentAck != *lastAckSent
	due := time.Since(*lastStatusAt) >= standbyTimeout

	if !ackChanged && !due {
		return nil
	}

	received := pglogrepl.LSN(d.bus.LastReceived().Get())
	sent := pglogrepl.LSN(d.bus.LastSent().Get())

	if err := pglogrepl.SendStandbyStatusUpdate(ctx, conn, pglogrepl.StandbyStatusUpdate{
		WALWritePosition: received,
		WALFlushPosition: sent,
		WALApplyPosition: currentAck,
	}); err != nil {
		return err
	}

	*lastAckSent = currentAck
	*lastStatusAt = time.Now()
	log.Debug().Stringer("received", received).Stringer("sent", sent).Stringer("acked", currentAck).Msg("sent standby status update")
	return nil
}
