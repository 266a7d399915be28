// Package admin implements the one-shot replication slot commands: list
// and delete. Both operate over an ordinary (non-replication) SQL
// connection, independent of the replication driver's connection.
package admin

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Slot is one row of pg_replication_slots rendered for the list
// command.
type Slot struct {
	SlotName           string
	Database           *string
	SlotType           string
	Temporary          bool
	Active             bool
	RestartLSN         *string
	ConfirmedFlushLSN  *string
	WALStatus          *string
	Conflicting        *bool
}

// List returns every row of pg_replication_slots on the server
// identified by connString.
func List(ctx context.Context, connString string) ([]Slot, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	rows, err := conn.Query(ctx, `SELECT slot_name, database, slot_type, temporary, active,
		restart_lsn, confirmed_flush_lsn, wal_status, conflicting FROM pg_replication_slots`)
	if err != nil {
		return nil, fmt.Errorf("query pg_replication_slots: %w", err)
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		var s Slot
		if err := rows.Scan(&s.SlotName, &s.Database, &s.SlotType, &s.Temporary, &s.Active,
			&s.RestartLSN, &s.ConfirmedFlushLSN, &s.WALStatus, &s.Conflicting); err != nil {
			return nil, fmt.Errorf("scan replication slot row: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate replication slots: %w", err)
	}
	return slots, nil
}

// Delete drops the named replication slot. Both success and "no such
// slot" are reported to the caller as nil error with a boolean
// indicating whether a slot was actually dropped; any other failure is
// returned as an error.
func Delete(ctx context.Context, connString, slotName string) (dropped bool, err error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return false, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	rows, err := conn.Query(ctx,
		"SELECT pg_drop_replication_slot(slot_name) FROM pg_replication_slots WHERE slot_name = $1", slotName)
	if err != nil {
		return false, fmt.Errorf("drop replication slot %q: %w", slotName, err)
	}
	defer rows.Close()

	for rows.Next() {
		dropped = true
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("drop replication slot %q: %w", slotName, err)
	}
	return dropped, nil
}
