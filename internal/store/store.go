// Package store is an optional, CLI-only reference persistence adapter
// (SPEC_FULL.md §3.2). It is deliberately NOT part of the engine's call
// path: spec.md scopes persistence of the returned updated state outside
// the engine entirely ("the engine is purely functional; the caller
// persists") — this package exists only to show what a caller does with
// engine.Result, so operators running `commissionsd process`/`batch` with
// --store can inspect prior runs.
//
// Grounded on the teacher's internal/storage/relationaldb/postgres
// (database/sql over a driver-specific DSN, schema initialized on open);
// modernc.org/sqlite is the teacher's other storage driver and is a better
// fit here than PostgreSQL for a single-file CLI adapter with no server to
// administer.
package store

import (
	"database/sql"
	"encoding/json"

	_ "modernc.org/sqlite"

	"github.com/dealsyte/commissions-engine/internal/types"
)

// Store is a thin wrapper over a single sqlite file recording processed
// deal results keyed by the source file path.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the sqlite database at path and ensures
// its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS processed_deals (
			source_path TEXT PRIMARY KEY,
			deal_name TEXT NOT NULL,
			net_payout TEXT NOT NULL,
			response_json TEXT NOT NULL,
			state_json TEXT NOT NULL,
			processed_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		)
	`)
	return err
}

// RecordDeal upserts the result of processing sourcePath.
func (s *Store) RecordDeal(sourcePath string, resp types.Response, state types.ContractState) error {
	respJSON, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO processed_deals (source_path, deal_name, net_payout, response_json, state_json)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(source_path) DO UPDATE SET
			deal_name = excluded.deal_name,
			net_payout = excluded.net_payout,
			response_json = excluded.response_json,
			state_json = excluded.state_json,
			processed_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')
	`, sourcePath, resp.DealSummary.DealName, resp.Calculations.NetPayout.String(), string(respJSON), string(stateJSON))
	return err
}

// Close closes the underlying connection.
func (s *Store) Close() error { return s.db.Close() }
