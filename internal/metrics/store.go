// Package metrics records per-command execution telemetry.
package metrics

import (
	"context"
	"database/sql"
	"time"
)

// Outcome values recorded for a command execution.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// CommandMetric records metadata for a single interpreted command.
type CommandMetric struct {
	SessionID string
	Command   string
	Outcome   string
	LatencyMS int64
	Timestamp time.Time
}

// Store handles persistence of command metrics to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record saves a metric to the database.
func (s *Store) Record(m CommandMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO command_metrics (session_id, command, outcome, latency_ms, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		m.SessionID, m.Command, m.Outcome, m.LatencyMS, ts)
	return err
}

// CommandUsage represents execution totals for a single command.
type CommandUsage struct {
	Command string
	Total   int
	Errors  int
}

// SessionUsage retrieves per-command totals for one session, ordered by
// command name.
func (s *Store) SessionUsage(sessionID string) ([]CommandUsage, error) {
	rows, err := s.db.QueryContext(context.Background(),
		`SELECT command,
		        COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END)
		 FROM command_metrics
		 WHERE session_id = ?
		 GROUP BY command
		 ORDER BY command`,
		OutcomeError, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []CommandUsage
	for rows.Next() {
		var u CommandUsage
		if err := rows.Scan(&u.Command, &u.Total, &u.Errors); err != nil {
			return nil, err
		}
		results = append(results, u)
	}
	return results, rows.Err()
}

// Cleanup removes records older than the specified number of days and
// returns how many were deleted.
func (s *Store) Cleanup(olderThanDays int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	res, err := s.db.ExecContext(context.Background(),
		`DELETE FROM command_metrics WHERE timestamp < ?`, threshold)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
