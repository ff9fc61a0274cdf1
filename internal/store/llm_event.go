package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const defaultQueryLimit = 50

// migrate creates the llm_events table if missing. The schema is
// append-only; rows are never updated.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS llm_events (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at     TEXT    NOT NULL,
		session_id     TEXT    NOT NULL DEFAULT '',
		provider       TEXT    NOT NULL,
		model          TEXT    NOT NULL,
		purpose        TEXT    NOT NULL,
		input_tokens   INTEGER NOT NULL DEFAULT 0,
		output_tokens  INTEGER NOT NULL DEFAULT 0,
		latency_ms     INTEGER NOT NULL DEFAULT 0,
		success        INTEGER NOT NULL,
		error_message  TEXT    NOT NULL DEFAULT '',
		request_body   TEXT    NOT NULL DEFAULT '',
		response_body  TEXT    NOT NULL DEFAULT ''
	)`)
	if err != nil {
		return fmt.Errorf("create llm_events: %w", err)
	}
	return nil
}

// eventRepo implements EventRepo on plain database/sql.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO llm_events
		(created_at, session_id, provider, model, purpose,
		 input_tokens, output_tokens, latency_ms, success,
		 error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.SessionID,
		data.Provider,
		data.Model,
		data.Purpose,
		data.InputTokens,
		data.OutputTokens,
		data.LatencyMs,
		boolToInt(data.Success),
		data.ErrorMessage,
		data.RequestBody,
		data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	query := `SELECT id, created_at, session_id, provider, model, purpose,
		input_tokens, output_tokens, latency_ms, success,
		error_message, request_body, response_body
		FROM llm_events`
	args := []any{}
	if opts.Purpose != "" {
		query += ` WHERE purpose = ?`
		args = append(args, opts.Purpose)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, created_at, session_id, provider,
		model, purpose, input_tokens, output_tokens, latency_ms, success,
		error_message, request_body, response_body
		FROM llm_events WHERE id = ?`, id)

	e, err := scanLLMEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.usage(ctx, "purpose")
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.usage(ctx, "model")
}

func (r *eventRepo) usage(ctx context.Context, group string) ([]LLMUsage, error) {
	// group is a column name from a fixed internal set, never user input.
	query := fmt.Sprintf(`SELECT %s, COUNT(*),
		COALESCE(SUM(input_tokens), 0),
		COALESCE(SUM(output_tokens), 0),
		COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)
		FROM llm_events GROUP BY %s ORDER BY SUM(input_tokens) + SUM(output_tokens) DESC`,
		group, group)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}
	defer rows.Close()

	var stats []LLMUsage
	for rows.Next() {
		var u LLMUsage
		var key string
		if err := rows.Scan(&key, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		if group == "purpose" {
			u.Purpose = key
		} else {
			u.Model = key
		}
		stats = append(stats, u)
	}
	return stats, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(s scanner) (*LLMEvent, error) {
	var e LLMEvent
	var ts string
	var success int
	err := s.Scan(&e.ID, &ts, &e.SessionID, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody)
	if err != nil {
		return nil, err
	}
	e.Success = success != 0

	parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(ts))
	if err != nil {
		return nil, fmt.Errorf("parse event timestamp %q: %w", ts, err)
	}
	e.Timestamp = parsed

	return &e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
