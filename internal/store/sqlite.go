package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prepcoach/prepcoach/internal/domain"
	"github.com/prepcoach/prepcoach/internal/shared"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS sessions (
		session_id TEXT PRIMARY KEY,
		phase TEXT NOT NULL,
		selections_json TEXT NOT NULL,
		history_json TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at);

	CREATE TABLE IF NOT EXISTS tasks (
		task_id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		status TEXT NOT NULL,
		delivery_status TEXT NOT NULL,
		callback_url TEXT,
		callback_token TEXT,
		result TEXT,
		failure_reason TEXT,
		attempts INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		terminal_at INTEGER
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_session ON tasks(session_id);
	CREATE INDEX IF NOT EXISTS idx_tasks_terminal ON tasks(terminal_at) WHERE terminal_at IS NOT NULL;
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// execWithRetry runs a write statement, retrying briefly on SQLite
// concurrency conflicts. WAL mode makes these rare but the retention worker
// and turn handlers do write concurrently.
func (s *SQLiteStore) execWithRetry(ctx context.Context, query string, args ...interface{}) error {
	const maxRetries = 3
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err = s.db.ExecContext(ctx, query, args...)
		if err == nil || !shared.IsSQLiteConflictError(err) {
			return err
		}
		select {
		case <-time.After(time.Duration(attempt+1) * 50 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetSession retrieves a conversation session by its ID.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `
		SELECT session_id, phase, selections_json, history_json, created_at, updated_at
		FROM sessions WHERE session_id = ?`

	row := s.db.QueryRowContext(ctx, query, sessionID)

	var sess domain.Session
	var phase, selectionsJSON, historyJSON string
	var createdAt, updatedAt int64

	err := row.Scan(&sess.ID, &phase, &selectionsJSON, &historyJSON, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan session row: %w", err)
	}

	sess.Phase = domain.Phase(phase)
	if err := json.Unmarshal([]byte(selectionsJSON), &sess.Selections); err != nil {
		return nil, fmt.Errorf("decode selections: %w", err)
	}
	if err := json.Unmarshal([]byte(historyJSON), &sess.History); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	sess.CreatedAt = time.Unix(createdAt, 0)
	sess.UpdatedAt = time.Unix(updatedAt, 0)

	return &sess, nil
}

// SaveSession creates or updates a session record.
func (s *SQLiteStore) SaveSession(ctx context.Context, sess *domain.Session) error {
	selectionsJSON, err := json.Marshal(sess.Selections)
	if err != nil {
		return fmt.Errorf("encode selections: %w", err)
	}
	historyJSON, err := json.Marshal(sess.History)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	query := `
	INSERT INTO sessions (session_id, phase, selections_json, history_json, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(session_id) DO UPDATE SET
		phase = excluded.phase,
		selections_json = excluded.selections_json,
		history_json = excluded.history_json,
		updated_at = excluded.updated_at`

	err = s.execWithRetry(ctx, query,
		sess.ID, string(sess.Phase), string(selectionsJSON), string(historyJSON),
		sess.CreatedAt.Unix(), sess.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("save session %s: %w", sess.ID, err)
	}
	return nil
}

// DeleteSession removes a session record.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.execWithRetry(ctx, `DELETE FROM sessions WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}

// GetTask retrieves a task by its ID.
func (s *SQLiteStore) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	query := taskSelect + ` WHERE task_id = ?`
	row := s.db.QueryRowContext(ctx, query, taskID)

	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan task row: %w", err)
	}
	return t, nil
}

// SaveTask creates or updates a task record.
func (s *SQLiteStore) SaveTask(ctx context.Context, t *domain.Task) error {
	var callbackURL, callbackToken interface{}
	if t.Callback != nil {
		callbackURL = t.Callback.URL
		if t.Callback.Token != "" {
			callbackToken = t.Callback.Token
		}
	}
	var terminalAt interface{}
	if t.TerminalAt != nil {
		terminalAt = t.TerminalAt.Unix()
	}

	query := `
	INSERT INTO tasks (task_id, session_id, status, delivery_status, callback_url, callback_token,
		result, failure_reason, attempts, created_at, updated_at, terminal_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(task_id) DO UPDATE SET
		status = excluded.status,
		delivery_status = excluded.delivery_status,
		result = excluded.result,
		failure_reason = excluded.failure_reason,
		attempts = excluded.attempts,
		updated_at = excluded.updated_at,
		terminal_at = excluded.terminal_at`

	err := s.execWithRetry(ctx, query,
		t.ID, t.SessionID, string(t.Status), string(t.DeliveryStatus),
		callbackURL, callbackToken, t.Result, t.FailureReason, t.Attempts,
		t.CreatedAt.Unix(), t.UpdatedAt.Unix(), terminalAt,
	)
	if err != nil {
		return fmt.Errorf("save task %s: %w", t.ID, err)
	}
	return nil
}

// DeleteTask removes a task record.
func (s *SQLiteStore) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.execWithRetry(ctx, `DELETE FROM tasks WHERE task_id = ?`, taskID); err != nil {
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}
	return nil
}

// ListTasks returns all persisted tasks.
func (s *SQLiteStore) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, taskSelect)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

const taskSelect = `
	SELECT task_id, session_id, status, delivery_status, callback_url, callback_token,
	       result, failure_reason, attempts, created_at, updated_at, terminal_at
	FROM tasks`

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row scanner) (*domain.Task, error) {
	var t domain.Task
	var status, deliveryStatus string
	var callbackURL, callbackToken, result, failureReason sql.NullString
	var createdAt, updatedAt int64
	var terminalAt sql.NullInt64

	err := row.Scan(
		&t.ID, &t.SessionID, &status, &deliveryStatus, &callbackURL, &callbackToken,
		&result, &failureReason, &t.Attempts, &createdAt, &updatedAt, &terminalAt,
	)
	if err != nil {
		return nil, err
	}

	t.Status = domain.TaskStatus(status)
	t.DeliveryStatus = domain.DeliveryStatus(deliveryStatus)
	if callbackURL.Valid {
		t.Callback = &domain.Callback{URL: callbackURL.String, Token: callbackToken.String}
	}
	t.Result = result.String
	t.FailureReason = failureReason.String
	t.CreatedAt = time.Unix(createdAt, 0)
	t.UpdatedAt = time.Unix(updatedAt, 0)
	if terminalAt.Valid {
		at := time.Unix(terminalAt.Int64, 0)
		t.TerminalAt = &at
	}

	return &t, nil
}
