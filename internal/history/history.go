// Package history keeps dismissed notifications in a SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/toasty/internal/db"
	"github.com/llehouerou/toasty/internal/toast"
)

const (
	appName    = "toasty"
	dbFileName = "history.db"

	// DefaultLimit is the number of entries kept when no limit is given.
	DefaultLimit = 50
)

// Entry is one dismissed notification.
type Entry struct {
	ID          int64
	ToastID     toast.ID
	Type        string
	Priority    string
	Title       string
	Message     string
	Category    string
	Reason      toast.DismissReason
	CreatedAt   time.Time
	DismissedAt time.Time
}

// Store persists dismissed notifications, keeping only the newest limit
// entries. It implements toast.HistorySink.
type Store struct {
	db    *sql.DB
	limit int
	now   func() time.Time
}

var _ toast.HistorySink = (*Store)(nil)

// Open opens the history database in the XDG data directory.
func Open(limit int) (*Store, error) {
	path, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("resolve history path: %w", err)
	}
	return OpenPath(path, limit)
}

// OpenPath opens (creating if needed) the history database at path.
func OpenPath(path string, limit int) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{db: conn, limit: limit, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a dismissed notification and trims the oldest entries
// beyond the limit.
func (s *Store) Record(r toast.Record, reason toast.DismissReason) error {
	return db.WithTx(s.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO notifications
				(toast_id, type, priority, title, message, category, reason, created_at, dismissed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			int64(r.ID), //nolint:gosec // ids stay far below MaxInt64
			r.Type.Key,
			r.Priority.String(),
			db.NullString(r.Style.Title),
			r.Message,
			db.NullString(r.Category),
			string(reason),
			r.CreatedAt.UnixMilli(),
			s.now().UnixMilli(),
		)
		if err != nil {
			return fmt.Errorf("insert notification: %w", err)
		}

		_, err = tx.Exec(`
			DELETE FROM notifications
			WHERE id NOT IN (SELECT id FROM notifications ORDER BY id DESC LIMIT ?)`,
			s.limit,
		)
		if err != nil {
			return fmt.Errorf("trim history: %w", err)
		}
		return nil
	})
}

// Recent returns up to n entries, newest first. n <= 0 returns everything
// kept.
func (s *Store) Recent(n int) ([]Entry, error) {
	if n <= 0 {
		n = s.limit
	}

	rows, err := s.db.Query(`
		SELECT id, toast_id, type, priority, title, message, category, reason, created_at, dismissed_at
		FROM notifications
		ORDER BY id DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                      Entry
			toastID                int64
			title, category        sql.NullString
			reason                 string
			createdAt, dismissedAt int64
		)
		if err := rows.Scan(&e.ID, &toastID, &e.Type, &e.Priority, &title, &e.Message,
			&category, &reason, &createdAt, &dismissedAt); err != nil {
			return nil, err
		}
		e.ToastID = toast.ID(toastID) //nolint:gosec // stored from a toast.ID
		e.Title = db.NullStringValue(title)
		e.Category = db.NullStringValue(category)
		e.Reason = toast.DismissReason(reason)
		e.CreatedAt = time.UnixMilli(createdAt)
		e.DismissedAt = time.UnixMilli(dismissedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM notifications`).Scan(&n)
	return n, err
}

// Clear deletes every entry.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM notifications`)
	return err
}
