package history

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS notifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			toast_id INTEGER NOT NULL,
			type TEXT NOT NULL,
			priority TEXT NOT NULL,
			title TEXT,
			message TEXT NOT NULL,
			category TEXT,
			reason TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			dismissed_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_notifications_dismissed_at ON notifications(dismissed_at);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}
