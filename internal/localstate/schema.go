package localstate

import (
	"database/sql"
)

// EnsureSchema creates the session tables if they do not exist.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS SessionCookies (
            Origin TEXT NOT NULL,
            Name TEXT NOT NULL,
            Value TEXT NOT NULL,
            SavedTime TIMESTAMP NOT NULL,
            PRIMARY KEY(Origin, Name)
        );`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
