package repositories

import (
	"database/sql"
	"fmt"
)

// rowScanner is satisfied by both [sql.Row] and [sql.Rows].
type rowScanner interface {
	Scan(dest ...any) error
}

// exists runs a SELECT EXISTS(...) query and reports its result.
func exists(db *sql.DB, query string, args ...any) (bool, error) {
	var found bool
	if err := db.QueryRow("SELECT EXISTS("+query+")", args...).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return found, nil
}
