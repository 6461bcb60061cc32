package shared

import (
	"database/sql"
	"fmt"
)

// MemoryDSN names a private in-memory database that lives as long as its connection.
const MemoryDSN = ":memory:"

// NewDatabase opens a connection to a SQLite database at the specified path.
//
// The pool is pinned to a single connection: every new connection to ":memory:"
// would otherwise see its own empty database. Foreign keys are switched on for
// that connection. The driver is picked at build time, see [DriverName].
func NewDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// DriverName returns the registered database/sql driver name in use.
func DriverName() string {
	return driverName
}

// DriverPackage returns the Go package providing the SQLite driver.
func DriverPackage() string {
	return driverPackage
}
