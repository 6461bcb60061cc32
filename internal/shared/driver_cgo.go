//go:build !purego

// CGO SQLite driver, the default. Build with -tags purego for modernc.org/sqlite.

package shared

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	driverName    = "sqlite3"
	driverPackage = "github.com/mattn/go-sqlite3"
)
