//go:build purego

// Pure Go SQLite driver for CGO_ENABLED=0 builds.

package shared

import (
	_ "modernc.org/sqlite"
)

const (
	driverName    = "sqlite"
	driverPackage = "modernc.org/sqlite"
)
