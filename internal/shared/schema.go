package shared

import (
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var schemaFiles embed.FS

// Tables lists every table the schema creates, in creation order.
var Tables = []string{"music", "users", "books", "user_books"}

// SchemaStep is one versioned pair of schema scripts.
//
// Up creates (and, for music, seeds) a table; Down drops it.
type SchemaStep struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// loadSchema reads all scripts from the embedded filesystem and returns them sorted by version.
func loadSchema() ([]SchemaStep, error) {
	entries, err := schemaFiles.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}

	steps := make(map[int]*SchemaStep)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}

		// "0002_books_up.sql" -> version 2, name "books"
		parts := strings.Split(strings.TrimSuffix(name, ".sql"), "_")
		if len(parts) < 3 {
			continue
		}

		version, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}

		content, err := schemaFiles.ReadFile(path.Join("sql", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file %s: %w", name, err)
		}

		if steps[version] == nil {
			steps[version] = &SchemaStep{
				Version: version,
				Name:    strings.Join(parts[1:len(parts)-1], "_"),
			}
		}

		switch parts[len(parts)-1] {
		case "up":
			steps[version].Up = string(content)
		case "down":
			steps[version].Down = string(content)
		}
	}

	var result []SchemaStep
	for _, step := range steps {
		if step.Up == "" || step.Down == "" {
			return nil, fmt.Errorf("incomplete schema step for version %d", step.Version)
		}
		result = append(result, *step)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})

	return result, nil
}

// InitializeSchema creates the music, users, books and user_books tables if they
// are missing and seeds music when it is empty.
//
// Safe to call repeatedly: tables use IF NOT EXISTS and the seed insert is guarded
// by WHERE NOT EXISTS. Each statement commits on its own.
func InitializeSchema(db *sql.DB) error {
	steps, err := loadSchema()
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	for _, step := range steps {
		if err := execScript(db, step.Up); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", step.Name, err)
		}
	}
	return nil
}

// DropSchema drops every table in reverse creation order.
//
// The connection stays open. There is no way back within the run.
func DropSchema(db *sql.DB) error {
	steps, err := loadSchema()
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	for i := len(steps) - 1; i >= 0; i-- {
		if err := execScript(db, steps[i].Down); err != nil {
			return fmt.Errorf("failed to drop %s: %w", steps[i].Name, err)
		}
	}
	return nil
}

// execScript executes each statement of script separately.
//
// Statements are cut at every ';' and comments at every "--", string literals included,
// so the embedded scripts must keep both out of their literals.
func execScript(db *sql.DB, script string) error {
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(removeComments(stmt))
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute statement: %w\nStatement: %s", err, stmt)
		}
	}
	return nil
}

// removeComments removes SQL line comments from a statement.
func removeComments(sql string) string {
	lines := strings.Split(sql, "\n")
	var result []string
	for _, line := range lines {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
