package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

// TrackRepository reads and writes the music table.
//
// Tracks are inserted, never updated; they disappear only when the schema is dropped.
type TrackRepository struct {
	db *sql.DB
}

// NewTrackRepository creates a new TrackRepository with the given database connection
func NewTrackRepository(db *sql.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

// Create inserts a track with an explicit ID.
//
// An ID that is already taken fails with the engine's UNIQUE constraint error.
func (r *TrackRepository) Create(track models.Track) error {
	_, err := r.db.Exec("INSERT INTO music (id, name) VALUES (?, ?)", track.ID, track.Name)
	if err != nil {
		return fmt.Errorf("failed to insert track %d: %w", track.ID, err)
	}
	return nil
}

// List returns every track in storage order.
func (r *TrackRepository) List() ([]models.Track, error) {
	return r.query("SELECT id, name FROM music")
}

// ListExcluding returns the tracks whose lowercased name contains neither of the
// first two characters of excluded.
//
// Case folding is Unicode-aware and done in Go on both sides; SQLite's LOWER only folds ASCII.
// Fewer than two characters is an [shared.ErrInvalidArgument].
func (r *TrackRepository) ListExcluding(excluded string) ([]models.Track, error) {
	chars := []rune(strings.ToLower(excluded))
	if len(chars) < 2 {
		return nil, fmt.Errorf("%w: need two characters to exclude, got %q", shared.ErrInvalidArgument, excluded)
	}

	tracks, err := r.List()
	if err != nil {
		return nil, err
	}

	var kept []models.Track
	for _, track := range tracks {
		name := strings.ToLower(track.Name)
		if strings.ContainsRune(name, chars[0]) || strings.ContainsRune(name, chars[1]) {
			continue
		}
		kept = append(kept, track)
	}
	return kept, nil
}

func (r *TrackRepository) query(query string, args ...any) ([]models.Track, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var track models.Track
		if err := rows.Scan(&track.ID, &track.Name); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		tracks = append(tracks, track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tracks, nil
}
