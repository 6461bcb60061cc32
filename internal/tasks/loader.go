package tasks

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

// ReadUsers reads a books.json file: a JSON array of users with optional favorite books.
//
// Every failure wraps [shared.ErrLoadFailed] so callers can treat it as "nothing to load".
func ReadUsers(path string) ([]models.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", shared.ErrLoadFailed, path, err)
	}

	users, err := DecodeUsers(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", shared.ErrLoadFailed, path, err)
	}
	return users, nil
}

// DecodeUsers parses user records. A null or empty array is [shared.ErrNoUsers];
// a null record inside the array is an error.
func DecodeUsers(data []byte) ([]models.User, error) {
	var records []*models.User
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse user records: %w", err)
	}

	if len(records) == 0 {
		return nil, shared.ErrNoUsers
	}

	users := make([]models.User, len(records))
	for i, record := range records {
		if record == nil {
			return nil, fmt.Errorf("user record %d is null", i)
		}
		users[i] = *record
	}
	return users, nil
}
