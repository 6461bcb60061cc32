package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

const userColumns = "id, name, surname, subscribed, phone"

// UserRepository persists [models.User] rows.
//
// FavoriteBooks is not stored here; see [FavoriteRepository].
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new [UserRepository] with the given database connection
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and sets its ID from the generated row id.
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (name, surname, subscribed, phone) VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query, user.Name, user.Surname, user.Subscribed, user.Phone)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user id: %w", err)
	}
	user.ID = id

	return nil
}

// Exists reports whether a user with the given natural key is stored.
func (r *UserRepository) Exists(key models.UserKey) (bool, error) {
	return exists(r.db,
		"SELECT 1 FROM users WHERE name = ? AND surname = ? AND phone = ?",
		key.Name, key.Surname, key.Phone,
	)
}

// GetByKey retrieves the first user with the given natural key.
func (r *UserRepository) GetByKey(key models.UserKey) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE name = ? AND surname = ? AND phone = ?
		ORDER BY id
		LIMIT 1
	`

	user, err := scanUser(r.db.QueryRow(query, key.Name, key.Surname, key.Phone))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s %s (%s)", shared.ErrUserNotFound, key.Name, key.Surname, key.Phone)
	}
	return user, err
}

// GetByName retrieves the first user (lowest id) with an exact name and surname match.
func (r *UserRepository) GetByName(name, surname string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE name = ? AND surname = ?
		ORDER BY id
		LIMIT 1
	`

	user, err := scanUser(r.db.QueryRow(query, name, surname))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s %s", shared.ErrUserNotFound, name, surname)
	}
	return user, err
}

// scanUser scans one row selected with userColumns. [sql.ErrNoRows] is returned unwrapped.
func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Surname, &user.Subscribed, &user.Phone)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}
