package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/shelf/internal/models"
)

// FavoriteRepository manages the user_books junction table.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new FavoriteRepository with the given database connection
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Exists reports whether bookID is already linked to userID.
func (r *FavoriteRepository) Exists(userID, bookID int64) (bool, error) {
	return exists(r.db, "SELECT 1 FROM user_books WHERE user_id = ? AND book_id = ?", userID, bookID)
}

// Create links bookID to userID. Both rows must exist.
func (r *FavoriteRepository) Create(userID, bookID int64) error {
	_, err := r.db.Exec("INSERT INTO user_books (user_id, book_id) VALUES (?, ?)", userID, bookID)
	if err != nil {
		return fmt.Errorf("failed to link book %d to user %d: %w", bookID, userID, err)
	}
	return nil
}

// ListBooks returns the favorite books of userID ordered by publishing year.
func (r *FavoriteRepository) ListBooks(userID int64) ([]models.Book, error) {
	query := `
		SELECT b.id, b.name, b.isbn, b.publishing_year, b.author, b.publisher
		FROM books b
		JOIN user_books ub ON ub.book_id = b.id
		WHERE ub.user_id = ?
		ORDER BY b.publishing_year, b.id
	`
	return queryBooks(r.db, query, userID)
}
