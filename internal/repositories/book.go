package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

const bookColumns = "id, name, isbn, publishing_year, author, publisher"

// BookRepository persists [models.Book] rows.
type BookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new BookRepository with the given database connection
func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

// Create inserts a book and sets its ID from the generated row id.
//
// Nothing stops a second row with the same ISBN; check [BookRepository.Exists] first.
func (r *BookRepository) Create(book *models.Book) error {
	query := `
		INSERT INTO books (name, isbn, publishing_year, author, publisher)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query, book.Name, book.ISBN, book.PublishingYear, book.Author, book.Publisher)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get book id: %w", err)
	}
	book.ID = id

	return nil
}

// Exists reports whether a book with the given ISBN is stored.
func (r *BookRepository) Exists(isbn string) (bool, error) {
	return exists(r.db, "SELECT 1 FROM books WHERE isbn = ?", isbn)
}

// GetByISBN retrieves the first book stored with the given ISBN.
func (r *BookRepository) GetByISBN(isbn string) (*models.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE isbn = ?
		ORDER BY id
		LIMIT 1
	`

	var book models.Book
	err := scanBook(r.db.QueryRow(query, isbn), &book)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: isbn %s", shared.ErrBookNotFound, isbn)
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListByYear returns all books ordered by publishing year, oldest first.
//
// Books from the same year keep storage order.
func (r *BookRepository) ListByYear() ([]models.Book, error) {
	return queryBooks(r.db, "SELECT "+bookColumns+" FROM books ORDER BY publishing_year, id")
}

// ListBeforeYear returns books published strictly before year, oldest first.
func (r *BookRepository) ListBeforeYear(year int) ([]models.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE publishing_year < ?
		ORDER BY publishing_year, id
	`
	return queryBooks(r.db, query, year)
}

// queryBooks runs a query selecting bookColumns and collects the result.
func queryBooks(db *sql.DB, query string, args ...any) ([]models.Book, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := scanBook(rows, &book); err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return books, nil
}

// scanBook scans one row selected with bookColumns. [sql.ErrNoRows] is returned unwrapped.
func scanBook(row rowScanner, book *models.Book) error {
	err := row.Scan(&book.ID, &book.Name, &book.ISBN, &book.PublishingYear, &book.Author, &book.Publisher)
	if err == sql.ErrNoRows {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to scan book: %w", err)
	}
	return nil
}
