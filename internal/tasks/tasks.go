package tasks

import (
	"database/sql"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/repositories"
	"github.com/desertthunder/shelf/internal/shared"
)

// ImportResult counts what an import inserted.
//
// Rows that already existed under their natural key are counted in Users but not in the Added fields.
type ImportResult struct {
	Users      int // User records processed
	UsersAdded int // New users rows
	BooksAdded int // New books rows
	LinksAdded int // New user_books rows
}

// Add accumulates other into r.
func (r *ImportResult) Add(other ImportResult) {
	r.Users += other.Users
	r.UsersAdded += other.UsersAdded
	r.BooksAdded += other.BooksAdded
	r.LinksAdded += other.LinksAdded
}

// Library wires the repositories of one database handle together.
type Library struct {
	db        *sql.DB
	tracks    *repositories.TrackRepository
	users     *repositories.UserRepository
	books     *repositories.BookRepository
	favorites *repositories.FavoriteRepository
	logger    *log.Logger
}

// NewLibrary creates a Library over db. A nil logger discards output.
func NewLibrary(db *sql.DB, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Library{
		db:        db,
		tracks:    repositories.NewTrackRepository(db),
		users:     repositories.NewUserRepository(db),
		books:     repositories.NewBookRepository(db),
		favorites: repositories.NewFavoriteRepository(db),
		logger:    logger,
	}
}

// Initialize creates the schema and seeds the music table when it is empty.
func (l *Library) Initialize() error {
	l.logger.Debug("initializing schema", "tables", shared.Tables)
	return shared.InitializeSchema(l.db)
}

// Teardown drops every table.
func (l *Library) Teardown() error {
	l.logger.Debug("dropping schema", "tables", shared.Tables)
	return shared.DropSchema(l.db)
}

// Tracks lists every track.
func (l *Library) Tracks() ([]models.Track, error) {
	return l.tracks.List()
}

// TracksExcluding lists tracks whose names contain neither of the first two characters of chars.
func (l *Library) TracksExcluding(chars string) ([]models.Track, error) {
	return l.tracks.ListExcluding(chars)
}

// AddTrack inserts a track. A taken id fails with the database error.
func (l *Library) AddTrack(id int, name string) error {
	if err := l.tracks.Create(models.Track{ID: id, Name: name}); err != nil {
		return err
	}
	l.logger.Debug("added track", "id", id, "name", name)
	return nil
}

// BooksByYear lists every book, oldest first.
func (l *Library) BooksByYear() ([]models.Book, error) {
	return l.books.ListByYear()
}

// BooksBefore lists books published strictly before year, oldest first.
func (l *Library) BooksBefore(year int) ([]models.Book, error) {
	return l.books.ListBeforeYear(year)
}

// ImportFile reads user records from path and imports them.
//
// Load failures wrap [shared.ErrLoadFailed] and leave the database untouched.
func (l *Library) ImportFile(path string) (*ImportResult, error) {
	users, err := ReadUsers(path)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("read user records", "path", path, "count", len(users))
	return l.Import(users)
}

// Import stores users and their favorite books, skipping rows whose natural key is taken.
//
// Users match on (name, surname, phone), books on ISBN. Existing rows are never updated.
// Every favorite book is linked to its user, whether the book row is new or not.
func (l *Library) Import(users []models.User) (*ImportResult, error) {
	result := &ImportResult{}

	for i := range users {
		added, err := l.importUser(&users[i])
		if err != nil {
			return result, err
		}
		result.Add(added)
	}

	return result, nil
}

func (l *Library) importUser(user *models.User) (ImportResult, error) {
	result := ImportResult{Users: 1}

	found, err := l.users.Exists(user.Key())
	if err != nil {
		return result, err
	}

	if !found {
		if err := l.users.Create(user); err != nil {
			return result, err
		}
		result.UsersAdded++
	} else {
		l.logger.Debug("user exists, skipping", "name", user.Name, "surname", user.Surname)
	}

	if !user.HasFavorites() {
		return result, nil
	}

	if found {
		stored, err := l.users.GetByKey(user.Key())
		if err != nil {
			return result, err
		}
		user.ID = stored.ID
	}

	for i := range user.FavoriteBooks {
		book := &user.FavoriteBooks[i]

		added, err := l.storeBook(book)
		if err != nil {
			return result, err
		}
		if added {
			result.BooksAdded++
		}

		linked, err := l.favorites.Exists(user.ID, book.ID)
		if err != nil {
			return result, err
		}
		if linked {
			continue
		}
		if err := l.favorites.Create(user.ID, book.ID); err != nil {
			return result, err
		}
		result.LinksAdded++
	}

	return result, nil
}

// storeBook inserts book unless its ISBN is stored, and sets book.ID either way.
func (l *Library) storeBook(book *models.Book) (bool, error) {
	found, err := l.books.Exists(book.ISBN)
	if err != nil {
		return false, err
	}

	if !found {
		if err := l.books.Create(book); err != nil {
			return false, err
		}
		return true, nil
	}

	l.logger.Debug("book exists, skipping", "isbn", book.ISBN)
	stored, err := l.books.GetByISBN(book.ISBN)
	if err != nil {
		return false, err
	}
	book.ID = stored.ID
	return false, nil
}

// AddReader stores a single user with the given favorite books.
func (l *Library) AddReader(user models.User, favorites []models.Book) (*ImportResult, error) {
	user.FavoriteBooks = favorites
	return l.Import([]models.User{user})
}

// UserWithBooks looks up the first user named name surname and fills in their favorite books.
//
// Returns an error wrapping [shared.ErrUserNotFound] when no user matches.
func (l *Library) UserWithBooks(name, surname string) (*models.User, error) {
	user, err := l.users.GetByName(name, surname)
	if err != nil {
		return nil, err
	}

	books, err := l.favorites.ListBooks(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites of %s %s: %w", name, surname, err)
	}

	user.FavoriteBooks = books
	return user, nil
}
