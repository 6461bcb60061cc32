// Package repositories implements SQLite persistence for the library tables.
//
// Every repository wraps the explicit *sql.DB handle it is constructed with; there is no
// package-level connection. Rows are always drained and closed before a method returns,
// which matters because the database pool holds a single connection.
//
// Key Implementations:
//   - [TrackRepository] : music listing, character-exclusion filter and inserts
//   - [UserRepository] : users with natural-key (name, surname, phone) lookups
//   - [BookRepository] : books with ISBN lookups and year-ordered listings
//   - [FavoriteRepository] : user_books junction linking users to their favorite books
//
// Uniqueness of users and books is not enforced by the schema. Callers check
// Exists before Create; see the tasks package.
package repositories
