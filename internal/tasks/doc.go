// Package tasks composes the repositories into the operations of the library demo.
//
// # Loading
//
// [ReadUsers] reads a books.json file: a JSON array of users, each with an optional
// favoriteBooks array. Any failure (missing file, malformed JSON, null or empty array)
// wraps [shared.ErrLoadFailed], which callers treat as "nothing to load".
//
// # Importing
//
// [Library.Import] deduplicates on natural keys before every insert:
//   - users on (name, surname, phone)
//   - books on ISBN
//   - user_books links on (user, book)
//
// Existing rows are left untouched even when other fields differ. There are no
// transactions; each insert commits on its own.
//
// # Queries
//
// [Library] also exposes the track listings, the year-ordered book listings and
// [Library.UserWithBooks], which returns a user with the books linked to them.
package tasks
