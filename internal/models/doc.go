// Package models defines the records of the library demo.
//
//   - [Track] : a row of the music table (id, name)
//   - [User] : a library member; deduplicated on [UserKey] (name, surname, phone)
//   - [Book] : a book; deduplicated on its ISBN
//
// [User] and [Book] decode from the books.json format with exact, case-sensitive
// key matching. A user's favoriteBooks list is optional: a nil slice means the key
// was absent, see [User.HasFavorites].
//
// The ID fields are database identities and never appear in JSON.
package models
