// package models defines the records stored in the library database
package models

import (
	"encoding/json"
	"fmt"
)

// Track is a row of the music table.
type Track struct {
	ID   int
	Name string
}

// User is a library member as read from the JSON loader or the users table.
//
// FavoriteBooks is optional in the input; nil means the key was absent or null.
type User struct {
	ID            int64  `json:"-"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Subscribed    bool   `json:"subscribed"`
	Phone         string `json:"phone"`
	FavoriteBooks []Book `json:"favoriteBooks,omitempty"`
}

// Book is a row of the books table.
type Book struct {
	ID             int64  `json:"-"`
	Name           string `json:"name"`
	ISBN           string `json:"isbn"`
	PublishingYear int    `json:"publishingYear"`
	Author         string `json:"author"`
	Publisher      string `json:"publisher"`
}

// UserKey is the natural key users are deduplicated on.
type UserKey struct {
	Name    string
	Surname string
	Phone   string
}

// Key returns the user's natural key.
func (u User) Key() UserKey {
	return UserKey{Name: u.Name, Surname: u.Surname, Phone: u.Phone}
}

// HasFavorites reports whether the record carried a favoriteBooks list at all.
func (u User) HasFavorites() bool {
	return u.FavoriteBooks != nil
}

// UnmarshalJSON decodes a user object matching keys case-sensitively.
//
// encoding/json folds key case by default; the input format does not.
func (u *User) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil || fields == nil {
		return err
	}

	var decoded User
	for key, dst := range map[string]any{
		"name":          &decoded.Name,
		"surname":       &decoded.Surname,
		"subscribed":    &decoded.Subscribed,
		"phone":         &decoded.Phone,
		"favoriteBooks": &decoded.FavoriteBooks,
	} {
		if err := decodeField(fields, key, dst); err != nil {
			return fmt.Errorf("user: %w", err)
		}
	}

	*u = decoded
	return nil
}

// UnmarshalJSON decodes a book object matching keys case-sensitively.
func (b *Book) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil || fields == nil {
		return err
	}

	var decoded Book
	for key, dst := range map[string]any{
		"name":           &decoded.Name,
		"isbn":           &decoded.ISBN,
		"publishingYear": &decoded.PublishingYear,
		"author":         &decoded.Author,
		"publisher":      &decoded.Publisher,
	} {
		if err := decodeField(fields, key, dst); err != nil {
			return fmt.Errorf("book: %w", err)
		}
	}

	*b = decoded
	return nil
}

// objectFields splits a JSON object into raw values by exact key. A JSON null yields nil fields.
func objectFields(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func decodeField(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}
