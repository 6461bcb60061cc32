// package formatter renders tracks, books and users as console lines
package formatter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/desertthunder/shelf/internal/models"
)

// Subscription renders a subscription flag in words.
func Subscription(subscribed bool) string {
	if subscribed {
		return "активна"
	}
	return "неактивна"
}

// FormatUser renders a user as "<name> <surname>, телефон: <phone>, подписка: <активна|неактивна>"
func FormatUser(u models.User) string {
	return fmt.Sprintf("%s %s, телефон: %s, подписка: %s", u.Name, u.Surname, u.Phone, Subscription(u.Subscribed))
}

// FormatBook renders a book as "<name> (<isbn>), автор: <author>, год: <year>, издатель: <publisher>"
func FormatBook(b models.Book) string {
	return fmt.Sprintf("%s (%s), автор: %s, год: %d, издатель: %s", b.Name, b.ISBN, b.Author, b.PublishingYear, b.Publisher)
}

// WriteTracks writes one track name per line.
func WriteTracks(w io.Writer, tracks []models.Track) error {
	lines := make([]string, len(tracks))
	for i, track := range tracks {
		lines[i] = track.Name
	}
	return writeLines(w, "", lines)
}

// WriteBooks writes one formatted book per line, each prefixed with indent.
func WriteBooks(w io.Writer, books []models.Book, indent string) error {
	lines := make([]string, len(books))
	for i, book := range books {
		lines[i] = FormatBook(book)
	}
	return writeLines(w, indent, lines)
}

// WriteUserWithBooks writes the user line, the "Любимые книги:" header and one indented line per book.
//
// The header is written even when the user has no books.
func WriteUserWithBooks(w io.Writer, u models.User) error {
	if _, err := fmt.Fprintf(w, "Пользователь: %s\n", FormatUser(u)); err != nil {
		return fmt.Errorf("failed to write user: %w", err)
	}

	if _, err := io.WriteString(w, "Любимые книги:\n"); err != nil {
		return fmt.Errorf("failed to write user: %w", err)
	}
	return WriteBooks(w, u.FavoriteBooks, "  ")
}

func writeLines(w io.Writer, indent string, lines []string) error {
	buf := bufio.NewWriter(w)
	for _, line := range lines {
		buf.WriteString(indent)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
