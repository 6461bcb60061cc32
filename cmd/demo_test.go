package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/shelf/internal/shared"
	tu "github.com/desertthunder/shelf/internal/testing"
)

var seededTracks = []string{
	"Bohemian Rhapsody", "Stairway to Heaven", "Imagine", "Sweet Child O Mine", "Hey Jude",
	"Hotel California", "Billie Jean", "Wonderwall", "Smells Like Teen Spirit", "Let It Be",
	"I Want It All", "November Rain", "Losing My Religion", "One", "With or Without You",
	"Sweet Caroline", "Yesterday", "Dont Stop Believin", "Crazy Train", "Always",
}

const (
	martinIdenLine    = "Martin Iden (9780132350884), автор: Jack London, год: 2008, издатель: Jack London"
	effectiveJavaLine = "Effective Java (9780134685991), автор: Joshua Bloch, год: 2018, издатель: Addison-Wesley"
)

// runDemo runs the shelf command with args and returns stdout and log output.
func runDemo(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var output, logs bytes.Buffer
	runner := NewRunner(RunnerOpts{
		Logger: shared.NewLogger(&logs),
		Output: &output,
	})

	err := rootCommand(runner).Run(context.Background(), append([]string{"shelf"}, args...))
	return output.String(), logs.String(), err
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func TestDemo(t *testing.T) {
	t.Run("full report", func(t *testing.T) {
		dir := t.TempDir()
		books := tu.MustWriteFile(t, dir, "books.json", tu.OneUserTwoBooks)

		output, logs, err := runDemo(t, "--books", books, "--config", filepath.Join(dir, "missing.toml"))
		if err != nil {
			t.Fatalf("demo failed: %v\nlogs:\n%s", err, logs)
		}

		expected := lines("1. Все музыкальные композиции:") +
			lines(seededTracks...) +
			lines("", "2. Композиции без букв 'm' и 't':",
				"Hey Jude", "Billie Jean", "Wonderwall", "One", "Always") +
			lines("", "3. Добавляем новую композицию...",
				"Добавлена новая композиция: Thunderstruck") +
			lines("", "4. Обрабатываем books.json...",
				"Добавлено пользователей: 1, книг: 2, связей: 2") +
			lines("", "5. Книги, отсортированные по году издания:",
				martinIdenLine, effectiveJavaLine) +
			lines("", "6. Книги, изданные до 2000 года:") +
			lines("", "7. Добавляем информацию о себе...",
				"Информация добавлена:",
				"Пользователь: Александр Рубцов, телефон: 8***2699236, подписка: активна",
				"Любимые книги:",
				"  "+martinIdenLine,
				"  "+effectiveJavaLine) +
			lines("", "8. Удаляем таблицы...", "Таблицы удалены.")

		if output != expected {
			t.Errorf("unexpected report\nexpected:\n%s\ngot:\n%s", expected, output)
		}
	})

	t.Run("pre-2000 books are listed in step 6", func(t *testing.T) {
		dir := t.TempDir()
		books := tu.MustWriteFile(t, dir, "books.json", `[
			{"name": "Anna", "surname": "Smirnova", "subscribed": false, "phone": "2",
			 "favoriteBooks": [{"name": "Dune", "isbn": "9780441013593", "publishingYear": 1965,
			                    "author": "Frank Herbert", "publisher": "Chilton"}]}
		]`)

		output, _, err := runDemo(t, "-b", books, "-c", filepath.Join(dir, "missing.toml"))
		if err != nil {
			t.Fatalf("demo failed: %v", err)
		}

		step6 := "6. Книги, изданные до 2000 года:\nDune (9780441013593), автор: Frank Herbert, год: 1965, издатель: Chilton\n"
		if !strings.Contains(output, step6) {
			t.Errorf("expected step 6 to list Dune, got:\n%s", output)
		}

		if strings.Contains(output, "  Dune") {
			t.Error("the reader's favorites must not include other users' books")
		}
	})

	t.Run("missing books file still reaches teardown", func(t *testing.T) {
		dir := t.TempDir()

		output, logs, err := runDemo(t, "--books", filepath.Join(dir, "nope.json"), "--config", filepath.Join(dir, "missing.toml"))
		if err != nil {
			t.Fatalf("demo failed: %v", err)
		}

		if !strings.Contains(logs, "failed to load books") {
			t.Errorf("expected load failure to be logged, got:\n%s", logs)
		}
		if strings.Contains(output, "Добавлено пользователей") {
			t.Error("expected no import summary after a load failure")
		}
		if !strings.HasSuffix(output, lines("8. Удаляем таблицы...", "Таблицы удалены.")) {
			t.Errorf("expected report to end with teardown, got:\n%s", output)
		}

		step5 := "5. Книги, отсортированные по году издания:\n\n6."
		if !strings.Contains(output, step5) {
			t.Errorf("expected no books in step 5, got:\n%s", output)
		}
	})

	t.Run("malformed books file still reaches teardown", func(t *testing.T) {
		dir := t.TempDir()
		books := tu.MustWriteFile(t, dir, "books.json", `[{"name": `)

		output, logs, err := runDemo(t, "--books", books, "--config", filepath.Join(dir, "missing.toml"))
		if err != nil {
			t.Fatalf("demo failed: %v", err)
		}
		if !strings.Contains(logs, "failed to load books") {
			t.Errorf("expected load failure to be logged, got:\n%s", logs)
		}
		if !strings.Contains(output, "Таблицы удалены.") {
			t.Errorf("expected teardown, got:\n%s", output)
		}
	})

	t.Run("no arguments reads books.json and config.toml from the working directory", func(t *testing.T) {
		dir := t.TempDir()
		tu.MustWriteFile(t, dir, "books.json", `[]`)
		tu.MustWriteFile(t, dir, "library.json", tu.OneUserTwoBooks)
		tu.MustWriteFile(t, dir, "config.toml", "[library]\nbooks_path = \"library.json\"\n")

		wd := tu.MustGetwd(t)
		tu.MustChdir(t, dir)
		t.Cleanup(func() { tu.MustChdir(t, wd) })

		output, logs, err := runDemo(t)
		if err != nil {
			t.Fatalf("demo failed: %v\nlogs:\n%s", err, logs)
		}
		if !strings.Contains(output, "Добавлено пользователей: 1, книг: 2, связей: 2") {
			t.Errorf("expected config books_path to be imported, got:\n%s", output)
		}
	})

	t.Run("books flag overrides config", func(t *testing.T) {
		dir := t.TempDir()
		books := tu.MustWriteFile(t, dir, "books.json", tu.OneUserTwoBooks)
		config := tu.MustWriteFile(t, dir, "config.toml", "[library]\nbooks_path = \"elsewhere.json\"\n")

		output, _, err := runDemo(t, "--config", config, "--books", books)
		if err != nil {
			t.Fatalf("demo failed: %v", err)
		}
		if !strings.Contains(output, "Добавлено пользователей: 1") {
			t.Errorf("expected --books to win over config, got:\n%s", output)
		}
	})

	t.Run("invalid config falls back to defaults", func(t *testing.T) {
		dir := t.TempDir()
		config := tu.MustWriteFile(t, dir, "config.toml", "[logging]\nlevel = \"loud\"\n")

		output, logs, err := runDemo(t, "--config", config, "--books", filepath.Join(dir, "nope.json"))
		if err != nil {
			t.Fatalf("demo failed: %v", err)
		}
		if !strings.Contains(logs, "failed to load config") {
			t.Errorf("expected config warning, got:\n%s", logs)
		}
		if !strings.Contains(output, "Таблицы удалены.") {
			t.Errorf("expected full run, got:\n%s", output)
		}
	})

	t.Run("debug flag logs run id", func(t *testing.T) {
		dir := t.TempDir()

		_, logs, err := runDemo(t, "--debug", "--books", filepath.Join(dir, "nope.json"), "--config", filepath.Join(dir, "missing.toml"))
		if err != nil {
			t.Fatalf("demo failed: %v", err)
		}
		if !strings.Contains(logs, "starting demo") {
			t.Errorf("expected debug output, got:\n%s", logs)
		}
		if !strings.Contains(logs, "run=") {
			t.Errorf("expected run id in logs, got:\n%s", logs)
		}
		if !strings.Contains(logs, "driver="+shared.DriverName()) {
			t.Errorf("expected driver name in logs, got:\n%s", logs)
		}
	})

	t.Run("write failure aborts the run", func(t *testing.T) {
		dir := t.TempDir()
		runner := NewRunner(RunnerOpts{
			Logger: shared.NewLogger(&bytes.Buffer{}),
			Output: tu.NewLimitedWriter(3, &bytes.Buffer{}),
		})

		err := rootCommand(runner).Run(context.Background(), []string{
			"shelf", "--books", filepath.Join(dir, "nope.json"), "--config", filepath.Join(dir, "missing.toml"),
		})
		if err == nil {
			t.Fatal("expected write error")
		}
		if !strings.Contains(err.Error(), "failed to write output") {
			t.Errorf("expected write error, got %v", err)
		}
	})

	t.Run("cancelled context stops before the first step", func(t *testing.T) {
		dir := t.TempDir()
		var output bytes.Buffer
		runner := NewRunner(RunnerOpts{
			Logger: shared.NewLogger(&bytes.Buffer{}),
			Output: &output,
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := rootCommand(runner).Run(ctx, []string{"shelf", "--config", filepath.Join(dir, "missing.toml")})
		if err == nil {
			t.Fatal("expected context error")
		}
		if output.Len() != 0 {
			t.Errorf("expected no output, got %q", output.String())
		}
	})
}
