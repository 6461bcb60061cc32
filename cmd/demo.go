package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/shelf/internal/formatter"
	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
	"github.com/desertthunder/shelf/internal/tasks"
	"github.com/urfave/cli/v3"
)

const (
	newTrackID   = 21
	newTrackName = "Thunderstruck"
	excluded     = "mt"
	cutoffYear   = 2000
)

var (
	reader = models.User{
		Name:       "Александр",
		Surname:    "Рубцов",
		Subscribed: true,
		Phone:      "8***2699236",
	}
	readerBooks = []models.Book{
		{Name: "Martin Iden", ISBN: "9780132350884", PublishingYear: 2008, Author: "Jack London", Publisher: "Jack London"},
		{Name: "Effective Java", ISBN: "9780134685991", PublishingYear: 2018, Author: "Joshua Bloch", Publisher: "Addison-Wesley"},
	}
)

type demoStep struct {
	title string
	run   func() error
}

// Demo creates the schema, runs the eight report steps against it and drops it again.
//
// Only a failed books.json load is recovered; every other error ends the run.
func (r *Runner) Demo(ctx context.Context, cmd *cli.Command) error {
	config := r.resolveConfig(cmd)

	level, err := shared.ParseLogLevel(config.Logging.Level)
	if err != nil {
		return err
	}
	r.logger.SetLevel(level)

	logger, runID := shared.NewRunLogger(r.logger)
	logger.Debug("starting demo",
		"database", config.Database.Path,
		"books", config.Library.BooksPath,
		"driver", shared.DriverName(),
		"driver_package", shared.DriverPackage(),
	)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	lib := tasks.NewLibrary(db, logger)
	if err := lib.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	for i, step := range r.steps(lib, config.Library.BooksPath, logger) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.writeHeader(i+1, step.title); err != nil {
			return err
		}
		if err := step.run(); err != nil {
			return err
		}
	}

	logger.Debug("demo complete", "run", runID)
	return nil
}

func (r *Runner) steps(lib *tasks.Library, booksPath string, logger *log.Logger) []demoStep {
	return []demoStep{
		{
			title: "Все музыкальные композиции:",
			run: func() error {
				tracks, err := lib.Tracks()
				if err != nil {
					return fmt.Errorf("failed to list tracks: %w", err)
				}
				return formatter.WriteTracks(r.output, tracks)
			},
		},
		{
			title: "Композиции без букв 'm' и 't':",
			run: func() error {
				tracks, err := lib.TracksExcluding(excluded)
				if err != nil {
					return fmt.Errorf("failed to filter tracks: %w", err)
				}
				return formatter.WriteTracks(r.output, tracks)
			},
		},
		{
			title: "Добавляем новую композицию...",
			run: func() error {
				if err := lib.AddTrack(newTrackID, newTrackName); err != nil {
					return err
				}
				return r.writePlainln("%s", r.palette.OK("Добавлена новая композиция: "+newTrackName))
			},
		},
		{
			title: "Обрабатываем books.json...",
			run: func() error {
				return r.importBooks(lib, booksPath, logger)
			},
		},
		{
			title: "Книги, отсортированные по году издания:",
			run: func() error {
				books, err := lib.BooksByYear()
				if err != nil {
					return fmt.Errorf("failed to list books: %w", err)
				}
				return formatter.WriteBooks(r.output, books, "")
			},
		},
		{
			title: fmt.Sprintf("Книги, изданные до %d года:", cutoffYear),
			run: func() error {
				books, err := lib.BooksBefore(cutoffYear)
				if err != nil {
					return fmt.Errorf("failed to list books: %w", err)
				}
				return formatter.WriteBooks(r.output, books, "")
			},
		},
		{
			title: "Добавляем информацию о себе...",
			run: func() error {
				return r.addReader(lib)
			},
		},
		{
			title: "Удаляем таблицы...",
			run: func() error {
				if err := lib.Teardown(); err != nil {
					return fmt.Errorf("failed to drop tables: %w", err)
				}
				return r.writePlainln("%s", r.palette.OK("Таблицы удалены."))
			},
		},
	}
}

// importBooks loads users and books from path. A load failure is logged and the step is skipped.
func (r *Runner) importBooks(lib *tasks.Library, path string, logger *log.Logger) error {
	result, err := lib.ImportFile(path)
	if errors.Is(err, shared.ErrLoadFailed) {
		logger.Error("failed to load books, skipping import", "path", path, "error", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	logger.Info("imported books", "path", path, "users", result.Users)
	return r.writePlainln("Добавлено пользователей: %d, книг: %d, связей: %d",
		result.UsersAdded, result.BooksAdded, result.LinksAdded)
}

func (r *Runner) addReader(lib *tasks.Library) error {
	if _, err := lib.AddReader(reader, readerBooks); err != nil {
		return fmt.Errorf("failed to add reader: %w", err)
	}

	if err := r.writePlainln("%s", r.palette.OK("Информация добавлена:")); err != nil {
		return err
	}

	user, err := lib.UserWithBooks(reader.Name, reader.Surname)
	if errors.Is(err, shared.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return formatter.WriteUserWithBooks(r.output, *user)
}

// resolveConfig starts from the runner's config, applies the config file when it exists,
// then the --books and --debug flags.
func (r *Runner) resolveConfig(cmd *cli.Command) *shared.Config {
	config := *r.config

	if path := cmd.String("config"); path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := shared.LoadConfig(path)
			if err != nil {
				r.logger.Warn("failed to load config, using defaults", "path", path, "error", err)
			} else {
				config = *loaded
			}
		}
	}

	if cmd.IsSet("books") {
		config.Library.BooksPath = cmd.String("books")
	}
	if cmd.Bool("debug") {
		config.Logging.Level = "debug"
	}
	return &config
}
