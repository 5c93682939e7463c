package configstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Registers the "sqlite" driver.

	"github.com/macropower/configdoc/pkg/configdoc"
)

const (
	driverName = "sqlite"

	// MemoryPath opens a private in-memory database.
	MemoryPath = ":memory:"
)

var (
	_ configdoc.Collector      = (*Store)(nil)
	_ configdoc.InstallChecker = (*Store)(nil)

	ErrInvalidVariable = errors.New("invalid variable")
)

// Store reads and writes configuration variables in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Variable is a configuration variable and its translation for one locale.
type Variable struct {
	Name        string
	Value       string
	Locale      string
	Title       string
	Description string
}

// Open opens the database at path. The file is not created until the first
// write, so opening a missing database and calling [Store.Installed] leaves
// the filesystem untouched.
func Open(path string) (*Store, error) {
	db, err := sql.Open(driverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", configdoc.ErrStoreAccess, path, err)
	}

	// SQLite doesn't support multiple writers, and in-memory databases are
	// per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Store{db: db, path: path}, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + "_pragma=foreign_keys(1)"
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close() //nolint:wrapcheck
}

// Installed reports whether the database file exists and holds the
// configuration tables.
func (s *Store) Installed(ctx context.Context) (bool, error) {
	if s.path != MemoryPath {
		_, err := os.Stat(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("database file not found", slog.String("path", s.path))

			return false, nil
		}

		if err != nil {
			return false, fmt.Errorf("%w: %w", configdoc.ErrStoreAccess, err)
		}
	}

	args := make([]any, 0, len(requiredTables))
	for _, t := range requiredTables {
		args = append(args, t)
	}

	var n int

	err := s.db.QueryRowContext(ctx, countTablesQuery, args...).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("%w: list tables: %w", configdoc.ErrStoreAccess, err)
	}

	return n == len(requiredTables), nil
}

// Install creates the configuration tables. It is safe to call more than once.
func (s *Store) Install(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", configdoc.ErrStoreAccess, err)
	}
	defer rollback(tx)

	for _, stmt := range schema {
		_, err := tx.ExecContext(ctx, stmt)
		if err != nil {
			return fmt.Errorf("%w: create schema: %w", configdoc.ErrStoreAccess, err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("%w: commit: %w", configdoc.ErrStoreAccess, err)
	}

	slog.Debug("installed schema", slog.String("path", s.path))

	return nil
}

// Collect returns every configuration variable with its title and description
// in locale, ordered by creation. Variables without a translation for locale
// get empty strings.
func (s *Store) Collect(ctx context.Context, locale string) ([]configdoc.Entry, error) {
	rows, err := s.db.QueryContext(ctx, collectQuery, locale)
	if err != nil {
		return nil, fmt.Errorf("%w: query config: %w", configdoc.ErrStoreAccess, err)
	}
	defer rows.Close()

	entries := []configdoc.Entry{}

	for rows.Next() {
		var e configdoc.Entry

		err := rows.Scan(&e.Name, &e.Title, &e.Description)
		if err != nil {
			return nil, fmt.Errorf("%w: scan config: %w", configdoc.ErrStoreAccess, err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read config: %w", configdoc.ErrStoreAccess, err)
	}

	return entries, nil
}

// Set inserts or updates a variable and its translation for v.Locale.
func (s *Store) Set(ctx context.Context, v Variable) error {
	if v.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidVariable)
	}

	if v.Locale == "" {
		v.Locale = configdoc.DefaultLocale
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", configdoc.ErrStoreAccess, err)
	}
	defer rollback(tx)

	now := time.Now().Unix()

	_, err = tx.ExecContext(ctx, upsertConfigQuery, v.Name, v.Value, now, now)
	if err != nil {
		return fmt.Errorf("%w: upsert config %q: %w", configdoc.ErrStoreAccess, v.Name, err)
	}

	var id int64

	err = tx.QueryRowContext(ctx, selectConfigIDQuery, v.Name).Scan(&id)
	if err != nil {
		return fmt.Errorf("%w: find config %q: %w", configdoc.ErrStoreAccess, v.Name, err)
	}

	_, err = tx.ExecContext(ctx, upsertI18nQuery, id, v.Locale, v.Title, v.Description)
	if err != nil {
		return fmt.Errorf("%w: upsert translation %q: %w", configdoc.ErrStoreAccess, v.Name, err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("%w: commit: %w", configdoc.ErrStoreAccess, err)
	}

	slog.Debug("set config variable",
		slog.String("name", v.Name),
		slog.String("locale", v.Locale),
	)

	return nil
}

// SetValue inserts or updates a variable without touching its translations.
func (s *Store) SetValue(ctx context.Context, name, value string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidVariable)
	}

	now := time.Now().Unix()

	_, err := s.db.ExecContext(ctx, upsertConfigQuery, name, value, now, now)
	if err != nil {
		return fmt.Errorf("%w: upsert config %q: %w", configdoc.ErrStoreAccess, name, err)
	}

	return nil
}

func rollback(tx *sql.Tx) {
	err := tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		slog.Warn("failed to roll back", slog.Any("err", err))
	}
}
