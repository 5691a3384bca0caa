package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/marketscout/compete-cli/internal/model"
)

// SQLiteRegistry implements Registry using modernc.org/sqlite. The
// record is stored as JSON text keyed by name, so both drivers share
// one serialization.
type SQLiteRegistry struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures
// WAL mode.
func NewSQLite(path string) (*SQLiteRegistry, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, eris.Wrap(err, "registry: create config dir")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: open sqlite")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "registry: exec %s", pragma)
		}
	}
	return &SQLiteRegistry{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS competitors (
	name       TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

func (r *SQLiteRegistry) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "registry: migrate")
}

func (r *SQLiteRegistry) Close() error {
	return r.db.Close()
}

func (r *SQLiteRegistry) Add(ctx context.Context, c model.Competitor) error {
	if err := validateName(c.Name); err != nil {
		return err
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(c)
	if err != nil {
		return eris.Wrap(err, "registry: marshal competitor")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO competitors (name, data, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		c.Name, string(data), c.CreatedAt,
	)
	return eris.Wrapf(err, "registry: upsert %s", c.Name)
}

func (r *SQLiteRegistry) Get(ctx context.Context, name string) (*model.Competitor, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM competitors WHERE name = ?`, name,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "registry: get %s", name)
	}

	var c model.Competitor
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, eris.Wrapf(err, "registry: unmarshal %s", name)
	}
	return &c, nil
}

func (r *SQLiteRegistry) List(ctx context.Context) ([]model.Competitor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM competitors ORDER BY name`)
	if err != nil {
		return nil, eris.Wrap(err, "registry: list")
	}
	defer rows.Close()

	var competitors []model.Competitor
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "registry: scan row")
		}
		var c model.Competitor
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			return nil, eris.Wrap(err, "registry: unmarshal row")
		}
		competitors = append(competitors, c)
	}
	return competitors, eris.Wrap(rows.Err(), "registry: iterate rows")
}

func (r *SQLiteRegistry) Remove(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM competitors WHERE name = ?`, name)
	if err != nil {
		return false, eris.Wrapf(err, "registry: remove %s", name)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, eris.Wrap(err, "registry: rows affected")
	}
	return n > 0, nil
}
