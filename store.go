package sitegen

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database holding a page table. Rows keep the position
// at which their path was first saved, so a table read back lists pages in
// the order they were written.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &FSError{Op: "mkdir", Path: dir, Err: err}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sitegen: open store: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("sitegen: configure store: %w", err)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sitegen: store schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS pages (
    path TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    h1 TEXT NOT NULL,
    description TEXT NOT NULL,
    breadcrumb TEXT NOT NULL DEFAULT '',
    color TEXT NOT NULL DEFAULT '',
    services TEXT NOT NULL DEFAULT '[]',
    stats TEXT NOT NULL DEFAULT '[]'
);
`)
	return err
}

const upsertPage = `INSERT INTO pages (path, position, title, h1, description, breadcrumb, color, services, stats)
VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM pages), ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(path) DO UPDATE SET
    title = excluded.title,
    h1 = excluded.h1,
    description = excluded.description,
    breadcrumb = excluded.breadcrumb,
    color = excluded.color,
    services = excluded.services,
    stats = excluded.stats`

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func savePage(db execer, p Page) error {
	services, err := encodeList(p.Config.Services)
	if err != nil {
		return err
	}
	stats, err := encodeList(p.Config.Stats)
	if err != nil {
		return err
	}
	c := p.Config
	_, err = db.Exec(upsertPage, p.Path, c.Title, c.H1, c.Desc, c.Breadcrumb, c.Color, services, stats)
	return err
}

// SavePage upserts a single page. An existing path keeps its position.
func (s *Store) SavePage(p Page) error {
	return savePage(s.db, p)
}

// SaveTable upserts every page of t in one transaction, in table order.
func (s *Store) SaveTable(t Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, p := range t {
		if err := savePage(tx, p); err != nil {
			tx.Rollback()
			return fmt.Errorf("sitegen: save %s: %w", p.Path, err)
		}
	}
	return tx.Commit()
}

// ListPages returns the stored table ordered by position.
func (s *Store) ListPages() (Table, error) {
	rows, err := s.db.Query(`SELECT path, title, h1, description, breadcrumb, color, services, stats FROM pages ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []Page
	for rows.Next() {
		var path, services, stats string
		var c PageConfig
		if err := rows.Scan(&path, &c.Title, &c.H1, &c.Desc, &c.Breadcrumb, &c.Color, &services, &stats); err != nil {
			return nil, err
		}
		if c.Services, err = decodeList(services); err != nil {
			return nil, fmt.Errorf("sitegen: services of %s: %w", path, err)
		}
		if c.Stats, err = decodeList(stats); err != nil {
			return nil, fmt.Errorf("sitegen: stats of %s: %w", path, err)
		}
		pages = append(pages, Page{Path: path, Config: c})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return NewTable(pages...), nil
}

// GetPage returns the page stored under path, or sql.ErrNoRows.
func (s *Store) GetPage(path string) (Page, error) {
	var services, stats string
	var c PageConfig
	err := s.db.QueryRow(`SELECT title, h1, description, breadcrumb, color, services, stats FROM pages WHERE path = ?`, path).
		Scan(&c.Title, &c.H1, &c.Desc, &c.Breadcrumb, &c.Color, &services, &stats)
	if err != nil {
		return Page{}, err
	}
	if c.Services, err = decodeList(services); err != nil {
		return Page{}, err
	}
	if c.Stats, err = decodeList(stats); err != nil {
		return Page{}, err
	}
	return Page{Path: path, Config: c}, nil
}

// DeletePage removes a page by path.
func (s *Store) DeletePage(path string) error {
	_, err := s.db.Exec(`DELETE FROM pages WHERE path = ?`, path)
	return err
}

// encodeList stores list fields as JSON arrays; entries such as
// "Payment APIs (Stripe, PayPal)" contain commas.
func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(s string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}
