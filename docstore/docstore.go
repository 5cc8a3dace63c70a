// Package docstore persists schemaless JSON documents in named collections
// backed by a single SQLite file. Typed records live in the content package;
// this layer only knows collections, ids, and JSON bodies.
package docstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("docstore: document not found")

// Store wraps a SQLite database holding one documents table shared by all
// collections.
type Store struct {
	db *sql.DB
}

// Document is a stored record: an opaque id, timestamps maintained by the
// store, and the raw JSON body.
type Document struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	raw []byte
}

// Decode unmarshals the document body into v.
func (d Document) Decode(v any) error {
	if err := json.Unmarshal(d.raw, v); err != nil {
		return fmt.Errorf("decode document %s: %w", d.ID, err)
	}
	return nil
}

// Map returns the document body as a mutable field map. Every call returns a
// fresh copy, so callers can edit and write it back via Update.
func (d Document) Map() (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(d.raw, &m); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", d.ID, err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// Open opens (or creates) the document database at path, ensures the data
// directory exists, and runs schema setup.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write, busy timeout so writers wait instead of
	// failing with SQLITE_BUSY, NORMAL sync is safe with WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS documents (
    collection TEXT NOT NULL,
    id TEXT NOT NULL,
    body TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, created_at);
`)
	return err
}

func marshalBody(v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document body: %w", err)
	}
	if len(body) == 0 || body[0] != '{' {
		return nil, fmt.Errorf("document body must be a JSON object, got %s", body)
	}
	return body, nil
}

// Insert stores v as a new document in collection and returns it with a
// freshly assigned id and timestamps.
func (s *Store) Insert(collection string, v any) (Document, error) {
	body, err := marshalBody(v)
	if err != nil {
		return Document{}, err
	}
	now := time.Now().UTC()
	doc := Document{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		raw:       body,
	}
	_, err = s.db.Exec(
		`INSERT INTO documents (collection, id, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		collection, doc.ID, string(body), now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Document{}, fmt.Errorf("insert into %s: %w", collection, err)
	}
	return doc, nil
}

// Get returns the document with the given id, or ErrNotFound.
func (s *Store) Get(collection, id string) (Document, error) {
	var body, created, updated string
	err := s.db.QueryRow(
		`SELECT body, created_at, updated_at FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&body, &created, &updated)
	if err == sql.ErrNoRows {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return newDocument(id, body, created, updated)
}

// Update replaces the body of an existing document and bumps its updated
// timestamp. Missing documents yield ErrNotFound.
func (s *Store) Update(collection, id string, v any) error {
	body, err := marshalBody(v)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.Exec(
		`UPDATE documents SET body = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		string(body), now, collection, id,
	)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a document. Deleting a missing id is ErrNotFound, never a
// silent no-op.
func (s *Store) Delete(collection, id string) error {
	res, err := s.db.Exec(`DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Find returns every document in collection matching all given filters, in
// insertion order. Callers impose their own domain ordering.
func (s *Store) Find(collection string, filters ...Filter) ([]Document, error) {
	rows, err := s.db.Query(
		`SELECT id, body, created_at, updated_at FROM documents WHERE collection = ? ORDER BY created_at, id`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var id, body, created, updated string
		if err := rows.Scan(&id, &body, &created, &updated); err != nil {
			return nil, err
		}
		doc, err := newDocument(id, body, created, updated)
		if err != nil {
			return nil, err
		}
		ok, err := matchAll(doc, filters)
		if err != nil {
			return nil, err
		}
		if ok {
			docs = append(docs, doc)
		}
	}
	return docs, rows.Err()
}

// FindOne returns the first matching document or ErrNotFound.
func (s *Store) FindOne(collection string, filters ...Filter) (Document, error) {
	docs, err := s.Find(collection, filters...)
	if err != nil {
		return Document{}, err
	}
	if len(docs) == 0 {
		return Document{}, ErrNotFound
	}
	return docs[0], nil
}

// Count returns the number of matching documents.
func (s *Store) Count(collection string, filters ...Filter) (int, error) {
	if len(filters) == 0 {
		var n int
		err := s.db.QueryRow(`SELECT COUNT(*) FROM documents WHERE collection = ?`, collection).Scan(&n)
		if err != nil {
			return 0, fmt.Errorf("count %s: %w", collection, err)
		}
		return n, nil
	}
	docs, err := s.Find(collection, filters...)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

func newDocument(id, body, created, updated string) (Document, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Document{}, fmt.Errorf("parse created_at for %s: %w", id, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, updated)
	if err != nil {
		return Document{}, fmt.Errorf("parse updated_at for %s: %w", id, err)
	}
	return Document{ID: id, CreatedAt: createdAt, UpdatedAt: updatedAt, raw: []byte(body)}, nil
}

func matchAll(doc Document, filters []Filter) (bool, error) {
	if len(filters) == 0 {
		return true, nil
	}
	fields, err := doc.Map()
	if err != nil {
		return false, err
	}
	// The id column is not part of the body but filters may target it.
	fields["id"] = doc.ID
	for _, f := range filters {
		if !f.matches(fields) {
			return false, nil
		}
	}
	return true, nil
}
