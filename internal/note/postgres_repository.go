package note

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ferdiebergado/jobnotes/internal/platform/db"
	"github.com/google/uuid"
)

// Notes are kept as JSONB documents with the same field names as the
// document stores. seq preserves insertion order.
const QueryCreateTable = `
CREATE TABLE IF NOT EXISTS ` + CollectionName + ` (
    seq BIGSERIAL,
    id UUID PRIMARY KEY,
    doc JSONB NOT NULL
)`

const selectColumns = `id::text, doc->>'` + FieldTitle + `', doc->>'` + FieldBody + `'`

const (
	QueryNoteList   = `SELECT ` + selectColumns + ` FROM ` + CollectionName + ` ORDER BY seq`
	QueryNoteCreate = `INSERT INTO ` + CollectionName + ` (id, doc) VALUES ($1, $2::jsonb) RETURNING ` + selectColumns
	QueryNoteFind   = `SELECT ` + selectColumns + ` FROM ` + CollectionName + ` WHERE id = $1`
	QueryNoteUpdate = `UPDATE ` + CollectionName + ` SET doc = doc || $2::jsonb WHERE id = $1 RETURNING ` + selectColumns
	QueryNoteDelete = `DELETE FROM ` + CollectionName + ` WHERE id = $1`
)

type PostgresRepository struct {
	db db.Executor

	mu          sync.Mutex
	initialized bool
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(executor db.Executor) *PostgresRepository {
	return &PostgresRepository{db: executor}
}

// ensureTable creates the notes table once per repository. A failed attempt
// is retried on the next call.
func (r *PostgresRepository) ensureTable(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, QueryCreateTable); err != nil {
		return fmt.Errorf("%w: create table %s: %w", ErrQueryFailed, CollectionName, err)
	}

	r.initialized = true
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Note, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, QueryNoteList)
	if err != nil {
		return nil, fmt.Errorf("%w: list notes: %w", ErrQueryFailed, err)
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Body); err != nil {
			return nil, fmt.Errorf("note repository: scan row: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("note repository: iterate over note rows: %w", err)
	}

	return notes, nil
}

func (r *PostgresRepository) Create(ctx context.Context, params CreateParams) (Note, error) {
	if err := r.ensureTable(ctx); err != nil {
		return Note{}, err
	}

	doc, err := json.Marshal(map[string]string{
		FieldTitle: params.Title,
		FieldBody:  params.Body,
	})
	if err != nil {
		return Note{}, fmt.Errorf("note repository: encode document: %w", err)
	}

	var n Note
	row := r.db.QueryRowContext(ctx, QueryNoteCreate, uuid.NewString(), string(doc))
	if err := row.Scan(&n.ID, &n.Title, &n.Body); err != nil {
		return Note{}, fmt.Errorf("%w: create note: %w", ErrQueryFailed, err)
	}
	return n, nil
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (Note, error) {
	id, valid := canonicalID(id)
	if !valid {
		return Note{}, ErrNotFound
	}

	if err := r.ensureTable(ctx); err != nil {
		return Note{}, err
	}

	var n Note
	if err := r.db.QueryRowContext(ctx, QueryNoteFind, id).Scan(&n.ID, &n.Title, &n.Body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Note{}, ErrNotFound
		}
		return Note{}, fmt.Errorf("%w: find note %s: %w", ErrQueryFailed, id, err)
	}
	return n, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, params UpdateParams) (Note, error) {
	id, valid := canonicalID(id)
	if !valid {
		return Note{}, ErrNotFound
	}

	patch := make(map[string]string, 2)
	if params.Title != nil {
		patch[FieldTitle] = *params.Title
	}
	if params.Body != nil {
		patch[FieldBody] = *params.Body
	}
	if len(patch) == 0 {
		return r.Find(ctx, id)
	}

	if err := r.ensureTable(ctx); err != nil {
		return Note{}, err
	}

	doc, err := json.Marshal(patch)
	if err != nil {
		return Note{}, fmt.Errorf("note repository: encode patch: %w", err)
	}

	var n Note
	if err := r.db.QueryRowContext(ctx, QueryNoteUpdate, id, string(doc)).Scan(&n.ID, &n.Title, &n.Body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Note{}, ErrNotFound
		}
		return Note{}, fmt.Errorf("%w: update note %s: %w", ErrQueryFailed, id, err)
	}
	return n, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	id, valid := canonicalID(id)
	if !valid {
		return ErrNotFound
	}

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, QueryNoteDelete, id)
	if err != nil {
		return fmt.Errorf("%w: delete note %s: %w", ErrQueryFailed, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %w", ErrQueryFailed, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
