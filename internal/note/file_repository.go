package note

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
)

type fileDocument struct {
	ID    string `json:"_id"`
	Title string `json:"productName"`
	Body  string `json:"price"`
}

// FileRepository keeps all notes in one JSON file, rewritten atomically on every change.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

var _ Repository = (*FileRepository)(nil)

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) load() ([]fileDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrQueryFailed, r.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var docs []fileDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrQueryFailed, r.path, err)
	}
	return docs, nil
}

func (r *FileRepository) save(docs []fileDocument) error {
	if docs == nil {
		docs = []fileDocument{}
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("note repository: encode notes: %w", err)
	}

	if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrQueryFailed, r.path, err)
	}
	return nil
}

func indexOf(docs []fileDocument, id string) int {
	return slices.IndexFunc(docs, func(d fileDocument) bool { return d.ID == id })
}

func (d fileDocument) toNote() Note {
	return Note{ID: d.ID, Title: d.Title, Body: d.Body}
}

func (r *FileRepository) List(_ context.Context) ([]Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(docs))
	for _, doc := range docs {
		notes = append(notes, doc.toNote())
	}
	return notes, nil
}

func (r *FileRepository) Create(_ context.Context, params CreateParams) (Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return Note{}, err
	}

	doc := fileDocument{ID: uuid.NewString(), Title: params.Title, Body: params.Body}
	if err := r.save(append(docs, doc)); err != nil {
		return Note{}, err
	}
	return doc.toNote(), nil
}

func (r *FileRepository) Find(_ context.Context, id string) (Note, error) {
	id, valid := canonicalID(id)
	if !valid {
		return Note{}, ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return Note{}, err
	}

	i := indexOf(docs, id)
	if i < 0 {
		return Note{}, ErrNotFound
	}
	return docs[i].toNote(), nil
}

func (r *FileRepository) Update(_ context.Context, id string, params UpdateParams) (Note, error) {
	id, valid := canonicalID(id)
	if !valid {
		return Note{}, ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return Note{}, err
	}

	i := indexOf(docs, id)
	if i < 0 {
		return Note{}, ErrNotFound
	}

	updated := params.Apply(docs[i].toNote())
	docs[i].Title, docs[i].Body = updated.Title, updated.Body
	if err := r.save(docs); err != nil {
		return Note{}, err
	}
	return updated, nil
}

func (r *FileRepository) Delete(_ context.Context, id string) error {
	id, valid := canonicalID(id)
	if !valid {
		return ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return err
	}

	i := indexOf(docs, id)
	if i < 0 {
		return ErrNotFound
	}
	return r.save(slices.Delete(docs, i, i+1))
}
