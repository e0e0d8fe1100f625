package note

import (
	"context"
	"fmt"
)

// Repository is implemented by every note store.
type Repository interface {
	List(ctx context.Context) ([]Note, error)
	Create(ctx context.Context, params CreateParams) (Note, error)
	Find(ctx context.Context, id string) (Note, error)
	Update(ctx context.Context, id string, params UpdateParams) (Note, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}

func (s *service) Create(ctx context.Context, params CreateParams) (Note, error) {
	if err := (Note{Title: params.Title, Body: params.Body}).Validate(); err != nil {
		return Note{}, err
	}

	n, err := s.repo.Create(ctx, params)
	if err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

func (s *service) Get(ctx context.Context, id string) (Note, error) {
	n, err := s.repo.Find(ctx, id)
	if err != nil {
		return Note{}, fmt.Errorf("find note %s: %w", id, err)
	}
	return n, nil
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (Note, error) {
	if err := params.Validate(); err != nil {
		return Note{}, err
	}

	if params.IsEmpty() {
		return s.Get(ctx, id)
	}

	n, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return Note{}, fmt.Errorf("update note %s: %w", id, err)
	}
	return n, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	return nil
}
