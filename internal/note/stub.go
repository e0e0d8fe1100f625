package note

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc   func(ctx context.Context) ([]Note, error)
	CreateFunc func(ctx context.Context, params CreateParams) (Note, error)
	GetFunc    func(ctx context.Context, id string) (Note, error)
	UpdateFunc func(ctx context.Context, id string, params UpdateParams) (Note, error)
	DeleteFunc func(ctx context.Context, id string) error
}

var _ Service = (*StubService)(nil)

func (s *StubService) List(ctx context.Context) ([]Note, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Create(ctx context.Context, params CreateParams) (Note, error) {
	if s.CreateFunc == nil {
		return Note{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Get(ctx context.Context, id string) (Note, error) {
	if s.GetFunc == nil {
		return Note{}, errors.New("Get() not implemented by stub")
	}
	return s.GetFunc(ctx, id)
}

func (s *StubService) Update(ctx context.Context, id string, params UpdateParams) (Note, error) {
	if s.UpdateFunc == nil {
		return Note{}, errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, id, params)
}

func (s *StubService) Delete(ctx context.Context, id string) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, id)
}

type StubRepo struct {
	ListFunc   func(ctx context.Context) ([]Note, error)
	CreateFunc func(ctx context.Context, params CreateParams) (Note, error)
	FindFunc   func(ctx context.Context, id string) (Note, error)
	UpdateFunc func(ctx context.Context, id string, params UpdateParams) (Note, error)
	DeleteFunc func(ctx context.Context, id string) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) List(ctx context.Context) ([]Note, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (Note, error) {
	if r.CreateFunc == nil {
		return Note{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) Find(ctx context.Context, id string) (Note, error) {
	if r.FindFunc == nil {
		return Note{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) Update(ctx context.Context, id string, params UpdateParams) (Note, error) {
	if r.UpdateFunc == nil {
		return Note{}, errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, id, params)
}

func (r *StubRepo) Delete(ctx context.Context, id string) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, id)
}
