package note_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ferdiebergado/jobnotes/internal/note"
)

func TestService_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		repo      note.Repository
		wantNotes []note.Note
		wantErr   error
	}{
		{
			name: "success - returns notes",
			repo: &note.StubRepo{
				ListFunc: func(_ context.Context) ([]note.Note, error) {
					return []note.Note{{ID: "1", Title: "Buy milk", Body: "2 liters"}}, nil
				},
			},
			wantNotes: []note.Note{{ID: "1", Title: "Buy milk", Body: "2 liters"}},
		},
		{
			name: "success - empty store gives empty slice",
			repo: &note.StubRepo{
				ListFunc: func(_ context.Context) ([]note.Note, error) {
					return nil, nil
				},
			},
			wantNotes: []note.Note{},
		},
		{
			name: "error - repo fails",
			repo: &note.StubRepo{
				ListFunc: func(_ context.Context) ([]note.Note, error) {
					return nil, note.ErrQueryFailed
				},
			},
			wantErr: note.ErrQueryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			notes, err := note.NewService(tt.repo).List(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.List(ctx) = %v, wantErr: %v", err, tt.wantErr)
			}

			if !reflect.DeepEqual(notes, tt.wantNotes) {
				t.Errorf("svc.List(ctx) = %+v, want: %+v", notes, tt.wantNotes)
			}
		})
	}
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		params     note.CreateParams
		repoCalled bool
		wantErr    error
	}{
		{"success", note.CreateParams{Title: "Buy milk", Body: "2 liters"}, true, nil},
		{"missing title", note.CreateParams{Body: "2 liters"}, false, note.ErrInvalidNote},
		{"missing body", note.CreateParams{Title: "Buy milk"}, false, note.ErrInvalidNote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			repo := &note.StubRepo{
				CreateFunc: func(_ context.Context, params note.CreateParams) (note.Note, error) {
					called = true
					return note.Note{ID: "1", Title: params.Title, Body: params.Body}, nil
				},
			}

			n, err := note.NewService(repo).Create(context.Background(), tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.Create() = %v, wantErr: %v", err, tt.wantErr)
			}

			if called != tt.repoCalled {
				t.Errorf("repo called = %v, want: %v", called, tt.repoCalled)
			}

			if tt.wantErr == nil && (n.Title != tt.params.Title || n.Body != tt.params.Body) {
				t.Errorf("svc.Create() = %+v, want title %q body %q", n, tt.params.Title, tt.params.Body)
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	stored := note.Note{ID: "1", Title: "Buy milk", Body: "2 liters"}

	tests := []struct {
		name     string
		params   note.UpdateParams
		want     note.Note
		wantErr  error
		wantRepo string
	}{
		{"partial update", note.UpdateParams{Body: ptr("3 liters")},
			note.Note{ID: "1", Title: "Buy milk", Body: "3 liters"}, nil, "update"},
		{"empty update returns current note", note.UpdateParams{}, stored, nil, "find"},
		{"empty title rejected", note.UpdateParams{Title: ptr("")}, note.Note{}, note.ErrInvalidNote, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotRepo string
			repo := &note.StubRepo{
				FindFunc: func(_ context.Context, _ string) (note.Note, error) {
					gotRepo = "find"
					return stored, nil
				},
				UpdateFunc: func(_ context.Context, _ string, params note.UpdateParams) (note.Note, error) {
					gotRepo = "update"
					return params.Apply(stored), nil
				},
			}

			n, err := note.NewService(repo).Update(context.Background(), "1", tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.Update() = %v, wantErr: %v", err, tt.wantErr)
			}

			if gotRepo != tt.wantRepo {
				t.Errorf("repo call = %q, want: %q", gotRepo, tt.wantRepo)
			}

			if !reflect.DeepEqual(n, tt.want) {
				t.Errorf("svc.Update() = %+v, want: %+v", n, tt.want)
			}
		})
	}
}

func TestService_GetAndDelete_WrapNotFound(t *testing.T) {
	t.Parallel()

	repo := &note.StubRepo{
		FindFunc: func(_ context.Context, _ string) (note.Note, error) {
			return note.Note{}, note.ErrNotFound
		},
		DeleteFunc: func(_ context.Context, _ string) error {
			return note.ErrNotFound
		},
	}
	svc := note.NewService(repo)

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, note.ErrNotFound) {
		t.Errorf("svc.Get() = %v, want: %v", err, note.ErrNotFound)
	}

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, note.ErrNotFound) {
		t.Errorf("svc.Delete() = %v, want: %v", err, note.ErrNotFound)
	}
}
