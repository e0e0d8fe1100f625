package note_test

import (
	"errors"
	"testing"

	"github.com/ferdiebergado/jobnotes/internal/note"
	"github.com/google/go-cmp/cmp"
)

func ptr(s string) *string { return &s }

func TestNote_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		note       note.Note
		wantFields map[string]string
	}{
		{"Valid note", note.Note{Title: "Buy milk", Body: "2 liters"}, nil},
		{"Missing title", note.Note{Body: "2 liters"}, map[string]string{"title": "title is required"}},
		{"Missing body", note.Note{Title: "Buy milk"}, map[string]string{"body": "body is required"}},
		{"Missing both", note.Note{}, map[string]string{
			"title": "title is required",
			"body":  "body is required",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.note.Validate()
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("note.Validate() = %v, want: nil", err)
				}
				return
			}

			if !errors.Is(err, note.ErrInvalidNote) {
				t.Fatalf("note.Validate() = %v, want: %v", err, note.ErrInvalidNote)
			}

			var valErr *note.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("note.Validate() = %T, want: *note.ValidationError", err)
			}

			if diff := cmp.Diff(tt.wantFields, valErr.Fields); diff != "" {
				t.Errorf("valErr.Fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateParams(t *testing.T) {
	t.Parallel()

	original := note.Note{ID: "1", Title: "Buy milk", Body: "2 liters"}

	tests := []struct {
		name      string
		params    note.UpdateParams
		wantErr   bool
		wantEmpty bool
		want      note.Note
	}{
		{"No fields", note.UpdateParams{}, false, true, original},
		{"Body only", note.UpdateParams{Body: ptr("3 liters")}, false, false,
			note.Note{ID: "1", Title: "Buy milk", Body: "3 liters"}},
		{"Both fields", note.UpdateParams{Title: ptr("Buy oat milk"), Body: ptr("1 liter")}, false, false,
			note.Note{ID: "1", Title: "Buy oat milk", Body: "1 liter"}},
		{"Empty title", note.UpdateParams{Title: ptr("")}, true, false, note.Note{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("params.Validate() = %v, wantErr: %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if got := tt.params.IsEmpty(); got != tt.wantEmpty {
				t.Errorf("params.IsEmpty() = %v, want: %v", got, tt.wantEmpty)
			}

			if diff := cmp.Diff(tt.want, tt.params.Apply(original)); diff != "" {
				t.Errorf("params.Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
