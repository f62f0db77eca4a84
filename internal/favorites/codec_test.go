package favorites

import (
	"testing"

	"github.com/Iron-Ham/inspire/internal/errors"
	"github.com/Iron-Ham/inspire/internal/quote"
)

func TestEncode(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Encode(nil) = %s, want []", data)
	}

	data, err = Encode([]quote.Quote{{Text: "X", Author: "Y", Category: "z"}})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := `[{"text":"X","author":"Y","category":"z"}]`
	if string(data) != want {
		t.Errorf("Encode() = %s, want %s", data, want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		corrupt bool
	}{
		{"empty array", `[]`, 0, false},
		{"null", `null`, 0, false},
		{"one entry", `[{"text":"X","author":"Y","category":"z"}]`, 1, false},
		{"unknown fields ignored", `[{"text":"X","author":"Y","category":"z","extra":1}]`, 1, false},
		{"entry without text dropped", `[{"author":"Y"},{"text":"X"}]`, 1, false},
		{"truncated", `[{"text":"X"`, 0, true},
		{"object instead of array", `{"text":"X"}`, 0, true},
		{"wrong field type", `[{"text":5}]`, 0, true},
		{"garbage", `not json`, 0, true},
		{"empty input", ``, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Decode([]byte(tt.input))
			if tt.corrupt {
				if !errors.Is(err, errors.ErrStoreCorrupted) {
					t.Errorf("Decode() error = %v, want ErrStoreCorrupted", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(items) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(items), tt.wantLen)
			}
		})
	}
}
