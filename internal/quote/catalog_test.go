package quote

import "testing"

func TestCatalog(t *testing.T) {
	quotes := Catalog()
	if len(quotes) != 10 {
		t.Fatalf("Catalog() has %d quotes, want 10", len(quotes))
	}

	seen := make(map[string]bool)
	for i, q := range quotes {
		if q.Text == "" || q.Author == "" || q.Category == "" {
			t.Errorf("quote %d has empty fields: %+v", i+1, q)
		}
		if seen[q.Key()] {
			t.Errorf("duplicate text at %d: %q", i+1, q.Text)
		}
		seen[q.Key()] = true
	}

	if quotes[0].Author != "Steve Jobs" || quotes[0].Category != "motivation" {
		t.Errorf("unexpected first quote: %+v", quotes[0])
	}
	if quotes[9].Author != "Albert Einstein" || quotes[9].Category != "wisdom" {
		t.Errorf("unexpected last quote: %+v", quotes[9])
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	quotes := Catalog()
	quotes[0] = Quote{Text: "mutated"}

	if First().Text == "mutated" {
		t.Error("mutating Catalog() result changed the built-in catalog")
	}
}

func TestAt(t *testing.T) {
	tests := []struct {
		n      int
		ok     bool
		author string
	}{
		{0, false, ""},
		{1, true, "Steve Jobs"},
		{3, true, "John Lennon"},
		{10, true, "Albert Einstein"},
		{11, false, ""},
		{-1, false, ""},
	}

	for _, tt := range tests {
		q, ok := At(tt.n)
		if ok != tt.ok {
			t.Errorf("At(%d) ok = %v, want %v", tt.n, ok, tt.ok)
			continue
		}
		if q.Author != tt.author {
			t.Errorf("At(%d).Author = %q, want %q", tt.n, q.Author, tt.author)
		}
	}
}

func TestIndexOf(t *testing.T) {
	for i, q := range Catalog() {
		if got := IndexOf(q); got != i+1 {
			t.Errorf("IndexOf(%q) = %d, want %d", q.Text, got, i+1)
		}
	}
	if got := IndexOf(Quote{Text: "not in catalog"}); got != 0 {
		t.Errorf("IndexOf(unknown) = %d, want 0", got)
	}
}

func TestParse(t *testing.T) {
	quotes, err := Parse([]byte(`[{"text":"a","author":"b","category":"c"}]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(quotes) != 1 || quotes[0].Author != "b" {
		t.Errorf("Parse() = %+v", quotes)
	}

	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Error("Parse() should fail on malformed input")
	}
}
