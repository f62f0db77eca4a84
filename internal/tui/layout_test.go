package tui

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/Iron-Ham/inspire/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestLayoutFavorites(t *testing.T) {
	tests := []struct {
		name       string
		favorites  int
		width      int
		height     int
		wantHeight func(int) bool
	}{
		{
			name:       "empty list has no viewport",
			favorites:  0,
			width:      100,
			height:     40,
			wantHeight: func(h int) bool { return h == 0 },
		},
		{
			name:       "short list is shown whole",
			favorites:  2,
			width:      100,
			height:     60,
			wantHeight: func(h int) bool { return h == 2*linesPerFavorite },
		},
		{
			name:       "tiny terminal keeps one entry",
			favorites:  10,
			width:      100,
			height:     5,
			wantHeight: func(h int) bool { return h == minPanelHeight },
		},
		{
			name:       "unknown height shows everything",
			favorites:  10,
			width:      0,
			height:     0,
			wantHeight: func(h int) bool { return h == 10*linesPerFavorite },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, f := newTestModel(t, nil)
			for _, q := range quote.Catalog()[:tt.favorites] {
				if _, err := f.favs.Add(q); err != nil {
					t.Fatal(err)
				}
			}
			m.width, m.height = tt.width, tt.height
			m.syncFavorites()

			if !tt.wantHeight(m.viewport.Height) {
				t.Errorf("viewport height = %d", m.viewport.Height)
			}
		})
	}
}

func TestLayoutFavoritesWidth(t *testing.T) {
	m, f := newTestModel(t, nil)
	if _, err := f.favs.Add(quote.First()); err != nil {
		t.Fatal(err)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})
	want := m.maxWidth - m.styles.Panel.GetHorizontalFrameSize()
	if m.viewport.Width != want {
		t.Errorf("viewport width = %d, want %d (capped by max width)", m.viewport.Width, want)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 50})
	want = 50 - m.styles.Panel.GetHorizontalFrameSize()
	if m.viewport.Width != want {
		t.Errorf("viewport width = %d, want %d (narrow terminal)", m.viewport.Width, want)
	}
}

func TestViewFitsWidth(t *testing.T) {
	m, f := newTestModel(t, nil)
	for _, q := range quote.Catalog()[:3] {
		if _, err := f.favs.Add(q); err != nil {
			t.Fatal(err)
		}
	}

	for _, width := range []int{60, 120} {
		m, _ = update(t, m, tea.WindowSizeMsg{Width: width, Height: 40})
		for i, line := range strings.Split(m.View(), "\n") {
			if w := lipgloss.Width(line); w > width {
				t.Errorf("width %d: line %d is %d columns wide", width, i, w)
			}
		}
	}
}

func TestRenderCard(t *testing.T) {
	q := quote.Quote{Text: "Stay hungry.", Author: "Someone", Category: "motivation"}
	s := styles.ForTheme(styles.ThemeDefault)

	card := RenderCard(s, q, 40, false)
	for _, want := range []string{"Motivation", `"Stay hungry."`, "— Someone"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
	if w := lipgloss.Width(card); w != 40 {
		t.Errorf("card width = %d, want 40", w)
	}

	if faded := RenderCard(s, q, 40, true); !strings.Contains(faded, "Stay hungry.") {
		t.Errorf("faded card should still show the text:\n%s", faded)
	}
}
