package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
	"github.com/PeterMinin/grid-strategy/pkg/grid"
)

func press(m PreviewModel, keys ...tea.KeyMsg) PreviewModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(PreviewModel)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPreviewModelAlignment(t *testing.T) {
	m := NewPreviewModel(3, grid.Center)

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Alignment != grid.Left {
		t.Errorf("right arrow: alignment = %s, want left", m.Alignment)
	}
	if got := m.layout.Placements[2].Span; got != (grid.Span{Start: 0, End: 2}) {
		t.Errorf("layout not recomputed: short row span = %v", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Alignment != grid.Justified {
		t.Errorf("left arrow twice: alignment = %s, want justified", m.Alignment)
	}
}

func TestPreviewModelCount(t *testing.T) {
	m := NewPreviewModel(1, grid.Center)

	m = press(m, runeKey('-'))
	if m.N != 1 {
		t.Errorf("n should not drop below 1, got %d", m.N)
	}

	m = press(m, runeKey('+'), runeKey('+'))
	if m.N != 3 || m.layout.N != 3 {
		t.Errorf("n = %d (layout %d), want 3", m.N, m.layout.N)
	}

	m = NewPreviewModel(errors.MaxSubplots, grid.Center)
	m = press(m, runeKey('+'))
	if m.N != errors.MaxSubplots {
		t.Errorf("n should not exceed %d, got %d", errors.MaxSubplots, m.N)
	}
}

func TestPreviewModelQuit(t *testing.T) {
	m := NewPreviewModel(4, grid.Center)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPreviewModelView(t *testing.T) {
	m := NewPreviewModel(5, grid.Right)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	view := next.(PreviewModel).View()

	for _, want := range []string{"Grid Preview", "n=5", "align=right", "rows=2 · 3", "grid=2×6"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
