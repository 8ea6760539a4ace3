package cli

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/runegrid/pkg/dataset"
)

func pickerPaths() []dataset.RunePath {
	return []dataset.RunePath{
		{Key: "Precision"}, {Key: "Domination"}, {Key: "Sorcery"}, {Key: "Resolve"}, {Key: "Inspiration"},
	}
}

func send(m PathPicker, msgs ...tea.KeyMsg) (PathPicker, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(PathPicker)
	}
	return m, cmd
}

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestPathPickerFilter(t *testing.T) {
	m, _ := send(NewPathPicker(pickerPaths()), typed("sor"))

	if len(m.visible) != 1 || m.Paths[m.visible[0]].Key != "Sorcery" {
		t.Fatalf("visible after 'sor' = %v", m.visible)
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Query != "" || len(m.visible) != 5 {
		t.Errorf("after clearing query: %q, %d visible", m.Query, len(m.visible))
	}
}

func TestPathPickerEnterChoosesCurrent(t *testing.T) {
	m, cmd := send(NewPathPicker(pickerPaths()), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.Done || cmd == nil {
		t.Fatal("enter should finish the picker")
	}
	if got := m.Selected(); !slices.Equal(got, []string{"Domination"}) {
		t.Errorf("Selected() = %v", got)
	}
}

func TestPathPickerToggleKeepsDatasetOrder(t *testing.T) {
	m, _ := send(NewPathPicker(pickerPaths()),
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace}, // Sorcery
		tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeySpace}, // Precision
		tea.KeyMsg{Type: tea.KeyUp}, // stays at top
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if got := m.Selected(); !slices.Equal(got, []string{"Precision", "Sorcery"}) {
		t.Errorf("Selected() = %v", got)
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.Selected(); !slices.Equal(got, []string{"Sorcery"}) {
		t.Errorf("toggle off: Selected() = %v", got)
	}
}

func TestPathPickerCancel(t *testing.T) {
	m, cmd := send(NewPathPicker(pickerPaths()), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.Canceled || m.Done || cmd == nil {
		t.Errorf("esc: canceled=%v done=%v", m.Canceled, m.Done)
	}
}

func TestPathPickerNoMatch(t *testing.T) {
	m, cmd := send(NewPathPicker(pickerPaths()), typed("zzz"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Done || cmd != nil {
		t.Error("enter with no match should do nothing")
	}
	if !strings.Contains(m.View(), `no path matches "zzz"`) {
		t.Errorf("View() should report no match:\n%s", m.View())
	}
}

func TestPathPickerView(t *testing.T) {
	m, _ := send(NewPathPicker(pickerPaths()), tea.KeyMsg{Type: tea.KeySpace})
	view := m.View()
	for _, want := range []string{"Select Paths", "Precision", "✓", "[1 chosen / 5 paths]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
