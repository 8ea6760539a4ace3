package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/matzehuels/runegrid/pkg/config"
	"github.com/matzehuels/runegrid/pkg/dataset"
)

// List styles
var (
	listQueryStyle = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PathPicker - Interactive path selection
// =============================================================================

// PathPicker is the bubbletea model for choosing which paths to render.
// Typing filters the list with a fuzzy match on the path key.
type PathPicker struct {
	Paths    []dataset.RunePath
	Query    string
	Cursor   int
	Chosen   map[string]bool
	Done     bool
	Canceled bool

	visible []int // indexes into Paths, best match first
}

// NewPathPicker creates a picker over paths with nothing chosen.
func NewPathPicker(paths []dataset.RunePath) PathPicker {
	m := PathPicker{Paths: paths, Chosen: map[string]bool{}}
	m.filter()
	return m
}

func (m PathPicker) Init() tea.Cmd {
	return nil
}

func (m PathPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Canceled = true
		return m, tea.Quit
	case tea.KeyUp:
		if m.Cursor > 0 {
			m.Cursor--
		}
	case tea.KeyDown:
		if m.Cursor < len(m.visible)-1 {
			m.Cursor++
		}
	case tea.KeySpace:
		if k, ok := m.current(); ok {
			m.Chosen = toggle(m.Chosen, k)
		}
	case tea.KeyEnter:
		if len(m.Chosen) == 0 {
			k, ok := m.current()
			if !ok {
				return m, nil
			}
			m.Chosen = map[string]bool{k: true}
		}
		m.Done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(m.Query); len(r) > 0 {
			m.Query = string(r[:len(r)-1])
			m.filter()
		}
	case tea.KeyRunes:
		m.Query += string(key.Runes)
		m.filter()
	}
	return m, nil
}

func (m PathPicker) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Paths"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to filter  ↑/↓ navigate  space toggle  ⏎ confirm  esc cancel"))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render("filter: ") + listQueryStyle.Render(m.Query+"▏"))
	b.WriteString("\n")

	rows := make([][]string, 0, len(m.visible))
	for i, idx := range m.visible {
		p := m.Paths[idx]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := " "
		if m.Chosen[p.Key] {
			mark = "✓"
		}
		rows = append(rows, []string{cursor, mark, p.Key, strconv.Itoa(len(p.Slots)), strconv.Itoa(p.RuneCount())})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Path", "Slots", "Runes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= len(m.visible) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle().Foreground(colorGray)
			if m.Chosen[m.Paths[m.visible[row]].Key] {
				base = base.Foreground(colorGreen)
			}
			if row == m.Cursor {
				base = base.Bold(true)
				if col == 2 {
					base = base.Foreground(colorCyan)
				}
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if len(m.visible) == 0 {
		b.WriteString(StyleWarning.Render("  no path matches " + strconv.Quote(m.Query)))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d chosen / %d paths]", len(m.Chosen), len(m.Paths))))

	return b.String()
}

// Selected returns the chosen keys in dataset order.
func (m PathPicker) Selected() []string {
	var keys []string
	for _, p := range m.Paths {
		if m.Chosen[p.Key] {
			keys = append(keys, p.Key)
		}
	}
	return keys
}

func (m PathPicker) current() (string, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.visible) {
		return "", false
	}
	return m.Paths[m.visible[m.Cursor]].Key, true
}

func (m *PathPicker) filter() {
	m.visible = make([]int, 0, len(m.Paths))
	if m.Query == "" {
		for i := range m.Paths {
			m.visible = append(m.visible, i)
		}
	} else {
		ranks := fuzzy.RankFindFold(m.Query, dataset.Keys(m.Paths))
		sort.Stable(ranks)
		for _, r := range ranks {
			m.visible = append(m.visible, r.OriginalIndex)
		}
	}
	if m.Cursor >= len(m.visible) {
		m.Cursor = max(len(m.visible)-1, 0)
	}
}

// toggle returns a copy of set with key flipped, so model values stay independent.
func toggle(set map[string]bool, key string) map[string]bool {
	next := make(map[string]bool, len(set)+1)
	for k := range set {
		next[k] = true
	}
	if next[key] {
		delete(next, key)
	} else {
		next[key] = true
	}
	return next
}

// =============================================================================
// Runner
// =============================================================================

// pickPaths fetches the dataset and lets the user choose paths on stderr.
func (c *CLI) pickPaths(ctx context.Context, cfg config.Config) ([]string, error) {
	paths, err := c.fetchPaths(ctx, cfg)
	if err != nil {
		return nil, err
	}

	final, err := tea.NewProgram(NewPathPicker(paths), tea.WithContext(ctx), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return nil, fmt.Errorf("path picker: %w", err)
	}

	m := final.(PathPicker)
	if m.Canceled {
		return nil, context.Canceled
	}
	keys := m.Selected()
	c.Logger.Info("selected paths", "paths", keys)
	return keys, nil
}
