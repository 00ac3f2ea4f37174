// Package ui implements the interactive storage-tree explorer.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vartree/altset"
	"vartree/shape"
)

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right}, {k.Up, k.Quit}}
}

var defaultKeys = keyMap{
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left child")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right child")),
	Up:    key.NewBinding(key.WithKeys("up", "backspace", "k"), key.WithHelp("↑/k", "parent")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	crumbStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type exploreModel struct {
	tree  *shape.Tree
	set   *altset.Set
	title string
	path  []shape.NodeID // root .. current
	keys  keyMap
	help  help.Model
	width int
}

// NewExploreModel returns a Bubble Tea model for walking the tree.
func NewExploreModel(title string, tree *shape.Tree, set *altset.Set) tea.Model {
	return &exploreModel{
		tree:  tree,
		set:   set,
		title: title,
		path:  []shape.NodeID{tree.Root()},
		keys:  defaultKeys,
		help:  help.New(),
		width: 80,
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		cur, _ := m.tree.Node(m.current())
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			if cur.Kind == shape.NodePair {
				m.path = append(m.path, cur.Left)
			}
		case key.Matches(msg, m.keys.Right):
			if cur.Kind == shape.NodePair {
				m.path = append(m.path, cur.Right)
			}
		case key.Matches(msg, m.keys.Up):
			if len(m.path) > 1 {
				m.path = m.path[:len(m.path)-1]
			}
		}
	}
	return m, nil
}

func (m *exploreModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteByte('\n')
	b.WriteString(crumbStyle.Render(m.breadcrumb()))
	b.WriteByte('\n')

	cur, ok := m.tree.Node(m.current())
	if !ok {
		return b.String()
	}
	var card strings.Builder
	switch cur.Kind {
	case shape.NodeLeaf:
		fmt.Fprintf(&card, "leaf #%d\n", cur.Alt)
		if alt, ok := m.set.At(cur.Alt); ok {
			fmt.Fprintf(&card, "name: %s\ntype: %v", alt.Name, alt.Type)
		}
	case shape.NodePair:
		fmt.Fprintf(&card, "pair\nsize:  %d alternatives\ndepth: %d", cur.Size, cur.Depth)
	}
	b.WriteString(cardStyle.Render(card.String()))
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

func (m *exploreModel) current() shape.NodeID {
	return m.path[len(m.path)-1]
}

func (m *exploreModel) breadcrumb() string {
	parts := make([]string, 0, len(m.path))
	for _, id := range m.path {
		n, ok := m.tree.Node(id)
		if !ok {
			continue
		}
		if n.Kind == shape.NodeLeaf {
			parts = append(parts, fmt.Sprintf("leaf#%d", n.Alt))
			continue
		}
		parts = append(parts, fmt.Sprintf("pair(%d)", n.Size))
	}
	return strings.Join(parts, " > ")
}
