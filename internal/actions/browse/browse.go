// Package browse is a full-screen help browser for an argument spec: a
// sidebar of usage, options and types next to a scrollable detail view.
package browse

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/footprint-tools/argspec/internal/ui/splitpanel"
	"github.com/footprint-tools/argspec/internal/ui/style"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

// Run opens the browser for spec, titled with command.
func Run(spec *argspec.Spec, command string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("help browser requires an interactive terminal")
	}

	p := tea.NewProgram(
		newModel(spec, command),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Top    key.Binding
	Bottom key.Binding
	PgUp   key.Binding
	PgDown key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "switch")),
		Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		PgUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "page up")),
		PgDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "page down")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.PgDown, k.Top, k.Quit}
}

type model struct {
	command       string
	items         []item
	cursor        int
	sidebarScroll int
	focusSidebar  bool
	width         int
	height        int
	colors        style.ColorConfig
	content       viewport.Model
	keys          keyMap
	help          help.Model
	quitting      bool
}

func newModel(spec *argspec.Spec, command string) model {
	m := model{
		command:      command,
		items:        buildItems(spec, command),
		focusSidebar: true,
		colors:       style.GetColors(),
		content:      viewport.New(80, 20),
		keys:         defaultKeys(),
		help:         help.New(),
	}
	m.jumpToFirst()
	m.syncContent()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.content.SetYOffset(m.content.YOffset - 3)
		case tea.MouseButtonWheelDown:
			m.content.SetYOffset(m.content.YOffset + 3)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.focusSidebar = !m.focusSidebar

		case key.Matches(msg, m.keys.Up):
			if m.focusSidebar {
				m.moveCursor(-1)
			} else {
				m.content.SetYOffset(m.content.YOffset - 1)
			}

		case key.Matches(msg, m.keys.Down):
			if m.focusSidebar {
				m.moveCursor(1)
			} else {
				m.content.SetYOffset(m.content.YOffset + 1)
			}

		case key.Matches(msg, m.keys.PgUp):
			m.content.SetYOffset(m.content.YOffset - m.content.Height)

		case key.Matches(msg, m.keys.PgDown):
			m.content.SetYOffset(m.content.YOffset + m.content.Height)

		case key.Matches(msg, m.keys.Top):
			if m.focusSidebar {
				m.jumpToFirst()
				m.syncContent()
			} else {
				m.content.GotoTop()
			}

		case key.Matches(msg, m.keys.Bottom):
			if m.focusSidebar {
				m.jumpToLast()
				m.syncContent()
			} else {
				m.content.GotoBottom()
			}
		}
	}

	return m, nil
}

// moveCursor steps over category headers and wraps at both ends.
func (m *model) moveCursor(delta int) {
	n := len(m.items)
	next := m.cursor
	for range n {
		next = (next + delta + n) % n
		if !m.items[next].category {
			break
		}
	}
	m.cursor = next
	m.syncContent()
}

func (m *model) jumpToFirst() {
	for i, it := range m.items {
		if !it.category {
			m.cursor = i
			return
		}
	}
}

func (m *model) jumpToLast() {
	for i := len(m.items) - 1; i >= 0; i-- {
		if !m.items[i].category {
			m.cursor = i
			return
		}
	}
}

func (m *model) layout() *splitpanel.Layout {
	width := m.width
	if width == 0 {
		width = 100
	}
	l := splitpanel.NewLayout(width, splitpanel.Config{
		SidebarWidthPercent: 0.3,
		SidebarMinWidth:     24,
		SidebarMaxWidth:     36,
	}, m.colors)
	l.SetFocus(m.focusSidebar)
	return l
}

func (m *model) mainHeight() int {
	height := m.height
	if height == 0 {
		height = 30
	}
	// header line and footer
	return max(height-3, 4)
}

func (m *model) resize() {
	l := m.layout()
	m.content.Width = max(l.MainContentWidth(), 10)
	m.content.Height = max(m.mainHeight()-2, 1)
	m.syncContent()
}

// syncContent loads the selected item into the viewport.
func (m *model) syncContent() {
	it := m.items[m.cursor]
	m.content.SetContent(wrapText(it.detail, m.content.Width))
	m.content.GotoTop()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width == 0 {
		width = 100
	}
	height := m.mainHeight()

	l := m.layout()
	l.Height = height
	main := l.Render(m.sidebarPanel(l, height), m.contentPanel(), height)

	return lipgloss.JoinVertical(lipgloss.Left, m.header(width), main, m.footer(width))
}

func (m model) header(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.Header)).Render(m.command)
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted)).Render("  " + m.items[m.cursor].summary)
	return lipgloss.NewStyle().Width(width).Padding(0, 1).Render(title + summary)
}

func (m model) footer(width int) string {
	return lipgloss.NewStyle().Width(width).Padding(0, 1).Render(m.help.ShortHelpView(m.keys.short()))
}

// sidebarPanel renders the visible window of items around the cursor.
func (m *model) sidebarPanel(l *splitpanel.Layout, height int) splitpanel.Panel {
	visible := max(height-2, 1)

	if m.cursor < m.sidebarScroll {
		m.sidebarScroll = m.cursor
	}
	if m.cursor >= m.sidebarScroll+visible {
		m.sidebarScroll = m.cursor - visible + 1
	}

	active := lipgloss.Color(m.colors.Option)
	muted := lipgloss.Color(m.colors.Muted)
	itemWidth := max(l.SidebarContentWidth()-2, 1)

	var lines []string
	for i := m.sidebarScroll; i < len(m.items) && len(lines) < visible; i++ {
		it := m.items[i]
		switch {
		case it.category:
			lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(muted).Render(it.title))
		case i == m.cursor:
			lines = append(lines, "▸ "+lipgloss.NewStyle().Bold(true).Foreground(active).Width(itemWidth).Render(it.title))
		default:
			lines = append(lines, "  "+it.title)
		}
	}

	return splitpanel.Panel{
		Lines:      lines,
		ScrollPos:  m.sidebarScroll,
		TotalItems: len(m.items),
	}
}

func (m model) contentPanel() splitpanel.Panel {
	return splitpanel.Panel{
		Lines:      strings.Split(m.content.View(), "\n"),
		ScrollPos:  m.content.YOffset,
		TotalItems: m.content.TotalLineCount(),
	}
}

func wrapText(text string, width int) string {
	if width <= 0 {
		width = 72
	}

	var result strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if len(line) <= width {
			result.WriteString(line + "\n")
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
		current := ""
		for _, word := range strings.Fields(line) {
			switch {
			case current == "":
				current = indent + word
			case len(current)+1+len(word) <= width:
				current += " " + word
			default:
				result.WriteString(current + "\n")
				current = indent + word
			}
		}
		if current != "" {
			result.WriteString(current + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}

// Render is the non-interactive form of the browser's content, used when
// stdout is not a terminal.
func Render(spec *argspec.Spec, command string) string {
	var b strings.Builder
	for _, it := range buildItems(spec, command) {
		if it.category {
			fmt.Fprintf(&b, "== %s ==\n\n", it.title)
			continue
		}
		b.WriteString(it.detail)
		b.WriteString("\n")
	}
	return b.String()
}
