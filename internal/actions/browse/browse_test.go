package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argspec/pkg/argspec"
)

func testSpec(t *testing.T) *argspec.Spec {
	t.Helper()

	var (
		name   string
		dst    string
		size   int
		colour int
		words  []string
	)

	spec, err := argspec.NewBuilder("Provides an example").
		EnumTokens("colour", "red", "green", "blue").
		Line("<name:string> [<dst:cstr>^]", "Name and destination", argspec.String(&name), argspec.String(&dst), argspec.Flag(0)).
		Line("-size^ %d", "Set size", argspec.Flag(1), argspec.Int(&size)).
		Line("-colour <colour>", "Set colour", argspec.Enum(&colour)).
		Line("-words <w:cstring> ...", "Specify words", argspec.Strings(&words)).
		Build()
	require.NoError(t, err)
	return spec
}

func titles(items []item) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.title)
	}
	return out
}

func TestBuildItems(t *testing.T) {
	items := buildItems(testSpec(t), "demo")

	require.Equal(t,
		[]string{"USAGE", "demo", "OPTIONS", "-size", "-colour", "-words", "TYPES", "colour"},
		titles(items))

	require.True(t, items[0].category)
	require.Equal(t, "Provides an example", items[1].summary)
	require.Contains(t, items[1].detail, "demo [options] <name:string> [<dst:string>]")
	require.Contains(t, items[1].detail, "dst          string     optional, sets flag 0")

	require.Contains(t, items[3].detail, "-size <int>")
	require.Contains(t, items[3].detail, "Sets flag 1 when given.")
	require.Contains(t, items[5].detail, "-words <w:string> ...")
	require.Contains(t, items[5].detail, "repeats until the next option")

	require.Equal(t, "3 values", items[7].summary)
	require.Contains(t, items[7].detail, "green        1")
}

func TestModel_Navigation(t *testing.T) {
	m := newModel(testSpec(t), "demo")
	require.Equal(t, 1, m.cursor)

	press := func(m model, msg tea.KeyMsg) model {
		next, _ := m.Update(msg)
		return next.(model)
	}

	// headers are skipped going down
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 3, m.cursor)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	require.Equal(t, 7, m.cursor)

	// wraps past the end back to the first item
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Equal(t, 1, m.cursor)

	// and from the first item up to the last
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 7, m.cursor)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	require.Equal(t, 1, m.cursor)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, m.focusSidebar)

	// with the content focused, movement scrolls instead
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.cursor)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.True(t, next.(model).quitting)
	require.Empty(t, next.(model).View())
}

func TestModel_View(t *testing.T) {
	m := newModel(testSpec(t), "demo")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	m = next.(model)

	view := m.View()
	require.Contains(t, view, "demo")
	require.Contains(t, view, "OPTIONS")
	require.Contains(t, view, "-colour")
	require.Contains(t, view, "quit")
}

func TestWrapText(t *testing.T) {
	require.Equal(t, "short", wrapText("short", 20))
	require.Equal(t, "one two\nthree", wrapText("one two three", 8))
	require.Equal(t, "   aa bb\n   cc", wrapText("   aa bb cc", 8))
}

func TestRender(t *testing.T) {
	out := Render(testSpec(t), "demo")

	require.Contains(t, out, "== USAGE ==")
	require.Contains(t, out, "== OPTIONS ==")
	require.Contains(t, out, "== TYPES ==")
	require.Contains(t, out, "-colour <colour>")
}
