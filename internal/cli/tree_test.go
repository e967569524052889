package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argspec/internal/app"
	"github.com/footprint-tools/argspec/internal/dispatchers"
)

func buildTestTree(t *testing.T) *dispatchers.DispatchNode {
	t.Helper()
	a := app.NewForTesting()
	t.Cleanup(func() { _ = app.Close(a) })
	return BuildTree(a)
}

func TestBuildTree_ReturnsRoot(t *testing.T) {
	root := buildTestTree(t)

	require.NotNil(t, root)
	require.Equal(t, "argspec", root.Name)
	require.Equal(t, RootFlags, root.Flags)
}

func TestBuildTree_HasExpectedTopLevelCommands(t *testing.T) {
	root := buildTestTree(t)

	for _, cmd := range []string{"check", "help", "demo", "history", "config", "version"} {
		_, found := root.Children[cmd]
		require.True(t, found, "expected top-level command '%s' not found", cmd)
	}
	require.Len(t, root.Children, 6)
}

func TestBuildTree_ConfigHasSubcommands(t *testing.T) {
	root := buildTestTree(t)

	config, found := root.Children["config"]
	require.True(t, found, "config group not found")
	require.Nil(t, config.Action)

	for _, sub := range []string{"get", "set", "unset", "list"} {
		_, found := config.Children[sub]
		require.True(t, found, "expected config subcommand '%s' not found", sub)
	}
}

func TestBuildTree_CommandsHaveActionsAndSpecs(t *testing.T) {
	root := buildTestTree(t)

	var leaves []*dispatchers.DispatchNode
	var walk func(n *dispatchers.DispatchNode)
	walk = func(n *dispatchers.DispatchNode) {
		if len(n.Children) == 0 {
			leaves = append(leaves, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	require.Len(t, leaves, 9)
	for _, leaf := range leaves {
		t.Run(leaf.CommandPath(), func(t *testing.T) {
			require.NotNil(t, leaf.Action)
			require.NotEmpty(t, leaf.Summary)
			require.NotEmpty(t, leaf.Usage)
			require.NotNil(t, leaf.Spec)
			require.NotNil(t, leaf.Spec())
		})
	}
}

func TestBuildTree_CategoriesInRootHelp(t *testing.T) {
	root := buildTestTree(t)
	text := dispatchers.HelpText(root, root)

	require.Contains(t, text, "work with spec files\n   check ")
	require.Contains(t, text, "try it out\n   demo ")
	require.Contains(t, text, "inspect past checks\n   history ")
	require.Contains(t, text, "configure argspec\n   config get")
	require.Contains(t, text, "other commands\n   version")
	require.Contains(t, text, "--pager=<cmd>")
}

func TestBuildTree_Dispatch(t *testing.T) {
	root := buildTestTree(t)

	res, err := dispatchers.Dispatch(root, []string{"check", "greet.yaml", "--", "-x"}, dispatchers.NewParsedFlags(nil))
	require.NoError(t, err)
	require.Equal(t, "check", res.Node.Name)
	require.Equal(t, []string{"greet.yaml", "--", "-x"}, res.Args)

	res, err = dispatchers.Dispatch(root, []string{"config", "set", "theme", "ocean"}, dispatchers.NewParsedFlags(nil))
	require.NoError(t, err)
	require.Equal(t, []string{"config", "set"}, res.Node.Path[1:])
	require.Equal(t, []string{"theme", "ocean"}, res.Args)

	_, err = dispatchers.Dispatch(root, []string{"cheks"}, dispatchers.NewParsedFlags(nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "check")
}

func TestSplitGlobalFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		globals []string
		rest    []string
	}{
		{"none", []string{"demo", "bob"}, nil, []string{"demo", "bob"}},
		{"before command", []string{"--no-color", "demo", "bob"}, []string{"--no-color"}, []string{"demo", "bob"}},
		{"after command", []string{"demo", "bob", "--no-pager", "-v"}, []string{"--no-pager"}, []string{"demo", "bob", "-v"}},
		{"valued", []string{"--pager=less -R", "help"}, []string{"--pager=less -R"}, []string{"help"}},
		{"single dash stays", []string{"demo", "-h"}, nil, []string{"demo", "-h"}},
		{"unknown double dash stays", []string{"check", "--format", "json"}, nil, []string{"check", "--format", "json"}},
		{
			"terminator protects",
			[]string{"check", "f.yaml", "--help", "--", "--no-color", "--help"},
			[]string{"--help"},
			[]string{"check", "f.yaml", "--", "--no-color", "--help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			globals, rest := SplitGlobalFlags(tt.args)
			require.Equal(t, tt.globals, globals)
			require.Equal(t, tt.rest, rest)
		})
	}
}
