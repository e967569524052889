package actions

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argspec/internal/history"
	"github.com/footprint-tools/argspec/internal/log"
	"github.com/footprint-tools/argspec/internal/specfile"
	"github.com/footprint-tools/argspec/internal/testutil"
	"github.com/footprint-tools/argspec/internal/ui/style"
	"github.com/footprint-tools/argspec/internal/usage"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

const greetYAML = `
name: greet
description: Says hello
enums:
  - name: mood
    tokens: [happy, sad]
lines:
  - spec: "<name:string>"
    doc: Who to greet
  - spec: "-mood^ <mood>"
    doc: Sets mood
  - spec: "-times %d"
    doc: Repeat count
`

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

type testEnv struct {
	deps    actionDependencies
	out     *bytes.Buffer
	paged   *bytes.Buffer
	config  map[string]string
	history *history.Store
	browsed []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		out:     &bytes.Buffer{},
		paged:   &bytes.Buffer{},
		config:  map[string]string{},
		history: testutil.NewTestHistory(t),
	}
	env.deps = actionDependencies{
		Stdout: env.out,
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(env.out, format, a...)
		},
		Pager: func(content string) {
			env.paged.WriteString(content)
		},
		Version: func() string { return "1.2.3" },
		Config: func(key string) (string, bool) {
			v, ok := env.config[key]
			return v, ok
		},
		History:  env.history,
		Logger:   log.NopLogger{},
		Styler:   style.NopStyler{},
		LoadSpec: specfile.Load,
		Browse: func(spec *argspec.Spec, command string) error {
			env.browsed = append(env.browsed, command)
			return nil
		},
		IsTerminal: func() bool { return true },
		Now:        func() time.Time { return fixedNow },
	}
	return env
}

func writeSpecFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func requireUsageKind(t *testing.T, err error, kind usage.ErrorKind) *usage.Error {
	t.Helper()
	var uerr *usage.Error
	require.True(t, errors.As(err, &uerr), "expected usage error, got %v", err)
	require.Equal(t, kind, uerr.Kind)
	return uerr
}
