package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/argspec/internal/app"
	"github.com/footprint-tools/argspec/internal/cli"
	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/ui"
	"github.com/footprint-tools/argspec/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	globals, commands := cli.SplitGlobalFlags(args)
	flags := dispatchers.NewParsedFlags(globals)

	opts := app.DefaultOptions()
	opts.StyleEnabled = ui.StdoutIsTerminal() && !flags.Has("--no-color")

	if flags.Has("--no-pager") {
		opts.PagerDisabled = true
		ui.DisablePager()
	}
	if pager := flags.String("--pager", ""); pager != "" {
		opts.PagerOverride = pager
		ui.SetPager(pager)
	}
	if flags.Has("--quiet") {
		ui.EnableQuiet()
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = app.Close(application) }()

	root := cli.BuildTree(application)

	if flags.Has("--version") {
		commands = []string{"version"}
	}

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		return report(stderr, err)
	}

	application.Logger.Debug("run: %v", res.Node.Path)

	if err := res.Execute(res.Args, res.Flags); err != nil {
		return report(stderr, err)
	}

	return res.ExitCode
}

// report prints err unless it was already shown and returns the exit code.
func report(stderr io.Writer, err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		if ue.Message != "" {
			fmt.Fprintln(stderr, ue.Message)
		}
		return ue.GetExitCode()
	}
	fmt.Fprintln(stderr, "argspec:", err)
	return 1
}
