package config

import (
	"encoding/json"
	"fmt"

	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/ui/style"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

const listFlagJSON argspec.Flag = 0

type listEntry struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Section string `json:"section"`
}

// ListSpec describes the config list command.
func ListSpec() *argspec.Spec {
	return argspec.NewBuilder("Show every setting with its current value").
		Line("-json^", "Print the settings as JSON", listFlagJSON).
		MustBuild()
}

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	ss, done, err := parse(ListSpec(), "argspec config list", args, deps)
	if done || err != nil {
		return err
	}

	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	var entries []listEntry
	for _, key := range domain.VisibleConfigKeys() {
		value, exists := configMap[key.Name]
		if !exists || (key.HideIfEmpty && value == "") {
			continue
		}
		entries = append(entries, listEntry{Key: key.Name, Value: value, Section: key.Section})
	}

	if ss.Flag(listFlagJSON) {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	for _, e := range entries {
		_, _ = deps.Printf("%s=%s\n", style.Info(e.Key), e.Value)
	}
	return nil
}
