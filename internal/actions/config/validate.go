package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/format"
	"github.com/footprint-tools/argspec/internal/log"
	"github.com/footprint-tools/argspec/internal/specfile"
	"github.com/footprint-tools/argspec/internal/ui/style"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

// validateValue checks value against what key accepts. Keys without a
// fixed vocabulary accept anything.
func validateValue(key, value string) error {
	switch key {
	case "theme":
		base := strings.TrimSuffix(strings.TrimSuffix(value, "-dark"), "-light")
		for _, name := range style.BaseThemeNames {
			if base == name {
				return nil
			}
		}
		return fmt.Errorf("unknown theme %q (want one of %s)", value, strings.Join(style.BaseThemeNames, ", "))
	case "help_format":
		if _, err := argspec.ParseHelpType(value); err != nil {
			return fmt.Errorf("unknown help format %q", value)
		}
	case "output_format":
		if _, err := specfile.ParseOutputFormat(value); err != nil {
			return err
		}
	case "display_time":
		if !format.ValidTime(value) {
			return fmt.Errorf("display_time must be 12h or 24h")
		}
	case "enable_log", "record_history":
		if value != "true" && value != "false" {
			return fmt.Errorf("%s must be true or false", key)
		}
	case "log_level":
		if !strings.EqualFold(log.ParseLevel(value).String(), value) {
			return fmt.Errorf("unknown log level %q (want debug, info, warn or error)", value)
		}
	}

	if strings.HasPrefix(key, "color_") {
		return validateColor(key, value)
	}
	return nil
}

func validateColor(key, value string) error {
	if key == "color_header" && value == "bold" {
		return nil
	}
	if strings.HasPrefix(value, "#") && len(value) == 7 {
		if _, err := strconv.ParseUint(value[1:], 16, 32); err == nil {
			return nil
		}
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 255 {
		return nil
	}
	return fmt.Errorf("%s must be an ANSI color 0-255 or #rrggbb", key)
}

func knownKey(key string) bool {
	return domain.IsValidConfigKey(key)
}
