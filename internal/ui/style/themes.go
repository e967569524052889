package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Option  string
	Type    string
	Value   string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{"default", "mono", "ocean", "contrast"}

// Themes contains the built-in color themes. Dark variants use bright
// colors, light variants dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
		Option:  "13",
		Type:    "12",
		Value:   "15",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "242",
		Header:  "bold",
		Option:  "90",
		Type:    "25",
		Value:   "232",
	},
	"mono-dark": {
		Success: "252",
		Warning: "250",
		Error:   "255",
		Info:    "252",
		Muted:   "243",
		Header:  "bold",
		Option:  "255",
		Type:    "248",
		Value:   "252",
	},
	"mono-light": {
		Success: "236",
		Warning: "238",
		Error:   "232",
		Info:    "236",
		Muted:   "245",
		Header:  "bold",
		Option:  "232",
		Type:    "240",
		Value:   "236",
	},
	"ocean-dark": {
		Success: "79",
		Warning: "222",
		Error:   "210",
		Info:    "81",
		Muted:   "66",
		Header:  "bold",
		Option:  "117",
		Type:    "74",
		Value:   "195",
	},
	"ocean-light": {
		Success: "29",
		Warning: "136",
		Error:   "160",
		Info:    "24",
		Muted:   "102",
		Header:  "bold",
		Option:  "25",
		Type:    "31",
		Value:   "17",
	},
	"contrast-dark": {
		Success: "46",
		Warning: "226",
		Error:   "196",
		Info:    "51",
		Muted:   "250",
		Header:  "bold",
		Option:  "201",
		Type:    "45",
		Value:   "231",
	},
	"contrast-light": {
		Success: "22",
		Warning: "94",
		Error:   "88",
		Info:    "18",
		Muted:   "238",
		Header:  "bold",
		Option:  "53",
		Type:    "19",
		Value:   "16",
	},
}

// colorConfigKeys maps config key names to ColorConfig fields.
var colorConfigKeys = map[string]func(*ColorConfig, string){
	"color_success": func(c *ColorConfig, v string) { c.Success = v },
	"color_warning": func(c *ColorConfig, v string) { c.Warning = v },
	"color_error":   func(c *ColorConfig, v string) { c.Error = v },
	"color_info":    func(c *ColorConfig, v string) { c.Info = v },
	"color_muted":   func(c *ColorConfig, v string) { c.Muted = v },
	"color_header":  func(c *ColorConfig, v string) { c.Header = v },
	"color_option":  func(c *ColorConfig, v string) { c.Option = v },
	"color_type":    func(c *ColorConfig, v string) { c.Type = v },
	"color_value":   func(c *ColorConfig, v string) { c.Value = v },
}

// IsDarkBackground queries the terminal; true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name according
// to the terminal background. Names that already carry a suffix are kept.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig. Resolution priority:
// 1. Environment variable (ARGSPEC_COLOR_*)
// 2. Config file value
// 3. Theme value (from the theme key or ARGSPEC_THEME)
// 4. Default theme
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := ResolveThemeName("default")

	if envTheme := os.Getenv("ARGSPEC_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme := cfg["theme"]; cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}

	result, ok := Themes[themeName]
	if !ok {
		result = Themes["default-dark"]
	}

	for key, set := range colorConfigKeys {
		if envVal := os.Getenv("ARGSPEC_" + strings.ToUpper(key)); envVal != "" {
			set(&result, envVal)
			continue
		}
		if cfgVal := cfg[key]; cfgVal != "" {
			set(&result, cfgVal)
		}
	}

	return result
}
