package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the configurable colors. Values are ANSI color numbers
// (0-255) or "bold".
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Info     string
	Muted    string
	Header   string
	Prompt   string
	Selected string
}

// BaseThemeNames lists the themes accepted by the theme config key.
var BaseThemeNames = []string{"default", "mono", "ocean"}

// Themes contains the built-in palettes. Dark variants use bright colors,
// light variants use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10", Warning: "11", Error: "9", Info: "14",
		Muted: "245", Header: "bold", Prompt: "12", Selected: "14",
	},
	"default-light": {
		Success: "28", Warning: "130", Error: "124", Info: "27",
		Muted: "243", Header: "bold", Prompt: "27", Selected: "27",
	},
	"mono-dark": {
		Success: "255", Warning: "250", Error: "bold", Info: "bold",
		Muted: "242", Header: "bold", Prompt: "255", Selected: "255",
	},
	"mono-light": {
		Success: "232", Warning: "238", Error: "bold", Info: "bold",
		Muted: "245", Header: "bold", Prompt: "232", Selected: "232",
	},
	"ocean-dark": {
		Success: "43", Warning: "222", Error: "203", Info: "81",
		Muted: "67", Header: "bold", Prompt: "39", Selected: "81",
	},
	"ocean-light": {
		Success: "30", Warning: "136", Error: "160", Info: "25",
		Muted: "66", Header: "bold", Prompt: "24", Selected: "25",
	},
}

// colorConfigKeys maps config keys to ColorConfig fields. They are not
// declared config keys; they are only honoured when present in the rc file
// or the environment.
var colorConfigKeys = map[string]string{
	"color_success":  "Success",
	"color_warning":  "Warning",
	"color_error":    "Error",
	"color_info":     "Info",
	"color_muted":    "Muted",
	"color_header":   "Header",
	"color_prompt":   "Prompt",
	"color_selected": "Selected",
}

// IsDarkBackground queries the terminal; it reports true when detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name based on
// the terminal background.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig. Resolution order: CMDTREE_COLOR_*
// env, config file, the configured theme, then the default theme.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := "default"
	if envTheme := os.Getenv("CMDTREE_THEME"); envTheme != "" {
		themeName = envTheme
	} else if cfgTheme := cfg["theme"]; cfgTheme != "" {
		themeName = cfgTheme
	}

	result, ok := Themes[ResolveThemeName(themeName)]
	if !ok {
		result = Themes["default-dark"]
	}

	for configKey, field := range colorConfigKeys {
		if envVal := os.Getenv("CMDTREE_" + strings.ToUpper(configKey)); envVal != "" {
			setColorField(&result, field, envVal)
			continue
		}
		if cfgVal := cfg[configKey]; cfgVal != "" {
			setColorField(&result, field, cfgVal)
		}
	}

	return result
}

func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	case "Prompt":
		c.Prompt = value
	case "Selected":
		c.Selected = value
	}
}
