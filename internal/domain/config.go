package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `cmdtree config list`
	Hidden      bool
}

// ConfigKeys defines all available configuration keys.
// Order determines display order in `cmdtree config list`.
var ConfigKeys = []ConfigKey{
	// Dispatch
	{
		Name:        "usage_prefix",
		Default:     "Usage: ",
		Description: "Text placed before every usage message",
		Section:     "Dispatch",
	},
	{
		Name:        "player_only_message",
		Default:     "This command can only be run by players.",
		Description: "Message sent when a non-session sender runs a player-only command",
		Section:     "Dispatch",
	},
	{
		Name:        "session_completer",
		Default:     "true",
		Description: "Suggest active session names during completion (true/false)",
		Section:     "Dispatch",
	},
	// Shell
	{
		Name:        "prompt",
		Default:     "> ",
		Description: "Prompt shown by the interactive shell",
		Section:     "Shell",
	},
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono, ocean",
		Section:     "Shell",
	},
	// Display
	{
		Name:        "display_date",
		Default:     "Jan 02",
		Description: "Date format: dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd or a Go layout",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format: 12h or 24h",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// Storage
	{
		Name:        "db_path",
		Default:     "", // set dynamically to paths.DatabasePath()
		Description: "Path to the session directory database",
		Section:     "Storage",
		Hidden:      true,
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigKeyNames returns the names of all visible keys in display order.
func ConfigKeyNames() []string {
	visible := VisibleConfigKeys()
	names := make([]string, len(visible))
	for i, key := range visible {
		names[i] = key.Name
	}
	return names
}
