package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Get handles `config get <key>`.
func Get(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		key := string(args[0].(Key))
		value, _ := deps.Provider.Get(key)
		sender.SendMessage(fmt.Sprintf("%s=%q", key, value))
		return nil
	}
}

// List handles `config list`.
func List(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, _ []any) error {
		all, err := deps.Provider.GetAll()
		if err != nil {
			return err
		}

		var out strings.Builder
		section := ""
		for _, key := range domain.VisibleConfigKeys() {
			if key.Section != section {
				section = key.Section
				fmt.Fprintf(&out, "%s\n", section)
			}
			fmt.Fprintf(&out, "  %-20s %q\n", key.Name, all[key.Name])
		}
		sender.SendMessage(strings.TrimRight(out.String(), "\n"))
		return nil
	}
}

// Set handles `config set <key> <value...>`.
func Set(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		key := string(args[0].(Key))
		value := args[1].(string)

		if err := validate(key, value); err != nil {
			sender.SendMessage(err.Error())
			return nil
		}
		if err := deps.Provider.Set(key, value); err != nil {
			return err
		}
		deps.apply(key, value)
		sender.SendMessage(fmt.Sprintf("%s set to %q.", key, value))
		return nil
	}
}

// Unset handles `config unset <key>`.
func Unset(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		key := string(args[0].(Key))

		if err := deps.Provider.Unset(key); err != nil {
			return err
		}
		value, _ := deps.Provider.Get(key)
		deps.apply(key, value)
		sender.SendMessage(fmt.Sprintf("%s reset to %q.", key, value))
		return nil
	}
}

// Completer handles `config completer <enabled>`, toggling session-name
// suggestions.
func Completer(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		enabled := args[0].(bool)
		value := strconv.FormatBool(enabled)

		if err := deps.Provider.Set("session_completer", value); err != nil {
			return err
		}
		deps.apply("session_completer", value)

		state := "disabled"
		if enabled {
			state = "enabled"
		}
		sender.SendMessage("Session name completion " + state + ".")
		return nil
	}
}

var boolKeys = map[string]bool{"session_completer": true, "enable_log": true}

func validate(key, value string) error {
	switch {
	case boolKeys[key]:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
	case key == "display_time":
		if value != "12h" && value != "24h" {
			return fmt.Errorf("display_time expects 12h or 24h, got %q", value)
		}
	case key == "log_level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("log_level expects debug, info, warn or error, got %q", value)
		}
	}
	return nil
}
