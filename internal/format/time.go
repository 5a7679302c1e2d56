// Package format renders timestamps for command output according to the
// display_date and display_time settings.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/cmdtree/internal/config"
)

// DateTime formats date and time, e.g. "Jan 23 15:04" or "01/23/2024 3:04 PM".
func DateTime(t time.Time) string {
	return Date(t) + " " + Time(t)
}

// DateTimeShort formats date without year and time.
func DateTimeShort(t time.Time) string {
	return DateShort(t) + " " + Time(t)
}

func Date(t time.Time) string {
	return t.Format(dateLayout(setting("display_date", "Jan 02")))
}

func DateShort(t time.Time) string {
	return t.Format(shortDateLayout(setting("display_date", "Jan 02")))
}

func Time(t time.Time) string {
	return t.Format(timeLayout(setting("display_time", "24h")))
}

// Age renders how long ago something happened: "now", "5m ago", "3h ago",
// "2d ago". Anything older than a week is shown as a date instead.
func Age(now, then time.Time) string {
	d := now.Sub(then)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return DateShort(then)
	}
}

func setting(key, fallback string) string {
	if v, ok := config.Get(key); ok && v != "" {
		return v
	}
	return fallback
}

func dateLayout(display string) string {
	switch display {
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// A custom Go layout such as "Jan 02".
		return display
	}
}

func shortDateLayout(display string) string {
	switch display {
	case "mm/dd/yyyy":
		return "01/02"
	case "yyyy-mm-dd":
		return "01-02"
	case "dd/mm/yyyy":
		return "02/01"
	}

	short := display
	for _, year := range []string{"2006", "/06", "-06", " 06"} {
		short = strings.ReplaceAll(short, year, "")
	}
	short = strings.Trim(strings.TrimSpace(short), "/-")
	if short == "" {
		return "Jan 02"
	}
	return short
}

func timeLayout(display string) string {
	if display == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}
