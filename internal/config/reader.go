package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/paths"
)

// ReadLines returns the raw lines of ~/.cmdtreerc. A missing or empty file
// is created and seeded with the visible keys and their defaults.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

func initializeDefaults() []string {
	lines := []string{
		"# cmdtree configuration",
		"# Edit values below or use: cmdtree config set <key> <value>",
	}

	section := ""
	for _, key := range domain.VisibleConfigKeys() {
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}
		value, _ := defaultFor(key.Name)
		lines = append(lines, key.Name+"="+quote(value))
	}

	return lines
}
