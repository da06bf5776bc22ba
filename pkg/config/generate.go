package config

import (
	"bytes"
	"strings"

	"github.com/Oliyy/karabiner-cli/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent returns the defaults file with every value commented out,
// suitable as a starting point for a user settings file.
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues comments out every assignment, keeping comments,
// blank lines and table headers.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[[") && strings.HasSuffix(trimmed, "]]"):
			// Array tables would create empty entries if left active.
			result = append(result, "# "+line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

// tomlSettings mirrors Settings with durations rendered as strings.
type tomlSettings struct {
	Karabiner Karabiner `toml:"karabiner"`
	Profiles  Profiles  `toml:"profiles"`
	Watch     struct {
		Debounce string `toml:"debounce"`
	} `toml:"watch"`
	Output  Output               `toml:"output"`
	Devices []types.DevicePreset `toml:"devices"`
}

// EncodeTOML renders the effective settings as TOML.
func EncodeTOML(s *Settings) ([]byte, error) {
	out := tomlSettings{
		Karabiner: s.Karabiner,
		Profiles:  s.Profiles,
		Output:    s.Output,
		Devices:   s.Devices,
	}
	out.Watch.Debounce = s.Watch.Debounce.String()

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
