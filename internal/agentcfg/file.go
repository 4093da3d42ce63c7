package agentcfg

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadFile reads settings from a YAML file on top of Defaults. Sections
// absent from the file keep their defaults. Hours are merged by day so the
// week always has seven entries. An empty path returns Defaults.
func LoadFile(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings parse %s: %w", path, err)
	}

	for i := range s.Escalation {
		if s.Escalation[i].ID == "" {
			s.Escalation[i].ID = "er-" + uuid.NewString()
		}
	}
	for i := range s.Hours {
		if name, ok := canonicalDay(s.Hours[i].Day); ok {
			s.Hours[i].Day = name
		}
	}

	if err = s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	s.Hours = mergeHours(Defaults().Hours, s.Hours)
	return s, nil
}

// mergeHours overlays file entries onto base by canonical day name.
func mergeHours(base, file []BusinessHour) []BusinessHour {
	out := append([]BusinessHour(nil), base...)
	for _, h := range file {
		for i := range out {
			if out[i].Day == h.Day {
				out[i] = h
			}
		}
	}
	return out
}

// WriteFile encodes s as YAML to path.
func WriteFile(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings encode: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("settings write %s: %w", path, err)
	}
	return nil
}
