package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog file. An empty path or a missing file yields Default.
// Sections left out of the file fall back to the defaults for that section.
func Load(path string) (Snapshot, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Snapshot{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var parsed Snapshot
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Snapshot{}, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	if err := parsed.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return parsed, nil
}

func (s *Snapshot) applyDefaults() {
	def := Default()
	if len(s.Menu) == 0 && len(s.Modifiers) == 0 {
		s.Menu = def.Menu
		s.Modifiers = def.Modifiers
	}
	if len(s.Chefs) == 0 {
		s.Chefs = def.Chefs
	}
	if s.Settings.TableCount == 0 {
		s.Settings.TableCount = def.Settings.TableCount
	}
	if len(s.Settings.WorkingDays) == 0 {
		s.Settings.WorkingDays = def.Settings.WorkingDays
	}
	if s.Settings.ContactNumber == "" {
		s.Settings.ContactNumber = def.Settings.ContactNumber
	}
	if s.Settings.MobileMoneyDetails == "" {
		s.Settings.MobileMoneyDetails = def.Settings.MobileMoneyDetails
	}
	for i := range s.Menu {
		if len(s.Menu[i].AllowedOptions) == 0 {
			s.Menu[i].AllowedOptions = append([]DiningOption(nil), allOptions...)
		}
	}
}
