package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the built-in tables, overlaid with the YAML document at path
// when path is non-empty. Map entries in the file merge over the defaults;
// list-valued fields replace them wholesale. The result is validated before
// being returned, so a malformed file fails here rather than per query.
func Load(path string) (*Tables, error) {
	tables := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read knowledge file: %w", err)
		}
		if err := yaml.Unmarshal(data, tables); err != nil {
			return nil, fmt.Errorf("failed to parse knowledge file: %w", err)
		}
	}

	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("invalid knowledge tables: %w", err)
	}

	return tables, nil
}
