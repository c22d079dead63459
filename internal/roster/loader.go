// Package roster reads staff roster files into person records.
package roster

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"staffdir/internal/models"
)

// Roster loading errors.
var (
	ErrNotSequence      = errors.New("roster must be a sequence of person mappings")
	ErrRecordNotMapping = errors.New("roster entry is not a mapping")
)

// Load reads a YAML or JSON roster file.
func Load(path string) ([]models.Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	people, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return people, nil
}

// Parse decodes roster content. An empty document is an empty roster.
func Parse(data []byte) ([]models.Person, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if doc == nil {
		return []models.Person{}, nil
	}

	records, ok := doc.([]any)
	if !ok {
		return nil, ErrNotSequence
	}

	people := make([]models.Person, 0, len(records))

	for i, record := range records {
		m, ok := record.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entry[%d]", ErrRecordNotMapping, i)
		}

		people = append(people, models.PersonFromMap(m))
	}

	return people, nil
}

// FromMaps converts records already decoded by a host.
func FromMaps(records []map[string]any) []models.Person {
	people := make([]models.Person, 0, len(records))
	for _, m := range records {
		people = append(people, models.PersonFromMap(m))
	}

	return people
}
