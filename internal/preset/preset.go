// Package preset loads named trait profiles from YAML content files.
package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/hitrate/internal/hitrate"
)

// Evasion holds the raw defending traits of a preset.
type Evasion struct {
	Agility string `yaml:"agility"`
	Luck    string `yaml:"luck"`
	Bonus   string `yaml:"bonus"`
}

// Accuracy holds the raw attacking traits of a preset.
type Accuracy struct {
	Dexterity string `yaml:"dexterity"`
	Luck      string `yaml:"luck"`
	Bonus     string `yaml:"bonus"`
}

// Preset is a named set of raw trait inputs.
//
// Precondition: ID and Name must be non-empty after loading.
type Preset struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Evasion     Evasion  `yaml:"evasion"`
	Accuracy    Accuracy `yaml:"accuracy"`
}

// Matchup converts the preset into calculator inputs.
func (p *Preset) Matchup() hitrate.Matchup {
	return hitrate.Matchup{
		Evasion: hitrate.EvasionTraits{
			Agility: p.Evasion.Agility,
			Luck:    p.Evasion.Luck,
			Bonus:   p.Evasion.Bonus,
		},
		Accuracy: hitrate.AccuracyTraits{
			Dexterity: p.Accuracy.Dexterity,
			Luck:      p.Accuracy.Luck,
			Bonus:     p.Accuracy.Bonus,
		},
	}
}

func (p *Preset) validate(path string) error {
	if p.ID == "" {
		return fmt.Errorf("preset file %s: id must not be empty", path)
	}
	if p.Name == "" {
		return fmt.Errorf("preset file %s: name must not be empty", path)
	}
	return nil
}

// Load reads all .yaml files in dir and parses each as a Preset.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed presets sorted by ID, or a non-nil error.
func Load(dir string) ([]*Preset, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	presets := make([]*Preset, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var p Preset
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing preset file %s: %w", path, err)
		}
		if err := p.validate(path); err != nil {
			return nil, err
		}
		presets = append(presets, &p)
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	return presets, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
