package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"symptomcheck/internal/models"
	"symptomcheck/internal/validation"
)

// CatalogFile represents the structure of a catalog YAML file. It replaces the
// built-in keyword table when CATALOG_FILE is set.
type CatalogFile struct {
	Keywords       []KeywordConfig `yaml:"keywords"`
	CommonSymptoms []string        `yaml:"common_symptoms,omitempty"`
	Seed           []SeedConfig    `yaml:"seed,omitempty"`
}

// KeywordConfig maps one keyword to its ordered ailments. List order in the
// file is the registration order used for matching.
type KeywordConfig struct {
	Keyword  string           `yaml:"keyword"`
	Ailments []models.Ailment `yaml:"ailments"`
}

// SeedConfig describes a history record present at startup.
type SeedConfig struct {
	Keyword     string `yaml:"keyword"`
	SearchCount int64  `yaml:"search_count"`
	AgeHours    int    `yaml:"age_hours"`
}

// LoadCatalogFile loads a catalog YAML file.
// Returns nil without error if path is empty or the file doesn't exist.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Catalog file is optional
			return nil, nil
		}
		return nil, err
	}

	return ParseCatalogFile(data)
}

// ParseCatalogFile decodes catalog YAML.
func ParseCatalogFile(data []byte) (*CatalogFile, error) {
	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// SeedRecords returns the file's seed history with normalized keywords, or
// nil if it has none. Every keyword must be a valid, unique history keyword
// with a positive search count.
func (c *CatalogFile) SeedRecords() ([]models.SeedRecord, error) {
	if c == nil || len(c.Seed) == 0 {
		return nil, nil
	}
	out := make([]models.SeedRecord, 0, len(c.Seed))
	seen := make(map[string]bool, len(c.Seed))
	for i, s := range c.Seed {
		keyword := validation.NormalizeQuery(s.Keyword)
		if ok, msg := validation.ValidateKeyword(keyword); !ok {
			return nil, fmt.Errorf("seed %d: %s", i, msg)
		}
		if seen[keyword] {
			return nil, fmt.Errorf("seed %d: duplicate keyword %q", i, keyword)
		}
		seen[keyword] = true
		if s.SearchCount < 1 {
			return nil, fmt.Errorf("seed %d (%s): search_count must be at least 1, got %d", i, keyword, s.SearchCount)
		}
		if s.AgeHours < 0 {
			return nil, fmt.Errorf("seed %d (%s): age_hours must not be negative, got %d", i, keyword, s.AgeHours)
		}
		out = append(out, models.SeedRecord{
			Keyword:     keyword,
			SearchCount: s.SearchCount,
			Age:         time.Duration(s.AgeHours) * time.Hour,
		})
	}
	return out, nil
}
