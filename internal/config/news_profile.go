package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_news.yaml
var defaultNewsProfile []byte

// xdgNewsProfile is the path searched under the XDG config directories.
const xdgNewsProfile = "energyintel/news.yaml"

// Feed is an RSS feed used as a fallback news source
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// NewsProfile describes what the news engine asks upstream for
type NewsProfile struct {
	Queries        []string `yaml:"queries"`
	MaxQueries     int      `yaml:"max_queries"`
	MaxRawArticles int      `yaml:"max_raw_articles"`
	PageSize       int      `yaml:"page_size"`
	Language       string   `yaml:"language"`
	SortBy         string   `yaml:"sort_by"`
	Sources        []string `yaml:"sources"`
	Feeds          []Feed   `yaml:"feeds"`
}

// DefaultNewsProfile returns the embedded profile.
func DefaultNewsProfile() *NewsProfile {
	p := &NewsProfile{}
	if err := yaml.Unmarshal(defaultNewsProfile, p); err != nil {
		panic(fmt.Sprintf("embedded news profile is invalid: %v", err))
	}
	return p
}

// LoadNewsProfile reads a YAML news profile.
// An empty path searches the XDG config directories and falls back to the
// embedded defaults. Fields missing from the file keep their default values.
func LoadNewsProfile(path string) (*NewsProfile, error) {
	profile := DefaultNewsProfile()

	if path == "" {
		found, err := xdg.SearchConfigFile(xdgNewsProfile)
		if err != nil {
			return profile, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read news profile %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse news profile %s: %w", path, err)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid news profile %s: %w", path, err)
	}

	return profile, nil
}

// Validate checks the profile for values the engine cannot work with
func (p *NewsProfile) Validate() error {
	if len(p.Queries) == 0 {
		return errors.New("news profile needs at least one query")
	}
	if p.MaxQueries <= 0 {
		return errors.New("max_queries must be positive")
	}
	if p.PageSize <= 0 || p.PageSize > 100 {
		return fmt.Errorf("page_size must be between 1 and 100, got %d", p.PageSize)
	}
	if p.MaxRawArticles <= 0 {
		return errors.New("max_raw_articles must be positive")
	}
	for _, f := range p.Feeds {
		if f.URL == "" {
			return fmt.Errorf("feed %q has no url", f.Name)
		}
	}
	return nil
}
