package ingest

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FeedSource is one configured RSS obituary feed.
type FeedSource struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type feedSourcesFile struct {
	Sources []FeedSource `yaml:"sources"`
}

// LoadFeedSources reads the feed-source list from YAML.
func LoadFeedSources(r io.Reader) ([]FeedSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed sources config: %w", err)
	}

	var file feedSourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse feed sources config: %w", err)
	}

	for i, src := range file.Sources {
		if src.Name == "" || src.URL == "" {
			return nil, fmt.Errorf("feed source %d is missing a name or url", i)
		}
	}

	return file.Sources, nil
}
