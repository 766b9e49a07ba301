// Package config loads and validates the graphmetrics driver input: the
// connection list, directedness, which vertices to query and enumeration limits.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphmetrics/core"
	"github.com/katalvlaran/graphmetrics/internal/fixtures"
	"github.com/katalvlaran/graphmetrics/paths"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level YAML document.
//
//	directed: false
//	connections: [["1", "2"], ["1", "3"]]
//	queries:
//	  closeness: ["3", "12"]
//	limits:
//	  max_paths: 1000
type Config struct {
	Directed    bool        `yaml:"directed"`
	Connections [][2]string `yaml:"connections"`
	Queries     Queries     `yaml:"queries"`
	Limits      Limits      `yaml:"limits"`
}

// Queries lists the vertices each per-vertex measure is reported for.
// An empty list means "every vertex".
type Queries struct {
	Closeness    []string    `yaml:"closeness"`
	Eccentricity []string    `yaml:"eccentricity"`
	Betweenness  []string    `yaml:"betweenness"`
	Clustering   []string    `yaml:"clustering"`
	Paths        [][2]string `yaml:"paths"`
}

// Limits bound simple-path enumeration (betweenness and path listings).
type Limits struct {
	MaxPaths int `yaml:"max_paths"`
	MaxHops  int `yaml:"max_hops"`
}

// Default returns the built-in coursework graph and its reference queries.
func Default() *Config {
	conns := make([][2]string, len(fixtures.CourseworkPairs))
	copy(conns, fixtures.CourseworkPairs)

	return &Config{
		Connections: conns,
		Queries: Queries{
			Closeness:    []string{"3", "12"},
			Eccentricity: []string{"3", "12", "11"},
			Betweenness:  []string{"3", "12"},
			Clustering:   []string{"3"},
			Paths:        [][2]string{{"1", "12"}},
		},
		Limits: Limits{MaxPaths: paths.DefaultMaxPaths},
	}
}

// Load reads path, or returns Default when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document, fills defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{Limits: Limits{MaxPaths: paths.DefaultMaxPaths}}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects empty graphs, blank IDs, negative limits and queries
// naming vertices that no connection mentions.
func (c *Config) Validate() error {
	if len(c.Connections) == 0 {
		return fmt.Errorf("%w: no connections", ErrInvalid)
	}
	known := make(map[string]struct{}, 2*len(c.Connections))
	for i, p := range c.Connections {
		for _, id := range p {
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("%w: connection %d has a blank vertex ID", ErrInvalid, i)
			}
			known[id] = struct{}{}
		}
	}
	if c.Limits.MaxPaths < 0 || c.Limits.MaxHops < 0 {
		return fmt.Errorf("%w: limits cannot be negative", ErrInvalid)
	}

	check := func(section string, ids ...string) error {
		for _, id := range ids {
			if _, ok := known[id]; !ok {
				return fmt.Errorf("%w: queries.%s: unknown vertex %q", ErrInvalid, section, id)
			}
		}
		return nil
	}
	q := c.Queries
	sections := []struct {
		name string
		ids  []string
	}{
		{"closeness", q.Closeness},
		{"eccentricity", q.Eccentricity},
		{"betweenness", q.Betweenness},
		{"clustering", q.Clustering},
	}
	for _, s := range sections {
		if err := check(s.name, s.ids...); err != nil {
			return err
		}
	}
	for _, p := range q.Paths {
		if err := check("paths", p[0], p[1]); err != nil {
			return err
		}
	}

	return nil
}

// Graph builds the immutable graph described by c.
func (c *Config) Graph() *core.Graph[string] {
	return core.NewGraphFromPairs(c.Connections, core.WithDirected(c.Directed))
}

// PathOptions converts Limits into paths options.
func (c *Config) PathOptions() []paths.Option {
	return []paths.Option{paths.WithMaxPaths(c.Limits.MaxPaths), paths.WithMaxHops(c.Limits.MaxHops)}
}
