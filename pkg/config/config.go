// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/elformprevent/pkg/filter"
	"github.com/walteh/elformprevent/pkg/plugin"
	"github.com/walteh/elformprevent/pkg/text"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📁 FileNames are the config files Discover looks for, in order
var FileNames = []string{
	".elformrc.yaml",
	".elformrc.yml",
	".elformrc.json",
	".elformrc.hcl",
}

// 🚫 DefaultSkip lists directories the file walker never descends into
var DefaultSkip = []string{
	"**/node_modules",
	"**/.git",
	"**/dist",
}

// 📚 Config represents a project configuration file
type Config struct {
	Include []string `json:"include,omitempty" yaml:"include,omitempty"` // Glob patterns of files to transform
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"` // Glob patterns of files to leave alone
	Enabled *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"` // Defaults to true
	Marker  string   `json:"marker,omitempty" yaml:"marker,omitempty"`   // Attribute to append
	Skip    []string `json:"skip,omitempty" yaml:"skip,omitempty"`       // Directories the walker skips
	Workers int      `json:"workers,omitempty" yaml:"workers,omitempty"` // 0 means GOMAXPROCS

	location string
}

// 🏭 Default returns a validated config with every default applied
func Default() *Config {
	cfg := &Config{}
	// defaults always validate
	_ = cfg.Validate()
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	cfg.location = path
	return cfg, nil
}

// 🔍 Discover loads the first config file found in dir, or the defaults
func Discover(ctx context.Context, dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Errorf("checking config file: %w", err)
		}
		return Load(ctx, path)
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no config file found, using defaults")
	return Default(), nil
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", cfg.Workers)
	}

	// Set defaults
	if cfg.Include == nil {
		cfg.Include = append([]string{}, filter.DefaultInclude...)
	}
	if cfg.Exclude == nil {
		cfg.Exclude = []string{}
	}
	if cfg.Enabled == nil {
		enabled := true
		cfg.Enabled = &enabled
	}
	if cfg.Marker == "" {
		cfg.Marker = text.NativePreventMarker
	}
	if cfg.Skip == nil {
		cfg.Skip = append([]string{}, DefaultSkip...)
	}

	rule := text.ElFormRule()
	rule.Marker = cfg.Marker
	if err := text.ValidateRule(rule); err != nil {
		return errors.Errorf("marker: %w", err)
	}

	return nil
}

// IsEnabled reports the enabled flag, true when unset
func (cfg *Config) IsEnabled() bool {
	return cfg.Enabled == nil || *cfg.Enabled
}

// Location returns the file the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔌 PluginOptions converts a validated config into plugin options
func (cfg *Config) PluginOptions() []plugin.Option {
	return []plugin.Option{
		plugin.WithInclude(cfg.Include...),
		plugin.WithExclude(cfg.Exclude...),
		plugin.WithEnabled(cfg.IsEnabled()),
		plugin.WithMarker(cfg.Marker),
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	marker := cfg.Marker
	if marker == "" {
		marker = text.NativePreventMarker
	}
	return fmt.Sprintf("include=[%s] exclude=[%s] enabled=%t marker=%s",
		strings.Join(cfg.Include, ","), strings.Join(cfg.Exclude, ","), cfg.IsEnabled(), marker)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		// an empty document leaves every field at its default
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}
