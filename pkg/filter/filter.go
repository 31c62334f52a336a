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

// Package filter decides which module identifiers are eligible for the
// el-form rewrite.
package filter

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
)

// 📁 DefaultInclude matches every .vue file at any depth
var DefaultInclude = []string{"**/*.vue"}

// 🔌 FilterFunc is a caller supplied eligibility predicate.
// When set it replaces include/exclude matching entirely.
type FilterFunc func(id string) (bool, error)

// 🔧 Config is the eligibility part of the plugin configuration
type Config struct {
	Include []string   // Glob patterns a file must match (full path or basename)
	Exclude []string   // Glob patterns that reject a file (full path or basename)
	Filter  FilterFunc // Optional predicate, takes precedence over Include/Exclude
	Enabled bool       // When false nothing is eligible
}

// 🏭 DefaultConfig returns the configuration used when nothing is specified
func DefaultConfig() Config {
	return Config{
		Include: append([]string(nil), DefaultInclude...),
		Exclude: []string{},
		Enabled: true,
	}
}

// 🎯 Matcher is an immutable, compiled Config. It is safe for concurrent use.
type Matcher struct {
	include []string
	exclude []string
	custom  FilterFunc
	enabled bool
}

// 🏭 New compiles cfg. Patterns that are not valid globs are dropped with a
// warning, which makes them behave as patterns that never match.
func New(ctx context.Context, cfg Config) *Matcher {
	return &Matcher{
		include: compile(ctx, "include", cfg.Include),
		exclude: compile(ctx, "exclude", cfg.Exclude),
		custom:  cfg.Filter,
		enabled: cfg.Enabled,
	}
}

func compile(ctx context.Context, kind string, patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			zerolog.Ctx(ctx).Warn().
				Str("kind", kind).
				Str("pattern", pattern).
				Msg("invalid glob pattern, it will never match")
			continue
		}
		valid = append(valid, pattern)
	}
	return valid
}

// 🔍 Eligible reports whether id should be transformed. The only error it
// returns is one produced by a custom FilterFunc, passed through untouched.
func (m *Matcher) Eligible(id string) (bool, error) {
	if !m.enabled {
		return false, nil
	}

	if m.custom != nil {
		return m.custom(id)
	}

	normalized := Normalize(id)
	base := Base(normalized)

	if !matchAny(m.include, normalized, base) {
		return false, nil
	}
	return !matchAny(m.exclude, normalized, base), nil
}

// 🔄 Normalize converts Windows separators to forward slashes
func Normalize(id string) string {
	return strings.ReplaceAll(id, `\`, "/")
}

// Base returns the final segment of a normalized path. Unlike path.Base a
// trailing slash yields an empty segment.
func Base(normalized string) string {
	return normalized[strings.LastIndex(normalized, "/")+1:]
}

// matchAny checks both the full path and the basename, so basename-only
// patterns like "*.spec.vue" apply at any depth.
func matchAny(patterns []string, normalized, base string) bool {
	for _, pattern := range patterns {
		if match(pattern, normalized) || match(pattern, base) {
			return true
		}
	}
	return false
}

func match(pattern, name string) bool {
	matched, err := doublestar.Match(pattern, name)
	if err != nil {
		return false
	}
	return matched
}
