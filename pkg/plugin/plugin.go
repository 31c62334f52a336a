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

package plugin

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/elformprevent/pkg/filter"
	"github.com/walteh/elformprevent/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// Name identifies the plugin to the host
const Name = "vite-plugin-el-form-submit-prevent"

// 🔀 Enforce is an ordering hint for the host
type Enforce string

// EnforcePre runs the transform before other source transforms
const EnforcePre Enforce = "pre"

// 🏷️ Kind tags a Result
type Kind int

const (
	// Unchanged means the host keeps the code it already has
	Unchanged Kind = iota
	// Rewritten means Result.Code replaces the module code
	Rewritten
)

func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Rewritten:
		return "rewritten"
	default:
		return "unknown"
	}
}

// 📥 Request is a single transform invocation
type Request struct {
	Code string // Current module text
	ID   string // Module identifier, an absolute or project relative path
}

// 📤 Result is the outcome of a transform
type Result struct {
	Kind      Kind
	Code      string // Set only when Kind is Rewritten
	Map       []byte // Always nil, no source map is produced
	Rewritten int    // Number of tags that received the marker
}

// 🔌 Transformer is what a host needs from a source transform plugin
type Transformer interface {
	Name() string
	Enforce() Enforce
	// Eligible lets a host skip reading modules Transform would ignore
	Eligible(id string) (bool, error)
	Transform(ctx context.Context, req Request) (*Result, error)
}

var _ Transformer = (*Plugin)(nil)

// 🔧 Option configures a Plugin
type Option func(*options)

type options struct {
	filter filter.Config
	rule   text.TagRule
}

// WithInclude replaces the include patterns. Calling it with no patterns
// makes every identifier ineligible.
func WithInclude(patterns ...string) Option {
	return func(o *options) {
		o.filter.Include = append([]string{}, patterns...)
	}
}

// WithExclude replaces the exclude patterns
func WithExclude(patterns ...string) Option {
	return func(o *options) {
		o.filter.Exclude = append([]string{}, patterns...)
	}
}

// WithFilter installs a predicate that replaces include/exclude matching.
// Its errors are returned from Transform unchanged.
func WithFilter(fn filter.FilterFunc) Option {
	return func(o *options) {
		o.filter.Filter = fn
	}
}

// WithEnabled turns the plugin on or off
func WithEnabled(enabled bool) Option {
	return func(o *options) {
		o.filter.Enabled = enabled
	}
}

// WithMarker replaces the appended attribute, e.g. "@submit.prevent" for Vue 3
func WithMarker(marker string) Option {
	return func(o *options) {
		o.rule.Marker = marker
	}
}

// 🎮 Plugin implements Transformer for <el-form> tags
type Plugin struct {
	matcher  *filter.Matcher
	rewriter *text.TagRewriter
}

// 🏭 New creates a plugin. Unset options take their defaults: include
// "**/*.vue", no exclude, no custom filter, enabled, el-form rule.
func New(ctx context.Context, opts ...Option) (*Plugin, error) {
	o := &options{
		filter: filter.DefaultConfig(),
		rule:   text.ElFormRule(),
	}
	for _, opt := range opts {
		opt(o)
	}

	rewriter, err := text.NewTagRewriter(o.rule)
	if err != nil {
		return nil, errors.Errorf("creating tag rewriter: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Strs("include", o.filter.Include).
		Strs("exclude", o.filter.Exclude).
		Bool("custom_filter", o.filter.Filter != nil).
		Bool("enabled", o.filter.Enabled).
		Str("tag", rewriter.Rule().Tag).
		Str("marker", rewriter.Rule().Marker).
		Msg("creating plugin")

	return &Plugin{
		matcher:  filter.New(ctx, o.filter),
		rewriter: rewriter,
	}, nil
}

// Name implements Transformer.Name
func (p *Plugin) Name() string {
	return Name
}

// Enforce implements Transformer.Enforce
func (p *Plugin) Enforce() Enforce {
	return EnforcePre
}

// Eligible implements Transformer.Eligible. Errors come from a custom
// filter and are returned unchanged.
func (p *Plugin) Eligible(id string) (bool, error) {
	return p.matcher.Eligible(id)
}

// 🔄 Transform implements Transformer.Transform
func (p *Plugin) Transform(ctx context.Context, req Request) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	eligible, err := p.Eligible(req.ID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		logger.Trace().Str("id", req.ID).Msg("skipping ineligible file")
		return &Result{Kind: Unchanged}, nil
	}

	rewritten, err := p.rewriter.Rewrite(ctx, req.Code)
	if err != nil {
		return nil, errors.Errorf("transforming %s: %w", req.ID, err)
	}
	if !rewritten.Changed {
		return &Result{Kind: Unchanged}, nil
	}

	logger.Debug().
		Str("id", req.ID).
		Int("rewritten", rewritten.Rewritten).
		Int("skipped", rewritten.Skipped).
		Int("occurrences", rewritten.Occurrences()).
		Msg("rewrote el-form tags")

	return &Result{
		Kind:      Rewritten,
		Code:      rewritten.Text,
		Rewritten: rewritten.Rewritten,
	}, nil
}
