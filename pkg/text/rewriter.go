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

package text

import (
	"context"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var _ Rewriter = (*TagRewriter)(nil)

// TagRewriter appends a marker attribute to every start tag of a TagRule
// that does not already carry the guard. It is safe for concurrent use.
type TagRewriter struct {
	rule    TagRule
	prefix  string
	pattern *regexp2.Regexp
}

// NewTagRewriter creates a TagRewriter for rule
func NewTagRewriter(rule TagRule) (*TagRewriter, error) {
	if err := ValidateRule(rule); err != nil {
		return nil, err
	}

	// the lookahead keeps <el-form-item> and friends out; [^>] spans newlines
	pattern, err := regexp2.Compile(`<`+regexp2.Escape(rule.Tag)+`(?![a-zA-Z-])([^>]*)>`, regexp2.None)
	if err != nil {
		return nil, errors.Errorf("compiling pattern for tag %q: %w", rule.Tag, err)
	}

	return &TagRewriter{
		rule:    rule,
		prefix:  "<" + rule.Tag,
		pattern: pattern,
	}, nil
}

// Rule returns the rule the rewriter was built with
func (r *TagRewriter) Rule() TagRule {
	return r.rule
}

// Rewrite implements Rewriter.Rewrite. Text between matches is copied from
// the input byte for byte, including invalid UTF-8.
func (r *TagRewriter) Rewrite(ctx context.Context, content string) (*RewriteResult, error) {
	result := &RewriteResult{
		Original: content,
		Text:     content,
	}

	if !strings.Contains(content, r.prefix) {
		return result, nil
	}

	// regexp2 reports rune positions; offsets maps them back to bytes
	offsets := runeOffsets(content)

	var buf strings.Builder
	last := 0

	m, err := r.pattern.FindStringMatch(content)
	for ; m != nil && err == nil; m, err = r.pattern.FindNextMatch(m) {
		attrsGroup := m.GroupByNumber(1)
		attrs := content[offsets[attrsGroup.Index]:offsets[attrsGroup.Index+attrsGroup.Length]]
		if strings.Contains(attrs, r.rule.Guard) {
			result.Skipped++
			continue
		}

		start, end := offsets[m.Index], offsets[m.Index+m.Length]
		buf.WriteString(content[last:start])
		buf.WriteString(r.startTag(strings.TrimSpace(attrs)))
		last = end
		result.Rewritten++
	}
	if err != nil {
		return nil, errors.Errorf("rewriting %s tags: %w", r.rule.Tag, err)
	}

	zerolog.Ctx(ctx).Trace().
		Str("tag", r.rule.Tag).
		Int("rewritten", result.Rewritten).
		Int("skipped", result.Skipped).
		Msg("rewrite pass complete")

	if result.Rewritten == 0 {
		return result, nil
	}

	buf.WriteString(content[last:])
	result.Changed = true
	result.Text = buf.String()
	return result, nil
}

// runeOffsets returns the byte offset of every rune in s plus len(s). Each
// invalid byte counts as one rune, the same way []rune(s) decodes it.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

func (r *TagRewriter) startTag(attrs string) string {
	if attrs == "" {
		return r.prefix + " " + r.rule.Marker + ">"
	}
	return r.prefix + " " + attrs + " " + r.rule.Marker + ">"
}

// ValidateRule checks that a rule can be compiled and is idempotent
func ValidateRule(rule TagRule) error {
	if rule.Tag == "" {
		return errors.Errorf("tag is required")
	}
	if strings.ContainsAny(rule.Tag, "<>/ \t\r\n") {
		return errors.Errorf("tag %q is not an element name", rule.Tag)
	}
	if rule.Guard == "" {
		return errors.Errorf("guard is required")
	}
	if rule.Marker == "" {
		return errors.Errorf("marker is required")
	}
	if strings.Contains(rule.Marker, ">") {
		return errors.Errorf("marker %q must not contain '>'", rule.Marker)
	}
	if !strings.Contains(rule.Marker, rule.Guard) {
		return errors.Errorf("marker %q must contain guard %q", rule.Marker, rule.Guard)
	}
	return nil
}
