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

package status

import (
	"fmt"
)

// FileFormatter defines how file outcomes and summaries should be formatted
type FileFormatter interface {
	// FormatFile formats the outcome for one file
	FormatFile(info FileInfo) string

	// FormatSummary formats the totals of a run
	FormatSummary(s Summary) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFile formats a file outcome with emojis
func (f *DefaultFileFormatter) FormatFile(info FileInfo) string {
	switch info.Status {
	case StatusModified:
		return fmt.Sprintf("📝 Modified %s (%s)", info.Path, plural(info.Rewritten, "form"))
	case StatusError:
		if info.Error != nil {
			return fmt.Sprintf("❌ Failed %s: %v", info.Path, info.Error)
		}
		return fmt.Sprintf("❌ Failed %s", info.Path)
	default:
		return fmt.Sprintf("👍 Unchanged %s", info.Path)
	}
}

// FormatSummary formats run totals
func (f *DefaultFileFormatter) FormatSummary(s Summary) string {
	if s.Failed > 0 {
		return fmt.Sprintf("❌ %d scanned, %d modified, %d failed", s.Total, s.Modified, s.Failed)
	}
	if s.Modified == 0 {
		return fmt.Sprintf("✅ %d scanned, nothing to rewrite", s.Total)
	}
	return fmt.Sprintf("✅ %d scanned, %d modified (%s)", s.Total, s.Modified, plural(s.Rewritten, "form"))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
