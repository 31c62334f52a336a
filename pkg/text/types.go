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

import "context"

// 🏷️ TagRule describes which start tag to rewrite and what to append to it
type TagRule struct {
	// Tag is the element name, e.g. "el-form"
	Tag string

	// Guard is a substring of the attribute text that leaves a tag untouched
	Guard string

	// Marker is the attribute appended when Guard is absent. It must contain
	// Guard so a rewritten tag is never rewritten again.
	Marker string
}

const (
	// ElFormTag is the element-ui form component
	ElFormTag = "el-form"
	// SubmitGuard suppresses the rewrite for any submit binding
	SubmitGuard = "@submit"
	// NativePreventMarker stops the native form submit event
	NativePreventMarker = "@submit.native.prevent"
)

// ElFormRule returns the rule for <el-form> tags
func ElFormRule() TagRule {
	return TagRule{
		Tag:    ElFormTag,
		Guard:  SubmitGuard,
		Marker: NativePreventMarker,
	}
}

// RewriteResult contains the results of a rewrite pass
type RewriteResult struct {
	// Changed indicates if any occurrence was rewritten
	Changed bool

	// Rewritten is the number of occurrences that received the marker
	Rewritten int

	// Skipped is the number of occurrences left alone because of the guard
	Skipped int

	// Original is the content before the pass
	Original string

	// Text is the content after the pass, identical to Original when
	// Changed is false
	Text string
}

// Occurrences returns the number of matched start tags
func (r *RewriteResult) Occurrences() int {
	return r.Rewritten + r.Skipped
}

// Rewriter defines the interface for markup rewrite passes
type Rewriter interface {
	// Rewrite applies the pass to content in a single left to right scan
	Rewrite(ctx context.Context, content string) (*RewriteResult, error)
}
