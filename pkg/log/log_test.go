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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/elformprevent/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFile(context.Background(), status.FileInfo{
					Path:      "src/App.vue",
					Status:    status.StatusModified,
					Rewritten: 2,
					Written:   true,
				})
			},
			wantLogs: []string{
				"✓ src/App.vue                         rewritten      2",
			},
		},
		{
			name: "log_file_with_diff",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFile(context.Background(), status.FileInfo{
					Path:      "App.vue",
					Status:    status.StatusModified,
					Rewritten: 1,
					Diff:      "--- a/App.vue\n+++ b/App.vue\n@@ -1 +1 @@\n-<el-form>\n+<el-form @submit.native.prevent>\n",
				})
			},
			wantLogs: []string{
				"⟳ App.vue                             needs rewrite  1",
				"--- a/App.vue",
				"+++ b/App.vue",
				"@@ -1 +1 @@",
				"-<el-form>",
				"+<el-form @submit.native.prevent>",
			},
		},
		{
			name: "log_run",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{
					Root: "/tmp/app",
					Mode: "check",
				})
				logger.EndRun(context.Background(), "✅ 0 scanned, nothing to rewrite")
			},
			wantLogs: []string{
				"[check /tmp/app]",
				"◆ config defaults",
				"✅ 0 scanned, nothing to rewrite",
			},
		},
		{
			name: "end_without_start",
			op: func(t *testing.T, logger *Logger) {
				logger.EndRun(context.Background(), "ignored")
				logger.Successf("after")
			},
			wantLogs: []string{
				"✅ after",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Warningf("%d of %d files need rewriting", 2, 5)
				logger.Errorf("%s: %v", "src/App.vue", errors.New("permission denied"))
				logger.Successf("rewrote %d files", 3)
			},
			wantLogs: []string{
				"⚠️  2 of 5 files need rewriting",
				"❌ src/App.vue: permission denied",
				"✅ rewrote 3 files",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Disabled)

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestFileFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		info status.FileInfo
		want string
	}{
		{
			name: "rewritten_file",
			info: status.FileInfo{Path: "test.vue", Status: status.StatusModified, Rewritten: 1, Written: true},
			want: "    ✓ test.vue                            rewritten      1",
		},
		{
			name: "pending_file",
			info: status.FileInfo{Path: "test.vue", Status: status.StatusModified, Rewritten: 3},
			want: "    ⟳ test.vue                            needs rewrite  3",
		},
		{
			name: "unchanged_file",
			info: status.FileInfo{Path: "test.vue", Status: status.StatusUnchanged},
			want: "    • test.vue                            no change      ",
		},
		{
			name: "failed_file",
			info: status.FileInfo{Path: "test.vue", Status: status.StatusError, Error: errors.New("permission denied")},
			want: "    ✗ test.vue                            error          permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(io.Discard, zerolog.Disabled)
			assert.Equal(t, tt.want, logger.formatFile(tt.info), "formatted output should match")
		})
	}
}

func TestColorDiff(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	diff := "--- a/x\n+++ b/x\n@@ -1 +1 @@\n-a\n+b\n"
	assert.Equal(t, diff, colorDiff(diff), "without color the diff should pass through")
}
