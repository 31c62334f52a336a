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
	"strings"

	"github.com/fatih/color"
)

// colorDiff colors the output of text.LineDiff line by line
func colorDiff(diff string) string {
	var buf strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			buf.WriteString(color.New(color.Bold).Sprint(body))
		case strings.HasPrefix(body, "@@"):
			buf.WriteString(color.New(color.FgCyan).Sprint(body))
		case strings.HasPrefix(body, "+"):
			buf.WriteString(color.New(color.FgGreen).Sprint(body))
		case strings.HasPrefix(body, "-"):
			buf.WriteString(color.New(color.FgRed).Sprint(body))
		default:
			buf.WriteString(body)
		}
		buf.WriteString("\n")
	}
	return buf.String()
}
