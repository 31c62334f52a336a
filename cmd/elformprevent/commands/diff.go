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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/elformprevent/cmd/elformprevent/opts"
	"github.com/walteh/elformprevent/pkg/operation"
)

// NewDiffCmd creates a new diff command
func NewDiffCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [dir]",
		Short: "Show the lines transform would change",
		Long: `Diff prints a line diff for every file transform would rewrite.
Nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := run(cmd, opts, operation.ModeDiff, args)
			return err
		},
	}

	return cmd
}
