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

// NewTransformCmd creates a new transform command
func NewTransformCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [dir]",
		Short: "Add @submit.native.prevent to every el-form tag",
		Long: `Transform rewrites el-form start tags in place.
It will:
1. Load the config from --config or the first .elformrc.* in dir
2. Walk dir, skipping node_modules, .git and dist by default
3. Rewrite every eligible file that has an unguarded el-form tag
4. Leave every other file untouched`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, logger, err := run(cmd, opts, operation.ModeWrite, args)
			if err != nil {
				return err
			}

			if report.Changed > 0 {
				logger.Successf("rewrote %d of %d files", report.Changed, report.Scanned)
			}
			return nil
		},
	}

	return cmd
}
