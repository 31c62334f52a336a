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
	"gitlab.com/tozd/go/errors"
)

// ErrNeedsRewrite is returned by check when at least one file would change
var ErrNeedsRewrite = errors.New("files need rewriting")

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Fail if any el-form tag is missing @submit.native.prevent",
		Long: `Check runs the same rewrite as transform without writing anything.
It exits with an error when at least one file would change, which makes it
suitable for CI.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, logger, err := run(cmd, opts, operation.ModeCheck, args)
			if err != nil {
				return err
			}

			if report.Changed > 0 {
				logger.Warningf("%d of %d files need rewriting, run transform to fix them", report.Changed, report.Scanned)
				return errors.Errorf("%d of %d: %w", report.Changed, report.Scanned, ErrNeedsRewrite)
			}

			opts.UserLogger.LogValidation(true, "All el-form tags prevent native submit", nil)
			return nil
		},
	}

	return cmd
}
