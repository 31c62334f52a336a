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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/elformprevent/cmd/elformprevent/opts"
	"github.com/walteh/elformprevent/pkg/config"
	"github.com/walteh/elformprevent/pkg/log"
	"github.com/walteh/elformprevent/pkg/operation"
	"github.com/walteh/elformprevent/pkg/plugin"
	"github.com/walteh/elformprevent/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 run loads the config for the target dir and runs one operation over it.
// The returned logger is the console the run printed to.
func run(cmd *cobra.Command, o *opts.RootOpts, mode operation.Mode, args []string) (*operation.Report, *log.Logger, error) {
	ctx := cmd.Context()

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, errors.Errorf("resolving %s: %w", dir, err)
	}

	cfg, err := loadConfig(cmd, o, root)
	if err != nil {
		return nil, nil, err
	}

	zerolog.Ctx(ctx).Debug().Stringer("config", cfg).Str("location", cfg.Location()).Msg("config loaded")

	p, err := plugin.New(ctx, cfg.PluginOptions()...)
	if err != nil {
		return nil, nil, errors.Errorf("creating plugin: %w", err)
	}

	workers := cfg.Workers
	if o.WorkersSet {
		workers = o.Workers
	}

	level := zerolog.WarnLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}
	logger := log.New(cmd.OutOrStdout(), level)

	runner, err := operation.New(operation.Options{
		Root:        root,
		Transformer: p,
		Skip:        cfg.Skip,
		Workers:     workers,
		Mode:        mode,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, errors.Errorf("creating runner: %w", err)
	}

	logger.StartRun(ctx, log.RunOperation{
		Root:   root,
		Mode:   mode.String(),
		Config: cfg.Location(),
	})

	report, err := runner.Run(ctx)
	if err != nil {
		return nil, nil, errors.Errorf("running %s: %w", mode, err)
	}

	logger.EndRun(ctx, report.Summary)

	if report.Failed > 0 {
		for _, info := range report.Files {
			if info.Status == status.StatusError {
				logger.Errorf("%s: %v", info.Path, info.Error)
			}
		}
		return report, logger, errors.Errorf("%d files failed", report.Failed)
	}
	return report, logger, nil
}

// 📁 loadConfig reads --config when given, otherwise discovers a config in root
func loadConfig(cmd *cobra.Command, o *opts.RootOpts, root string) (*config.Config, error) {
	ctx := cmd.Context()

	if o.ConfigFile != "" {
		cfg, err := config.Load(ctx, o.ConfigFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Discover(ctx, root)
	if err != nil {
		return nil, errors.Errorf("discovering config: %w", err)
	}
	return cfg, nil
}
