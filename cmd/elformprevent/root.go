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

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/elformprevent/cmd/elformprevent/commands"
	"github.com/walteh/elformprevent/cmd/elformprevent/opts"
)

// newRootCmd creates the root command with every subcommand attached
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "elformprevent",
		Short: "Stop el-form from submitting natively",
		Long: `elformprevent adds @submit.native.prevent to every <el-form> start tag
in a project's Vue single file components, so pressing Enter in a one-field
form no longer reloads the page. Tags that already declare an @submit
handler are left alone.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			o.WorkersSet = cmd.Flags().Changed("workers")
			setLevel(o.Debug)
		},
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewTransformCmd(o),
		commands.NewCheckCmd(o),
		commands.NewDiffCmd(o),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: discover .elformrc.* in dir)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().IntVarP(&o.Workers, "workers", "w", 0, "concurrent transforms (default: config, then GOMAXPROCS)")
}

// setupLogging installs the stderr logger used whenever a context carries none
func setupLogging() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
	setLevel(false)
}

func setLevel(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
