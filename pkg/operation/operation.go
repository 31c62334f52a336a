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

package operation

import (
	"context"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/walteh/elformprevent/pkg/log"
	"github.com/walteh/elformprevent/pkg/plugin"
	"github.com/walteh/elformprevent/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎛️ Mode selects what a run does with rewritten files
type Mode int

const (
	ModeWrite Mode = iota // Replace rewritten files on disk
	ModeCheck             // Report files that would change
	ModeDiff              // Report files that would change with a line diff
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeWrite:
		return "write"
	case ModeCheck:
		return "check"
	case ModeDiff:
		return "diff"
	default:
		return "unknown"
	}
}

// 🔧 Options contains configuration for a run
type Options struct {
	// Root is the directory to walk
	Root string
	// Transformer rewrites each file
	Transformer plugin.Transformer
	// Skip lists directory patterns the walk never descends into
	Skip []string
	// Workers bounds concurrent transforms, 0 means GOMAXPROCS
	Workers int
	// Mode selects write, check or diff
	Mode Mode
	// Formatter renders status lines, nil uses the default
	Formatter status.FileFormatter
	// Logger receives one console line per file when set
	Logger *log.Logger
}

// 📋 Report is the outcome of a run, files in walk order
type Report struct {
	Files   []status.FileInfo
	Scanned int
	Changed int
	Failed  int
	Summary string
}

// 🏃 Runner walks a directory and feeds every file through a transformer
type Runner struct {
	root        string
	transformer plugin.Transformer
	skip        []string
	workers     int
	mode        Mode
	logger      *log.Logger
	status      *status.Manager
}

// 🏭 New creates a new runner with the given options
func New(opts Options) (*Runner, error) {
	if opts.Root == "" {
		return nil, errors.Errorf("root is required")
	}
	if opts.Transformer == nil {
		return nil, errors.Errorf("transformer is required")
	}
	if opts.Workers < 0 {
		return nil, errors.Errorf("workers must not be negative, got %d", opts.Workers)
	}
	switch opts.Mode {
	case ModeWrite, ModeCheck, ModeDiff:
	default:
		return nil, errors.Errorf("unknown mode %d", opts.Mode)
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Runner{
		root:        opts.Root,
		transformer: opts.Transformer,
		skip:        append([]string(nil), opts.Skip...),
		workers:     workers,
		mode:        opts.Mode,
		logger:      opts.Logger,
		status:      status.New(opts.Root, opts.Formatter),
	}, nil
}

// Mode returns the run mode
func (r *Runner) Mode() Mode {
	return r.mode
}

// 🏃 Run walks the root and transforms every file.
// Per file failures are recorded in the report; only walk errors and
// cancellation fail the run itself.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	zerolog.Ctx(ctx).Debug().
		Str("transformer", r.transformer.Name()).
		Str("enforce", string(r.transformer.Enforce())).
		Str("mode", r.mode.String()).
		Int("workers", r.workers).
		Msg("starting run")

	files, err := r.walk(ctx)
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", r.root, err)
	}

	infos, err := r.process(ctx, files)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Files:   infos,
		Scanned: len(infos),
	}
	for _, info := range infos {
		switch info.Status {
		case status.StatusModified:
			report.Changed++
		case status.StatusError:
			report.Failed++
		}
		if r.logger != nil {
			r.logger.LogFile(ctx, info)
		}
	}
	report.Summary = r.status.FormatSummary()

	return report, nil
}
