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
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 walk lists every regular file under the root as a slash separated
// relative path, pruning skipped directories
func (r *Runner) walk(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	// GlobWalk treats a missing root as an empty tree
	info, err := os.Stat(r.root)
	if err != nil {
		return nil, errors.Errorf("checking root: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("root %s is not a directory", r.root)
	}

	var files []string
	err = doublestar.GlobWalk(os.DirFS(r.root), "**", func(path string, d fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && r.shouldSkip(ctx, path) {
				logger.Trace().Str("dir", path).Msg("skipping directory")
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	}, doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("files", len(files)).Msg("walk complete")
	return files, nil
}

// 🚫 shouldSkip checks if a directory matches a skip pattern
func (r *Runner) shouldSkip(ctx context.Context, path string) bool {
	for _, pattern := range r.skip {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
