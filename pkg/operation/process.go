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

	"github.com/rs/zerolog"
	"github.com/walteh/elformprevent/pkg/plugin"
	"github.com/walteh/elformprevent/pkg/status"
	"github.com/walteh/elformprevent/pkg/text"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ⚡ process transforms eligible files concurrently, keeping results in
// input order. Ineligible files are neither read nor reported.
func (r *Runner) process(ctx context.Context, files []string) ([]status.FileInfo, error) {
	infos := make([]status.FileInfo, len(files))
	eligible := make([]bool, len(files))

	sem := semaphore.NewWeighted(int64(r.workers))
	g, gctx := errgroup.WithContext(ctx)

	for i, file := range files {
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			info, ok := r.processFile(gctx, file)
			if !ok {
				return nil
			}
			r.status.Track(gctx, info)
			infos[i], eligible[i] = info, true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Errorf("processing files: %w", err)
	}
	// Acquire may still succeed on a context that is already done
	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("processing files: %w", err)
	}

	out := infos[:0]
	for i, info := range infos {
		if eligible[i] {
			out = append(out, info)
		}
	}
	return out, nil
}

// 📄 processFile runs one file through the transformer. It reports false
// for files the transformer would ignore.
func (r *Runner) processFile(ctx context.Context, path string) (status.FileInfo, bool) {
	info := status.FileInfo{Path: path, Status: status.StatusUnchanged}

	ok, err := r.transformer.Eligible(path)
	if err != nil {
		return failed(info, errors.Errorf("checking eligibility: %w", err)), true
	}
	if !ok {
		zerolog.Ctx(ctx).Trace().Str("file", path).Msg("skipping ineligible file")
		return info, false
	}

	content, err := r.status.ReadFile(ctx, path)
	if err != nil {
		return failed(info, err), true
	}

	res, err := r.transformer.Transform(ctx, plugin.Request{Code: string(content), ID: path})
	if err != nil {
		return failed(info, errors.Errorf("transforming: %w", err)), true
	}
	if res.Kind != plugin.Rewritten {
		return info, true
	}

	info.Status = status.StatusModified
	info.Rewritten = res.Rewritten

	switch r.mode {
	case ModeWrite:
		if err := r.status.WriteFileAtomic(ctx, path, []byte(res.Code)); err != nil {
			return failed(info, err), true
		}
		info.Written = true
	case ModeDiff:
		info.Diff = text.LineDiff(path, string(content), res.Code)
	}

	zerolog.Ctx(ctx).Trace().Str("file", path).Str("mode", r.mode.String()).Msg("file needs rewrite")
	return info, true
}

func failed(info status.FileInfo, err error) status.FileInfo {
	info.Status = status.StatusError
	info.Error = err
	info.Written = false
	return info
}
