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

package status

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome for a single file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusUnchanged            // Not eligible, or nothing to rewrite
	StatusModified             // Rewritten (or would be, in check and diff runs)
	StatusError                // Reading, transforming or writing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusModified:
		return "modified"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the outcome for a file
type FileInfo struct {
	Path      string     // Slash separated path relative to the manager root
	Status    FileStatus // Outcome
	Rewritten int        // Number of tags that received the marker
	Written   bool       // Whether the new content was written to disk
	Diff      string     // Line diff, only filled in diff runs
	Error     error      // Any error associated with this file
}

// 📈 Summary counts outcomes across a run
type Summary struct {
	Total     int
	Modified  int
	Unchanged int
	Failed    int
	Rewritten int // Total tags rewritten
}

// 🔧 Manager reads and writes files under a root and tracks their outcome.
// It is safe for concurrent use.
type Manager struct {
	baseDir   string
	formatter FileFormatter

	mu    sync.RWMutex
	files map[string]FileInfo
}

// 🏭 New creates a new status manager
func New(baseDir string, formatter FileFormatter) *Manager {
	if formatter == nil {
		formatter = NewDefaultFileFormatter()
	}
	return &Manager{
		baseDir:   filepath.Clean(baseDir),
		formatter: formatter,
		files:     make(map[string]FileInfo),
	}
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, filepath.FromSlash(path))
}

// ReadFile reads a file relative to the root
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFileAtomic replaces an existing file through a temp file and a
// rename, keeping the original permissions.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)

	mode := os.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return errors.Errorf("checking file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 📝 Track records the outcome for a file
func (m *Manager) Track(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	m.files[info.Path] = info
	m.mu.Unlock()

	event := zerolog.Ctx(ctx).Debug()
	if info.Status == StatusError {
		event = zerolog.Ctx(ctx).Error().Err(info.Error)
	}
	event.
		Str("file", info.Path).
		Str("status", info.Status.String()).
		Int("rewritten", info.Rewritten).
		Bool("written", info.Written).
		Msg(m.formatter.FormatFile(info))
}

// 📈 Summary counts the tracked outcomes
func (m *Manager) Summary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var s Summary
	for _, info := range m.files {
		s.Total++
		s.Rewritten += info.Rewritten
		switch info.Status {
		case StatusModified:
			s.Modified++
		case StatusError:
			s.Failed++
		default:
			s.Unchanged++
		}
	}
	return s
}

// FormatSummary renders the current summary with the manager's formatter
func (m *Manager) FormatSummary() string {
	return m.formatter.FormatSummary(m.Summary())
}
