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
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/elformprevent/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 15 // Width for status text
)

// 📦 RunOperation describes a transform run for logging
type RunOperation struct {
	Root   string // Directory being processed
	Mode   string // write, check or diff
	Config string // Config file location, empty for defaults
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	mu        sync.Mutex
	currentOp *RunOperation
	files     int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 formatFile formats a file outcome for display
func (l *Logger) formatFile(info status.FileInfo) string {
	var symbol rune
	var symbolColor color.Attribute
	var text string
	switch {
	case info.Status == status.StatusError:
		symbol = '✗'
		symbolColor = color.FgRed
		text = "error"
	case info.Status == status.StatusModified && info.Written:
		symbol = '✓'
		symbolColor = color.FgGreen
		text = "rewritten"
	case info.Status == status.StatusModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
		text = "needs rewrite"
	default:
		symbol = '•'
		symbolColor = color.FgCyan
		text = "no change"
	}

	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, info.Path),
		fmt.Sprintf("%-*s", statusWidth, text))

	if info.Rewritten > 0 {
		line += color.New(color.Faint).Sprintf("%d", info.Rewritten)
	}
	if info.Error != nil {
		line += color.New(color.FgRed).Sprint(info.Error.Error())
	}
	return line
}

// 📝 LogFile logs the outcome for one file
func (l *Logger) LogFile(ctx context.Context, info status.FileInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.files++

	// Format and print
	fmt.Fprintln(l.console, l.formatFile(info))

	if info.Diff != "" {
		fmt.Fprint(l.console, colorDiff(info.Diff))
	}

	// Log to zerolog
	event := l.zlog.Info()
	if info.Error != nil {
		event = l.zlog.Error().Err(info.Error)
	}
	event.
		Str("file", info.Path).
		Str("status", info.Status.String()).
		Int("rewritten", info.Rewritten).
		Bool("written", info.Written).
		Msg("file processed")
}

// 📝 StartRun starts a new run
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.files = 0

	cfg := op.Config
	if cfg == "" {
		cfg = "defaults"
	}

	fmt.Fprintf(l.console, "[%s %s]\n",
		op.Mode,
		color.New(color.FgCyan).Sprint(op.Root))

	fmt.Fprintf(l.console, "%s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Faint).Sprint("config"),
		color.New(color.FgYellow).Sprint(cfg))

	l.zlog.Info().
		Str("root", op.Root).
		Str("mode", op.Mode).
		Str("config", cfg).
		Msg("starting run")
}

// 📝 EndRun ends the current run and prints its summary
func (l *Logger) EndRun(ctx context.Context, summary string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	fmt.Fprintln(l.console, summary)

	l.zlog.Info().
		Str("root", l.currentOp.Root).
		Int("files", l.files).
		Msg("run complete")

	l.currentOp = nil
	l.files = 0
}

// say prints one prefixed console line and mirrors it to zerolog
func (l *Logger) say(prefix string, attr color.Attribute, level zerolog.Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n", prefix, color.New(attr).Sprint(msg))
	l.zlog.WithLevel(level).Msg(msg)
}

// 📝 Successf prints a run level success line
func (l *Logger) Successf(format string, args ...interface{}) {
	l.say("✅", color.FgGreen, zerolog.InfoLevel, fmt.Sprintf(format, args...))
}

// 📝 Warningf prints a run level warning line
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.say("⚠️ ", color.FgYellow, zerolog.WarnLevel, fmt.Sprintf(format, args...))
}

// 📝 Errorf prints a run level error line
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.say("❌", color.FgRed, zerolog.ErrorLevel, fmt.Sprintf(format, args...))
}
