// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

// Package logs builds the structured logger used by the intcode command.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

// Config selects the log level and destinations.
type Config struct {
	Level string // debug, info, warn or error. Defaults to warn.
	File  string // if not empty, records are also appended to File as JSON
}

// ParseLevel parses a level name, case insensitive.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelWarn, nil
	}
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, errors.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// Logger wraps a *slog.Logger with its level and destination file.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar
	file  *os.File
}

// New returns a Logger writing text records to w, and JSON records to
// cfg.File if set.
func New(w io.Writer, cfg Config) (*Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	l := &Logger{Level: new(slog.LevelVar)}
	l.Level.Set(lvl)
	opts := &slog.HandlerOptions{Level: l.Level}

	handlers := []slog.Handler{slog.NewTextHandler(w, opts)}
	if cfg.File != "" {
		l.file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(l.file, opts))
	}
	l.Logger = slog.New(slogmulti.Fanout(handlers...))
	return l, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
