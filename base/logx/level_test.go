// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestLevelFromFlags(t *testing.T) {
	l := LevelFromFlags(true, false, false)
	if l != slog.LevelDebug {
		t.Errorf("expected LevelFromFlags(true, false, false) = %v, but got %v", slog.LevelDebug, l)
	}
	l = LevelFromFlags(false, true, true)
	if l != slog.LevelInfo {
		t.Errorf("expected LevelFromFlags(false, true, true) = %v, but got %v", slog.LevelInfo, l)
	}
	l = LevelFromFlags(false, false, true)
	if l != slog.LevelError {
		t.Errorf("expected LevelFromFlags(false, false, true) = %v, but got %v", slog.LevelError, l)
	}
	l = LevelFromFlags(false, false, false)
	if l != slog.LevelWarn {
		t.Errorf("expected LevelFromFlags(false, false, false) = %v, but got %v", slog.LevelWarn, l)
	}
}

func TestInit(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	buf := &bytes.Buffer{}
	Init(buf, slog.LevelInfo)
	slog.Debug("hidden")
	slog.Info("shown")
	if UserLevel != slog.LevelInfo {
		t.Errorf("expected UserLevel = %v, but got %v", slog.LevelInfo, UserLevel)
	}
	if s := buf.String(); bytes.Contains(buf.Bytes(), []byte("hidden")) || !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Errorf("unexpected log output %q", s)
	}
	UserLevel = slog.LevelWarn
}
