// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := fmt.Errorf("wrapped: %w", New("boom"))
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "wrapped: boom")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("bad")) })
}

type codeError struct{ code int }

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestIsAs(t *testing.T) {
	base := New("base")
	err := Join(fmt.Errorf("a: %w", base), fmt.Errorf("b: %w", &codeError{7}))
	assert.True(t, Is(err, base))
	var ce *codeError
	if assert.True(t, As(err, &ce)) {
		assert.Equal(t, 7, ce.code)
	}
	assert.False(t, Is(err, New("base")))
}
