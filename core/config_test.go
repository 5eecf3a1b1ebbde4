// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestLoadConfigTOML(t *testing.T) {
	fn := writeFile(t, "xu.toml", `
inputReception = "Immediate"
queueCapacity = 64
overflow = "drop-newest"
maxDepth = 32
`)
	cfg, err := LoadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, Config{InputReception: Immediate, QueueCapacity: 64, Overflow: DropNewest, MaxDepth: 32, FPS: 60}, cfg)
}

func TestLoadConfigYAML(t *testing.T) {
	fn := writeFile(t, "xu.yaml", "inputReception: queued\nfps: 30\n")
	cfg, err := LoadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, Config{InputReception: Queued, FPS: 30}, cfg)
	assert.Equal(t, time.Second/30, cfg.TickInterval())

	cfg, err = LoadConfig(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "bad.toml", `inputReception = "Sometimes"`))
	assert.ErrorContains(t, err, "not a valid value for type InputReception")

	_, err = LoadConfig(writeFile(t, "syntax.toml", "fps = 30\nmaxDepth = = 2\n"))
	assert.ErrorContains(t, err, "line 2, column")

	_, err = LoadConfig(writeFile(t, "bad.yaml", "bogus: 1\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.toml", "bogus = 1\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "neg.toml", "queueCapacity = -3\n"))
	assert.ErrorContains(t, err, "negative queue capacity")

	_, err = LoadConfig(writeFile(t, "xu.json", "{}"))
	assert.ErrorContains(t, err, "unsupported config file extension")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSaveConfig(t *testing.T) {
	cfg := Config{InputReception: Immediate, QueueCapacity: 8, Overflow: DropNewest, FPS: 120}
	for _, name := range []string{"xu.toml", "xu.yaml"} {
		fn := filepath.Join(t.TempDir(), name)
		require.NoError(t, SaveConfig(cfg, fn))
		got, err := LoadConfig(fn)
		require.NoError(t, err)
		assert.Equal(t, cfg, got, name)
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Immediate", Immediate.String())
	assert.Equal(t, "DropOldest", DropOldest.String())
	assert.Equal(t, "Overflow(5)", Overflow(5).String())
	assert.Equal(t, time.Second/60, (&Config{}).TickInterval())
}
