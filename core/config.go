// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"xu.dev/core/base/errors"
)

// InputReception determines how a [Context] handles events
// passed to [Context.NotifyEvent].
type InputReception int32 //enums:enum

const (
	// Queued appends events to the event queue, and dispatches
	// them in arrival order during [Context.ProcessEvents].
	Queued InputReception = iota

	// Immediate dispatches events synchronously inside
	// [Context.NotifyEvent], bypassing the queue.
	Immediate
)

var inputReceptionNames = [...]string{Queued: "Queued", Immediate: "Immediate"}

func (i InputReception) String() string { return enumString(inputReceptionNames[:], int(i), "InputReception") }

func (i InputReception) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *InputReception) UnmarshalText(text []byte) error {
	v, err := enumParse(inputReceptionNames[:], string(text), "InputReception")
	*i = InputReception(v)
	return err
}

// Overflow determines what happens to events when the
// event queue is at [Config.QueueCapacity].
type Overflow int32 //enums:enum

const (
	// DropOldest discards the event at the head of the queue
	// to make room for the new one.
	DropOldest Overflow = iota

	// DropNewest discards the new event.
	DropNewest
)

var overflowNames = [...]string{DropOldest: "DropOldest", DropNewest: "DropNewest"}

func (o Overflow) String() string { return enumString(overflowNames[:], int(o), "Overflow") }

func (o Overflow) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Overflow) UnmarshalText(text []byte) error {
	v, err := enumParse(overflowNames[:], string(text), "Overflow")
	*o = Overflow(v)
	return err
}

func enumString(names []string, i int, typ string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, i)
	}
	return names[i]
}

// enumParse looks up s case-insensitively, also accepting
// kebab-case such as "drop-oldest".
func enumParse(names []string, s, typ string) (int, error) {
	key := strings.ReplaceAll(s, "-", "")
	for i, nm := range names {
		if strings.EqualFold(nm, key) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("core: %q is not a valid value for type %s", s, typ)
}

// Config contains the configuration of a [Context].
// The zero value is a valid queued, unbounded configuration.
type Config struct {

	// InputReception is how events passed to NotifyEvent are handled.
	InputReception InputReception `toml:"inputReception" yaml:"inputReception" default:"Queued"`

	// QueueCapacity is the maximum number of pending events in
	// [Queued] mode. Zero means unbounded. Under concurrent
	// producers the bound is approximate.
	QueueCapacity int `toml:"queueCapacity" yaml:"queueCapacity" default:"0"`

	// Overflow is what happens to events when the queue is full.
	Overflow Overflow `toml:"overflow" yaml:"overflow" default:"DropOldest"`

	// MaxEventsPerTick is the maximum number of queued events that
	// one [Context.ProcessEvents] dispatches. The rest stay queued
	// for the next tick. Zero means unbounded: the queue is drained
	// until empty.
	MaxEventsPerTick int `toml:"maxEventsPerTick" yaml:"maxEventsPerTick" default:"0"`

	// MaxDepth is the maximum depth of the widget tree, where the
	// root has depth 0. Deeper trees are rejected as malformed.
	// Zero means unbounded.
	MaxDepth int `toml:"maxDepth" yaml:"maxDepth" default:"0"`

	// FPS is the number of times per second that hosts driving a
	// Context from a ticker call [Context.ProcessEvents].
	// Zero means 60.
	FPS int `toml:"fps" yaml:"fps" default:"60"`
}

// TickInterval returns the time between two calls to
// [Context.ProcessEvents] at the configured [Config.FPS].
func (c *Config) TickInterval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// DefaultConfig returns the default [Config].
func DefaultConfig() Config {
	return Config{FPS: 60}
}

// Validate returns an error if the config has out-of-range values.
func (c *Config) Validate() error {
	switch {
	case c.InputReception < Queued || c.InputReception > Immediate:
		return fmt.Errorf("core: invalid input reception %v", c.InputReception)
	case c.Overflow < DropOldest || c.Overflow > DropNewest:
		return fmt.Errorf("core: invalid overflow policy %v", c.Overflow)
	case c.QueueCapacity < 0:
		return fmt.Errorf("core: negative queue capacity %d", c.QueueCapacity)
	case c.MaxEventsPerTick < 0:
		return fmt.Errorf("core: negative max events per tick %d", c.MaxEventsPerTick)
	case c.MaxDepth < 0:
		return fmt.Errorf("core: negative max depth %d", c.MaxDepth)
	case c.FPS < 0:
		return fmt.Errorf("core: negative fps %d", c.FPS)
	}
	return nil
}

// LoadConfig reads a [Config] from the given TOML (.toml) or
// YAML (.yaml, .yml) file. Fields missing from the file keep
// their [DefaultConfig] values; unknown fields are errors.
func LoadConfig(filename string) (Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			err = fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
		if errors.Is(err, io.EOF) { // empty document
			err = nil
		}
	default:
		return Config{}, fmt.Errorf("core: unsupported config file extension %q", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("core: loading config %q: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("core: loading config %q: %w", filename, err)
	}
	return cfg, nil
}

// SaveConfig writes the given [Config] to a TOML or YAML file
// chosen by the extension of filename.
func SaveConfig(cfg Config, filename string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		b, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("core: unsupported config file extension %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
