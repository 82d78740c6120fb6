package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/vectra-editor/vectra/internal/drag"
	"github.com/vectra-editor/vectra/internal/scene"
)

// defaultJSON is the built-in settings document. Every key the editor
// reads has a default here.
const defaultJSON = `{
  "grid": {
    "enabled": false,
    "size": 8
  },
  "interaction": {
    "doubleClickMs": 400,
    "velocityThreshold": 800,
    "velocityWindow": 5,
    "gridSuppressSize": 50
  },
  "log": {
    "level": "info"
  },
  "plugins": {
    "enabled": [
      "selection",
      "pointer-interaction",
      "transform",
      "context-menu",
      "text-edit",
      "gestures",
      "curves",
      "shapes",
      "pencil",
      "text-placement"
    ]
  }
}`

// Config is a loaded settings document.
type Config struct {
	mu  sync.RWMutex
	doc string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{doc: defaultJSON}
}

// Parse merges a user settings document over the defaults. Invalid
// JSON is an error; unknown keys are kept, so plugins can stash their
// own settings.
func Parse(userJSON string) (*Config, error) {
	if !gjson.Valid(userJSON) {
		return nil, fmt.Errorf("config: invalid JSON")
	}

	c := Default()
	var err error
	mergeLeaves("", gjson.Parse(userJSON), func(path string, value any) {
		if err != nil {
			return
		}
		c.doc, err = sjson.Set(c.doc, path, value)
	})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Load reads and parses a user settings file. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(string(data))
}

// mergeLeaves walks a parsed document and reports each leaf value with
// its dotted path. Arrays are leaves: a user array replaces the
// default wholesale.
func mergeLeaves(prefix string, v gjson.Result, set func(path string, value any)) {
	if !v.IsObject() {
		set(prefix, v.Value())
		return
	}
	v.ForEach(func(k, child gjson.Result) bool {
		path := k.String()
		if prefix != "" {
			path = prefix + "." + path
		}
		mergeLeaves(path, child, set)
		return true
	})
}

// Get returns the value at a dotted path.
func (c *Config) Get(path string) gjson.Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return gjson.Get(c.doc, path)
}

// Set writes a value at a dotted path.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, err := sjson.Set(c.doc, path, value)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.doc = doc
	return nil
}

// JSON returns the merged document.
func (c *Config) JSON() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc
}

// Grid returns the grid settings.
func (c *Config) Grid() scene.GridSettings {
	return scene.GridSettings{
		Enabled: c.Get("grid.enabled").Bool(),
		Size:    c.Get("grid.size").Float(),
	}
}

// Drag returns the drag gating configuration.
func (c *Config) Drag() drag.Config {
	return drag.Config{
		VelocityThreshold: c.Get("interaction.velocityThreshold").Float(),
		VelocityWindow:    int(c.Get("interaction.velocityWindow").Int()),
		GridSuppressSize:  c.Get("interaction.gridSuppressSize").Float(),
	}
}

// ClickWindow returns the double-click window.
func (c *Config) ClickWindow() time.Duration {
	return time.Duration(c.Get("interaction.doubleClickMs").Int()) * time.Millisecond
}

// LogLevel returns the configured log level name.
func (c *Config) LogLevel() string {
	return c.Get("log.level").String()
}

// EnabledPlugins returns the plugin IDs to enable at startup.
func (c *Config) EnabledPlugins() []string {
	var out []string
	for _, v := range c.Get("plugins.enabled").Array() {
		out = append(out, v.String())
	}
	return out
}
