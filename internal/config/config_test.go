package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	c := Default()

	if g := c.Grid(); g.Enabled || g.Size != 8 {
		t.Errorf("grid defaults = %+v", g)
	}
	if d := c.Drag(); d.VelocityThreshold != 800 || d.VelocityWindow != 5 || d.GridSuppressSize != 50 {
		t.Errorf("drag defaults = %+v", d)
	}
	if w := c.ClickWindow(); w != 400*time.Millisecond {
		t.Errorf("click window = %v", w)
	}
	if c.LogLevel() != "info" {
		t.Errorf("log level = %q", c.LogLevel())
	}

	plugins := c.EnabledPlugins()
	found := false
	for _, id := range plugins {
		if id == "pointer-interaction" {
			found = true
		}
	}
	if !found {
		t.Errorf("default plugins = %v", plugins)
	}
}

func TestParseMergesUnderDefaults(t *testing.T) {
	c, err := Parse(`{
		"grid": { "size": 20 },
		"interaction": { "doubleClickMs": 250 },
		"custom": { "star-tool": { "points": 5 } }
	}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Overridden leaves take the user value.
	if g := c.Grid(); g.Size != 20 {
		t.Errorf("grid size = %v", g.Size)
	}
	if w := c.ClickWindow(); w != 250*time.Millisecond {
		t.Errorf("click window = %v", w)
	}

	// Untouched siblings keep their defaults.
	if c.Grid().Enabled {
		t.Error("grid.enabled lost its default")
	}
	if d := c.Drag(); d.VelocityThreshold != 800 {
		t.Errorf("velocity threshold = %v", d.VelocityThreshold)
	}

	// Unknown keys survive the merge.
	if n := c.Get("custom.star-tool.points").Int(); n != 5 {
		t.Errorf("custom key = %v", n)
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	if _, err := Parse(`{not json`); err == nil {
		t.Error("invalid JSON accepted")
	}
}

func TestUserArrayReplacesDefault(t *testing.T) {
	c, err := Parse(`{ "plugins": { "enabled": ["selection", "curves"] } }`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := c.EnabledPlugins()
	if len(got) != 2 || got[0] != "selection" || got[1] != "curves" {
		t.Errorf("plugins = %v", got)
	}
}

func TestSet(t *testing.T) {
	c := Default()
	if err := c.Set("grid.enabled", true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !c.Grid().Enabled {
		t.Error("set value not visible")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	// Missing file: defaults.
	c, err := Load(filepath.Join(dir, "absent.json"))
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if c.Grid().Size != 8 {
		t.Error("missing file did not yield defaults")
	}

	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(`{"log":{"level":"debug"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.LogLevel() != "debug" {
		t.Errorf("log level = %q", c.LogLevel())
	}
}
