package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefault(t *testing.T) {
	config := Load(filepath.Join(t.TempDir(), "no-such-file.toml"))
	if config.CacheCapacity != 42 {
		t.Errorf("default cache capacity: have %d, want 42", config.CacheCapacity)
	}
	if config.Simd.Enable {
		t.Error("SIMD should default to off")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tensority.toml")
	body := "cache_capacity = 3\n\n[simd]\nenable = true\n"
	if err := ioutil.WriteFile(path, []byte(body), os.FileMode(0644)); err != nil {
		t.Fatal(err)
	}

	config := Load(path)
	if config.CacheCapacity != 3 {
		t.Errorf("cache capacity: have %d, want 3", config.CacheCapacity)
	}
	if !config.Simd.Enable {
		t.Error("SIMD switch should be on")
	}
}
