package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Engine != "libretranslate" {
		t.Errorf("default engine = %q", cfg.Engine)
	}
	if cfg.FormalityThreshold != 7 {
		t.Errorf("default threshold = %d", cfg.FormalityThreshold)
	}
	if cfg.SourceLang != "en" {
		t.Errorf("default source language = %q", cfg.SourceLang)
	}
	if cfg.BatchMaxSize != 32 || cfg.BatchWaitMS != 50 {
		t.Errorf("batch defaults = %d, %d", cfg.BatchMaxSize, cfg.BatchWaitMS)
	}
	if cfg.DataDir != filepath.Join(dir, "x-glish-db") {
		t.Errorf("data dir = %q", cfg.DataDir)
	}

	// The first load persists the defaults for the user to edit.
	if _, err := os.Stat(filepath.Join(dir, "config.json")); err != nil {
		t.Errorf("defaults not written: %v", err)
	}
}

func TestLoadFrom_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `{"engine":"indictrans","formality_threshold":4,"indictrans_url":"http://gpu:5050"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine != "indictrans" || cfg.FormalityThreshold != 4 {
		t.Errorf("file overrides ignored: %+v", cfg)
	}
	if cfg.IndicTransURL != "http://gpu:5050" {
		t.Errorf("indictrans url = %q", cfg.IndicTransURL)
	}
	// keys absent from the file keep their defaults
	if cfg.LibreTranslateURL != "http://localhost:5000" {
		t.Errorf("unset key lost its default: %q", cfg.LibreTranslateURL)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("XGLISH_ENGINE", "google")

	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine != "google" {
		t.Errorf("env override ignored: %q", cfg.Engine)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Engine = "google"
	cfg.FormalityThreshold = 3
	cfg.GoogleCredentials = "/tmp/creds.json"

	if err := Save(dir, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Engine != "google" || loaded.FormalityThreshold != 3 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if loaded.GoogleCredentials != "/tmp/creds.json" {
		t.Errorf("credentials = %q", loaded.GoogleCredentials)
	}
}
