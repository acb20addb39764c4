package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port: want 8080, got %q", cfg.Port)
	}
	if cfg.Simulation.Interval != 5*time.Second {
		t.Errorf("interval: want 5s, got %s", cfg.Simulation.Interval)
	}
	if cfg.Simulation.HistoryLimit != 50 {
		t.Errorf("history_limit: want 50, got %d", cfg.Simulation.HistoryLimit)
	}
	if len(cfg.Simulation.Machines) != 5 || cfg.Simulation.Machines[0] != "Machine-1" {
		t.Errorf("unexpected machines: %v", cfg.Simulation.Machines)
	}
	if cfg.MQTT.FeedTopic != "devices/+/messages/events/#" {
		t.Errorf("feed topic: got %q", cfg.MQTT.FeedTopic)
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yml := []byte("port: \"9090\"\nsimulation:\n  interval: 2s\n  machines: [Press-A, Press-B]\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), yml, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HTM_LOG_LEVEL", "debug")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("port: want 9090, got %q", cfg.Port)
	}
	if cfg.Simulation.Interval != 2*time.Second {
		t.Errorf("interval: want 2s, got %s", cfg.Simulation.Interval)
	}
	if len(cfg.Simulation.Machines) != 2 || cfg.Simulation.Machines[1] != "Press-B" {
		t.Errorf("machines: got %v", cfg.Simulation.Machines)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level: want debug from env, got %q", cfg.LogLevel)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	yml := []byte("simulation:\n  history_limit: 0\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), yml, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected validation error for history_limit=0")
	}
}
