package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestResolve_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	s := Resolve()
	if s.FPS != DefaultFPS {
		t.Errorf("fps: got %d, want %d", s.FPS, DefaultFPS)
	}
	if !s.Notify {
		t.Error("notify: got false, want true")
	}
	if s.DVD {
		t.Error("dvd: got true, want false")
	}
}

func TestResolve_FromConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	configContent := `
fps: 12
notify: false
dvd: true
`
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	s := Resolve()
	if s.FPS != 12 {
		t.Errorf("fps: got %d, want 12", s.FPS)
	}
	if s.Notify {
		t.Error("notify: got true, want false")
	}
	if !s.DVD {
		t.Error("dvd: got false, want true")
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		fps     int
		wantErr bool
	}{
		{"default fps", DefaultFPS, false},
		{"minimum fps", MinFPS, false},
		{"maximum fps", MaxFPS, false},
		{"zero fps", 0, true},
		{"negative fps", -1, true},
		{"above maximum", MaxFPS + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{FPS: tt.fps, Notify: true}
			err := s.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGetSetValue(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte("fps: 30\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	if err := SetValue("fps", "60"); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	got, err := GetValue("fps")
	if err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if got != "60" {
		t.Errorf("got %q, want %q", got, "60")
	}

	if _, err := GetValue("missing-key"); err == nil {
		t.Error("expected error for missing key, got nil")
	}
}
