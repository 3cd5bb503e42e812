// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func Test_New_defaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	// no settings file on a fresh root
	original := SettingsFile
	SettingsFile = filepath.Join(t.TempDir(), "settings.yaml")
	defer func() { SettingsFile = original }()

	c := New()

	if c.Parse.AllowAmbiguity {
		t.Error("New() allow-ambiguity default = true, want false")
	}
	if c.Format.FastaWidth != 60 {
		t.Errorf("New() fasta-width default = %d, want 60", c.Format.FastaWidth)
	}
	if c.Translate.Table != 1 {
		t.Errorf("New() table default = %d, want 1", c.Translate.Table)
	}
}

func Test_New_settingsFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	file := filepath.Join(t.TempDir(), "settings.yaml")
	contents := `parse:
  allow-ambiguity: true
format:
  fasta-width: 80
`
	if err := os.WriteFile(file, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	original := SettingsFile
	SettingsFile = file
	defer func() { SettingsFile = original }()

	c := New()

	if !c.Parse.AllowAmbiguity {
		t.Error("New() allow-ambiguity = false, want true from the settings file")
	}
	if c.Format.FastaWidth != 80 {
		t.Errorf("New() fasta-width = %d, want 80", c.Format.FastaWidth)
	}

	// settings the file doesn't mention keep their defaults
	if c.Translate.Table != 1 {
		t.Errorf("New() table = %d, want the default 1", c.Translate.Table)
	}
}
