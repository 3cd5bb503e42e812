// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	// Root is the directory that plasmap's assets are kept beneath. It
	// can be moved with the PLASMAP_ROOT environment variable
	Root = root()

	// RecordFile is the reference pBR322 record, the default input when
	// a command isn't given one
	RecordFile = filepath.Join(Root, "assets", "pBR322.gb")

	// FeatureDB is the tab-separated feature library used by annotate
	FeatureDB = filepath.Join(Root, "assets", "features.tsv")

	// SettingsFile is the default settings file read through viper
	SettingsFile = filepath.Join(Root, "assets", "settings.yaml")
)

// ParseConfig is settings for reading records
type ParseConfig struct {
	// whether IUPAC ambiguity codes are allowed in the sequence
	AllowAmbiguity bool `mapstructure:"allow-ambiguity"`
}

// FormatConfig is settings for rendering sequence output
type FormatConfig struct {
	// the number of bases per line in FASTA output
	FastaWidth int `mapstructure:"fasta-width"`
}

// TranslateConfig is settings for nucleotide to protein translation
type TranslateConfig struct {
	// the NCBI genetic code table id. only table 1 ships with plasmap
	Table int `mapstructure:"table"`
}

// Config is the root-level settings struct: a mix of settings from
// assets/settings.yaml and those bound to command line flags
type Config struct {
	Parse     ParseConfig     `mapstructure:"parse"`
	Format    FormatConfig    `mapstructure:"format"`
	Translate TranslateConfig `mapstructure:"translate"`
}

// New returns a Config populated by viper from the settings file (the
// default one, or the file behind the --settings flag)
func New() *Config {
	setDefaults()

	file := viper.GetString("settings")
	if file == "" {
		file = SettingsFile
	}

	if _, err := os.Stat(file); err == nil {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", file, err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}

	return c
}

// setDefaults registers the default for every setting so a missing or
// partial settings file still produces a complete Config
func setDefaults() {
	viper.SetDefault("parse.allow-ambiguity", false)
	viper.SetDefault("format.fasta-width", 60)
	viper.SetDefault("translate.table", 1)
}

// root is the directory the assets live beneath: PLASMAP_ROOT if set,
// otherwise the directory of the running executable
func root() string {
	if env := os.Getenv("PLASMAP_ROOT"); env != "" {
		return env
	}

	exec, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exec)
}
