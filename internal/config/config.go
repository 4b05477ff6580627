package config

import (
	"fmt"

	"gopkg.in/ini.v1"

	"siege-companion/internal/resolve"
)

// Settings holds the tunable parts of the resolution pipelines. The two
// thresholds are deliberately separate knobs: detection and import call
// sites have always run with different values.
type Settings struct {
	DetectThreshold float64
	ImportThreshold float64
	// NameData optionally overrides the embedded name data asset.
	NameData string
}

// Defaults returns the settings used when no config file is given.
func Defaults() Settings {
	return Settings{
		DetectThreshold: resolve.DefaultDetectThreshold,
		ImportThreshold: resolve.DefaultImportThreshold,
	}
}

// Load reads settings from an ini file. Missing keys keep their defaults.
func Load(path string) (Settings, error) {
	s := Defaults()
	cfg, err := ini.Load(path)
	if err != nil {
		return s, fmt.Errorf("load config %s: %w", path, err)
	}

	sec := cfg.Section("matching")
	s.DetectThreshold = sec.Key("detect_threshold").MustFloat64(s.DetectThreshold)
	s.ImportThreshold = sec.Key("import_threshold").MustFloat64(s.ImportThreshold)

	s.NameData = cfg.Section("data").Key("names").String()
	return s, nil
}
