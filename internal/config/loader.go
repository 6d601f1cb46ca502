package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".pdftoc"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the YAML configuration file.
// All fields are pointers so an absent key is distinguishable from an
// explicit zero value; only keys present in the file override the
// corresponding Config field.
type File struct {
	SizeThreshold *float64       `yaml:"size_threshold"`
	MaxPagesScan  *int           `yaml:"max_pages_scan"`
	OCRFallback   *bool          `yaml:"ocr_fallback"`
	OCREveryPage  *bool          `yaml:"ocr_every_page"`
	OCRDPI        *int           `yaml:"ocr_dpi"`
	OCRTimeout    *time.Duration `yaml:"ocr_timeout"`
	BatchSize     *int           `yaml:"batch_size"`
	OutputDir     *string        `yaml:"output_dir"`
}

// LoadConfigFile loads configuration overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply overlays the file's values onto the config.
// Keys absent from the file leave the config untouched.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.SizeThreshold != nil {
		cfg.SizeThreshold = *f.SizeThreshold
	}
	if f.MaxPagesScan != nil {
		cfg.MaxPagesScan = *f.MaxPagesScan
	}
	if f.OCRFallback != nil {
		cfg.OCRFallback = *f.OCRFallback
	}
	if f.OCREveryPage != nil {
		cfg.OCREveryPage = *f.OCREveryPage
	}
	if f.OCRDPI != nil {
		cfg.OCRDPI = *f.OCRDPI
	}
	if f.OCRTimeout != nil {
		cfg.OCRTimeout = *f.OCRTimeout
	}
	if f.BatchSize != nil {
		cfg.BatchSize = *f.BatchSize
	}
	if f.OutputDir != nil {
		cfg.OutputDir = *f.OutputDir
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .pdftoc in the current directory
// 3. Look for .pdftoc in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
