// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"contact-scan/internal/contact"
	"contact-scan/internal/paths"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Layout  string `yaml:"layout"`
		Workers int    `yaml:"workers"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
		ShowRaw bool   `yaml:"show_raw"`
	} `yaml:"defaults"`

	// Extraction tuning shared by the extractors
	Extraction Extraction `yaml:"extraction"`

	// Keyword vocabularies driving the heuristics
	Keywords Keywords `yaml:"keywords"`

	// Confidence table: field name -> scores
	Confidence map[string]ScoreRule `yaml:"confidence"`

	// Profiles for different input sources
	Profiles map[string]Profile `yaml:"profiles"`
}

// Extraction holds numeric tuning for the extractors
type Extraction struct {
	ProfileDomain string `yaml:"profile_domain"` // professional network host, e.g. linkedin.com
	ContextChars  int    `yaml:"context_chars"`  // phone role window on each side
	LabelChars    int    `yaml:"label_chars"`    // phone label window before the number
	NameWindow    int    `yaml:"name_window"`    // leading lines scanned for a name
}

// ScoreRule is the confidence assigned to a field when its check passes (Base)
// or fails (Degraded).
type ScoreRule struct {
	Base     float64 `yaml:"base"`
	Degraded float64 `yaml:"degraded"`
}

// Profile represents a named set of overrides
type Profile struct {
	Description string    `yaml:"description"`
	Format      string    `yaml:"format"`
	Layout      string    `yaml:"layout"`
	Workers     int       `yaml:"workers"`
	Verbose     bool      `yaml:"verbose"`
	ShowRaw     bool      `yaml:"show_raw"`
	Keywords    *Keywords `yaml:"keywords,omitempty"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Validate the configuration
	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Default returns the built-in configuration
func Default() *Config {
	config := &Config{
		Keywords:   DefaultKeywords(),
		Confidence: DefaultConfidence(),
		Profiles:   make(map[string]Profile),
	}

	config.Defaults.Format = "text"
	config.Defaults.Layout = string(contact.LayoutAuto)
	config.Defaults.Workers = 0 // one per CPU

	config.Extraction = Extraction{
		ProfileDomain: "linkedin.com",
		ContextChars:  50,
		LabelChars:    30,
		NameWindow:    5,
	}

	config.Profiles["signature"] = Profile{
		Description: "Email signature blocks pasted from a mail client",
		Layout:      string(contact.LayoutSignature),
	}
	config.Profiles["profile"] = Profile{
		Description: "Screenshots of professional network profile pages",
		Layout:      string(contact.LayoutProfile),
	}
	config.Profiles["review"] = Profile{
		Description: "Verbose text output including the raw OCR text for manual review",
		Format:      "text",
		Verbose:     true,
		ShowRaw:     true,
	}

	return config
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	for _, name := range []string{"contact-scan.yaml", "contact-scan.yml", ".contact-scan.yaml", ".contact-scan.yml"} {
		if fileExists(name) {
			return name
		}
	}

	standardConfig := paths.GetConfigFile()
	if fileExists(standardConfig) {
		return standardConfig
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the available profile names, sorted
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// WithProfile returns a copy of the configuration with the named profile's
// overrides applied. The receiver is not modified.
func (c *Config) WithProfile(name string) (*Config, error) {
	profile := c.GetProfile(name)
	if profile == nil {
		return nil, fmt.Errorf("profile '%s' not found", name)
	}

	merged := *c
	if profile.Format != "" {
		merged.Defaults.Format = profile.Format
	}
	if profile.Layout != "" {
		merged.Defaults.Layout = profile.Layout
	}
	if profile.Workers > 0 {
		merged.Defaults.Workers = profile.Workers
	}
	merged.Defaults.Verbose = merged.Defaults.Verbose || profile.Verbose
	merged.Defaults.ShowRaw = merged.Defaults.ShowRaw || profile.ShowRaw
	if profile.Keywords != nil {
		merged.Keywords = c.Keywords.Merge(*profile.Keywords)
	}

	if err := ValidateConfig(&merged); err != nil {
		return nil, fmt.Errorf("profile '%s': %w", name, err)
	}
	return &merged, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if _, err := contact.ParseLayout(config.Defaults.Layout); err != nil {
		return err
	}

	if !validFormat(config.Defaults.Format) {
		return fmt.Errorf("unknown output format '%s' (expected text, json, yaml or csv)", config.Defaults.Format)
	}

	if config.Defaults.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", config.Defaults.Workers)
	}

	if config.Extraction.ContextChars < 0 || config.Extraction.LabelChars < 0 || config.Extraction.NameWindow < 0 {
		return fmt.Errorf("extraction windows must not be negative")
	}

	for field, rule := range config.Confidence {
		if rule.Base < 0 || rule.Base > 1 || rule.Degraded < 0 || rule.Degraded > 1 {
			return fmt.Errorf("confidence for '%s' must be within [0,1]", field)
		}
	}

	for name, profile := range config.Profiles {
		if !validFormat(profile.Format) {
			return fmt.Errorf("profile '%s': unknown output format '%s'", name, profile.Format)
		}
		if profile.Layout == "" {
			continue
		}
		if _, err := contact.ParseLayout(profile.Layout); err != nil {
			return fmt.Errorf("profile '%s': %w", name, err)
		}
	}

	return nil
}

// validFormat reports whether format names a built-in formatter. Empty means
// the default.
func validFormat(format string) bool {
	switch strings.ToLower(format) {
	case "", "text", "json", "yaml", "csv":
		return true
	}
	return false
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration
// together with the load error so the caller can warn about it.
func LoadConfigOrDefault(configFile string) (*Config, error) {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults; a bad config file is reported, not fatal.
		return Default(), err
	}
	return cfg, nil
}
