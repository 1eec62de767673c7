// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetConfigDir returns the contact-scan configuration directory
func GetConfigDir() string {
	// Check for explicit override first (works on all platforms)
	if dir := os.Getenv("CONTACT_SCAN_CONFIG_DIR"); dir != "" {
		return dir
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "contact-scan")
		}
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "contact-scan")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".contact-scan"
	}
	return filepath.Join(home, ".config", "contact-scan")
}

// GetConfigFile returns the path to the main config file
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// NormalizePath normalizes a file path for the current platform
func NormalizePath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(filepath.FromSlash(path))
}

// ValidatePath validates a path for the current platform
func ValidatePath(path string) error {
	if path == "" {
		return nil // Empty path is valid
	}

	for _, char := range path {
		if char == 0 {
			return &PathValidationError{
				Path:   path,
				Reason: "contains null byte",
			}
		}
	}

	if runtime.GOOS == "windows" {
		for i, char := range path {
			switch char {
			case '<', '>', '"', '|', '?', '*':
				return &PathValidationError{Path: path, Reason: "contains invalid character: " + string(char)}
			case ':':
				// Drive letter (C:) is the only place a colon is allowed
				if i != 1 {
					return &PathValidationError{Path: path, Reason: "contains invalid character: :"}
				}
			}
		}
	}

	return nil
}

// PathValidationError represents a path validation error
type PathValidationError struct {
	Path   string
	Reason string
}

func (e *PathValidationError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Reason
}
