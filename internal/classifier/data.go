// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"bufio"
	"bytes"
	"compress/gzip"
	_ "embed"
	"fmt"
	"strings"
	"sync"
)

// Embedded compressed list of common personal first names
//
//go:embed data/first_names.txt.gz
var firstNamesDataGZ []byte

var (
	// Global instance for lazy loading
	firstNames map[string]bool
	loadOnce   sync.Once
	loadError  error
)

// LoadFirstNames decompresses the embedded first name list once and returns
// it as a lowercase set. The map must not be modified.
func LoadFirstNames() (map[string]bool, error) {
	loadOnce.Do(func() {
		firstNames, loadError = loadNames(firstNamesDataGZ)
	})
	return firstNames, loadError
}

func loadNames(compressed []byte) (map[string]bool, error) {
	reader, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer reader.Close()

	names := make(map[string]bool, 512)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names[strings.ToLower(name)] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read name data: %w", err)
	}
	return names, nil
}
