// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"blank lines dropped", "\n\n  \n", []string{}},
		{"trimmed and ordered", "  Chris Presswood \n\n\tPartner\n  ", []string{"Chris Presswood", "Partner"}},
		{"crlf", "a\r\nb\rc", []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Lines(tc.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "office@acme.com", Normalize("oﬃce＠acme.com"))
	assert.Equal(t, "a\nb\nc", Normalize("a\r\nb\rc"))
	assert.Equal(t, "Jane Doe", Normalize("Jane\u00a0Doe"))
}
