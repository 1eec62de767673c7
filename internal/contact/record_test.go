// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package contact

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_GetSet(t *testing.T) {
	var r Record
	for _, f := range FieldOrder {
		r.Set(f, "v-"+f)
	}
	for _, f := range FieldOrder {
		assert.Equal(t, "v-"+f, r.Get(f), f)
	}

	r.Set("bogus", "x")
	assert.Equal(t, "", r.Get("bogus"))
}

func TestRecord_Populated(t *testing.T) {
	r := Record{FullName: "Chris Presswood", Email: "chris@x.com", RawText: "raw"}
	assert.Equal(t, []string{FieldFullName, FieldEmail}, r.Populated())
}

func TestRecord_CloneIsIndependent(t *testing.T) {
	r := Record{Email: "a@b.co", Confidence: map[string]float64{FieldEmail: 0.95}}
	c := r.Clone()
	c.Confidence[FieldEmail] = 0.1
	c.Email = "changed"

	assert.Equal(t, 0.95, r.Confidence[FieldEmail])
	assert.Equal(t, "a@b.co", r.Email)
}

func TestRecord_JSONOmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(Record{RawText: "asdf qwer"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rawText":"asdf qwer"}`, string(data))
}

func TestParseLayout(t *testing.T) {
	cases := []struct {
		in   string
		want Layout
	}{
		{"", LayoutAuto},
		{"auto", LayoutAuto},
		{"Signature", LayoutSignature},
		{"linkedin", LayoutProfile},
		{" profile ", LayoutProfile},
	}
	for _, tc := range cases {
		got, err := ParseLayout(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLayout("business-card")
	assert.Error(t, err)
}
