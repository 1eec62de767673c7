// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-scan/internal/config"
	"contact-scan/internal/contact"
)

func newTestClassifier() *Classifier {
	return New(config.DefaultKeywords(), 5)
}

func TestClassify_Signature(t *testing.T) {
	c := newTestClassifier()
	in := Input{
		Lines: []string{
			"Chris Presswood",
			"Partner / Senior Vice President - Mammoth Holdings",
			"chris.p@mammothholdings.com | 270-210-3392",
			"3510 Park Avenue",
			"Paducah, KY 42001",
			"www.mammothholdings.com",
		},
		Claims: map[int]Claim{
			2: ClaimEmail | ClaimPhone,
			3: ClaimAddress,
			4: ClaimAddress,
			5: ClaimURL,
		},
	}

	res := c.Classify(in, contact.LayoutAuto)

	assert.Equal(t, contact.LayoutSignature, res.Layout)
	assert.Equal(t, "Chris Presswood", res.FullName)
	assert.Equal(t, "Chris", res.FirstName)
	assert.Equal(t, "Presswood", res.LastName)
	assert.Equal(t, 0, res.NameLine)
	assert.Contains(t, res.Title, "Senior Vice President")
	assert.Equal(t, "Mammoth Holdings", res.Company)
	assert.Equal(t, 1, res.TitleLine)
	assert.Equal(t, 1, res.CompanyLine)
}

func TestClassify_Garbage(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify(Input{Lines: []string{"asdf qwer"}}, contact.LayoutAuto)

	assert.Empty(t, res.FullName)
	assert.Empty(t, res.Title)
	assert.Empty(t, res.Company)
	assert.Equal(t, -1, res.NameLine)
	assert.Equal(t, -1, res.CompanyLine)
}

func TestClassify_Empty(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify(Input{}, contact.LayoutSignature)
	assert.Equal(t, Result{
		Layout: contact.LayoutSignature, NameLine: -1, TitleLine: -1, CompanyLine: -1,
		HeadlineLine: -1, LocationLine: -1,
	}, res)
}

func TestClassify_SkipsGreeting(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify(Input{Lines: []string{"Best regards,", "Dana Whitfield", "Acme Widgets LLC"}}, contact.LayoutSignature)

	assert.Equal(t, "Dana Whitfield", res.FullName)
	assert.Equal(t, 1, res.NameLine)
	assert.Equal(t, "Acme Widgets LLC", res.Company)
}

func TestIsGreeting(t *testing.T) {
	c := newTestClassifier()
	tests := []struct {
		line string
		want bool
	}{
		{"Best regards,", true},
		{"Thanks!", true},
		{"Thanks, Chris", true},
		{"Sincerely", true},
		{"Best Buy", false},
		{"Regardless of cost", false},
		{"Chris Presswood", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.isGreeting(tt.line), tt.line)
	}
}

func TestSignatureName_Rules(t *testing.T) {
	c := newTestClassifier()
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"trailing comma trimmed", []string{"Dana Whitfield,"}, "Dana Whitfield"},
		{"digits rejected", []string{"Suite 400 East", "Dana Whitfield"}, "Dana Whitfield"},
		{"lowercase phrase rejected", []string{"sent from my phone", "Dana Whitfield"}, "Dana Whitfield"},
		{"single token fallback", []string{"Madonna"}, "Madonna"},
		{"short token rejected", []string{"Bob"}, ""},
		{"multi word preferred over token", []string{"Presswood", "Chris Presswood"}, "Chris Presswood"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := c.signatureName(Input{Lines: tt.lines})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignatureName_Window(t *testing.T) {
	c := New(config.DefaultKeywords(), 2)
	got, line := c.signatureName(Input{Lines: []string{"x1", "y2", "Dana Whitfield"}})
	assert.Empty(t, got)
	assert.Equal(t, -1, line)
}

func TestClassify_Profile(t *testing.T) {
	c := newTestClassifier()
	in := Input{Lines: []string{
		"Jane Doe · 2nd",
		"Senior Product Manager at Acme Corp",
		"Greater Seattle Area",
		"500+ connections",
		"Contact info",
	}}

	res := c.Classify(in, contact.LayoutAuto)

	require.Equal(t, contact.LayoutProfile, res.Layout)
	assert.Equal(t, "Jane Doe", res.FullName)
	assert.Equal(t, "Senior Product Manager at Acme Corp", res.Headline)
	assert.Equal(t, "Greater Seattle Area", res.Location)
	assert.Equal(t, "Senior Product Manager", res.Title)
	assert.Equal(t, "Acme Corp", res.Company)
}

func TestProfileName_StripsEmail(t *testing.T) {
	c := newTestClassifier()
	in := Input{
		Lines:  []string{"Jane Doe jane@acme.com", "Engineer"},
		Claims: map[int]Claim{0: ClaimEmail},
	}
	name, line := c.profileName(in)
	assert.Equal(t, "Jane Doe", name)
	assert.Equal(t, 0, line)
}

func TestDetectLayout(t *testing.T) {
	c := newTestClassifier()
	assert.Equal(t, contact.LayoutProfile, c.DetectLayout("Jane Doe\n500+ connections"))
	assert.Equal(t, contact.LayoutSignature, c.DetectLayout("Jane Doe\nEngineer"))
	// vocabulary inside a link does not count
	assert.Equal(t, contact.LayoutSignature, c.DetectLayout("Jane Doe\nwww.connect-hub.com"))
}

func TestSplitTitle(t *testing.T) {
	c := newTestClassifier()
	tests := []struct {
		line    string
		title   string
		company string
	}{
		{"Director of Sales at Globex", "Director of Sales", "Globex"},
		{"Acme Corp | Chief Executive Officer", "Chief Executive Officer", "Acme Corp"},
		{"Lead Engineer - Initech - Austin", "Lead Engineer", "Initech"},
		{"Co-Founder", "Co-Founder", ""},
		{"Senior Analyst", "Senior Analyst", ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			title, company := c.splitTitle(tt.line)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.company, company)
		})
	}
}

func TestClassify_CompanyFallbacks(t *testing.T) {
	c := newTestClassifier()
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"suffix", []string{"Dana Whitfield", "Sales Engineer", "Initech Inc."}, "Initech Inc."},
		{"brand token", []string{"Dana Whitfield", "Globex"}, "Globex"},
		{"capitalized phrase", []string{"Dana Whitfield", "Northwind Traders"}, "Northwind Traders"},
		{"first name phrase skipped", []string{"Dana Whitfield", "Mary Jones"}, ""},
		{"lowercase skipped", []string{"Dana Whitfield", "see attached"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(Input{Lines: tt.lines}, contact.LayoutSignature)
			assert.Equal(t, tt.want, res.Company)
		})
	}
}

func TestDedupTitle(t *testing.T) {
	assert.Equal(t, "Director of Sales", dedupTitle("Director of Sales, Acme Inc", "Acme Inc"))
	assert.Equal(t, "Engineer", dedupTitle("Engineer at Globex", "Globex"))
	assert.Equal(t, "Globex", dedupTitle("Globex", "Globex"))
	assert.Equal(t, "Manager", dedupTitle("Manager", "Initech"))
}

func TestHasTitleKeyword(t *testing.T) {
	c := newTestClassifier()
	assert.True(t, c.HasTitleKeyword("Managing Partner"))
	assert.True(t, c.HasTitleKeyword("Software Engineers"))
	assert.False(t, c.HasTitleKeyword("Leadership"))
	assert.False(t, c.HasTitleKeyword("Mammoth Holdings"))
}

func TestLoadFirstNames(t *testing.T) {
	names, err := LoadFirstNames()
	require.NoError(t, err)
	assert.True(t, names["chris"])
	assert.False(t, names["presswood"])
}
