// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-scan/internal/config"
	"contact-scan/internal/contact"
	"contact-scan/internal/observability"
)

const signatureBlock = `Chris Presswood
Partner / Senior Vice President - Mammoth Holdings
chris.p@mammothholdings.com | 270-210-3392
3510 Park Avenue
Paducah, KY 42001
www.mammothholdings.com`

func newTestEngine() *Engine {
	return NewEngine(config.Default(), nil)
}

func TestExtract_SignatureBlock(t *testing.T) {
	res := newTestEngine().Extract(signatureBlock, contact.LayoutAuto)
	r := res.Record

	assert.Equal(t, contact.LayoutSignature, res.Layout)
	assert.Equal(t, "Chris Presswood", r.FullName)
	assert.Equal(t, "Chris", r.FirstName)
	assert.Equal(t, "Presswood", r.LastName)
	assert.Equal(t, "chris.p@mammothholdings.com", r.Email)
	assert.Equal(t, "(270) 210-3392", r.MobilePhone)
	assert.Empty(t, r.WorkPhone)
	assert.Contains(t, r.Title, "Senior Vice President")
	assert.Equal(t, "Mammoth Holdings", r.Company)
	assert.Equal(t, "3510 Park Avenue", r.Street)
	assert.Equal(t, "Paducah", r.City)
	assert.Equal(t, "KY", r.State)
	assert.Equal(t, "42001", r.ZipCode)
	assert.Empty(t, r.Address)
	assert.Empty(t, r.Country)
	assert.Equal(t, "https://www.mammothholdings.com", r.Website)
	assert.Empty(t, r.LinkedIn)
	assert.Equal(t, signatureBlock, r.RawText)
	assert.Empty(t, res.Warnings)

	// confidence only for populated fields
	assert.ElementsMatch(t, r.Populated(), keys(r.Confidence))
	assert.Equal(t, 0.95, r.Confidence[contact.FieldEmail])
	assert.Equal(t, 0.9, r.Confidence[contact.FieldMobilePhone])
	assert.Equal(t, 0.85, r.Confidence[contact.FieldTitle])
}

func TestExtract_RejectedProfileLink(t *testing.T) {
	e := newTestEngine()
	for _, link := range []string{"linkedin.com/in/12345", "https://www.linkedin.com/in/12345"} {
		res := e.Extract("Chris Presswood\n"+link, contact.LayoutAuto)
		assert.Equal(t, "Chris Presswood", res.Record.FullName, link)
		assert.Empty(t, res.Record.LinkedIn, link)
		require.Len(t, res.Warnings, 1, link)
		assert.True(t, strings.HasPrefix(res.Warnings[0], "profile link rejected: "), link)
	}

	res := e.Extract("Chris Presswood\nhttps://www.linkedin.com/in/12345", contact.LayoutAuto)
	assert.Equal(t, []string{"profile link rejected: slug is purely numeric"}, res.Warnings)
}

func TestExtract_AcceptedProfileLink(t *testing.T) {
	res := newTestEngine().Extract("Chris Presswood\nlinkedin.com/in/chris-presswood-8a2f1", contact.LayoutAuto)

	assert.Equal(t, "https://linkedin.com/in/chris-presswood-8a2f1", res.Record.LinkedIn)
	assert.Equal(t, "Chris Presswood", res.Record.FullName)
	assert.Empty(t, res.Record.Website)
	assert.Equal(t, 0.95, res.Record.Confidence[contact.FieldLinkedIn])
}

func TestExtract_PhoneRoles(t *testing.T) {
	res := newTestEngine().Extract("Mobile: 555-123-4567\nOffice: 555-987-6543", contact.LayoutAuto)

	assert.Equal(t, "(555) 123-4567", res.Record.MobilePhone)
	assert.Equal(t, "(555) 987-6543", res.Record.WorkPhone)
	assert.Empty(t, res.Record.HomePhone)
}

func TestExtract_LoneWorkNumberPromoted(t *testing.T) {
	res := newTestEngine().Extract("Dana Whitfield\nOffice: 555-987-6543", contact.LayoutAuto)

	assert.Equal(t, "(555) 987-6543", res.Record.MobilePhone)
	assert.Empty(t, res.Record.WorkPhone)
	assert.NotEmpty(t, res.Warnings)
}

func TestExtract_Garbage(t *testing.T) {
	e := newTestEngine()
	for _, text := range []string{"asdf qwer", ""} {
		var res contact.Result
		require.NotPanics(t, func() { res = e.Extract(text, contact.LayoutAuto) })
		assert.Equal(t, contact.Record{RawText: text}, res.Record, "%q", text)
		assert.Empty(t, res.Warnings)
	}
}

func TestExtract_ProfilePage(t *testing.T) {
	text := `Jane Doe · 2nd
Senior Product Manager at Acme Corp
Greater Seattle Area
500+ connections
Message
linkedin.com/in/jane-doe-4b1`

	res := newTestEngine().Extract(text, contact.LayoutAuto)
	r := res.Record

	assert.Equal(t, contact.LayoutProfile, res.Layout)
	assert.Equal(t, "Jane Doe", r.FullName)
	assert.Equal(t, "Senior Product Manager", r.Title)
	assert.Equal(t, "Acme Corp", r.Company)
	assert.Equal(t, "Senior Product Manager at Acme Corp", r.Headline)
	assert.Equal(t, "Greater Seattle Area", r.Location)
	assert.Equal(t, "https://linkedin.com/in/jane-doe-4b1", r.LinkedIn)
}

func TestExtract_ProfileHeadlineBeatsLaterKeywords(t *testing.T) {
	text := `Jane Doe
Senior Product Manager at Acme Corp
Greater Seattle Area
500+ connections
About
Passionate team lead and mentor`

	res := newTestEngine().Extract(text, contact.LayoutProfile)
	r := res.Record

	assert.Equal(t, "Senior Product Manager", r.Title)
	assert.Equal(t, "Acme Corp", r.Company)
	assert.Equal(t, "Senior Product Manager at Acme Corp", r.Headline)
}

func TestExtract_ShortLocalPartIsNotMerged(t *testing.T) {
	e := newTestEngine()

	res := e.Extract("Dana Whitfield\nEmail me j@initech.com", contact.LayoutAuto)
	assert.Equal(t, "j@initech.com", res.Record.Email)

	res = e.Extract("Write to x@acme.io today", contact.LayoutAuto)
	assert.Equal(t, "x@acme.io", res.Record.Email)
}

func TestExtract_LayoutHint(t *testing.T) {
	text := "Jane Doe\nFollow me on the blog"
	assert.Equal(t, contact.LayoutProfile, newTestEngine().Extract(text, contact.LayoutAuto).Layout)
	assert.Equal(t, contact.LayoutSignature, newTestEngine().Extract(text, contact.LayoutSignature).Layout)
}

func TestExtract_FreeTextAddress(t *testing.T) {
	res := newTestEngine().Extract("Dana Whitfield\nPO Box 9 NY 10001", contact.LayoutAuto)

	assert.Equal(t, "PO Box 9 NY 10001", res.Record.Address)
	assert.Empty(t, res.Record.City)
	assert.Equal(t, 0.75, res.Record.Confidence[contact.FieldAddress])
}

func TestExtract_Idempotent(t *testing.T) {
	e := newTestEngine()
	for _, text := range []string{signatureBlock, "Mobile: 555-123-4567\nOffice: 555-987-6543", "asdf qwer"} {
		assert.Equal(t, e.Extract(text, contact.LayoutAuto), e.Extract(text, contact.LayoutAuto))
		assert.Equal(t, e.Extract(text, contact.LayoutAuto), newTestEngine().Extract(text, contact.LayoutAuto))
	}
}

func TestExtract_FirstEmailWins(t *testing.T) {
	e := newTestEngine()
	res := e.Extract("Dana Whitfield\ndana@initech.com\nsupport@initech.com", contact.LayoutAuto)
	assert.Equal(t, "dana@initech.com", res.Record.Email)

	res = e.Extract("Dana Whitfield\nsupport@initech.com\ndana@initech.com", contact.LayoutAuto)
	assert.Equal(t, "support@initech.com", res.Record.Email)
}

func TestExtract_ProfileLinkSafety(t *testing.T) {
	e := newTestEngine()
	links := []string{
		"linkedin.com/in/jordan-miller-42",
		"https://www.linkedin.com/in/sales-team-bot",
		"www.linkedin.com/in/xyzzy-plugh",
	}
	for _, link := range links {
		res := e.Extract("Chris Presswood\nchris@acme.com\n"+link, contact.LayoutAuto)
		require.Equal(t, "Chris Presswood", res.Record.FullName)
		assert.Empty(t, res.Record.LinkedIn, link)
		assert.Contains(t, res.Warnings, "profile link rejected: name mismatch", link)
	}
}

func TestExtract_PhoneRoundTrip(t *testing.T) {
	e := newTestEngine()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		var d strings.Builder
		for j := 0; j < 10; j++ {
			d.WriteByte(byte('0' + rng.Intn(10)))
		}
		D := d.String()

		res := e.Extract(fmt.Sprintf("Call %s-%s-%s", D[0:3], D[3:6], D[6:10]), contact.LayoutAuto)
		assert.Equal(t, fmt.Sprintf("(%s) %s-%s", D[0:3], D[3:6], D[6:10]), res.Record.MobilePhone, D)
	}
}

func TestExtract_FieldIndependence(t *testing.T) {
	e := newTestEngine()
	links := []string{
		"linkedin.com/in/jane-doe-4b1",
		"https://www.linkedin.com/in/12345",
		"www.linkedin.com/in/someone-else",
	}
	bases := []string{
		"Jane Doe\njane@acme.com\n%s\nMobile: 555-123-4567",
		"Best regards,\nJane Doe %s\nOffice 555-987-6543 | jane@acme.com",
		"%s\nJane Doe\nDirector at Acme\n555-222-3333",
	}
	for _, base := range bases {
		for _, link := range links {
			with := e.Extract(fmt.Sprintf(base, link), contact.LayoutAuto).Record
			without := e.Extract(fmt.Sprintf(base, ""), contact.LayoutAuto).Record

			assert.Equal(t, without.Email, with.Email, base)
			assert.Equal(t, without.MobilePhone, with.MobilePhone, base)
			assert.Equal(t, without.FullName, with.FullName, base)
		}
	}
}

func TestExtract_CRLFAndLigatures(t *testing.T) {
	res := newTestEngine().Extract("Dana Whitfield\r\nﬁnance@initech.com\r\n", contact.LayoutAuto)

	assert.Equal(t, "Dana Whitfield", res.Record.FullName)
	assert.Equal(t, "finance@initech.com", res.Record.Email)
	assert.Equal(t, "Dana Whitfield\r\nﬁnance@initech.com\r\n", res.Record.RawText)
}

func TestExtract_DebugObserver(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(config.Default(), observability.NewObserver(false, true, &buf))

	res := e.Extract(signatureBlock, contact.LayoutAuto)
	assert.Equal(t, "Chris Presswood", res.Record.FullName)

	out := buf.String()
	for _, step := range []string{"segment", "extract", "classify", "profile_link", "resolve_phones", "score"} {
		assert.Contains(t, out, "engine: "+step+" completed")
	}
	assert.Contains(t, out, `"component":"engine"`)
}

func TestExtractBatch(t *testing.T) {
	e := newTestEngine()
	texts := []string{signatureBlock, "asdf qwer", "Mobile: 555-123-4567\nOffice: 555-987-6543"}

	results, err := e.ExtractBatch(context.Background(), texts, contact.LayoutAuto)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, text := range texts {
		assert.Equal(t, e.Extract(text, contact.LayoutAuto), results[i])
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.ExtractBatch(ctx, texts, contact.LayoutAuto)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildExtractors_Config(t *testing.T) {
	cfg := config.Default()
	cfg.Extraction.ProfileDomain = "xing.com"
	cfg.Keywords.Titles = []string{"wizard"}

	e := NewEngine(cfg, nil)
	res := e.Extract("Dana Whitfield\nChief Wizard\nxing.com/in/dana-whitfield", contact.LayoutAuto)
	assert.Equal(t, "Chief Wizard", res.Record.Title)
	assert.Equal(t, "https://xing.com/in/dana-whitfield", res.Record.LinkedIn)

	assert.Len(t, e.Extractors().HelpProviders(), 6)
	assert.NotNil(t, BuildExtractors(nil).Scorer)
}

func keys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
