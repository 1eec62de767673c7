// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classifier picks the name, title and company out of the lines of a
// text block by position and keyword heuristics.
package classifier

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"contact-scan/internal/config"
	"contact-scan/internal/contact"
)

// Claim marks why a line belongs to an extractor
type Claim uint8

const (
	ClaimEmail Claim = 1 << iota
	ClaimPhone
	ClaimURL
	ClaimAddress
)

// Input is one text block as seen by the classifier
type Input struct {
	Lines  []string
	Claims map[int]Claim // line index -> extractors that matched on it
}

func (in Input) claimed(i int) bool {
	return in.Claims[i] != 0
}

// Result holds the classified fields and the lines they came from. Line
// indexes are -1 when the field is absent.
type Result struct {
	Layout    contact.Layout
	FullName  string
	FirstName string
	LastName  string
	Title     string
	Company   string
	Headline  string
	Location  string

	NameLine     int
	TitleLine    int
	CompanyLine  int
	HeadlineLine int
	LocationLine int
}

var (
	linkLike       = regexp.MustCompile(`(?i)\S*(?:https?://|www\.|@|\.[a-z]{2,}/)\S*`)
	trailingEmail  = regexp.MustCompile(`(?i)[ \t]*[(<\[]?[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}[)>\]]?[ \t]*$`)
	profileDivider = regexp.MustCompile(`[ \t]+[·•][ \t]*`)
	trailingComma  = regexp.MustCompile(`[,\s]+$`)

	separatorAt   = regexp.MustCompile(`(?i)\s+at\s+`)
	separatorPipe = regexp.MustCompile(`\s*\|\s*`)
	separatorDash = regexp.MustCompile(`\s+[-–—]\s*|\s*[-–—]\s+`)
	anySeparator  = regexp.MustCompile(`(?i)\s+at\s+|\s*\|\s*|\s+[-–—]\s*|\s*[-–—]\s+`)
	edgeNoise     = regexp.MustCompile(`(?i)^[\s|,@/–—-]+|[\s|,@/–—-]+$|\s+at$`)
)

// Classifier is immutable after construction and safe for concurrent use
type Classifier struct {
	titles     *regexp.Regexp
	suffixes   *regexp.Regexp
	vocabulary *regexp.Regexp
	greetings  []string
	firstNames map[string]bool
	nameWindow int
}

// New builds a Classifier from the keyword vocabularies. nameWindow is the
// number of leading content lines searched for a name.
func New(kw config.Keywords, nameWindow int) *Classifier {
	names := make(map[string]bool)
	if embedded, err := LoadFirstNames(); err == nil {
		for n := range embedded {
			names[n] = true
		}
	}
	for _, n := range kw.FirstNames {
		names[strings.ToLower(strings.TrimSpace(n))] = true
	}

	greetings := make([]string, 0, len(kw.Greetings))
	for _, g := range kw.Greetings {
		if g = strings.ToLower(strings.TrimSpace(g)); g != "" {
			greetings = append(greetings, g)
		}
	}

	if nameWindow <= 0 {
		nameWindow = 5
	}

	return &Classifier{
		titles:     wordRegex(kw.Titles, true),
		suffixes:   wordRegex(kw.CompanySuffixes, false),
		vocabulary: wordRegex(kw.ProfileVocabulary, false),
		greetings:  greetings,
		firstNames: names,
		nameWindow: nameWindow,
	}
}

// wordRegex matches any of words as whole words, case-insensitively. With
// plural set a trailing "s" is accepted. Nil when words is empty.
func wordRegex(words []string, plural bool) *regexp.Regexp {
	var alts []string
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			alts = append(alts, regexp.QuoteMeta(w))
		}
	}
	if len(alts) == 0 {
		return nil
	}
	tail := `\b`
	if plural {
		tail = `s?\b`
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)` + tail)
}

func matches(re *regexp.Regexp, s string) bool {
	return re != nil && re.MatchString(s)
}

// HasTitleKeyword reports whether s contains a title keyword
func (c *Classifier) HasTitleKeyword(s string) bool {
	return matches(c.titles, s)
}

// DetectLayout returns LayoutProfile when text carries profile page
// vocabulary outside of links and addresses, otherwise LayoutSignature.
func (c *Classifier) DetectLayout(text string) contact.Layout {
	if matches(c.vocabulary, linkLike.ReplaceAllString(text, " ")) {
		return contact.LayoutProfile
	}
	return contact.LayoutSignature
}

// Classify assigns name, title and company. layout must be signature or
// profile; auto is detected from the lines.
func (c *Classifier) Classify(in Input, layout contact.Layout) Result {
	res := Result{NameLine: -1, TitleLine: -1, CompanyLine: -1, HeadlineLine: -1, LocationLine: -1}

	if layout == contact.LayoutAuto || layout == "" {
		layout = c.DetectLayout(strings.Join(in.Lines, "\n"))
	}
	res.Layout = layout

	if layout == contact.LayoutProfile {
		res.FullName, res.NameLine = c.profileName(in)
	} else {
		res.FullName, res.NameLine = c.signatureName(in)
	}
	if parts := strings.Fields(res.FullName); len(parts) >= 2 {
		res.FirstName, res.LastName = parts[0], parts[len(parts)-1]
	}

	used := func(i int) bool {
		return in.claimed(i) || i == res.NameLine || i == res.HeadlineLine ||
			i == res.LocationLine || i == res.TitleLine
	}

	if layout == contact.LayoutProfile {
		c.profileExtras(in, &res, used)
	}

	// The headline takes part in the title scan in input order
	var splitCompany string
	for i, line := range in.Lines {
		if (used(i) && i != res.HeadlineLine) || !c.HasTitleKeyword(line) {
			continue
		}
		res.TitleLine = i
		res.Title, splitCompany = c.splitTitle(line)
		break
	}

	if res.Title == "" && res.Headline != "" {
		res.Title, splitCompany = c.splitTitle(res.Headline)
		res.TitleLine = res.HeadlineLine
	}

	if splitCompany != "" {
		res.Company, res.CompanyLine = splitCompany, res.TitleLine
	} else {
		res.Company, res.CompanyLine = c.company(in, used)
	}

	if res.Title != "" && res.Company != "" {
		res.Title = dedupTitle(res.Title, res.Company)
	}

	return res
}

// signatureName takes the first content line of plausible length; a
// capitalized multi-word line is preferred over a single long token.
func (c *Classifier) signatureName(in Input) (string, int) {
	fallback, fallbackLine := "", -1
	seen := 0
	for i, line := range in.Lines {
		if seen >= c.nameWindow {
			break
		}
		if in.claimed(i) || c.isGreeting(line) {
			continue
		}
		seen++

		candidate := trailingComma.ReplaceAllString(line, "")
		n := utf8.RuneCountInString(candidate)
		if n <= 3 || n >= 50 || matches(c.vocabulary, candidate) || strings.ContainsAny(candidate, "0123456789@|/:") {
			continue
		}
		if strings.Contains(candidate, " ") {
			first, _ := utf8.DecodeRuneInString(candidate)
			if unicode.IsUpper(first) {
				return candidate, i
			}
			continue
		}
		if n > 5 && fallbackLine < 0 {
			fallback, fallbackLine = candidate, i
		}
	}
	return fallback, fallbackLine
}

// profileName looks at the first content lines of a profile page. An email
// merged into the name line by OCR is stripped, as is anything after a
// middle dot ("Jane Doe · 2nd").
func (c *Classifier) profileName(in Input) (string, int) {
	single, singleLine := "", -1
	seen := 0
	for i, line := range in.Lines {
		if seen >= c.nameWindow {
			break
		}
		claim := in.Claims[i]
		if claim&^ClaimEmail != 0 {
			continue
		}
		seen++

		candidate := strings.TrimSpace(trailingEmail.ReplaceAllString(line, ""))
		if loc := profileDivider.FindStringIndex(candidate); loc != nil {
			candidate = strings.TrimSpace(candidate[:loc[0]])
		}
		if candidate == "" || matches(c.vocabulary, candidate) || email(candidate) {
			continue
		}

		letters := 0
		for _, r := range candidate {
			if unicode.IsLetter(r) || r == ' ' {
				letters++
			}
		}
		if letters < 4 || letters > 50 {
			continue
		}
		if strings.Contains(candidate, " ") {
			return candidate, i
		}
		if singleLine < 0 {
			single, singleLine = candidate, i
		}
	}
	return single, singleLine
}

func email(s string) bool {
	return strings.Contains(s, "@")
}

// profileExtras fills the headline (the line right after the name) and the
// location (a short line naming an area or with a comma).
func (c *Classifier) profileExtras(in Input, res *Result, used func(int) bool) {
	if next := res.NameLine + 1; res.NameLine >= 0 && next < len(in.Lines) && !in.claimed(next) {
		line := in.Lines[next]
		if !matches(c.vocabulary, line) {
			res.Headline, res.HeadlineLine = line, next
		}
	}

	for i, line := range in.Lines {
		if used(i) || utf8.RuneCountInString(line) >= 100 {
			continue
		}
		if strings.Contains(line, "Greater") || strings.Contains(line, "Area") || strings.Contains(line, ",") {
			if matches(c.vocabulary, line) {
				continue
			}
			res.Location, res.LocationLine = line, i
			return
		}
	}
}

// splitTitle cuts a title line at the first separator, trying " at ", "|"
// and a spaced dash in that order. The part holding the title keyword is
// the title and the other part is the company.
func (c *Classifier) splitTitle(line string) (title, company string) {
	for _, sep := range []*regexp.Regexp{separatorAt, separatorPipe, separatorDash} {
		loc := sep.FindStringIndex(line)
		if loc == nil {
			continue
		}
		before := strings.TrimSpace(line[:loc[0]])
		after := strings.TrimSpace(line[loc[1]:])
		if before == "" || after == "" {
			continue
		}
		if !c.HasTitleKeyword(before) && c.HasTitleKeyword(after) {
			before, after = after, before
		}
		if cut := anySeparator.FindStringIndex(after); cut != nil {
			after = strings.TrimSpace(after[:cut[0]])
		}
		return before, after
	}
	return strings.TrimSpace(line), ""
}

// company scans unused lines for a company suffix, a capitalized brand
// token, or a short capitalized phrase that does not start with a first name.
func (c *Classifier) company(in Input, used func(int) bool) (string, int) {
	for i, line := range in.Lines {
		if used(i) || c.isGreeting(line) || matches(c.vocabulary, line) {
			continue
		}
		line = strings.TrimSpace(line)
		if matches(c.suffixes, line) && utf8.RuneCountInString(line) < 80 {
			return line, i
		}

		first, _ := utf8.DecodeRuneInString(line)
		if !unicode.IsUpper(first) {
			continue
		}
		words := strings.Fields(line)
		switch {
		case len(words) == 1:
			if n := utf8.RuneCountInString(line); n >= 3 && n <= 50 {
				return line, i
			}
		case len(words) <= 6:
			if !c.firstNames[strings.ToLower(strings.Trim(words[0], ".,"))] {
				return line, i
			}
		}
	}
	return "", -1
}

// isGreeting reports a closing line such as "Best regards," or "Thanks, Chris"
func (c *Classifier) isGreeting(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, g := range c.greetings {
		if !strings.HasPrefix(lower, g) {
			continue
		}
		rest := lower[len(g):]
		if rest == "" || strings.Trim(rest, " ,.!-") == "" || strings.HasPrefix(rest, ",") {
			return true
		}
	}
	return false
}

// dedupTitle removes the company (and the separator next to it) from the
// title. The original title is kept when nothing would remain.
func dedupTitle(title, company string) string {
	i := strings.Index(strings.ToLower(title), strings.ToLower(company))
	if i < 0 {
		return title
	}
	stripped := strings.TrimSpace(title[:i]) + " " + strings.TrimSpace(title[i+len(company):])
	stripped = strings.TrimSpace(stripped)
	for {
		next := edgeNoise.ReplaceAllString(stripped, "")
		if next == stripped {
			break
		}
		stripped = next
	}
	if stripped == "" {
		return title
	}
	return stripped
}
