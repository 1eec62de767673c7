// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"regexp"
	"strings"

	"contact-scan/internal/detector"
	"contact-scan/internal/normalize"
)

// Role is the kind of line a number belongs to
type Role int

const (
	RoleUnknown Role = iota
	RoleMobile
	RoleWork
	RoleHome
)

func (r Role) String() string {
	switch r {
	case RoleMobile:
		return "mobile"
	case RoleWork:
		return "work"
	case RoleHome:
		return "home"
	default:
		return "unknown"
	}
}

// Warnings recorded by Resolve
const (
	WarnExtraIgnored = "additional phone number ignored"
	WarnPromoted     = "work phone promoted to mobile: no other number found"
)

// Links and addresses often carry words like "home" or "work" in a path or
// host; they are blanked out before keyword scanning.
var linkLike = regexp.MustCompile(`(?i)\S*(?:https?://|www\.|@|\.[a-z]{2,}/)\S*`)

// Classification is the role assigned to one match
type Classification struct {
	Match   detector.Match
	Role    Role
	Labeled bool   // role came from the narrow label window
	Keyword string // keyword that decided the role
}

// Assignment is the outcome of resolving all numbers of one text block.
// Values are normalized.
type Assignment struct {
	Mobile   string
	Work     string
	Home     string
	Warnings []string
}

// Resolver assigns phone matches to the mobile, work and home slots
type Resolver struct {
	roles        []roleMatcher
	contextChars int
	labelChars   int
}

type roleMatcher struct {
	role Role
	re   *regexp.Regexp
}

type hit struct {
	role       Role
	start, end int
	keyword    string
}

// NewResolver compiles the role vocabularies. An empty list disables its role.
func NewResolver(mobile, work, home []string, contextChars, labelChars int) *Resolver {
	r := &Resolver{contextChars: contextChars, labelChars: labelChars}
	for _, def := range []struct {
		role     Role
		keywords []string
	}{
		{RoleMobile, mobile},
		{RoleWork, work},
		{RoleHome, home},
	} {
		if re := keywordRegex(def.keywords); re != nil {
			r.roles = append(r.roles, roleMatcher{role: def.role, re: re})
		}
	}
	return r
}

// keywordRegex builds a case-insensitive alternation. Word boundaries are
// added only on sides that end in a word character, so "m:" matches "M:" but
// not "am:".
func keywordRegex(keywords []string) *regexp.Regexp {
	var alts []string
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		alt := regexp.QuoteMeta(kw)
		if isWordByte(kw[0]) {
			alt = `\b` + alt
		}
		if isWordByte(kw[len(kw)-1]) {
			alt += `\b`
		}
		alts = append(alts, alt)
	}
	if len(alts) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(alts, "|") + `)`)
}

func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// Classify decides the role of every match. text is the block the matches
// were extracted from.
//
// A keyword in the label window (same line, just before the number) wins
// over one in the broad window. Within a window the keyword nearest the
// number wins. A keyword sitting in another number's label window belongs
// to that number and is ignored here.
func (r *Resolver) Classify(text string, matches []detector.Match) []Classification {
	masked := linkLike.ReplaceAllStringFunc(text, func(s string) string {
		return strings.Repeat(" ", len(s))
	})

	var hits []hit
	for _, rm := range r.roles {
		for _, loc := range rm.re.FindAllStringIndex(masked, -1) {
			hits = append(hits, hit{role: rm.role, start: loc[0], end: loc[1], keyword: masked[loc[0]:loc[1]]})
		}
	}

	labelStarts := make([]int, len(matches))
	for i, m := range matches {
		labelStarts[i] = r.labelStart(text, m.Start)
	}

	inOtherLabel := func(h hit, self int) bool {
		for i, m := range matches {
			if i != self && h.start >= labelStarts[i] && h.end <= m.Start {
				return true
			}
		}
		return false
	}

	out := make([]Classification, len(matches))
	for i, m := range matches {
		out[i] = Classification{Match: m}

		// Label window
		best := -1
		for j, h := range hits {
			if h.start >= labelStarts[i] && h.end <= m.Start {
				if best < 0 || h.end > hits[best].end {
					best = j
				}
			}
		}
		if best >= 0 {
			out[i].Role, out[i].Labeled, out[i].Keyword = hits[best].role, true, hits[best].keyword
			continue
		}

		// Broad window
		lo, hi := m.Start-r.contextChars, m.End+r.contextChars
		bestDist := 0
		for j, h := range hits {
			if h.start < lo || h.end > hi || m.Overlaps(h.start, h.end) || inOtherLabel(h, i) {
				continue
			}
			dist := h.start - m.End
			if h.end <= m.Start {
				dist = m.Start - h.end
			}
			if best < 0 || dist < bestDist {
				best, bestDist = j, dist
			}
		}
		if best >= 0 {
			out[i].Role, out[i].Keyword = hits[best].role, hits[best].keyword
		}
	}
	return out
}

// labelStart is the first byte of the label window for a number at start:
// at most labelChars back and never before the start of its line.
func (r *Resolver) labelStart(text string, start int) int {
	lineStart := strings.LastIndexByte(text[:start], '\n') + 1
	return max(lineStart, start-r.labelChars)
}

// Resolve assigns numbers to slots. Mobile-labeled numbers fill Mobile, then
// work-labeled fill Work, then home-labeled fill Home; unlabeled numbers fill
// Mobile then Work in order of appearance. A number only placed in a role by
// the broad window falls back to the unlabeled pool when its slot is taken.
// A lone work number is promoted to Mobile.
func (r *Resolver) Resolve(text string, matches []detector.Match) Assignment {
	var a Assignment

	seen := make(map[string]bool)
	var unique []detector.Match
	for _, m := range matches {
		d := normalize.Digits(m.Text)
		if len(d) == 11 && (d[0] == '1' || d[0] == '0') {
			d = d[1:]
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		unique = append(unique, m)
	}

	classes := r.Classify(text, unique)
	placed := make([]bool, len(classes))
	slots := map[Role]*string{RoleMobile: &a.Mobile, RoleWork: &a.Work, RoleHome: &a.Home}

	for _, role := range []Role{RoleMobile, RoleWork, RoleHome} {
		for i, c := range classes {
			if c.Role != role {
				continue
			}
			slot := slots[role]
			if *slot == "" {
				*slot = normalize.Phone(c.Match.Text)
				placed[i] = true
				continue
			}
			if c.Labeled {
				a.Warnings = append(a.Warnings, WarnExtraIgnored)
				placed[i] = true
			}
		}
	}

	for i, c := range classes {
		if placed[i] {
			continue
		}
		switch {
		case a.Mobile == "":
			a.Mobile = normalize.Phone(c.Match.Text)
		case a.Work == "":
			a.Work = normalize.Phone(c.Match.Text)
		default:
			a.Warnings = append(a.Warnings, WarnExtraIgnored)
		}
	}

	if a.Work != "" && a.Mobile == "" && a.Home == "" {
		a.Mobile, a.Work = a.Work, ""
		a.Warnings = append(a.Warnings, WarnPromoted)
	}

	return a
}
