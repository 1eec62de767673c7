// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

// Keywords holds the vocabularies used by the classifier and phone resolver.
// The lists are tuned against real signatures and profiles and are expected
// to grow; a list set in YAML replaces the built-in one.
type Keywords struct {
	Titles            []string `yaml:"titles"`
	CompanySuffixes   []string `yaml:"company_suffixes"`
	Greetings         []string `yaml:"greetings"`
	ProfileVocabulary []string `yaml:"profile_vocabulary"`
	FirstNames        []string `yaml:"first_names"` // added to the embedded name list

	MobileRoles []string `yaml:"mobile_roles"`
	WorkRoles   []string `yaml:"work_roles"`
	HomeRoles   []string `yaml:"home_roles"`
}

// DefaultKeywords returns the built-in vocabularies
func DefaultKeywords() Keywords {
	return Keywords{
		Titles: []string{
			"manager", "director", "ceo", "cto", "cfo", "coo", "cmo", "president",
			"vice president", "vp", "svp", "evp", "officer", "engineer", "developer",
			"analyst", "consultant", "specialist", "coordinator", "administrator",
			"supervisor", "lead", "senior", "junior", "associate", "executive",
			"founder", "co-founder", "owner", "partner", "head of", "chief", "advisor",
			"principal", "architect", "designer", "recruiter", "attorney",
		},
		CompanySuffixes: []string{
			"llc", "inc", "corp", "corporation", "ltd", "limited", "company", "co",
			"group", "solutions", "services", "technologies", "tech", "holdings",
			"partners", "associates", "bank", "financial", "investments", "capital",
			"consulting", "enterprises", "systems", "labs", "agency", "studio",
			"insurance", "realty", "university", "institute", "foundation", "plc", "gmbh",
		},
		Greetings: []string{
			"best regards", "kind regards", "warm regards", "regards", "sincerely",
			"thank you", "thanks", "cheers", "best", "respectfully", "cordially",
		},
		ProfileVocabulary: []string{
			"linkedin", "connect", "connections", "follow", "followers", "following",
			"message", "mutual connections", "contact info", "open to", "endorsements",
		},
		MobileRoles: []string{"mobile", "cell", "cellular", "personal", "text", "sms", "m:", "c:"},
		WorkRoles:   []string{"work", "office", "business", "direct", "desk", "corp", "company", "main", "w:", "o:", "d:"},
		HomeRoles:   []string{"home", "house", "residence", "h:"},
	}
}

// DefaultConfidence returns the built-in confidence table
func DefaultConfidence() map[string]ScoreRule {
	phone := ScoreRule{Base: 0.9, Degraded: 0.6}
	address := ScoreRule{Base: 0.75, Degraded: 0.5}
	return map[string]ScoreRule{
		"email":       {Base: 0.95, Degraded: 0.5},
		"mobilePhone": phone,
		"workPhone":   phone,
		"homePhone":   phone,
		"fullName":    {Base: 0.8, Degraded: 0.6},
		"firstName":   {Base: 0.8, Degraded: 0.6},
		"lastName":    {Base: 0.8, Degraded: 0.6},
		"title":       {Base: 0.85, Degraded: 0.6},
		"company":     {Base: 0.7, Degraded: 0.5},
		"linkedIn":    {Base: 0.95, Degraded: 0.5},
		"website":     {Base: 0.8, Degraded: 0.5},
		"address":     address,
		"street":      address,
		"city":        address,
		"state":       address,
		"zipCode":     address,
		"country":     address,
		"headline":    {Base: 0.6, Degraded: 0.6},
		"location":    {Base: 0.7, Degraded: 0.5},
	}
}

// Merge returns k with every non-empty list from other replacing its own.
func (k Keywords) Merge(other Keywords) Keywords {
	pick := func(base, override []string) []string {
		if len(override) > 0 {
			return override
		}
		return base
	}
	return Keywords{
		Titles:            pick(k.Titles, other.Titles),
		CompanySuffixes:   pick(k.CompanySuffixes, other.CompanySuffixes),
		Greetings:         pick(k.Greetings, other.Greetings),
		ProfileVocabulary: pick(k.ProfileVocabulary, other.ProfileVocabulary),
		FirstNames:        pick(k.FirstNames, other.FirstNames),
		MobileRoles:       pick(k.MobileRoles, other.MobileRoles),
		WorkRoles:         pick(k.WorkRoles, other.WorkRoles),
		HomeRoles:         pick(k.HomeRoles, other.HomeRoles),
	}
}
