// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"contact-scan/internal/classifier"
	"contact-scan/internal/config"
	"contact-scan/internal/confidence"
	"contact-scan/internal/help"
	"contact-scan/internal/validators/address"
	"contact-scan/internal/validators/email"
	"contact-scan/internal/validators/phone"
	"contact-scan/internal/validators/socialmedia"
	"contact-scan/internal/validators/website"
)

// Extractors is the full set of pipeline stages built from one configuration.
// Every member is immutable after construction.
type Extractors struct {
	Email      *email.Extractor
	Phone      *phone.Extractor
	Website    *website.Extractor
	Profile    *socialmedia.Extractor
	Address    *address.Extractor
	Classifier *classifier.Classifier
	Resolver   *phone.Resolver
	Scorer     *confidence.Scorer

	keywords config.Keywords
}

// BuildExtractors constructs the pipeline stages. Pass nil for cfg to use
// the built-in defaults.
func BuildExtractors(cfg *config.Config) *Extractors {
	if cfg == nil {
		cfg = config.Default()
	}
	defaults := config.Default()

	ext := cfg.Extraction
	if ext.ProfileDomain == "" {
		ext.ProfileDomain = defaults.Extraction.ProfileDomain
	}
	if ext.ContextChars <= 0 {
		ext.ContextChars = defaults.Extraction.ContextChars
	}
	if ext.LabelChars <= 0 {
		ext.LabelChars = defaults.Extraction.LabelChars
	}
	if ext.NameWindow <= 0 {
		ext.NameWindow = defaults.Extraction.NameWindow
	}

	kw := config.DefaultKeywords().Merge(cfg.Keywords)
	profiles := socialmedia.NewExtractor(ext.ProfileDomain)
	cls := classifier.New(kw, ext.NameWindow)

	return &Extractors{
		Email:      email.NewExtractor(),
		Phone:      phone.NewExtractor(ext.ContextChars, ext.LabelChars),
		Website:    website.NewExtractor(ext.ProfileDomain),
		Profile:    profiles,
		Address:    address.NewExtractor(),
		Classifier: cls,
		Resolver:   phone.NewResolver(kw.MobileRoles, kw.WorkRoles, kw.HomeRoles, ext.ContextChars, ext.LabelChars),
		Scorer:     confidence.NewScorer(cfg.Confidence, cls, profiles),
		keywords:   kw,
	}
}

// HelpProviders returns the field reference of every stage in display order
func (x *Extractors) HelpProviders() []help.Provider {
	return []help.Provider{
		x.Classifier,
		x.Email,
		phone.FieldInfo{Mobile: x.keywords.MobileRoles, Work: x.keywords.WorkRoles, Home: x.keywords.HomeRoles},
		x.Website,
		x.Profile,
		x.Address,
	}
}
