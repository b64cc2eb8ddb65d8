// Copyright 2025 TalentSift
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "strings"

// RankConfig holds the knobs for one ranking run.
type RankConfig struct {
	// Threshold is the minimum composite score (0-100 percent scale) for a
	// record to be shortlisted. Values above 100 are never satisfied.
	// Default: 75
	Threshold int

	// RequiredKeywords restricts the shortlist to documents whose keyword
	// set contains at least one of these terms. Empty means no restriction.
	// Matched case-insensitively.
	RequiredKeywords []string

	// TopSentences is the number of supporting sentences reported per
	// document. Zero disables the sentence pass entirely.
	// Default: 3
	TopSentences int

	// KeywordTopN caps the extracted keyword set per text.
	// Default: 15
	KeywordTopN int

	// Lexical blends a lexical overlap signal into the composite score.
	// Off by default: the composite is purely semantic.
	Lexical bool
}

// RankOption is a functional option for configuring a RankConfig.
type RankOption func(*RankConfig)

// WithThreshold sets the shortlist threshold.
func WithThreshold(threshold int) RankOption {
	return func(c *RankConfig) {
		c.Threshold = threshold
	}
}

// WithRequiredKeywords sets the required-keyword constraint.
func WithRequiredKeywords(keywords ...string) RankOption {
	return func(c *RankConfig) {
		c.RequiredKeywords = keywords
	}
}

// WithTopSentences sets the number of supporting sentences per document.
func WithTopSentences(n int) RankOption {
	return func(c *RankConfig) {
		c.TopSentences = n
	}
}

// WithKeywordTopN sets the keyword set cap.
func WithKeywordTopN(n int) RankOption {
	return func(c *RankConfig) {
		c.KeywordTopN = n
	}
}

// WithLexical enables or disables the lexical blend.
func WithLexical(enabled bool) RankOption {
	return func(c *RankConfig) {
		c.Lexical = enabled
	}
}

// DefaultRankConfig returns a RankConfig with the documented defaults.
func DefaultRankConfig() RankConfig {
	return RankConfig{
		Threshold:    75,
		TopSentences: 3,
		KeywordTopN:  15,
	}
}

// NewRankConfig creates a RankConfig with the default values and applies the
// provided options.
func NewRankConfig(opts ...RankOption) RankConfig {
	cfg := DefaultRankConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form: required
// keywords are lowercased, trimmed, and deduplicated.
func (c *RankConfig) Normalize() {
	if len(c.RequiredKeywords) == 0 {
		return
	}
	seen := make(map[string]bool, len(c.RequiredKeywords))
	normalized := make([]string, 0, len(c.RequiredKeywords))
	for _, kw := range c.RequiredKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		normalized = append(normalized, kw)
	}
	c.RequiredKeywords = normalized
}

// Validate checks that the configuration is valid. It normalizes the
// configuration first.
func (c *RankConfig) Validate() error {
	c.Normalize()

	if c.Threshold < 0 {
		return ErrNegativeThreshold
	}
	if c.TopSentences < 0 {
		return ErrInvalidTopSentences
	}
	if c.KeywordTopN < 1 {
		return ErrInvalidKeywordTopN
	}
	return nil
}
