// Package types provides type definitions for structured data used throughout the seo-agent system.
package types

import "sort"

// KeywordSet is the validated keyword record produced by generation, grouping
// keywords by type with optional SEO insights.
type KeywordSet struct {
	Topic         string                   `json:"topic"`
	TotalKeywords int                      `json:"total_keywords"`
	Keywords      map[KeywordType][]string `json:"keywords"`
	SEOInsights   *SEOInsights             `json:"seo_insights,omitempty"`
}

// SEOInsights carries the model's qualitative assessment of a keyword set.
type SEOInsights struct {
	SearchVolumeEstimate string `json:"search_volume_estimate,omitempty"`
	CompetitionLevel     string `json:"competition_level,omitempty"`
	RecommendedFocus     string `json:"recommended_focus,omitempty"`
}

// Flatten returns every keyword as a single list, ordered by canonical
// keyword type (primary, long_tail, question, local, related) and then by
// position within each type. Types the model invented beyond the canonical
// set are appended in sorted key order so no keyword is dropped.
func (k *KeywordSet) Flatten() []string {
	var flat []string
	seen := make(map[KeywordType]bool, len(DefaultKeywordTypes))
	for _, kt := range DefaultKeywordTypes {
		flat = append(flat, k.Keywords[kt]...)
		seen[kt] = true
	}

	var extras []string
	for kt := range k.Keywords {
		if !seen[kt] {
			extras = append(extras, string(kt))
		}
	}
	sort.Strings(extras)
	for _, kt := range extras {
		flat = append(flat, k.Keywords[KeywordType(kt)]...)
	}
	return flat
}

// FirstPrimary returns the first primary keyword, if one exists. The
// interactive flow uses it as the article's target keyword.
func (k *KeywordSet) FirstPrimary() (string, bool) {
	primaries := k.Keywords[KeywordTypePrimary]
	if len(primaries) == 0 {
		return "", false
	}
	return primaries[0], true
}

// CountKeywords returns the number of keywords across every type.
func (k *KeywordSet) CountKeywords() int {
	total := 0
	for _, list := range k.Keywords {
		total += len(list)
	}
	return total
}
