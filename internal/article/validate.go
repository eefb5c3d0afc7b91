package article

import (
	"strings"

	"github.com/jonathan/seo-agent/internal/types"
)

// Acceptance band multipliers around the requested word count.
const (
	tooShortRatio   = 0.8
	overLengthRatio = 1.2
)

// Validate applies the acceptance policy to a parsed article: required field
// presence first, then the word-count band against the requested target.
// Over-length articles pass with the flag set; only under-length rejects.
func Validate(art *types.Article, requestedWords int) (*Result, error) {
	var missing []string
	if strings.TrimSpace(art.ArticleTitle) == "" {
		missing = append(missing, "article_title")
	}
	if len(art.ArticleSections) == 0 {
		missing = append(missing, "article_sections")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{MissingFields: missing}
	}

	realized := art.RealizedWordCount()
	if float64(realized) < tooShortRatio*float64(requestedWords) {
		return nil, &ValidationError{
			TooShort:  true,
			Requested: requestedWords,
			Realized:  realized,
		}
	}

	return &Result{
		Article:           *art,
		RealizedWordCount: realized,
		OverLength:        float64(realized) > overLengthRatio*float64(requestedWords),
	}, nil
}
