// Package types provides type definitions for structured data used throughout the seo-agent system.
package types

import "strings"

// Article is the validated long-form article record produced by generation.
// It is created by the extractor, owned by the caller, and never mutated
// after creation.
type Article struct {
	MetaTitle       string           `json:"meta_title,omitempty"`
	MetaDescription string           `json:"meta_description,omitempty"`
	ArticleTitle    string           `json:"article_title"`
	TargetKeyword   string           `json:"target_keyword,omitempty"`
	WordCount       int              `json:"word_count,omitempty"`
	ArticleSections []ArticleSection `json:"article_sections"`
	FAQ             []FAQItem        `json:"faq,omitempty"`
	SEOTips         []string         `json:"seo_tips,omitempty"`
}

// ArticleSection is one H2-level section of an article.
type ArticleSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// FAQItem is a single question/answer pair in the FAQ block.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// RealizedWordCount sums the whitespace-delimited tokens of the article
// title, every section heading and content, every FAQ question and answer,
// and every SEO tip. Meta fields and the target keyword do not count toward
// the total.
func (a *Article) RealizedWordCount() int {
	total := len(strings.Fields(a.ArticleTitle))
	for _, section := range a.ArticleSections {
		total += len(strings.Fields(section.Heading))
		total += len(strings.Fields(section.Content))
	}
	for _, item := range a.FAQ {
		total += len(strings.Fields(item.Question))
		total += len(strings.Fields(item.Answer))
	}
	for _, tip := range a.SEOTips {
		total += len(strings.Fields(tip))
	}
	return total
}
