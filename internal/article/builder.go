package article

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/seo-agent/internal/llm"
	"github.com/jonathan/seo-agent/internal/prompts"
	"github.com/jonathan/seo-agent/internal/types"
)

// ToolName is the structured operation articles are requested through.
const ToolName = "generate_seo_article"

// Proportional word budget shares embedded in the prompt as guidance. Only
// the overall acceptance band is enforced after extraction.
const (
	mainContentShare = 0.75
	faqShare         = 0.18
	tipsShare        = 0.07
)

// BuildPrompt renders the article generation prompt for a request. Pure: the
// same request always yields the same prompt text.
func BuildPrompt(req *types.ArticleRequest) string {
	template := prompts.MustGet("article.json", "generate-article")

	return prompts.Format(template, map[string]string{
		"ArticleType":      string(req.ArticleType),
		"Keyword":          req.Keyword,
		"WordCount":        strconv.Itoa(req.WordCount),
		"Tone":             string(req.Tone),
		"StructureSection": structureSection(req.WordCount),
		"KeywordsSection":  keywordsSection(req.Keywords),
	})
}

// structureSection renders the proportional sub-target guidance computed from
// the requested word count.
func structureSection(wordCount int) string {
	template := prompts.MustGet("article.json", "structure-line")
	return prompts.Format(template, map[string]string{
		"MainWords": strconv.Itoa(int(float64(wordCount) * mainContentShare)),
		"FAQWords":  strconv.Itoa(int(float64(wordCount) * faqShare)),
		"TipsWords": strconv.Itoa(int(float64(wordCount) * tipsShare)),
	})
}

// keywordsSection renders the all-keywords instruction, or nothing when no
// auxiliary keyword list was supplied. Keywords appear in request order.
func keywordsSection(keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}

	quoted := make([]string, len(keywords))
	for i, keyword := range keywords {
		quoted[i] = fmt.Sprintf("%q", keyword)
	}

	template := prompts.MustGet("article.json", "keywords-line")
	return prompts.Format(template, map[string]string{
		"Keywords": strings.Join(quoted, ", "),
	})
}

// Schema declares the article operation: every expected output field with its
// type and a description for the model.
func Schema() *llm.ToolSchema {
	return &llm.ToolSchema{
		Name:        ToolName,
		Description: "Generate a comprehensive SEO-optimized article with all required components",
		Parameters: &llm.Property{
			Type: llm.TypeObject,
			Properties: map[string]*llm.Property{
				"meta_title":       {Type: llm.TypeString, Description: "SEO-optimized title (50-60 characters)"},
				"meta_description": {Type: llm.TypeString, Description: "Compelling description (150-160 characters)"},
				"article_title":    {Type: llm.TypeString, Description: "Engaging main title"},
				"target_keyword":   {Type: llm.TypeString, Description: "The target keyword for this article"},
				"word_count":       {Type: llm.TypeInteger, Description: "Target word count for the article"},
				"article_sections": {
					Type:        llm.TypeArray,
					Description: "Article sections with headings and content",
					Items: &llm.Property{
						Type: llm.TypeObject,
						Properties: map[string]*llm.Property{
							"heading": {Type: llm.TypeString, Description: "H2 heading for the section"},
							"content": {Type: llm.TypeString, Description: "Well-written content with natural keyword usage"},
						},
						Required: []string{"heading", "content"},
					},
				},
				"faq": {
					Type:        llm.TypeArray,
					Description: "Frequently asked questions and answers",
					Items: &llm.Property{
						Type: llm.TypeObject,
						Properties: map[string]*llm.Property{
							"question": {Type: llm.TypeString, Description: "Common question about the topic"},
							"answer":   {Type: llm.TypeString, Description: "Clear, helpful answer"},
						},
						Required: []string{"question", "answer"},
					},
				},
				"seo_tips": {
					Type:        llm.TypeArray,
					Description: "List of SEO optimization tips",
					Items:       &llm.Property{Type: llm.TypeString, Description: "SEO optimization tip"},
				},
			},
			Required: []string{
				"meta_title", "meta_description", "article_title", "target_keyword",
				"word_count", "article_sections", "faq", "seo_tips",
			},
		},
	}
}
