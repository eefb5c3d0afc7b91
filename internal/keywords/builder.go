package keywords

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/seo-agent/internal/llm"
	"github.com/jonathan/seo-agent/internal/prompts"
	"github.com/jonathan/seo-agent/internal/types"
)

// ToolName is the structured operation keyword sets are requested through.
const ToolName = "generate_seo_keywords"

// typeDescriptions explains each keyword type to the model, both in the
// prompt and in the tool schema.
var typeDescriptions = map[types.KeywordType]string{
	types.KeywordTypePrimary:  "main target keywords (1-3 words)",
	types.KeywordTypeLongTail: "longer, more specific phrases (4+ words)",
	types.KeywordTypeQuestion: "keywords that start with what, how, why, when, where, etc.",
	types.KeywordTypeLocal:    "keywords with location modifiers",
	types.KeywordTypeRelated:  "semantically related terms and synonyms",
}

// SystemPrompt returns the system instruction for keyword generation.
func SystemPrompt() string {
	return prompts.MustGet("keywords.json", "system")
}

// BuildPrompt renders the keyword generation prompt for a request. Pure: the
// same request always yields the same prompt text.
func BuildPrompt(req *types.KeywordRequest) string {
	template := prompts.MustGet("keywords.json", "generate-keywords")

	return prompts.Format(template, map[string]string{
		"Topic":        req.Topic,
		"Count":        strconv.Itoa(req.Count),
		"TypesSection": typesSection(req.KeywordTypes()),
	})
}

// typesSection lists the requested keyword types with their descriptions.
func typesSection(kwTypes []types.KeywordType) string {
	var sb strings.Builder
	for _, kt := range kwTypes {
		fmt.Fprintf(&sb, "- %s: %s\n", kt, typeDescriptions[kt])
	}
	return sb.String()
}

// Schema declares the keyword operation for a request. The keywords object
// carries one required array property per requested keyword type, so the
// tool-calling path already guarantees every requested group is present.
func Schema(req *types.KeywordRequest) *llm.ToolSchema {
	kwTypes := req.KeywordTypes()

	keywordProps := make(map[string]*llm.Property, len(kwTypes))
	typeNames := make([]string, len(kwTypes))
	for i, kt := range kwTypes {
		typeNames[i] = string(kt)
		keywordProps[string(kt)] = &llm.Property{
			Type:        llm.TypeArray,
			Description: typeDescriptions[kt],
			Items:       &llm.Property{Type: llm.TypeString, Description: "SEO keyword"},
		}
	}

	return &llm.ToolSchema{
		Name:        ToolName,
		Description: "Generate a set of SEO keywords for a topic, grouped by keyword type",
		Parameters: &llm.Property{
			Type: llm.TypeObject,
			Properties: map[string]*llm.Property{
				"topic":          {Type: llm.TypeString, Description: "The topic the keywords target"},
				"total_keywords": {Type: llm.TypeInteger, Description: "Total number of keywords generated"},
				"keywords": {
					Type:        llm.TypeObject,
					Description: "Generated keywords grouped by keyword type",
					Properties:  keywordProps,
					Required:    typeNames,
				},
				"seo_insights": {
					Type:        llm.TypeObject,
					Description: "Overall SEO assessment of the keyword set",
					Properties: map[string]*llm.Property{
						"search_volume_estimate": {Type: llm.TypeString, Description: "Estimated search volume: high, medium, or low"},
						"competition_level":      {Type: llm.TypeString, Description: "Competition level: high, medium, or low"},
						"recommended_focus":      {Type: llm.TypeString, Description: "Primary keywords to target first"},
					},
				},
			},
			Required: []string{"topic", "total_keywords", "keywords"},
		},
	}
}
