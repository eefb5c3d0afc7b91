package llm

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *ToolSchema {
	return &ToolSchema{
		Name:        "generate_summary",
		Description: "Generate a structured summary",
		Parameters: &Property{
			Type: TypeObject,
			Properties: map[string]*Property{
				"title": {
					Type:        TypeString,
					Description: "Summary title",
				},
				"word_count": {
					Type: TypeInteger,
				},
				"sections": {
					Type:        TypeArray,
					Description: "Ordered summary sections",
					Items: &Property{
						Type: TypeObject,
						Properties: map[string]*Property{
							"heading": {Type: TypeString},
							"content": {Type: TypeString},
						},
						Required: []string{"heading", "content"},
					},
				},
			},
			Required: []string{"title", "sections"},
		},
	}
}

func TestToolSchema_GeminiDeclaration(t *testing.T) {
	decl := testSchema().GeminiDeclaration()

	assert.Equal(t, "generate_summary", decl.Name)
	assert.Equal(t, "Generate a structured summary", decl.Description)

	require.NotNil(t, decl.Parameters)
	assert.Equal(t, genai.TypeObject, decl.Parameters.Type)
	assert.ElementsMatch(t, []string{"title", "sections"}, decl.Parameters.Required)

	title := decl.Parameters.Properties["title"]
	require.NotNil(t, title)
	assert.Equal(t, genai.TypeString, title.Type)
	assert.Equal(t, "Summary title", title.Description)

	assert.Equal(t, genai.TypeInteger, decl.Parameters.Properties["word_count"].Type)

	sections := decl.Parameters.Properties["sections"]
	require.NotNil(t, sections)
	assert.Equal(t, genai.TypeArray, sections.Type)
	require.NotNil(t, sections.Items)
	assert.Equal(t, genai.TypeObject, sections.Items.Type)
	assert.Equal(t, genai.TypeString, sections.Items.Properties["heading"].Type)
	assert.ElementsMatch(t, []string{"heading", "content"}, sections.Items.Required)
}

func TestToolSchema_FunctionParameters(t *testing.T) {
	params := testSchema().FunctionParameters()

	assert.Equal(t, "object", params["type"])
	assert.ElementsMatch(t, []string{"title", "sections"}, params["required"])

	props, ok := params["properties"].(map[string]any)
	require.True(t, ok)

	title, ok := props["title"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", title["type"])
	assert.Equal(t, "Summary title", title["description"])

	wordCount, ok := props["word_count"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "integer", wordCount["type"])
	assert.NotContains(t, wordCount, "description")

	sections, ok := props["sections"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", sections["type"])

	items, ok := sections["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", items["type"])
	itemProps, ok := items["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, itemProps, "heading")
	assert.Contains(t, itemProps, "content")
}

func TestToolSchema_PromptInstructions(t *testing.T) {
	text := testSchema().PromptInstructions()

	assert.Contains(t, text, "Return ONLY valid JSON matching this exact structure:")
	assert.Contains(t, text, `"title": string`)
	assert.Contains(t, text, `"word_count": integer`)
	assert.Contains(t, text, `"sections": [`)
	assert.Contains(t, text, "required")
	assert.Contains(t, text, "Summary title")
	assert.Contains(t, text, "no markdown")

	// Sorted member order keeps prompts byte-stable across runs.
	assert.Equal(t, text, testSchema().PromptInstructions())
}

func TestToolSchema_PromptInstructions_RequiredMarkers(t *testing.T) {
	text := testSchema().PromptInstructions()

	assert.Contains(t, text, `"title": string, // required; Summary title`)
	assert.Contains(t, text, "], // required; Ordered summary sections")
}
