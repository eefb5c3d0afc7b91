// Package llm - schema.go provides the declarative output schema shared by
// every provider. A ToolSchema describes the operation a model is forced to
// answer through, and renders to whichever wire shape the active provider
// needs.
package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// PropertyType is the JSON type of a schema node.
type PropertyType string

// Supported property types.
const (
	TypeString  PropertyType = "string"
	TypeInteger PropertyType = "integer"
	TypeNumber  PropertyType = "number"
	TypeObject  PropertyType = "object"
	TypeArray   PropertyType = "array"
)

// Property describes one node of an expected output shape: its type, a
// human-readable description for the model, and its children for container
// types.
type Property struct {
	Type        PropertyType
	Description string
	// Items describes the element shape of an array node.
	Items *Property
	// Properties and Required describe the members of an object node.
	Properties map[string]*Property
	Required   []string
}

// ToolSchema declares a named structured operation together with the full
// shape of its argument payload.
type ToolSchema struct {
	Name        string
	Description string
	Parameters  *Property
}

// GeminiDeclaration renders the schema as a Gemini function declaration.
func (s *ToolSchema) GeminiDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        s.Name,
		Description: s.Description,
		Parameters:  geminiSchema(s.Parameters),
	}
}

func geminiSchema(p *Property) *genai.Schema {
	if p == nil {
		return nil
	}
	schema := &genai.Schema{
		Type:        geminiType(p.Type),
		Description: p.Description,
	}
	if p.Items != nil {
		schema.Items = geminiSchema(p.Items)
	}
	if len(p.Properties) > 0 {
		schema.Properties = make(map[string]*genai.Schema, len(p.Properties))
		for name, child := range p.Properties {
			schema.Properties[name] = geminiSchema(child)
		}
	}
	if len(p.Required) > 0 {
		schema.Required = append([]string(nil), p.Required...)
	}
	return schema
}

func geminiType(t PropertyType) genai.Type {
	switch t {
	case TypeString:
		return genai.TypeString
	case TypeInteger:
		return genai.TypeInteger
	case TypeNumber:
		return genai.TypeNumber
	case TypeArray:
		return genai.TypeArray
	case TypeObject:
		return genai.TypeObject
	default:
		return genai.TypeUnspecified
	}
}

// FunctionParameters renders the schema's argument shape as a JSON-Schema
// style map, the form OpenAI function definitions expect.
func (s *ToolSchema) FunctionParameters() map[string]any {
	return schemaMap(s.Parameters)
}

// PromptInstructions renders the schema as inline prompt text for the
// free-text convention, describing the same shape a tool declaration would
// carry. Object members are listed in sorted order so the rendering is stable.
func (s *ToolSchema) PromptInstructions() string {
	var sb strings.Builder

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	writeProperty(&sb, s.Parameters, "")
	sb.WriteString("\n\nIMPORTANT:\n")
	sb.WriteString("- Include every required field.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")

	return sb.String()
}

func writeProperty(sb *strings.Builder, p *Property, indent string) {
	if p == nil {
		sb.WriteString("{}")
		return
	}

	switch p.Type {
	case TypeObject:
		sb.WriteString("{\n")
		names := make([]string, 0, len(p.Properties))
		for name := range p.Properties {
			names = append(names, name)
		}
		sort.Strings(names)

		required := make(map[string]bool, len(p.Required))
		for _, name := range p.Required {
			required[name] = true
		}

		inner := indent + "  "
		for i, name := range names {
			child := p.Properties[name]
			fmt.Fprintf(sb, "%s%q: ", inner, name)
			writeProperty(sb, child, inner)
			if i < len(names)-1 {
				sb.WriteString(",")
			}
			var notes []string
			if required[name] {
				notes = append(notes, "required")
			}
			if child != nil && child.Description != "" {
				notes = append(notes, child.Description)
			}
			if len(notes) > 0 {
				sb.WriteString(" // " + strings.Join(notes, "; "))
			}
			sb.WriteString("\n")
		}
		sb.WriteString(indent + "}")
	case TypeArray:
		sb.WriteString("[")
		writeProperty(sb, p.Items, indent)
		sb.WriteString(", ...]")
	default:
		sb.WriteString(string(p.Type))
	}
}

func schemaMap(p *Property) map[string]any {
	if p == nil {
		return nil
	}
	m := map[string]any{"type": string(p.Type)}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if p.Items != nil {
		m["items"] = schemaMap(p.Items)
	}
	if len(p.Properties) > 0 {
		props := make(map[string]any, len(p.Properties))
		for name, child := range p.Properties {
			props[name] = schemaMap(child)
		}
		m["properties"] = props
	}
	if len(p.Required) > 0 {
		m["required"] = append([]string(nil), p.Required...)
	}
	return m
}
