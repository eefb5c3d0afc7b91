// Package types provides type definitions for structured data used throughout the seo-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Tone describes the writing voice requested for an article.
type Tone string

// Supported article tones.
const (
	ToneFormal         Tone = "formal"
	ToneInformal       Tone = "informal"
	ToneConversational Tone = "conversational"
	ToneProfessional   Tone = "professional"
)

// ValidTones lists every supported tone in display order.
var ValidTones = []Tone{ToneFormal, ToneInformal, ToneConversational, ToneProfessional}

// ArticleType describes the structural style of a generated article.
type ArticleType string

// Supported article types.
const (
	ArticleTypeGuide      ArticleType = "guide"
	ArticleTypeReview     ArticleType = "review"
	ArticleTypeHowTo      ArticleType = "how-to"
	ArticleTypeList       ArticleType = "list"
	ArticleTypeComparison ArticleType = "comparison"
)

// ValidArticleTypes lists every supported article type in display order.
var ValidArticleTypes = []ArticleType{
	ArticleTypeGuide,
	ArticleTypeReview,
	ArticleTypeHowTo,
	ArticleTypeList,
	ArticleTypeComparison,
}

// KeywordType categorizes generated SEO keywords.
type KeywordType string

// Supported keyword types.
const (
	KeywordTypePrimary  KeywordType = "primary"
	KeywordTypeLongTail KeywordType = "long_tail"
	KeywordTypeQuestion KeywordType = "question"
	KeywordTypeLocal    KeywordType = "local"
	KeywordTypeRelated  KeywordType = "related"
)

// DefaultKeywordTypes lists every keyword type in canonical order. Requests
// that leave the type set empty get all of them.
var DefaultKeywordTypes = []KeywordType{
	KeywordTypePrimary,
	KeywordTypeLongTail,
	KeywordTypeQuestion,
	KeywordTypeLocal,
	KeywordTypeRelated,
}

// ParseTone converts a user-supplied string into a Tone.
func ParseTone(s string) (Tone, error) {
	tone := Tone(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range ValidTones {
		if tone == t {
			return tone, nil
		}
	}
	return "", fmt.Errorf("invalid tone %q (valid tones: %s)", s, joinTones(ValidTones))
}

// ParseArticleType converts a user-supplied string into an ArticleType.
func ParseArticleType(s string) (ArticleType, error) {
	at := ArticleType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range ValidArticleTypes {
		if at == t {
			return at, nil
		}
	}
	return "", fmt.Errorf("invalid article type %q (valid types: %s)", s, joinArticleTypes(ValidArticleTypes))
}

// ParseKeywordType converts a user-supplied string into a KeywordType.
func ParseKeywordType(s string) (KeywordType, error) {
	kt := KeywordType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range DefaultKeywordTypes {
		if kt == t {
			return kt, nil
		}
	}
	return "", fmt.Errorf("invalid keyword type %q (valid types: %s)", s, joinKeywordTypes(DefaultKeywordTypes))
}

func joinTones(tones []Tone) string {
	parts := make([]string, len(tones))
	for i, t := range tones {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func joinArticleTypes(articleTypes []ArticleType) string {
	parts := make([]string, len(articleTypes))
	for i, t := range articleTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func joinKeywordTypes(keywordTypes []KeywordType) string {
	parts := make([]string, len(keywordTypes))
	for i, t := range keywordTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// ArticleRequest describes a single article generation invocation. Construct
// it once per invocation and treat it as immutable afterwards.
type ArticleRequest struct {
	Keyword     string      `json:"keyword" validate:"required,min=1"`
	Tone        Tone        `json:"tone" validate:"required,oneof=formal informal conversational professional"`
	WordCount   int         `json:"word_count" validate:"required,min=300,max=5000"`
	ArticleType ArticleType `json:"article_type" validate:"required,oneof=guide review how-to list comparison"`
	Keywords    []string    `json:"keywords,omitempty" validate:"omitempty,dive,min=1"`
}

// KeywordRequest describes a single keyword set generation invocation.
type KeywordRequest struct {
	Topic string        `json:"topic" validate:"required,min=1"`
	Count int           `json:"count" validate:"required,min=1,max=50"`
	Types []KeywordType `json:"types,omitempty" validate:"omitempty,dive,oneof=primary long_tail question local related"`
}

// KeywordTypes returns the requested keyword types, defaulting to every
// supported type when none were specified.
func (r *KeywordRequest) KeywordTypes() []KeywordType {
	if len(r.Types) == 0 {
		return DefaultKeywordTypes
	}
	return r.Types
}

// Validate validates the ArticleRequest using the validator.
func (r *ArticleRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the KeywordRequest using the validator.
func (r *KeywordRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
