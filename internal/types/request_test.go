//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request ArticleRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: ArticleRequest{
				Keyword:     "best coffee makers",
				Tone:        ToneInformal,
				WordCount:   800,
				ArticleType: ArticleTypeGuide,
			},
			wantErr: false,
		},
		{
			name: "valid request with keyword list",
			request: ArticleRequest{
				Keyword:     "espresso machines",
				Tone:        ToneProfessional,
				WordCount:   1500,
				ArticleType: ArticleTypeReview,
				Keywords:    []string{"espresso machines", "best espresso machine 2025"},
			},
			wantErr: false,
		},
		{
			name: "missing keyword",
			request: ArticleRequest{
				Tone:        ToneInformal,
				WordCount:   800,
				ArticleType: ArticleTypeGuide,
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "invalid tone",
			request: ArticleRequest{
				Keyword:     "best coffee makers",
				Tone:        Tone("sarcastic"),
				WordCount:   800,
				ArticleType: ArticleTypeGuide,
			},
			wantErr: true,
			errMsg:  "oneof",
		},
		{
			name: "word count below minimum",
			request: ArticleRequest{
				Keyword:     "best coffee makers",
				Tone:        ToneInformal,
				WordCount:   100,
				ArticleType: ArticleTypeGuide,
			},
			wantErr: true,
			errMsg:  "min",
		},
		{
			name: "word count above maximum",
			request: ArticleRequest{
				Keyword:     "best coffee makers",
				Tone:        ToneInformal,
				WordCount:   9000,
				ArticleType: ArticleTypeGuide,
			},
			wantErr: true,
			errMsg:  "max",
		},
		{
			name: "word count at lower bound",
			request: ArticleRequest{
				Keyword:     "best coffee makers",
				Tone:        ToneInformal,
				WordCount:   300,
				ArticleType: ArticleTypeGuide,
			},
			wantErr: false,
		},
		{
			name: "word count at upper bound",
			request: ArticleRequest{
				Keyword:     "best coffee makers",
				Tone:        ToneInformal,
				WordCount:   5000,
				ArticleType: ArticleTypeGuide,
			},
			wantErr: false,
		},
		{
			name: "invalid article type",
			request: ArticleRequest{
				Keyword:     "best coffee makers",
				Tone:        ToneInformal,
				WordCount:   800,
				ArticleType: ArticleType("essay"),
			},
			wantErr: true,
			errMsg:  "oneof",
		},
		{
			name: "how-to article type accepted",
			request: ArticleRequest{
				Keyword:     "pour over brewing",
				Tone:        ToneConversational,
				WordCount:   1200,
				ArticleType: ArticleTypeHowTo,
			},
			wantErr: false,
		},
		{
			name: "empty string in keyword list",
			request: ArticleRequest{
				Keyword:     "best coffee makers",
				Tone:        ToneInformal,
				WordCount:   800,
				ArticleType: ArticleTypeGuide,
				Keywords:    []string{"coffee", ""},
			},
			wantErr: true,
			errMsg:  "min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestKeywordRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request KeywordRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid request",
			request: KeywordRequest{Topic: "home brewing", Count: 10},
			wantErr: false,
		},
		{
			name: "valid request with explicit types",
			request: KeywordRequest{
				Topic: "home brewing",
				Count: 10,
				Types: []KeywordType{KeywordTypePrimary, KeywordTypeQuestion},
			},
			wantErr: false,
		},
		{
			name:    "missing topic",
			request: KeywordRequest{Count: 10},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "count of zero",
			request: KeywordRequest{Topic: "home brewing"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "count above maximum",
			request: KeywordRequest{Topic: "home brewing", Count: 51},
			wantErr: true,
			errMsg:  "max",
		},
		{
			name:    "count at bounds",
			request: KeywordRequest{Topic: "home brewing", Count: 50},
			wantErr: false,
		},
		{
			name: "invalid keyword type",
			request: KeywordRequest{
				Topic: "home brewing",
				Count: 10,
				Types: []KeywordType{KeywordType("branded")},
			},
			wantErr: true,
			errMsg:  "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestKeywordRequest_KeywordTypes(t *testing.T) {
	req := KeywordRequest{Topic: "home brewing", Count: 10}
	assert.Equal(t, DefaultKeywordTypes, req.KeywordTypes())

	req.Types = []KeywordType{KeywordTypeLocal}
	assert.Equal(t, []KeywordType{KeywordTypeLocal}, req.KeywordTypes())
}

func TestParseTone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Tone
		wantErr bool
	}{
		{name: "exact match", input: "formal", want: ToneFormal},
		{name: "mixed case", input: "Informal", want: ToneInformal},
		{name: "surrounding whitespace", input: "  conversational ", want: ToneConversational},
		{name: "unknown tone", input: "snarky", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTone(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid tone")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseArticleType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ArticleType
		wantErr bool
	}{
		{name: "guide", input: "guide", want: ArticleTypeGuide},
		{name: "how-to with hyphen", input: "how-to", want: ArticleTypeHowTo},
		{name: "mixed case", input: "Comparison", want: ArticleTypeComparison},
		{name: "unknown type", input: "listicle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArticleType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid article type")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseKeywordType(t *testing.T) {
	got, err := ParseKeywordType("long_tail")
	require.NoError(t, err)
	assert.Equal(t, KeywordTypeLongTail, got)

	_, err = ParseKeywordType("branded")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid keyword type")
}

func TestValidateMethods(t *testing.T) {
	articleReq := ArticleRequest{
		Keyword:     "best coffee makers",
		Tone:        ToneInformal,
		WordCount:   800,
		ArticleType: ArticleTypeGuide,
	}
	require.NoError(t, articleReq.Validate())

	articleReq.WordCount = 10
	require.Error(t, articleReq.Validate())

	keywordReq := KeywordRequest{Topic: "home brewing", Count: 10}
	require.NoError(t, keywordReq.Validate())

	keywordReq.Count = 0
	require.Error(t, keywordReq.Validate())
}
