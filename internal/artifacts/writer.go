package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/seo-agent/internal/types"
)

// Paths holds the locations of the artifacts written for one run. Fields
// for artifacts that were not written stay empty.
type Paths struct {
	ArticleJSON  string
	ArticleMD    string
	KeywordsJSON string
}

// WriteArticle writes the article JSON and Markdown artifacts into
// outputDir, named after the slug of topic, and returns their paths.
func WriteArticle(outputDir, topic string, art *types.Article) (*Paths, error) {
	if err := ensureDir(outputDir); err != nil {
		return nil, err
	}

	slug := Slug(topic)
	paths := &Paths{
		ArticleJSON: filepath.Join(outputDir, fmt.Sprintf("article-%s.json", slug)),
		ArticleMD:   filepath.Join(outputDir, fmt.Sprintf("article-%s.md", slug)),
	}

	if err := writeJSON(paths.ArticleJSON, art); err != nil {
		return nil, err
	}
	if err := os.WriteFile(paths.ArticleMD, []byte(RenderMarkdown(art)), 0644); err != nil {
		return nil, fmt.Errorf("failed to write markdown file: %w", err)
	}
	return paths, nil
}

// WriteKeywords writes the keyword set JSON artifact into outputDir, named
// after the slug of topic, and returns its path.
func WriteKeywords(outputDir, topic string, set *types.KeywordSet) (string, error) {
	if err := ensureDir(outputDir); err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, fmt.Sprintf("keywords-%s.json", Slug(topic)))
	if err := writeJSON(path, set); err != nil {
		return "", err
	}
	return path, nil
}

// WriteAll writes all three artifacts for a completed run: the article JSON
// and Markdown plus the keyword set JSON, all named after the same topic
// slug.
func WriteAll(outputDir, topic string, art *types.Article, set *types.KeywordSet) (*Paths, error) {
	paths, err := WriteArticle(outputDir, topic, art)
	if err != nil {
		return nil, err
	}
	keywordsPath, err := WriteKeywords(outputDir, topic, set)
	if err != nil {
		return nil, err
	}
	paths.KeywordsJSON = keywordsPath
	return paths, nil
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// writeJSON writes v as indented JSON. HTML escaping is disabled so article
// prose containing &, < or > is preserved verbatim.
func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("failed to write JSON to %s: %w", path, err)
	}
	return f.Close()
}
