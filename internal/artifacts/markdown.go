package artifacts

import (
	"fmt"
	"strings"

	"github.com/jonathan/seo-agent/internal/types"
)

// RenderMarkdown renders an article as a Markdown document: the title as an
// H1, meta title and description as bold lines, each section as an H2 with
// its content, the FAQ as Q/A pairs, and the SEO tips as a bullet list.
// Optional blocks are omitted when empty.
func RenderMarkdown(art *types.Article) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", art.ArticleTitle)

	if art.MetaTitle != "" {
		fmt.Fprintf(&b, "**Meta Title:** %s\n\n", art.MetaTitle)
	}
	if art.MetaDescription != "" {
		fmt.Fprintf(&b, "**Meta Description:** %s\n\n", art.MetaDescription)
	}

	for _, section := range art.ArticleSections {
		fmt.Fprintf(&b, "## %s\n%s\n\n", section.Heading, section.Content)
	}

	if len(art.FAQ) > 0 {
		b.WriteString("## Frequently Asked Questions\n\n")
		for _, item := range art.FAQ {
			fmt.Fprintf(&b, "**Q: %s**\n", item.Question)
			fmt.Fprintf(&b, "A: %s\n\n", item.Answer)
		}
	}

	if len(art.SEOTips) > 0 {
		b.WriteString("## SEO Optimization Tips\n\n")
		for _, tip := range art.SEOTips {
			fmt.Fprintf(&b, "- %s\n", tip)
		}
		b.WriteString("\n")
	}

	return b.String()
}
