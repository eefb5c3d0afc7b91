// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/seo-agent/internal/db"
	"github.com/jonathan/seo-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywordSet outputs the generated keywords grouped by type, followed
// by the model's SEO insights when present.
func (p *Printer) PrintKeywordSet(set *types.KeywordSet) {
	if set == nil || set.CountKeywords() == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Topic:  %s\n", set.Topic))
	sb.WriteString(fmt.Sprintf("Total:  %d keywords\n", set.CountKeywords()))

	for _, kt := range orderedTypes(set) {
		list := set.Keywords[kt]
		if len(list) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", typeLabel(kt)))
		count := min(len(list), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, list[i]))
		}
		if len(list) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(list)-maxItemsToShow))
		}
	}

	if in := set.SEOInsights; in != nil {
		sb.WriteString("\nSEO Insights:\n")
		sb.WriteString(fmt.Sprintf("  Search Volume: %s\n", orUnknown(in.SearchVolumeEstimate)))
		sb.WriteString(fmt.Sprintf("  Competition:   %s\n", orUnknown(in.CompetitionLevel)))
		sb.WriteString(fmt.Sprintf("  Focus:         %s\n", orUnknown(in.RecommendedFocus)))
	}

	p.printBox("GENERATED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintArticleSummary outputs a synopsis of a generated article: title,
// realized word count against the requested target, and section headings.
func (p *Printer) PrintArticleSummary(art *types.Article, requestedWords int) {
	if art == nil {
		return
	}

	var sb strings.Builder

	title := art.ArticleTitle
	if len(title) > 45 {
		title = title[:42] + "..."
	}
	sb.WriteString(fmt.Sprintf("Title:     %s\n", title))
	if art.TargetKeyword != "" {
		sb.WriteString(fmt.Sprintf("Keyword:   %s\n", art.TargetKeyword))
	}

	realized := art.RealizedWordCount()
	if requestedWords > 0 {
		sb.WriteString(fmt.Sprintf("Words:     ~%d (requested %d)\n", realized, requestedWords))
	} else {
		sb.WriteString(fmt.Sprintf("Words:     ~%d\n", realized))
	}
	if len(art.FAQ) > 0 {
		sb.WriteString(fmt.Sprintf("FAQ:       %d questions\n", len(art.FAQ)))
	}
	if len(art.SEOTips) > 0 {
		sb.WriteString(fmt.Sprintf("SEO tips:  %d\n", len(art.SEOTips)))
	}

	if len(art.ArticleSections) > 0 {
		sb.WriteString("\nSections:\n")
		count := min(len(art.ArticleSections), maxItemsToShow)
		for i := 0; i < count; i++ {
			heading := art.ArticleSections[i].Heading
			if len(heading) > 45 {
				heading = heading[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", heading))
		}
		if len(art.ArticleSections) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(art.ArticleSections)-maxItemsToShow))
		}
	}

	p.printBox("GENERATED ARTICLE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunHistory outputs recent generation runs, newest first.
func (p *Printer) PrintRunHistory(runs []db.Run) {
	if len(runs) == 0 {
		p.printBox("RUN HISTORY", "No runs recorded")
		return
	}

	var sb strings.Builder
	for i, run := range runs {
		topic := run.Topic
		if len(topic) > 40 {
			topic = topic[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", statusMarker(run.Status), topic))
		sb.WriteString(fmt.Sprintf("   %s, %s, %s\n",
			run.ArticleType, run.Model, run.CreatedAt.Format("2006-01-02 15:04")))
		if i < len(runs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RUN HISTORY", strings.TrimSuffix(sb.String(), "\n"))
}

// orderedTypes returns the set's keyword types in display order: the
// canonical types first, then any extra groups the model produced in sorted
// order.
func orderedTypes(set *types.KeywordSet) []types.KeywordType {
	ordered := make([]types.KeywordType, 0, len(set.Keywords))
	seen := make(map[types.KeywordType]bool, len(types.DefaultKeywordTypes))
	for _, kt := range types.DefaultKeywordTypes {
		ordered = append(ordered, kt)
		seen[kt] = true
	}

	var extras []string
	for kt := range set.Keywords {
		if !seen[kt] {
			extras = append(extras, string(kt))
		}
	}
	sort.Strings(extras)
	for _, kt := range extras {
		ordered = append(ordered, types.KeywordType(kt))
	}
	return ordered
}

// typeLabel renders a keyword type as a display label ("long_tail" becomes
// "Long Tail").
func typeLabel(kt types.KeywordType) string {
	words := strings.Split(string(kt), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func statusMarker(status string) string {
	switch status {
	case db.StatusCompleted:
		return "✅"
	case db.StatusFailed:
		return "❌"
	default:
		return "🚀"
	}
}
