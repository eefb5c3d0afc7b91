package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a generation run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Topic       string     `json:"topic"`
	ArticleType string     `json:"article_type"`
	Model       string     `json:"model"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Run status values.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ArtifactStep constants for known artifact types
const (
	StepKeywordSet      = "keyword_set"
	StepArticle         = "article"
	StepArticleMarkdown = "article_markdown"
)
