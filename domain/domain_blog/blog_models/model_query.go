package blog_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/manhva-oppa/oppa-blog/domain/domain_util"
)

type TagCount = domain_util.TagCount

// MangaProjection selects how much of the joined manga a query returns.
type MangaProjection int

const (
	// MangaSummary carries id, title, cover_image, description and genres.
	MangaSummary MangaProjection = iota
	// MangaCard carries id, title and cover_image.
	MangaCard
	// MangaFull carries the whole catalog entry.
	MangaFull
)

// PostQuery describes one page of blog posts. Zero values select the
// defaults of the calling operation.
type PostQuery struct {
	Limit     int64
	Offset    int64
	OrderBy   string
	Ascending bool

	// Search matches title, content, seo_description and seo_keywords
	// case-insensitively when non-blank.
	Search string
	// Tag matches seo_keywords case-insensitively as a substring.
	Tag string

	ExcludeMangaID primitive.ObjectID
	// RequireManga drops posts whose manga no longer exists.
	RequireManga bool
	Projection   MangaProjection
}

// Sortable post fields. Anything else falls back to published_date.
var PostOrderFields = map[string]struct{}{
	"published_date": {},
	"title":          {},
	"views":          {},
	"updated_at":     {},
}

const DefaultPostOrder = "published_date"

// NormalizeOrder maps an unknown order field onto the default.
func NormalizeOrder(field string) string {
	if _, ok := PostOrderFields[field]; ok {
		return field
	}
	return DefaultPostOrder
}

// CompletionPrompt is a system plus user message pair for one completion.
type CompletionPrompt struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}
