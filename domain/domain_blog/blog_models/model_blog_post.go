package blog_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is one generated article. Manga is only populated on reads that
// join manga_entries and is never written back.
type BlogPost struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Slug           string             `bson:"slug" json:"slug"`
	Content        string             `bson:"content" json:"content"`
	MangaID        primitive.ObjectID `bson:"manga_id" json:"manga_id"`
	PublishedDate  time.Time          `bson:"published_date" json:"published_date"`
	UpdatedAt      *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	SEODescription string             `bson:"seo_description,omitempty" json:"seo_description,omitempty"`
	SEOKeywords    string             `bson:"seo_keywords,omitempty" json:"seo_keywords,omitempty"`
	FeaturedImage  string             `bson:"featured_image,omitempty" json:"featured_image,omitempty"`
	Views          int64              `bson:"views" json:"views"`
	Manga          *Manga             `bson:"manga,omitempty" json:"manga,omitempty"`
}

// GenreIDs are the genres of the joined manga.
func (p BlogPost) GenreIDs() []primitive.ObjectID {
	return p.Manga.GenreIDs()
}

func (p BlogPost) PublishedAt() time.Time {
	return p.PublishedDate
}

func (p BlogPost) KeywordField() string {
	return p.SEOKeywords
}

// LastModified is updated_at when set, otherwise published_date.
func (p BlogPost) LastModified() time.Time {
	if p.UpdatedAt != nil && !p.UpdatedAt.IsZero() {
		return *p.UpdatedAt
	}
	return p.PublishedDate
}

// Image prefers the post's own featured image over the manga cover.
func (p BlogPost) Image() string {
	if p.FeaturedImage != "" {
		return p.FeaturedImage
	}
	if p.Manga != nil {
		return p.Manga.CoverImage
	}
	return ""
}

// RelatedPost is a post ranked against a reference manga.
type RelatedPost struct {
	BlogPost `bson:",inline"`
	Score    int `json:"score"`
}

type PostPage struct {
	Posts []BlogPost `json:"posts"`
	Count int64      `json:"count"`
}

type SearchResult struct {
	Posts        []BlogPost `json:"posts"`
	RelatedTags  []TagCount `json:"related_tags"`
	RelatedTerms []string   `json:"related_terms"`
}

// GenerationStatus answers whether a manga already has a post.
type GenerationStatus struct {
	Exists        bool      `json:"exists"`
	BlogPostID    string    `json:"blogPostId,omitempty"`
	BlogPostSlug  string    `json:"blogPostSlug,omitempty"`
	Title         string    `json:"title,omitempty"`
	PublishedDate time.Time `json:"publishedDate,omitempty"`
}
