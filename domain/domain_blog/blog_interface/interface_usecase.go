package blog_interface

import (
	"context"

	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
)

// BlogUsecase serves the public blog pages. Listing calls never fail; store
// errors are logged and yield empty results.
type BlogUsecase interface {
	ListBlogPosts(ctx context.Context, query blog_models.PostQuery) blog_models.PostPage
	GetBlogPostBySlug(ctx context.Context, slug string) (*blog_models.BlogPost, error)
	GetLatestBlogPosts(ctx context.Context, limit int) []blog_models.BlogPost
	GetRelatedBlogPosts(ctx context.Context, mangaID string, limit int) []blog_models.RelatedPost
}

type DiscoveryUsecase interface {
	ListPosts(ctx context.Context, query blog_models.PostQuery) []blog_models.BlogPost
	SearchBlogPosts(ctx context.Context, query string, tags []string, limit int) blog_models.SearchResult
	GetPopularTags(ctx context.Context, limit int) []blog_models.TagCount
}

type GenerateUsecase interface {
	// GenerateForManga returns the existing post untouched when there is one.
	GenerateForManga(ctx context.Context, mangaID string) (*blog_models.BlogPost, error)
	// Generate fails with ErrPostExists, returning the existing post, unless
	// force is set, in which case the old post is deleted first.
	Generate(ctx context.Context, mangaID string, force bool) (*blog_models.BlogPost, error)
	Status(ctx context.Context, mangaID string) (blog_models.GenerationStatus, error)
}

type FeedUsecase interface {
	RSS(ctx context.Context) ([]byte, error)
	Sitemap(ctx context.Context) ([]byte, error)
}

// CompletionClient sends one chat completion and returns the text of the
// first choice.
type CompletionClient interface {
	Complete(ctx context.Context, prompt blog_models.CompletionPrompt) (string, error)
}
