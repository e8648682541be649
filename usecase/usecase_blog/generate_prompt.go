package usecase_blog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/domain/domain_util"
)

const (
	generationTemperature = 0.7
	generationMaxTokens   = 2000

	writerSystemPrompt = "You are an expert content writer specializing in manga and anime reviews. " +
		"You create engaging, SEO-optimized blog posts that rank well in search engines."
)

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// BuildPrompt renders the completion request for one manga.
func BuildPrompt(manga *blog_models.Manga) blog_models.CompletionPrompt {
	year := ""
	if manga.PublishedYear > 0 {
		year = strconv.Itoa(manga.PublishedYear)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate an SEO-optimized blog post about the manga/manhwa titled %q.\n\n", manga.Title)
	b.WriteString("Use the following information:\n")
	fmt.Fprintf(&b, "- Title: %s\n", manga.Title)
	fmt.Fprintf(&b, "- Description: %s\n", orNA(manga.Description))
	fmt.Fprintf(&b, "- Genres: %s\n", orNA(strings.Join(manga.GenreNames(), ", ")))
	fmt.Fprintf(&b, "- Author: %s\n", orNA(manga.Author))
	fmt.Fprintf(&b, "- Status: %s\n", orNA(manga.Status))
	fmt.Fprintf(&b, "- Published Year: %s\n\n", orNA(year))
	b.WriteString(`The blog post should:
1. Have an engaging title that includes the manga name and main genre
2. Include an SEO-friendly introduction with keywords related to manga, manhwa, and the specific genres
3. Provide a detailed but concise overview of the plot without major spoilers
4. Discuss the art style, character development, and storytelling
5. Compare it briefly to similar works in the genre
6. Include a section about why readers might enjoy it
7. End with a call-to-action to read the manga
8. Use headings (H2, H3), paragraphs, and bullet points where appropriate

The total length should be around 800-1200 words.

Return the content in markdown format.
`)

	return blog_models.CompletionPrompt{
		System:      writerSystemPrompt,
		User:        b.String(),
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	}
}

// BuildPost turns a completion into an unsaved post. Titles that slug to
// nothing (Hangul, kana) use the manga id as slug.
func BuildPost(manga *blog_models.Manga, content string, now time.Time) *blog_models.BlogPost {
	genre := manga.PrimaryGenre()
	headlineGenre := genre
	if headlineGenre == "" {
		headlineGenre = "Amazing"
	}

	slug := domain_util.Slugify(manga.Title)
	if slug == "" {
		slug = manga.ID.Hex()
	}

	describedAs := "a manga"
	if genre != "" {
		describedAs = "a " + genre + " manga"
	}

	keywords := []string{manga.Title, "manga", "manhwa"}
	keywords = append(keywords, manga.GenreNames()...)

	return &blog_models.BlogPost{
		Title:   fmt.Sprintf("%s - An In-Depth Look at This %s Manga", manga.Title, headlineGenre),
		Slug:    slug,
		Content: content,
		MangaID: manga.ID,
		// stored with millisecond precision, keep the in-memory copy equal
		PublishedDate: now.UTC().Truncate(time.Millisecond),
		SEODescription: fmt.Sprintf(
			"Discover everything about %s, %s that's captivating readers worldwide. Read our comprehensive review and analysis.",
			manga.Title, describedAs,
		),
		SEOKeywords:   strings.Join(keywords, ", "),
		FeaturedImage: manga.CoverImage,
	}
}
