package feed

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
)

const (
	SitemapPostLimit = 1000
	sitemapTimeFmt   = "2006-01-02T15:04:05.000Z07:00"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	ImageNS string       `xml:"xmlns:image,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod,omitempty"`
	ChangeFreq string        `xml:"changefreq"`
	Priority   string        `xml:"priority"`
	Image      *sitemapImage `xml:"image:image,omitempty"`
}

type sitemapImage struct {
	Loc     string `xml:"image:loc"`
	Title   string `xml:"image:title"`
	Caption string `xml:"image:caption"`
}

var staticPages = []sitemapURL{
	{Loc: "/", ChangeFreq: "daily", Priority: "1.0"},
	{Loc: "/blog", ChangeFreq: "daily", Priority: "0.9"},
	{Loc: "/blog/archive", ChangeFreq: "daily", Priority: "0.8"},
	{Loc: "/about", ChangeFreq: "monthly", Priority: "0.7"},
}

// BuildSitemap lists the static pages followed by one entry per post.
func BuildSitemap(siteURL string, posts []blog_models.BlogPost) ([]byte, error) {
	site := strings.TrimRight(siteURL, "/")

	set := urlSet{
		Xmlns:   "http://www.sitemaps.org/schemas/sitemap/0.9",
		ImageNS: "http://www.google.com/schemas/sitemap-image/1.1",
		URLs:    make([]sitemapURL, 0, len(staticPages)+len(posts)),
	}
	for _, page := range staticPages {
		page.Loc = site + page.Loc
		set.URLs = append(set.URLs, page)
	}

	for _, post := range posts {
		entry := sitemapURL{
			Loc:        fmt.Sprintf("%s/blog/%s", site, post.Slug),
			LastMod:    post.LastModified().UTC().Format(sitemapTimeFmt),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		}
		if img := post.Image(); img != "" {
			entry.Image = &sitemapImage{
				Loc:     img,
				Title:   post.Title,
				Caption: post.SEODescription,
			}
		}
		set.URLs = append(set.URLs, entry)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
