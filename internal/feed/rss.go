package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/domain/domain_util"
)

const (
	MangaNamespace = "https://blog.manhva-oppa.com/ns"
	// RSSItemLimit is how many of the newest posts the feed carries.
	RSSItemLimit = 100
	Generator    = "oppa-blog"
)

// Channel is the feed-level metadata.
type Channel struct {
	Title       string
	Description string
	SiteURL     string
	BuildDate   time.Time
}

type rssDocument struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	AtomNS    string     `xml:"xmlns:atom,attr"`
	DCNS      string     `xml:"xmlns:dc,attr"`
	ContentNS string     `xml:"xmlns:content,attr"`
	MangaNS   string     `xml:"xmlns:manga,attr"`
	Channel   rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	AtomLink      atomLink  `xml:"atom:link"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Generator     string    `xml:"generator"`
	Copyright     string    `xml:"copyright"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

type rssItem struct {
	Title       string     `xml:"title"`
	Link        string     `xml:"link"`
	GUID        rssGUID    `xml:"guid"`
	Description string     `xml:"description,omitempty"`
	PubDate     string     `xml:"pubDate"`
	Categories  []string   `xml:"category"`
	Manga       *mangaInfo `xml:"manga:info,omitempty"`
}

type mangaInfo struct {
	Title  string `xml:"manga:title"`
	Author string `xml:"manga:author,omitempty"`
	Year   int    `xml:"manga:year,omitempty"`
}

// PostURL is the canonical page of a post, with a trailing slash.
func PostURL(siteURL, slug string) string {
	return fmt.Sprintf("%s/blog/%s/", strings.TrimRight(siteURL, "/"), slug)
}

// BuildRSS renders an RSS 2.0 document for posts in the given order. Posts
// with a joined manga get a manga:info element.
func BuildRSS(ch Channel, posts []blog_models.BlogPost) ([]byte, error) {
	site := strings.TrimRight(ch.SiteURL, "/")
	built := ch.BuildDate.UTC()

	doc := rssDocument{
		Version:   "2.0",
		AtomNS:    "http://www.w3.org/2005/Atom",
		DCNS:      "http://purl.org/dc/elements/1.1/",
		ContentNS: "http://purl.org/rss/1.0/modules/content/",
		MangaNS:   MangaNamespace,
		Channel: rssChannel{
			Title:       ch.Title,
			Link:        site + "/",
			Description: ch.Description,
			AtomLink: atomLink{
				Href: site + "/rss.xml",
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Language:      "en-us",
			LastBuildDate: built.Format(time.RFC1123Z),
			Generator:     Generator,
			Copyright:     fmt.Sprintf("© %d %s", built.Year(), ch.Title),
			Items:         make([]rssItem, 0, len(posts)),
		},
	}

	for _, post := range posts {
		link := PostURL(site, post.Slug)
		item := rssItem{
			Title:       post.Title,
			Link:        link,
			GUID:        rssGUID{Value: link, IsPermaLink: true},
			Description: post.SEODescription,
			PubDate:     post.PublishedDate.UTC().Format(time.RFC1123Z),
			Categories:  domain_util.SplitKeywords(post.SEOKeywords),
		}
		if post.Manga != nil {
			item.Manga = &mangaInfo{
				Title:  post.Manga.Title,
				Author: post.Manga.Author,
				Year:   post.Manga.PublishedYear,
			}
		}
		doc.Channel.Items = append(doc.Channel.Items, item)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode rss: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
