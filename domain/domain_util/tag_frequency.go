package domain_util

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Keyworded exposes a free-text, comma-delimited keyword field.
type Keyworded interface {
	KeywordField() string
}

// TagCount is one row of a tag frequency table.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type TagOptions struct {
	// ExcludeTerm drops tokens equal to it once both are lowercased. Only
	// case differs; "strasse" does not match "Straße".
	ExcludeTerm string
	// Limit truncates the sorted table when > 0.
	Limit int
}

// SplitKeywords splits a keyword field on commas, trims each token and
// drops the empty ones.
func SplitKeywords(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// AggregateTags counts keyword tokens across items, case-sensitively and once
// per occurrence, and returns them by descending count. Ties keep the order
// in which each tag was first seen.
func AggregateTags[T Keyworded](items []T, opts TagOptions) []TagCount {
	lower := cases.Lower(language.Und)
	exclude := ""
	if opts.ExcludeTerm != "" {
		exclude = lower.String(strings.TrimSpace(opts.ExcludeTerm))
	}

	index := make(map[string]int)
	counts := make([]TagCount, 0)
	for _, item := range items {
		for _, token := range SplitKeywords(item.KeywordField()) {
			if exclude != "" && lower.String(token) == exclude {
				continue
			}
			if i, ok := index[token]; ok {
				counts[i].Count++
				continue
			}
			index[token] = len(counts)
			counts = append(counts, TagCount{Name: token, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if opts.Limit > 0 && len(counts) > opts.Limit {
		counts = counts[:opts.Limit]
	}
	return counts
}

// KeywordText adapts a plain keyword string to Keyworded.
type KeywordText string

func (k KeywordText) KeywordField() string { return string(k) }
