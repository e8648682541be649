package domain_util

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugStripPattern = regexp.MustCompile(`[^a-z0-9_\s]`)
	slugSpacePattern = regexp.MustCompile(`\s+`)
)

// Slugify lowercases a title, drops every character that is not an ASCII
// word character or whitespace and joins the remaining words with "-".
// Han characters are spelled out in pinyin and accents are stripped first,
// so "Ōkami 狼" becomes "okami-lang". Scripts with no latin spelling
// (Hangul, kana) are dropped and may leave the slug empty.
func Slugify(title string) string {
	s := transliterateHan(title)

	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	s = strings.ToLower(s)
	s = slugStripPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return slugSpacePattern.ReplaceAllString(s, "-")
}

func transliterateHan(s string) string {
	hasHan := false
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			hasHan = true
			break
		}
	}
	if !hasHan {
		return s
	}

	args := pinyin.NewArgs()
	var b strings.Builder
	for _, r := range s {
		if !unicode.Is(unicode.Han, r) {
			b.WriteRune(r)
			continue
		}
		syllables := pinyin.LazyPinyin(string(r), args)
		if len(syllables) == 0 {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(strings.Join(syllables, " "))
		b.WriteByte(' ')
	}
	return b.String()
}
