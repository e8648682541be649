package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Solo Leveling", "solo-leveling"},
		{"Tower of God: Season 2!", "tower-of-god-season-2"},
		{"  The   Beginning After  the End ", "the-beginning-after-the-end"},
		{"Kaguya-sama: Love Is War", "kaguyasama-love-is-war"},
		{"Pokémon Adventures", "pokemon-adventures"},
		{"Ōkami 狼", "okami-lang"},
		{"나 혼자만 레벨업", ""},
		{"snake_case title", "snake_case-title"},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}
