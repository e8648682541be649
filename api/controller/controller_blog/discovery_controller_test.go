package controller_blog

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDiscoveryController(t *testing.T) {
	uc := mocks.NewDiscoveryUsecase(t)
	ctrl := NewDiscoveryController(uc)
	r := gin.New()
	r.GET("/posts", ctrl.ListPostsHandler)
	r.GET("/search", ctrl.SearchHandler)
	r.GET("/tags", ctrl.GetPopularTagsHandler)

	t.Run("tag is trimmed", func(t *testing.T) {
		uc.On("ListPosts", mock.Anything, blog_models.PostQuery{Limit: 20, Tag: "Isekai"}).
			Return([]blog_models.BlogPost{{Slug: "a"}, {Slug: "b"}}).Once()

		w := serve(r, http.MethodGet, "/posts?limit=20&tag=%20Isekai%20", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 2, decode(t, w)["count"])
	})

	t.Run("search splits tags", func(t *testing.T) {
		uc.On("SearchBlogPosts", mock.Anything, "solo", []string{"Action", "Fantasy"}, 0).
			Return(blog_models.SearchResult{
				Posts:        []blog_models.BlogPost{{Slug: "solo-leveling"}},
				RelatedTags:  []blog_models.TagCount{{Name: "Action", Count: 1}},
				RelatedTerms: []string{"Fantasy"},
			}).Once()

		w := serve(r, http.MethodGet, "/search?q=solo&tags=Action,%20,Fantasy", "")
		require.Equal(t, http.StatusOK, w.Code)
		search := decode(t, w)["data"].(map[string]interface{})["search"].(map[string]interface{})
		assert.Len(t, search["related_tags"], 1)
		assert.Equal(t, []interface{}{"Fantasy"}, search["related_terms"])
	})

	t.Run("popular tags", func(t *testing.T) {
		uc.On("GetPopularTags", mock.Anything, 5).
			Return([]blog_models.TagCount{{Name: "Romance", Count: 3}}).Once()

		w := serve(r, http.MethodGet, "/tags?limit=5", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/tags?limit=500", "").Code)
	})
}
