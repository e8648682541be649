package domain_util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeItem struct {
	name      string
	genres    []primitive.ObjectID
	published time.Time
}

func (f fakeItem) GenreIDs() []primitive.ObjectID { return f.genres }
func (f fakeItem) PublishedAt() time.Time          { return f.published }

func TestRelatedItems(t *testing.T) {
	action, comedy, drama, romance := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	reference := fakeItem{name: "ref", genres: []primitive.ObjectID{action, comedy, drama}}
	pool := []fakeItem{
		{name: "one-old", genres: []primitive.ObjectID{action}, published: base},
		{name: "none", genres: []primitive.ObjectID{romance}, published: base.Add(72 * time.Hour)},
		{name: "three", genres: []primitive.ObjectID{action, comedy, drama, romance}, published: base.Add(-24 * time.Hour)},
		{name: "one-new", genres: []primitive.ObjectID{drama}, published: base.Add(48 * time.Hour)},
		{name: "two", genres: []primitive.ObjectID{comedy, drama}, published: base.Add(24 * time.Hour)},
	}

	t.Run("ranks by overlap then recency", func(t *testing.T) {
		got := RelatedItems(reference, pool, 10)
		require.Len(t, got, len(pool))

		names := make([]string, len(got))
		scores := make([]int, len(got))
		for i, c := range got {
			names[i] = c.Item.name
			scores[i] = c.Score
		}
		assert.Equal(t, []string{"three", "two", "one-new", "one-old", "none"}, names)
		assert.Equal(t, []int{3, 2, 1, 1, 0}, scores)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		got := RelatedItems(reference, pool, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "three", got[0].Item.name)
		assert.Equal(t, "two", got[1].Item.name)
	})

	t.Run("keeps zero scoring candidates to fill the limit", func(t *testing.T) {
		lonely := []fakeItem{
			{name: "a", genres: []primitive.ObjectID{romance}, published: base},
			{name: "b", published: base.Add(time.Hour)},
		}
		got := RelatedItems(reference, lonely, 3)
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].Item.name)
		assert.Zero(t, got[0].Score)
	})

	t.Run("empty reference genres yields nothing", func(t *testing.T) {
		got := RelatedItems(fakeItem{}, pool, 3)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("empty pool and non-positive limit", func(t *testing.T) {
		assert.Empty(t, RelatedItems(reference, []fakeItem{}, 3))
		assert.Empty(t, RelatedItems(reference, pool, 0))
		assert.Empty(t, RelatedItems(reference, pool, -1))
	})

	t.Run("equal score and date keep pool order", func(t *testing.T) {
		twins := []fakeItem{
			{name: "first", genres: []primitive.ObjectID{action}, published: base},
			{name: "second", genres: []primitive.ObjectID{comedy}, published: base},
		}
		got := RelatedItems(reference, twins, 2)
		assert.Equal(t, "first", got[0].Item.name)
		assert.Equal(t, "second", got[1].Item.name)
	})
}

func TestRelatedItemsOrderingProperty(t *testing.T) {
	genres := make([]primitive.ObjectID, 6)
	for i := range genres {
		genres[i] = primitive.NewObjectID()
	}
	reference := fakeItem{genres: genres[:3]}

	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	pool := make([]fakeItem, 0, 30)
	for i := 0; i < 30; i++ {
		var gs []primitive.ObjectID
		for j := range genres {
			if (i+j)%(j+2) == 0 {
				gs = append(gs, genres[j])
			}
		}
		pool = append(pool, fakeItem{genres: gs, published: base.Add(time.Duration(i%7) * time.Hour)})
	}

	for _, k := range []int{1, 5, 30, 50} {
		got := RelatedItems(reference, pool, k)
		expected := k
		if len(pool) < k {
			expected = len(pool)
		}
		require.Len(t, got, expected)

		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			require.GreaterOrEqual(t, prev.Score, cur.Score)
			if prev.Score == cur.Score {
				require.False(t, prev.Item.published.Before(cur.Item.published))
			}
		}
	}
}
