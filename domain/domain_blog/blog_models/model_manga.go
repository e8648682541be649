package blog_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Genre struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

type Tag struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// Manga is a catalog entry that blog posts are written about.
type Manga struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title" binding:"required"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Author        string             `bson:"author,omitempty" json:"author,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	PublishedYear int                `bson:"published_year,omitempty" json:"published_year,omitempty"`
	CoverImage    string             `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Genres        []Genre            `bson:"genres,omitempty" json:"genres,omitempty"`
	Tags          []Tag              `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt     primitive.DateTime `bson:"created_at" json:"created_at"`
	UpdatedAt     primitive.DateTime `bson:"updated_at" json:"updated_at"`
}

func (m *Manga) GenreIDs() []primitive.ObjectID {
	if m == nil || len(m.Genres) == 0 {
		return nil
	}
	ids := make([]primitive.ObjectID, 0, len(m.Genres))
	for _, g := range m.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// GenreNames returns the non-empty genre names in catalog order.
func (m *Manga) GenreNames() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		if g.Name != "" {
			names = append(names, g.Name)
		}
	}
	return names
}

// PrimaryGenre is the first genre name, or "" when the manga has none.
func (m *Manga) PrimaryGenre() string {
	if m == nil || len(m.Genres) == 0 {
		return ""
	}
	return m.Genres[0].Name
}

func (m *Manga) PublishedAt() time.Time {
	if m == nil {
		return time.Time{}
	}
	return m.CreatedAt.Time()
}
