package domain_app_config

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SocialLink struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Platform     string             `bson:"platform" json:"platform"`
	URL          string             `bson:"url" json:"url"`
	Label        string             `bson:"label,omitempty" json:"label,omitempty"`
	DisplayOrder int                `bson:"display_order" json:"display_order"`
	Active       bool               `bson:"active" json:"active"`
}

// SocialLinkView is a link ready for rendering, with its inline SVG icon.
type SocialLinkView struct {
	SocialLink
	Icon string `json:"icon"`
}

type SocialLinkRepository interface {
	// ListOrdered returns links by ascending display_order, active only
	// unless includeInactive is set.
	ListOrdered(ctx context.Context, includeInactive bool) ([]SocialLink, error)
}

type SocialLinkUsecase interface {
	GetSocialMediaLinks(ctx context.Context, includeInactive bool) []SocialLinkView
}
