package domain_app_config

import (
	"context"

	"github.com/manhva-oppa/oppa-blog/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const SiteSettingsID = "singleton"

// SiteSettings is the merged, always-complete view handed to pages.
type SiteSettings struct {
	SiteTitle       string            `json:"siteTitle"`
	SiteDescription string            `json:"siteDescription"`
	SocialLinks     map[string]string `json:"socialLinks"`
	AnalyticsID     string            `json:"analyticsId"`
	MainSiteURL     string            `json:"mainSiteUrl"`
}

// SiteSettingsPatch is what the store holds. Nil fields keep the default.
type SiteSettingsPatch struct {
	SiteTitle       *string           `bson:"site_title,omitempty" json:"siteTitle,omitempty"`
	SiteDescription *string           `bson:"site_description,omitempty" json:"siteDescription,omitempty"`
	SocialLinks     map[string]string `bson:"social_links,omitempty" json:"socialLinks,omitempty"`
	AnalyticsID     *string           `bson:"analytics_id,omitempty" json:"analyticsId,omitempty"`
	MainSiteURL     *string           `bson:"main_site_url,omitempty" json:"mainSiteUrl,omitempty"`
}

type SiteSettingsDocument struct {
	ID        string             `bson:"_id,omitempty"`
	Settings  SiteSettingsPatch  `bson:"settings"`
	UpdatedAt primitive.DateTime `bson:"updated_at"`
}

// DefaultSiteSettings returns a fresh copy of the built-in settings.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteTitle:       "Manhva-Oppa Blog",
		SiteDescription: "The official blog for Manhva-Oppa, your ultimate destination for manga and manhwa content.",
		SocialLinks: map[string]string{
			"twitter":   "#",
			"facebook":  "#",
			"instagram": "#",
		},
		AnalyticsID: "",
		MainSiteURL: "/",
	}
}

// Merge overlays the present fields of p onto base. The social links map is
// taken whole when present.
func (p *SiteSettingsPatch) Merge(base SiteSettings) SiteSettings {
	merged := base.Clone()
	if p == nil {
		return merged
	}
	if p.SiteTitle != nil {
		merged.SiteTitle = *p.SiteTitle
	}
	if p.SiteDescription != nil {
		merged.SiteDescription = *p.SiteDescription
	}
	if p.SocialLinks != nil {
		merged.SocialLinks = make(map[string]string, len(p.SocialLinks))
		for k, v := range p.SocialLinks {
			merged.SocialLinks[k] = v
		}
	}
	if p.AnalyticsID != nil {
		merged.AnalyticsID = *p.AnalyticsID
	}
	if p.MainSiteURL != nil {
		merged.MainSiteURL = *p.MainSiteURL
	}
	return merged
}

// Overlay returns p with every field present in next replacing its own.
func (p SiteSettingsPatch) Overlay(next SiteSettingsPatch) SiteSettingsPatch {
	out := p
	if next.SiteTitle != nil {
		out.SiteTitle = next.SiteTitle
	}
	if next.SiteDescription != nil {
		out.SiteDescription = next.SiteDescription
	}
	if next.SocialLinks != nil {
		out.SocialLinks = next.SocialLinks
	}
	if next.AnalyticsID != nil {
		out.AnalyticsID = next.AnalyticsID
	}
	if next.MainSiteURL != nil {
		out.MainSiteURL = next.MainSiteURL
	}
	return out
}

func (s SiteSettings) Clone() SiteSettings {
	c := s
	if s.SocialLinks != nil {
		c.SocialLinks = make(map[string]string, len(s.SocialLinks))
		for k, v := range s.SocialLinks {
			c.SocialLinks[k] = v
		}
	}
	return c
}

type SiteSettingsRepository interface {
	domain.ConfigRepository[SiteSettingsDocument]
}

type SiteSettingsUsecase interface {
	// GetSiteConfig never fails; it falls back to cached or default values.
	GetSiteConfig(ctx context.Context) SiteSettings
	SiteTitle(ctx context.Context) string
	SiteDescription(ctx context.Context) string
	// UpdateSettings overlays patch on the stored settings and invalidates
	// the cache, so the next read sees the change.
	UpdateSettings(ctx context.Context, patch SiteSettingsPatch) error
}
