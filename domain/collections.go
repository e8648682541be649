package domain

const (
	CollectionBlogPosts = "blog_posts"
)
const (
	CollectionMangaEntries = "manga_entries"
)
const (
	CollectionSiteSettings = "site_settings"
)
const (
	CollectionSocialMediaLinks = "social_media_links"
)
const (
	CollectionAdmins = "admins"
)
