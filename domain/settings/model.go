package settings

// SiteSettings is the typed view over the key/value settings table.
// Values are stored as JSON so each key keeps its native type.
type SiteSettings struct {
	SiteName           string `json:"site_name"`
	SiteDescription    string `json:"site_description"`
	SiteLogo           string `json:"site_logo"`
	SiteFavicon        string `json:"site_favicon"`
	SiteURL            string `json:"site_url"`
	PostsPerPage       int    `json:"posts_per_page"`
	CommentsEnabled    bool   `json:"comments_enabled"`
	CommentsModeration bool   `json:"comments_moderation"`
	SocialTwitter      string `json:"social_twitter"`
	SocialFacebook     string `json:"social_facebook"`
	SocialInstagram    string `json:"social_instagram"`
	SocialGithub       string `json:"social_github"`
}

// DefaultSettings returns the values used for keys that have never been
// saved.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		SiteName:           "My Blog",
		SiteDescription:    "A blog built with OpenDraft",
		PostsPerPage:       10,
		CommentsEnabled:    false,
		CommentsModeration: true,
	}
}

// FormState is the mutation response shape: error is null on success.
type FormState struct {
	Error   *string `json:"error"`
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
}
