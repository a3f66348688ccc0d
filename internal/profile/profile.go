package profile

import "time"

// SocialLinks holds the public social network URLs shown in the site footer.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Dribbble string `json:"dribbble,omitempty"`
	Behance  string `json:"behance,omitempty"`
}

// Profile is a singleton document, there is at most one row in the store.
type Profile struct {
	Name         string      `json:"name"`
	Headline     string      `json:"headline"`
	Bio          string      `json:"bio"`
	AvatarURL    string      `json:"avatarUrl"`
	Social       SocialLinks `json:"social"`
	ContactEmail string      `json:"contactEmail"`
	Location     string      `json:"location"`
	CvURL        string      `json:"cvUrl"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
