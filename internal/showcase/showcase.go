package showcase

import "errors"

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrAffiliateNotFound   = errors.New("affiliate not found")
	ErrRequiredFieldEmpty  = errors.New("required field empty")
)

type Client struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
	Website string `json:"website"`
}

type Testimonial struct {
	ID        int    `json:"id"`
	Author    string `json:"author"`
	Role      string `json:"role"`
	Quote     string `json:"quote"`
	AvatarURL string `json:"avatarUrl"`
}

type Affiliate struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	BannerURL string `json:"bannerUrl"`
}
