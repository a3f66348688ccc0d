package projects

import "time"

// Thumbnail holds per-breakpoint thumbnail image URLs
type Thumbnail struct {
	SmallScreen string `json:"smallScreen"`
	LargeScreen string `json:"largeScreen"`
}

type Project struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Date         string    `json:"date"`
	Categories   []string  `json:"categories"`
	Description  string    `json:"description"`
	Task         string    `json:"task"`
	Role         []string  `json:"role"`
	Client       string    `json:"client"`
	CategoryYear string    `json:"categoryYear"`
	LiveSite     string    `json:"liveSite"`
	Thumbnail    Thumbnail `json:"thumbnail"`
	Gallery      []string  `json:"gallery"`
	Selected     bool      `json:"selected"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
