package resume

import "errors"

var (
	ErrSkillNotFound      = errors.New("skill not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrAwardNotFound      = errors.New("award not found")
	ErrNameEmpty          = errors.New("name empty")
)

// Skill level is a 0-100 proficiency value rendered as a bar on the site.
type Skill struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Icon     string `json:"icon"`
	Position int    `json:"position"`
}

type Experience struct {
	ID       int    `json:"id"`
	Company  string `json:"company"`
	Role     string `json:"role"`
	Period   string `json:"period"`
	Summary  string `json:"summary"`
	Position int    `json:"position"`
}

type Award struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   int    `json:"year"`
	Link   string `json:"link"`
}
