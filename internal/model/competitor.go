package model

import "time"

// Competitor is a tracked entity identified by a unique name with
// optional web and social identifiers.
type Competitor struct {
	Name      string    `json:"name"`
	URL       string    `json:"url,omitempty"`
	Twitter   string    `json:"twitter,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
