package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Timeline is a named care program that subscribers join by keyword.
type Timeline struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Slug       string      `json:"slug"` // keywords separated by "|", e.g. "birth|bith|bilth"
	Milestones []Milestone `json:"milestones,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Keywords returns the lowercase match tokens of the timeline slug.
func (t Timeline) Keywords() []string {
	return ParseKeywords(t.Slug)
}

// Milestone is a day offset from the subscription start that needs an appointment.
type Milestone struct {
	ID         uuid.UUID `json:"id"`
	TimelineID uuid.UUID `json:"timeline_id"`
	Name       string    `json:"name"`
	Offset     int       `json:"offset"` // days, may be negative
}

// ParseKeywords splits a "|" delimited slug into an ordered set of lowercase keywords.
func ParseKeywords(slug string) []string {
	parts := strings.Split(slug, "|")
	keywords := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		k := strings.ToLower(strings.TrimSpace(p))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keywords = append(keywords, k)
	}

	return keywords
}
