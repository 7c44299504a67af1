package dto

// CreateTimelineRequest creates a timeline with its milestones.
type CreateTimelineRequest struct {
	Name       string             `json:"name" validate:"required"`
	Slug       string             `json:"slug" validate:"required"`
	Milestones []MilestoneRequest `json:"milestones" validate:"dive"`
}

// MilestoneRequest describes a milestone as a day offset from the
// subscription start.
type MilestoneRequest struct {
	Name   string `json:"name" validate:"required"`
	Offset int    `json:"offset"`
}
