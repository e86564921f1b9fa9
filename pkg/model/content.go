package model

import "time"

type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
)

// ContentStatus values are ordered by production stage for display purposes
// only; any status can be set from any other.
type ContentStatus string

const (
	StatusIdea      ContentStatus = "idea"
	StatusScripted  ContentStatus = "scripted"
	StatusFilmed    ContentStatus = "filmed"
	StatusScheduled ContentStatus = "scheduled"
)

type Content struct {
	ID          string        `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Platform    Platform      `json:"platform" db:"platform"`
	Status      ContentStatus `json:"status" db:"status"`
	PlannedDate time.Time     `json:"plannedDate" db:"planned_date"`
	Tags        []string      `json:"tags" db:"tags"`
	Notes       string        `json:"notes" db:"notes"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

// ContentDraft carries every user-settable field of a content item. The id
// and timestamps are always assigned by the receiving side.
type ContentDraft struct {
	Title       string        `json:"title" binding:"required"`
	Platform    Platform      `json:"platform" binding:"required"`
	Status      ContentStatus `json:"status" binding:"required"`
	PlannedDate time.Time     `json:"plannedDate" binding:"required"`
	Tags        []string      `json:"tags"`
	Notes       string        `json:"notes"`
}

// ContentPatch is a partial update: nil fields are left untouched.
type ContentPatch struct {
	Title       *string        `json:"title,omitempty"`
	Platform    *Platform      `json:"platform,omitempty"`
	Status      *ContentStatus `json:"status,omitempty"`
	PlannedDate *time.Time     `json:"plannedDate,omitempty"`
	Tags        *[]string      `json:"tags,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
}
