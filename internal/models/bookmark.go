package models

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark represents a bookmark row in the database.
// At most one exists per (user_id, opportunity_id).
type Bookmark struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	OpportunityID uuid.UUID `json:"opportunity_id" db:"opportunity_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// BookmarkedOpportunity is a bookmarked opportunity annotated with the
// requester's application state.
type BookmarkedOpportunity struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Description      string     `json:"description" db:"description"`
	Organization     string     `json:"organization" db:"organization"`
	OrganizationLogo *string    `json:"organization_logo" db:"organization_logo"`
	Category         Category   `json:"category" db:"category"`
	Type             *string    `json:"type" db:"type"`
	Deadline         time.Time  `json:"deadline" db:"deadline"`
	ApplyLink        *string    `json:"apply_link" db:"apply_link"`
	BookmarkedAt     time.Time  `json:"bookmarked_at" db:"bookmarked_at"`
	IsApplied        bool       `json:"isApplied" db:"is_applied"`
	ExpiresAt        *time.Time `json:"expires_at" db:"expires_at"`
}
