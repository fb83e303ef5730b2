package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category classifies an opportunity.
type Category string

// Supported categories
const (
	CategoryInternship  Category = "INTERNSHIP"
	CategoryJob         Category = "JOB"
	CategoryHackathon   Category = "HACKATHON"
	CategoryScholarship Category = "SCHOLARSHIP"
	CategoryCompetition Category = "COMPETITION"
	CategoryWorkshop    Category = "WORKSHOP"
	CategoryOther       Category = "OTHER"
)

// ParseCategory normalizes s and reports whether it names a supported category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CategoryInternship, CategoryJob, CategoryHackathon, CategoryScholarship,
		CategoryCompetition, CategoryWorkshop, CategoryOther:
		return c, true
	}
	return "", false
}

// OpportunityStatus is the lifecycle state of an opportunity.
// Only ACTIVE opportunities are visible to students.
type OpportunityStatus string

// Supported opportunity statuses
const (
	OpportunityActive  OpportunityStatus = "ACTIVE"
	OpportunityDraft   OpportunityStatus = "DRAFT"
	OpportunityClosed  OpportunityStatus = "CLOSED"
	OpportunityExpired OpportunityStatus = "EXPIRED"
)

// ParseOpportunityStatus normalizes s and reports whether it names a supported status.
func ParseOpportunityStatus(s string) (OpportunityStatus, bool) {
	st := OpportunityStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case OpportunityActive, OpportunityDraft, OpportunityClosed, OpportunityExpired:
		return st, true
	}
	return "", false
}

// Opportunity represents an opportunity row in the database
type Opportunity struct {
	ID               uuid.UUID         `json:"id" db:"id"`                               // Primary key
	Title            string            `json:"title" db:"title"`                         // Short title
	Description      string            `json:"description" db:"description"`             // Full description
	Category         Category          `json:"category" db:"category"`                   // Normalized category
	Status           OpportunityStatus `json:"status" db:"status"`                       // Lifecycle status
	Deadline         time.Time         `json:"deadline" db:"deadline"`                   // Application deadline
	Organization     string            `json:"organization" db:"organization"`           // Posting organization
	OrganizationLogo *string           `json:"organization_logo" db:"organization_logo"` // Optional logo URL
	ApplyLink        *string           `json:"apply_link" db:"apply_link"`               // Optional external link
	Type             *string           `json:"type" db:"type"`                           // Optional type, e.g. remote
	Eligibility      *string           `json:"eligibility" db:"eligibility"`             // Optional eligibility notes
	CreatedBy        uuid.UUID         `json:"created_by" db:"created_by"`               // Admin who posted it
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`               // Creation timestamp
	ExpiresAt        *time.Time        `json:"expires_at" db:"expires_at"`               // Optional expiry
}

// OpportunityInput carries the writable fields of an opportunity.
// Optional fields left nil are stored as NULL.
type OpportunityInput struct {
	Title            string
	Description      string
	Category         Category
	Status           OpportunityStatus
	Deadline         time.Time
	Organization     string
	OrganizationLogo *string
	ApplyLink        *string
	Type             *string
	Eligibility      *string
	ExpiresAt        *time.Time
}
