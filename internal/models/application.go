package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the state of a student's application.
type ApplicationStatus string

// Supported application statuses
const (
	ApplicationApplied     ApplicationStatus = "APPLIED"
	ApplicationShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationSelected    ApplicationStatus = "SELECTED"
	ApplicationWithdrawn   ApplicationStatus = "WITHDRAWN"
)

// ParseApplicationStatus normalizes s and reports whether it names a supported status.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	st := ApplicationStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case ApplicationApplied, ApplicationShortlisted, ApplicationRejected,
		ApplicationSelected, ApplicationWithdrawn:
		return st, true
	}
	return "", false
}

// Application represents an application row in the database.
// At most one exists per (user_id, opportunity_id).
type Application struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	UserID        uuid.UUID         `json:"user_id" db:"user_id"`
	OpportunityID uuid.UUID         `json:"opportunity_id" db:"opportunity_id"`
	Status        ApplicationStatus `json:"status" db:"status"`
	AppliedAt     time.Time         `json:"applied_at" db:"applied_at"`
}

// ApplicationSummary is an application joined with the opportunity it targets.
type ApplicationSummary struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	Status        ApplicationStatus `json:"status" db:"status"`
	AppliedAt     time.Time         `json:"applied_at" db:"applied_at"`
	OpportunityID uuid.UUID         `json:"opportunity_id" db:"opportunity_id"`
	Title         string            `json:"title" db:"title"`
	Organization  string            `json:"organization" db:"organization"`
	Category      Category          `json:"category" db:"category"`
	Deadline      time.Time         `json:"deadline" db:"deadline"`
}
