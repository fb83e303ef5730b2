package models

// Event types published after successful commits
const (
	EventOpportunityCreated       = "opportunity.created"
	EventOpportunityUpdated       = "opportunity.updated"
	EventOpportunityDeleted       = "opportunity.deleted"
	EventApplicationSubmitted     = "application.submitted"
	EventApplicationStatusChanged = "application.status_changed"
)

// Event represents a domain change published to the message broker.
type Event struct {
	EventID       string `json:"event_id"`                 // EventID is a unique identifier for the event.
	Type          string `json:"type"`                     // Type is one of the Event* constants.
	Timestamp     int64  `json:"timestamp"`                // Timestamp is the Unix time (seconds) of the commit.
	UserID        string `json:"user_id"`                  // UserID is the actor.
	OpportunityID string `json:"opportunity_id,omitempty"` // OpportunityID is the affected opportunity, if any.
	ApplicationID string `json:"application_id,omitempty"` // ApplicationID is the affected application, if any.
	Status        string `json:"status,omitempty"`         // Status is the new status, if the event changes one.
}
