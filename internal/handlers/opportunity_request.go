package handlers

import (
	"strings"

	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
)

// OpportunityRequest is the JSON body for creating or replacing an opportunity
// swagger:model OpportunityRequest
type OpportunityRequest struct {
	// required: true
	// default: Backend Intern
	Title string `json:"title"`

	// required: true
	// default: Build Go services
	Description string `json:"description"`

	// INTERNSHIP, JOB, HACKATHON, SCHOLARSHIP, COMPETITION, WORKSHOP or OTHER
	// required: true
	// default: INTERNSHIP
	Category string `json:"category"`

	// ACTIVE, DRAFT, CLOSED or EXPIRED
	// required: true
	// default: ACTIVE
	Status string `json:"status"`

	// RFC 3339 timestamp or YYYY-MM-DD
	// required: true
	// default: 2026-12-31
	Deadline string `json:"deadline"`

	// required: true
	// default: Acme
	Organization string `json:"organization"`

	OrganizationLogo *string `json:"organization_logo"`
	ApplyLink        *string `json:"apply_link"`
	Type             *string `json:"type"`
	Eligibility      *string `json:"eligibility"`

	// RFC 3339 timestamp or YYYY-MM-DD
	ExpiresAt *string `json:"expires_at"`
}

// OpportunityResponse wraps a single opportunity
// swagger:model OpportunityResponse
type OpportunityResponse struct {
	Message     string              `json:"message,omitempty"`
	Opportunity *models.Opportunity `json:"opportunity"`
}

// toInput validates the request. On failure it returns the client-facing message.
func (req OpportunityRequest) toInput() (models.OpportunityInput, string) {
	in := models.OpportunityInput{
		Title:            strings.TrimSpace(req.Title),
		Description:      strings.TrimSpace(req.Description),
		Organization:     strings.TrimSpace(req.Organization),
		OrganizationLogo: optionalString(req.OrganizationLogo),
		ApplyLink:        optionalString(req.ApplyLink),
		Type:             optionalString(req.Type),
		Eligibility:      optionalString(req.Eligibility),
	}

	if in.Title == "" || in.Description == "" || strings.TrimSpace(req.Category) == "" ||
		strings.TrimSpace(req.Status) == "" || strings.TrimSpace(req.Deadline) == "" || in.Organization == "" {
		return in, "title, description, category, status, deadline, and organization are required"
	}

	var ok bool
	if in.Category, ok = models.ParseCategory(req.Category); !ok {
		return in, "Invalid category"
	}
	if in.Status, ok = models.ParseOpportunityStatus(req.Status); !ok {
		return in, "Invalid status"
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return in, "Invalid deadline: " + err.Error()
	}
	in.Deadline = deadline

	if expires := optionalString(req.ExpiresAt); expires != nil {
		t, err := parseDate(*expires)
		if err != nil {
			return in, "Invalid expires_at: " + err.Error()
		}
		in.ExpiresAt = &t
	}

	return in, ""
}
