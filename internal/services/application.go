package services

//go:generate mockgen -source=application.go -destination=application_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/logger"
	"github.com/sbilibin2017/gw-career-opportunities/internal/metrics"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/repositories"
)

var (
	// ErrOpportunityNotActive is returned when applying to an opportunity
	// that does not exist or is not ACTIVE.
	ErrOpportunityNotActive = errors.New("opportunity not found or not active")
	// ErrAlreadyApplied is returned on a second application to the same opportunity.
	ErrAlreadyApplied = errors.New("already applied to this opportunity")
	// ErrApplicationNotFound is returned when no application of the user has the given id.
	ErrApplicationNotFound = errors.New("application not found")
)

// ApplicationReader defines read operations for applications.
type ApplicationReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ApplicationSummary, error)
}

// ApplicationWriter defines write operations for applications.
type ApplicationWriter interface {
	Create(ctx context.Context, id, userID, opportunityID uuid.UUID) (*models.Application, error)
	UpdateStatus(ctx context.Context, id, userID uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
}

// ApplicationService handles student applications.
type ApplicationService struct {
	reader  ApplicationReader
	writer  ApplicationWriter
	cache   UserListingInvalidator
	metrics *metrics.ListingCacheMetrics
	events  eventPublisher
}

// NewApplicationService creates a new ApplicationService. m and kafkaWriter may be nil.
func NewApplicationService(
	reader ApplicationReader,
	writer ApplicationWriter,
	cache UserListingInvalidator,
	m *metrics.ListingCacheMetrics,
	kafkaWriter KafkaWriter,
) *ApplicationService {
	return &ApplicationService{
		reader:  reader,
		writer:  writer,
		cache:   cache,
		metrics: m,
		events:  eventPublisher{writer: kafkaWriter},
	}
}

// Apply records an APPLIED application of userID to an ACTIVE opportunity.
func (s *ApplicationService) Apply(ctx context.Context, userID, opportunityID uuid.UUID) (*models.Application, error) {
	app, err := s.writer.Create(ctx, uuid.New(), userID, opportunityID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrOpportunityNotActive
		case errors.Is(err, repositories.ErrAlreadyExists):
			return nil, ErrAlreadyApplied
		}
		logger.Log.Errorw("failed to apply", "userID", userID, "opportunityID", opportunityID, "error", err)
		return nil, err
	}

	invalidateUserListings(ctx, s.cache, s.metrics, userID)
	s.publish(ctx, models.EventApplicationSubmitted, app)

	return app, nil
}

// ListMine returns the user's applications, most recent first.
func (s *ApplicationService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.ApplicationSummary, error) {
	items, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list applications", "userID", userID, "error", err)
		return nil, err
	}
	if items == nil {
		items = []models.ApplicationSummary{}
	}
	return items, nil
}

// UpdateStatus changes the status of an application owned by userID.
func (s *ApplicationService) UpdateStatus(ctx context.Context, userID, applicationID uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	app, err := s.writer.UpdateStatus(ctx, applicationID, userID, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		logger.Log.Errorw("failed to update application status", "applicationID", applicationID, "error", err)
		return nil, err
	}

	s.publish(ctx, models.EventApplicationStatusChanged, app)

	return app, nil
}

func (s *ApplicationService) publish(ctx context.Context, eventType string, app *models.Application) {
	event := newEvent(eventType, app.UserID)
	event.OpportunityID = app.OpportunityID.String()
	event.ApplicationID = app.ID.String()
	event.Status = string(app.Status)
	s.events.publish(ctx, app.ID.String(), event)
}
