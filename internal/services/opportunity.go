package services

//go:generate mockgen -source=opportunity.go -destination=opportunity_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/logger"
	"github.com/sbilibin2017/gw-career-opportunities/internal/metrics"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/repositories"
)

var (
	// ErrOpportunityNotFound is returned when no opportunity has the requested id.
	ErrOpportunityNotFound = errors.New("opportunity not found")
)

// OpportunityReader defines read operations for opportunities.
type OpportunityReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Opportunity, error)
	CountActive(ctx context.Context, q models.ListingQuery) (int, error)
	ListActive(ctx context.Context, q models.ListingQuery) ([]models.OpportunityListItem, error)
}

// OpportunityWriter defines write operations for opportunities.
type OpportunityWriter interface {
	Create(ctx context.Context, id, createdBy uuid.UUID, in models.OpportunityInput) (*models.Opportunity, error)
	Update(ctx context.Context, id uuid.UUID, in models.OpportunityInput) (*models.Opportunity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OpportunityService serves the cached opportunity listing and the admin
// mutations that invalidate it.
type OpportunityService struct {
	reader  OpportunityReader
	writer  OpportunityWriter
	cache   ListingCache
	metrics *metrics.ListingCacheMetrics
	events  eventPublisher
}

// NewOpportunityService creates a new OpportunityService. m and kafkaWriter may be nil.
func NewOpportunityService(
	reader OpportunityReader,
	writer OpportunityWriter,
	cache ListingCache,
	m *metrics.ListingCacheMetrics,
	kafkaWriter KafkaWriter,
) *OpportunityService {
	return &OpportunityService{
		reader:  reader,
		writer:  writer,
		cache:   cache,
		metrics: m,
		events:  eventPublisher{writer: kafkaWriter},
	}
}

// Create stores a new opportunity posted by adminID.
func (s *OpportunityService) Create(ctx context.Context, adminID uuid.UUID, in models.OpportunityInput) (*models.Opportunity, error) {
	opp, err := s.writer.Create(ctx, uuid.New(), adminID, in)
	if err != nil {
		logger.Log.Errorw("failed to create opportunity", "adminID", adminID, "error", err)
		return nil, err
	}

	s.invalidateListings(ctx)
	s.publish(ctx, models.EventOpportunityCreated, adminID, opp)

	return opp, nil
}

// Update overwrites every field of opportunity id.
func (s *OpportunityService) Update(ctx context.Context, adminID, id uuid.UUID, in models.OpportunityInput) (*models.Opportunity, error) {
	opp, err := s.writer.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOpportunityNotFound
		}
		logger.Log.Errorw("failed to update opportunity", "id", id, "error", err)
		return nil, err
	}

	s.invalidateListings(ctx)
	s.publish(ctx, models.EventOpportunityUpdated, adminID, opp)

	return opp, nil
}

// Delete removes opportunity id together with its applications and bookmarks.
func (s *OpportunityService) Delete(ctx context.Context, adminID, id uuid.UUID) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOpportunityNotFound
		}
		logger.Log.Errorw("failed to delete opportunity", "id", id, "error", err)
		return err
	}

	s.invalidateListings(ctx)
	s.publish(ctx, models.EventOpportunityDeleted, adminID, &models.Opportunity{ID: id})

	return nil
}

// GetByID returns one opportunity in any status.
func (s *OpportunityService) GetByID(ctx context.Context, id uuid.UUID) (*models.Opportunity, error) {
	opp, err := s.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOpportunityNotFound
		}
		logger.Log.Errorw("failed to get opportunity", "id", id, "error", err)
		return nil, err
	}
	return opp, nil
}

// List returns one page of active opportunities for q.UserID, serving it
// from the cache when a page for the same parameters and generations is
// stored. Cache failures never fail the read.
func (s *OpportunityService) List(ctx context.Context, q models.ListingQuery) (*models.OpportunityPage, error) {
	gen, err := s.cache.GetGeneration(ctx, q.UserID)
	if err != nil {
		logger.Log.Errorw("failed to read listing generation, bypassing cache", "userID", q.UserID, "error", err)
		s.metrics.IncError()
		return s.listFromStore(ctx, q)
	}

	key := ListingCacheKey(gen, q)

	data, found, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		logger.Log.Errorw("failed to read listing cache", "key", key, "error", err)
		s.metrics.IncError()
	case found:
		var page models.OpportunityPage
		if err := json.Unmarshal(data, &page); err == nil {
			s.metrics.IncHit()
			return &page, nil
		}
		logger.Log.Errorw("discarding corrupt listing cache entry", "key", key, "error", err)
		s.metrics.IncError()
	}

	s.metrics.IncMiss()

	page, err := s.listFromStore(ctx, q)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(page)
	if err != nil {
		logger.Log.Errorw("failed to marshal listing page", "key", key, "error", err)
		return page, nil
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		logger.Log.Errorw("failed to write listing cache", "key", key, "error", err)
		s.metrics.IncError()
	}

	return page, nil
}

func (s *OpportunityService) listFromStore(ctx context.Context, q models.ListingQuery) (*models.OpportunityPage, error) {
	total, err := s.reader.CountActive(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to count opportunities", "error", err)
		return nil, fmt.Errorf("count opportunities: %w", err)
	}

	items, err := s.reader.ListActive(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to list opportunities", "error", err)
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	if items == nil {
		items = []models.OpportunityListItem{}
	}

	return &models.OpportunityPage{
		Opportunities: items,
		TotalCount:    total,
		TotalPages:    totalPages(total, q.PageSize),
		CurrentPage:   q.Page,
	}, nil
}

// totalPages returns ceil(total / pageSize).
func totalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// invalidateListings orphans every cached listing page after a committed
// opportunity mutation.
func (s *OpportunityService) invalidateListings(ctx context.Context) {
	if err := s.cache.BumpGlobalGeneration(context.WithoutCancel(ctx)); err != nil {
		logger.Log.Errorw("failed to invalidate listing cache", "error", err)
		s.metrics.IncInvalidationFailure()
		return
	}
	s.metrics.IncInvalidation()
}

func (s *OpportunityService) publish(ctx context.Context, eventType string, adminID uuid.UUID, opp *models.Opportunity) {
	event := newEvent(eventType, adminID)
	event.OpportunityID = opp.ID.String()
	event.Status = string(opp.Status)
	s.events.publish(ctx, opp.ID.String(), event)
}
