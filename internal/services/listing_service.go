package services

import (
	"context"
	"fmt"

	"estatesync-listings/internal/models"
	"estatesync-listings/internal/normalize"
	"estatesync-listings/internal/repositories"
	"estatesync-listings/internal/validators"
	"estatesync-listings/pkg/metrics"
)

// ListingService runs the webhook pipeline: decode, normalize, build,
// validate, persist. The pipeline holds no per-request state; the store
// handle is the only collaborator that performs I/O.
type ListingService struct {
	repo       repositories.ListingRepository
	normalizer *normalize.Normalizer
	validator  validators.ListingValidator
}

func NewListingService(repo repositories.ListingRepository, validator validators.ListingValidator) *ListingService {
	return &ListingService{
		repo:       repo,
		normalizer: normalize.NewNormalizer(),
		validator:  validator,
	}
}

// IngestResult reports the outcome of one webhook submission. Created is
// false for the empty-payload health check, which succeeds without a record.
type IngestResult struct {
	ListingID string
	Created   bool
}

// IngestSubmission processes one raw webhook payload. Nothing is persisted
// unless the full record was built, so every error path leaves the store
// untouched.
func (s *ListingService) IngestSubmission(ctx context.Context, payload any) (*IngestResult, error) {
	obj, err := s.normalizer.DecodeObject(payload)
	if err != nil {
		metrics.WebhookSubmissionsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	if len(obj) == 0 {
		// The form builder probes connectivity with empty posts.
		metrics.WebhookSubmissionsTotal.WithLabelValues("empty").Inc()
		return &IngestResult{Created: false}, nil
	}

	fields := s.normalizer.Normalize(obj)
	listing := normalize.BuildListing(fields)

	if err := s.validator.ValidateCreate(listing); err != nil {
		metrics.WebhookSubmissionsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		metrics.WebhookSubmissionsTotal.WithLabelValues("storage_error").Inc()
		return nil, err
	}

	metrics.WebhookSubmissionsTotal.WithLabelValues("created").Inc()
	return &IngestResult{ListingID: listing.ID, Created: true}, nil
}

// GetListings returns all stored records, newest submission first.
func (s *ListingService) GetListings(ctx context.Context) (*models.ListingsResponse, error) {
	listings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ListingsResponse{Data: listings, Total: int(total)}, nil
}

func (s *ListingService) GetListingByID(ctx context.Context, id string) (*models.Listing, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("listing not found")
	}
	return listing, nil
}
