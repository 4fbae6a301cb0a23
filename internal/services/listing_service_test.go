package services

import (
	"context"
	"fmt"
	"testing"

	"estatesync-listings/internal/models"
	"estatesync-listings/internal/normalize"
	"estatesync-listings/internal/validators"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryListingRepository keeps records in insertion order and serves reads
// newest-first, mirroring the SQL store's contract.
type memoryListingRepository struct {
	listings  []models.Listing
	createErr error
	findErr   error
}

func (m *memoryListingRepository) Create(_ context.Context, listing *models.Listing) error {
	if m.createErr != nil {
		return m.createErr
	}
	listing.ID = uuid.New().String()
	m.listings = append(m.listings, *listing)
	return nil
}

func (m *memoryListingRepository) FindByID(_ context.Context, id string) (*models.Listing, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for i := range m.listings {
		if m.listings[i].ID == id {
			found := m.listings[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryListingRepository) FindAll(_ context.Context) ([]models.Listing, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	out := make([]models.Listing, 0, len(m.listings))
	for i := len(m.listings) - 1; i >= 0; i-- {
		out = append(out, m.listings[i])
	}
	return out, nil
}

func (m *memoryListingRepository) Count(_ context.Context) (int64, error) {
	if m.findErr != nil {
		return 0, m.findErr
	}
	return int64(len(m.listings)), nil
}

func newTestService(repo *memoryListingRepository) *ListingService {
	return NewListingService(repo, validators.NewListingValidator())
}

func TestIngestSubmissionCreatesListing(t *testing.T) {
	repo := &memoryListingRepository{}
	svc := newTestService(repo)

	result, err := svc.IngestSubmission(context.Background(), map[string]any{
		"title":    "Seaside flat",
		"number-1": "1,200 EUR",
		"radio-3":  "one",
	})
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.NotEmpty(t, result.ListingID)

	require.Len(t, repo.listings, 1)
	stored := repo.listings[0]
	assert.Equal(t, result.ListingID, stored.ID)
	assert.Equal(t, "Seaside flat", stored.Title)
	assert.Equal(t, models.DefaultStatus, stored.Status)
	require.NotNil(t, stored.Price)
	assert.Equal(t, 1200.0, *stored.Price)
	require.NotNil(t, stored.Furnished)
	assert.True(t, *stored.Furnished)
}

func TestIngestSubmissionEmptyPayloadIsNoOp(t *testing.T) {
	repo := &memoryListingRepository{}
	svc := newTestService(repo)

	result, err := svc.IngestSubmission(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Empty(t, result.ListingID)
	assert.Empty(t, repo.listings, "health checks must not create records")

	result, err = svc.IngestSubmission(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Empty(t, repo.listings)
}

func TestIngestSubmissionRejectsUnrecognizedShape(t *testing.T) {
	repo := &memoryListingRepository{}
	svc := newTestService(repo)

	_, err := svc.IngestSubmission(context.Background(), "not an object")
	assert.ErrorIs(t, err, normalize.ErrUnrecognizedPayload)
	assert.Empty(t, repo.listings)
}

func TestIngestSubmissionStorageFailure(t *testing.T) {
	repo := &memoryListingRepository{createErr: fmt.Errorf("failed to insert listing: connection refused")}
	svc := newTestService(repo)

	_, err := svc.IngestSubmission(context.Background(), map[string]any{"title": "Flat"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert listing")
}

func TestGetListingsNewestFirst(t *testing.T) {
	repo := &memoryListingRepository{}
	svc := newTestService(repo)

	first, err := svc.IngestSubmission(context.Background(), map[string]any{"title": "First"})
	require.NoError(t, err)
	second, err := svc.IngestSubmission(context.Background(), map[string]any{"title": "Second"})
	require.NoError(t, err)

	resp, err := svc.GetListings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, second.ListingID, resp.Data[0].ID)
	assert.Equal(t, first.ListingID, resp.Data[1].ID)
}

func TestGetListingByID(t *testing.T) {
	repo := &memoryListingRepository{}
	svc := newTestService(repo)

	created, err := svc.IngestSubmission(context.Background(), map[string]any{"title": "Flat"})
	require.NoError(t, err)

	listing, err := svc.GetListingByID(context.Background(), created.ListingID)
	require.NoError(t, err)
	assert.Equal(t, "Flat", listing.Title)

	_, err = svc.GetListingByID(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing not found")
}
