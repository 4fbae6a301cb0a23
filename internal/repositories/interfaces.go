package repositories

import (
	"context"

	"estatesync-listings/internal/models"
)

// ListingRepository is the persistence contract for listing records. Records
// are append-only: they are created once per webhook submission and only read
// afterwards. Create assigns the id; FindAll returns newest-first.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	FindByID(ctx context.Context, id string) (*models.Listing, error)
	FindAll(ctx context.Context) ([]models.Listing, error)
	Count(ctx context.Context) (int64, error)
}
