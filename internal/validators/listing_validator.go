package validators

import (
	"fmt"

	"estatesync-listings/internal/models"
)

type listingValidator struct{}

func NewListingValidator() ListingValidator {
	return &listingValidator{}
}

// ValidateCreate checks the invariants the record builder must uphold before
// anything touches the store. Field-level coercion misses are not validation
// errors; only a record that violates its own contract is rejected.
func (v *listingValidator) ValidateCreate(listing *models.Listing) error {
	if listing.Title == "" {
		return fmt.Errorf("listing title is required")
	}
	if listing.Status == "" {
		return fmt.Errorf("listing status is required")
	}
	if listing.GalleryImages == nil {
		return fmt.Errorf("gallery images must be a list, not null")
	}
	return nil
}
