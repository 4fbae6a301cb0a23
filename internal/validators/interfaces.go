package validators

import (
	"estatesync-listings/internal/models"
)

type ListingValidator interface {
	ValidateCreate(listing *models.Listing) error
}
