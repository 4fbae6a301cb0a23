// internal/models/listing.go
package models

// Default values applied by the record builder when a submission omits a field.
const (
	DefaultTitle  = "Untitled listing"
	DefaultStatus = "available"
)

// Listing is the canonical record built from one webhook submission.
// Pointer fields are tri-state: nil means the submitter never provided a
// parseable value, which is distinct from an explicit zero/false.
type Listing struct {
	ID              string   `json:"id" db:"id"`
	Title           string   `json:"title" db:"title"`
	Description     string   `json:"description" db:"description"`
	City            string   `json:"city" db:"city"`
	Region          string   `json:"region" db:"region"`
	GoogleMapsLink  string   `json:"googleMapsLink" db:"google_maps_link"`
	Floor           string   `json:"floor" db:"floor"`
	YearBuilt       string   `json:"yearBuilt" db:"year_built"`
	RenovatedYear   string   `json:"renovatedYear" db:"renovated_year"`
	CreatedAt       string   `json:"createdAt" db:"created_at"`
	Status          string   `json:"status" db:"status"`
	TransactionType string   `json:"transactionType" db:"transaction_type"`
	PropertyType    string   `json:"propertyType" db:"property_type"`
	Price           *float64 `json:"price" db:"price"`
	AreaSize        *float64 `json:"areaSize" db:"area_size"`
	Bathrooms       *int     `json:"bathrooms" db:"bathrooms"`
	Bedrooms        *int     `json:"bedrooms" db:"bedrooms"`
	MainImage       string   `json:"mainImage" db:"main_image"`
	GalleryImages   []string `json:"galleryImages" db:"gallery_images"`
	Furnished       *bool    `json:"furnished" db:"furnished"`
	Parking         *bool    `json:"parking" db:"parking"`
	Elevator        *bool    `json:"elevator" db:"elevator"`
	PetsAllowed     *bool    `json:"petsAllowed" db:"pets_allowed"`
	AirConditioning *bool    `json:"airConditioning" db:"air_conditioning"`
	Balcony         *bool    `json:"balcony" db:"balcony"`
	StorageRoom     *bool    `json:"storageRoom" db:"storage_room"`
	SeaView         *bool    `json:"seaView" db:"sea_view"`
}

type ListingsResponse struct {
	Data  []Listing `json:"data"`
	Total int       `json:"total"`
}
