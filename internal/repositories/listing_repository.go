package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"estatesync-listings/internal/models"
)

const listingColumns = `id, title, description, city, region, google_maps_link, floor,
	year_built, renovated_year, created_at, status, transaction_type, property_type,
	price, area_size, bathrooms, bedrooms, main_image, gallery_images,
	furnished, parking, elevator, pets_allowed, air_conditioning, balcony, storage_room, sea_view`

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) ListingRepository {
	return &listingRepository{db: db}
}

// Create persists a new record. The id is assigned here, exactly once; the
// auto-increment seq column records insertion order for newest-first reads.
func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	listing.ID = uuid.New().String()

	gallery, err := json.Marshal(listing.GalleryImages)
	if err != nil {
		return fmt.Errorf("failed to encode gallery: %v", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO listings (`+listingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		listing.ID, listing.Title, listing.Description, listing.City, listing.Region,
		listing.GoogleMapsLink, listing.Floor, listing.YearBuilt, listing.RenovatedYear,
		listing.CreatedAt, listing.Status, listing.TransactionType, listing.PropertyType,
		listing.Price, listing.AreaSize, listing.Bathrooms, listing.Bedrooms,
		listing.MainImage, string(gallery),
		listing.Furnished, listing.Parking, listing.Elevator, listing.PetsAllowed,
		listing.AirConditioning, listing.Balcony, listing.StorageRoom, listing.SeaView,
	)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %v", err)
	}
	return nil
}

func (r *listingRepository) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE id = ?`, id)

	listing, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query listing: %v", err)
	}
	return listing, nil
}

func (r *listingRepository) FindAll(ctx context.Context) ([]models.Listing, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+listingColumns+` FROM listings ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %v", err)
	}
	defer rows.Close()

	listings := []models.Listing{}
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %v", err)
		}
		listings = append(listings, *listing)
	}
	return listings, rows.Err()
}

func (r *listingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count listings: %v", err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*models.Listing, error) {
	var listing models.Listing
	var gallery sql.NullString

	err := row.Scan(
		&listing.ID, &listing.Title, &listing.Description, &listing.City, &listing.Region,
		&listing.GoogleMapsLink, &listing.Floor, &listing.YearBuilt, &listing.RenovatedYear,
		&listing.CreatedAt, &listing.Status, &listing.TransactionType, &listing.PropertyType,
		&listing.Price, &listing.AreaSize, &listing.Bathrooms, &listing.Bedrooms,
		&listing.MainImage, &gallery,
		&listing.Furnished, &listing.Parking, &listing.Elevator, &listing.PetsAllowed,
		&listing.AirConditioning, &listing.Balcony, &listing.StorageRoom, &listing.SeaView,
	)
	if err != nil {
		return nil, err
	}

	// Never hand back the raw JSON artifact: the gallery is always a list.
	listing.GalleryImages = []string{}
	if gallery.Valid && gallery.String != "" {
		if err := json.Unmarshal([]byte(gallery.String), &listing.GalleryImages); err != nil {
			listing.GalleryImages = []string{}
		}
	}
	if listing.GalleryImages == nil {
		listing.GalleryImages = []string{}
	}
	return &listing, nil
}
