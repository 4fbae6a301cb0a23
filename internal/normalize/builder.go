package normalize

import (
	"strings"

	"estatesync-listings/internal/models"
)

// BuildListing applies the scalar coercers to canonical-keyed raw fields and
// produces one fully typed listing record. Coercion never fails the record: an
// unparseable value degrades to the field's absent or default state.
func BuildListing(fields map[string]any) *models.Listing {
	listing := &models.Listing{
		Title:           stringField(fields, FieldTitle, models.DefaultTitle),
		Description:     stringField(fields, FieldDescription, ""),
		City:            stringField(fields, FieldCity, ""),
		Region:          stringField(fields, FieldRegion, ""),
		GoogleMapsLink:  stringField(fields, FieldGoogleMapsLink, ""),
		Floor:           stringField(fields, FieldFloor, ""),
		YearBuilt:       stringField(fields, FieldYearBuilt, ""),
		RenovatedYear:   stringField(fields, FieldRenovatedYear, ""),
		CreatedAt:       stringField(fields, FieldCreatedAt, ""),
		Status:          stringField(fields, FieldStatus, models.DefaultStatus),
		TransactionType: stringField(fields, FieldTransactionType, ""),
		PropertyType:    stringField(fields, FieldPropertyType, ""),
		Price:           CoerceFloat(fields[FieldPrice]),
		AreaSize:        CoerceFloat(fields[FieldAreaSize]),
		Bathrooms:       CoerceInt(fields[FieldBathrooms]),
		Bedrooms:        CoerceInt(fields[FieldBedrooms]),
		MainImage:       mainImage(fields[FieldMainImage]),
		GalleryImages:   gallery(fields[FieldGalleryImages]),
		Furnished:       CoerceBool(fields[FieldFurnished]),
		Parking:         CoerceBool(fields[FieldParking]),
		Elevator:        CoerceBool(fields[FieldElevator]),
		PetsAllowed:     CoerceBool(fields[FieldPetsAllowed]),
		AirConditioning: CoerceBool(fields[FieldAirConditioning]),
		Balcony:         CoerceBool(fields[FieldBalcony]),
		StorageRoom:     CoerceBool(fields[FieldStorageRoom]),
		SeaView:         CoerceBool(fields[FieldSeaView]),
	}
	return listing
}

func stringField(fields map[string]any, key, fallback string) string {
	s := strings.TrimSpace(asString(fields[key]))
	if s == "" {
		return fallback
	}
	return s
}

// mainImage takes the first element when the raw value is list-shaped,
// otherwise the trimmed raw string.
func mainImage(raw any) string {
	if isListShaped(raw) {
		items := CoerceStringList(raw)
		if len(items) == 0 {
			return ""
		}
		return items[0]
	}
	return strings.TrimSpace(asString(raw))
}

// gallery is always a list, never nil: blanks and duplicates are removed while
// submission order is preserved.
func gallery(raw any) []string {
	items := CoerceStringList(raw)
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func isListShaped(raw any) bool {
	switch v := raw.(type) {
	case []string, []any:
		return true
	case string:
		return strings.HasPrefix(strings.TrimSpace(v), "[")
	default:
		return false
	}
}
