package normalize

import (
	"strings"
	"unicode"
)

// Canonical field names of the listing record.
const (
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldCity            = "city"
	FieldRegion          = "region"
	FieldGoogleMapsLink  = "googleMapsLink"
	FieldFloor           = "floor"
	FieldYearBuilt       = "yearBuilt"
	FieldRenovatedYear   = "renovatedYear"
	FieldCreatedAt       = "createdAt"
	FieldStatus          = "status"
	FieldTransactionType = "transactionType"
	FieldPropertyType    = "propertyType"
	FieldPrice           = "price"
	FieldAreaSize        = "areaSize"
	FieldBathrooms       = "bathrooms"
	FieldBedrooms        = "bedrooms"
	FieldMainImage       = "mainImage"
	FieldGalleryImages   = "galleryImages"
	FieldFurnished       = "furnished"
	FieldParking         = "parking"
	FieldElevator        = "elevator"
	FieldPetsAllowed     = "petsAllowed"
	FieldAirConditioning = "airConditioning"
	FieldBalcony         = "balcony"
	FieldStorageRoom     = "storageRoom"
	FieldSeaView         = "seaView"
)

type fieldSynonyms struct {
	canonical string
	synonyms  []string
}

// fieldTable is the single declarative mapping from incoming key names to
// canonical fields. Synonyms per field cover the canonical name itself,
// snake_case CSV headers, English and Greek form labels, and the opaque
// machine IDs of the two form-builder configurations still sending webhooks.
// Declaration order is the deterministic tie-break: when two fields could
// claim the same normalized key, the one declared first wins.
var fieldTable = []fieldSynonyms{
	{FieldTitle, []string{"title", "property_title", "listing_title", "Τίτλος", "Τίτλος Αγγελίας", "name-1"}},
	{FieldDescription, []string{"description", "property_description", "Περιγραφή", "textarea-1"}},
	{FieldCity, []string{"city", "Πόλη", "text-1"}},
	{FieldRegion, []string{"region", "Περιοχή", "text-2"}},
	{FieldGoogleMapsLink, []string{"google_maps_link", "google_maps", "maps_link", "Χάρτης", "url-1"}},
	{FieldFloor, []string{"floor", "Όροφος", "text-3"}},
	{FieldYearBuilt, []string{"year_built", "construction_year", "Έτος Κατασκευής", "number-2"}},
	{FieldRenovatedYear, []string{"renovated_year", "renovation_year", "Έτος Ανακαίνισης", "number-3"}},
	{FieldCreatedAt, []string{"created_at", "submission_date", "Ημερομηνία", "date-1"}},
	{FieldStatus, []string{"status", "Κατάσταση", "select-2"}},
	{FieldTransactionType, []string{"transaction_type", "transaction", "Πώληση ή Ενοικίαση", "select-1", "radio-2"}},
	{FieldPropertyType, []string{"property_type", "type", "Είδος Ακινήτου", "select-3"}},
	{FieldPrice, []string{"price", "price_eur", "Τιμή", "number-1"}},
	{FieldAreaSize, []string{"area_size", "area", "size", "sqm", "square_meters", "Τετραγωνικά", "number-4"}},
	{FieldBathrooms, []string{"bathrooms", "Μπάνια", "number-5"}},
	{FieldBedrooms, []string{"bedrooms", "Υπνοδωμάτια", "number-6"}},
	{FieldMainImage, []string{"main_image", "cover_image", "Κύρια Φωτογραφία", "upload-1"}},
	{FieldGalleryImages, []string{"gallery_images", "gallery", "images", "photos", "Φωτογραφίες", "upload-2"}},
	{FieldFurnished, []string{"furnished", "Επιπλωμένο", "checkbox-1", "radio-3"}},
	{FieldParking, []string{"parking", "Πάρκινγκ", "checkbox-2", "radio-4"}},
	{FieldElevator, []string{"elevator", "lift", "Ασανσέρ", "checkbox-3", "radio-5"}},
	{FieldPetsAllowed, []string{"pets_allowed", "pets", "Κατοικίδια", "checkbox-4", "radio-6"}},
	{FieldAirConditioning, []string{"air_conditioning", "aircondition", "ac", "Κλιματισμός", "checkbox-5", "radio-7"}},
	{FieldBalcony, []string{"balcony", "Μπαλκόνι", "checkbox-6", "radio-8"}},
	{FieldStorageRoom, []string{"storage_room", "storage", "Αποθήκη", "checkbox-7", "radio-9"}},
	{FieldSeaView, []string{"sea_view", "Θέα Θάλασσα", "checkbox-8", "radio-10"}},
}

// KeyResolver maps arbitrary incoming field names to canonical field names.
// The lookup tables are built once from fieldTable and are read-only
// afterwards, so a single resolver is safe for concurrent use.
type KeyResolver struct {
	exact      map[string]string
	folded     map[string]string
	normalized map[string]string
}

func NewKeyResolver() *KeyResolver {
	r := &KeyResolver{
		exact:      make(map[string]string),
		folded:     make(map[string]string),
		normalized: make(map[string]string),
	}
	for _, entry := range fieldTable {
		for _, syn := range entry.synonyms {
			putFirst(r.exact, syn, entry.canonical)
			putFirst(r.folded, strings.ToLower(syn), entry.canonical)
			putFirst(r.normalized, NormalizeKey(syn), entry.canonical)
		}
	}
	return r
}

// putFirst keeps the earliest table entry so declaration order decides
// collisions between synonyms of different fields.
func putFirst(m map[string]string, key, canonical string) {
	if key == "" {
		return
	}
	if _, exists := m[key]; !exists {
		m[key] = canonical
	}
}

// Resolve returns the canonical field for an incoming key. Matching is tried
// exact first, then case-insensitive, then against normalized forms. Keys that
// match nothing are reported as unrecognized and dropped by the caller.
func (r *KeyResolver) Resolve(key string) (string, bool) {
	if canonical, ok := r.exact[key]; ok {
		return canonical, true
	}
	if canonical, ok := r.folded[strings.ToLower(key)]; ok {
		return canonical, true
	}
	if canonical, ok := r.normalized[NormalizeKey(key)]; ok {
		return canonical, true
	}
	return "", false
}

// NormalizeKey lowercases a key, collapses runs of whitespace, hyphens,
// underscores and slashes to single underscores, and strips punctuation
// outside the Latin and Greek ranges used by the supported form labels.
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))

	var b strings.Builder
	b.Grow(len(key))
	pendingSep := false
	for _, r := range key {
		switch {
		case r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/':
			pendingSep = true
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.Is(unicode.Greek, r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		}
	}
	return b.String()
}
