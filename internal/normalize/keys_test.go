package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyResolverResolve(t *testing.T) {
	r := NewKeyResolver()

	tests := []struct {
		name string
		key  string
		want string
		ok   bool
	}{
		{"canonical name", "price", FieldPrice, true},
		{"exact machine id", "number-1", FieldPrice, true},
		{"snake case header", "area_size", FieldAreaSize, true},
		{"case insensitive", "Bedrooms", FieldBedrooms, true},
		{"upper snake", "GALLERY_IMAGES", FieldGalleryImages, true},
		{"greek label", "Τιμή", FieldPrice, true},
		{"greek label lowercased", "τιμή", FieldPrice, true},
		{"spaced label", "Year Built", FieldYearBuilt, true},
		{"hyphenated variant", "sea-view", FieldSeaView, true},
		{"punctuation stripped", "pets allowed?", FieldPetsAllowed, true},
		{"checkbox id", "checkbox-5", FieldAirConditioning, true},
		{"radio id", "radio-7", FieldAirConditioning, true},
		{"unrecognized", "referrer_url", "", false},
		{"empty key", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Two resolvers built independently must agree on every synonym; the tables
// are deterministic regardless of construction timing.
func TestKeyResolverDeterministic(t *testing.T) {
	a := NewKeyResolver()
	b := NewKeyResolver()

	for _, entry := range fieldTable {
		for _, syn := range entry.synonyms {
			gotA, okA := a.Resolve(syn)
			gotB, okB := b.Resolve(syn)
			assert.True(t, okA, "synonym %q must resolve", syn)
			assert.Equal(t, okA, okB)
			assert.Equal(t, gotA, gotB, "resolvers disagree on %q", syn)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Year Built", "year_built"},
		{"year-built", "year_built"},
		{"  YEAR__BUILT  ", "year_built"},
		{"google maps/link", "google_maps_link"},
		{"pets allowed?", "pets_allowed"},
		{"Τιμή", "τιμή"},
		{"Θέα Θάλασσα", "θέα_θάλασσα"},
		{"upload-2", "upload_2"},
		{"___", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeKey(tt.in), "NormalizeKey(%q)", tt.in)
	}
}
