package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeObject(t *testing.T) {
	n := NewNormalizer()

	t.Run("plain object", func(t *testing.T) {
		obj, err := n.DecodeObject(map[string]any{"title": "Flat"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"title": "Flat"}, obj)
	})

	t.Run("single element array unwraps", func(t *testing.T) {
		obj, err := n.DecodeObject([]any{map[string]any{"title": "Flat"}})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"title": "Flat"}, obj)
	})

	t.Run("nil is an empty submission", func(t *testing.T) {
		obj, err := n.DecodeObject(nil)
		require.NoError(t, err)
		assert.Empty(t, obj)
	})

	t.Run("multi element array rejected", func(t *testing.T) {
		_, err := n.DecodeObject([]any{map[string]any{}, map[string]any{}})
		assert.ErrorIs(t, err, ErrUnrecognizedPayload)
	})

	t.Run("scalar rejected", func(t *testing.T) {
		_, err := n.DecodeObject("just a string")
		assert.ErrorIs(t, err, ErrUnrecognizedPayload)
	})
}

func TestNormalizeFirstValueWins(t *testing.T) {
	n := NewNormalizer()

	// "number-1" and "price" both resolve to the price field; keys are walked
	// in sorted order so "number-1" is seen first, every time.
	fields := n.Normalize(map[string]any{
		"price":    "999",
		"number-1": "250000",
	})
	assert.Equal(t, "250000", fields[FieldPrice])
}

func TestNormalizeDropsUnrecognizedKeys(t *testing.T) {
	n := NewNormalizer()

	fields := n.Normalize(map[string]any{
		"title":        "Seaside flat",
		"referrer_url": "https://example.com",
		"_wp_nonce":    "abc123",
	})
	assert.Equal(t, map[string]any{FieldTitle: "Seaside flat"}, fields)
}

func TestNormalizeUploadMetadataWins(t *testing.T) {
	n := NewNormalizer()

	fields := n.Normalize(map[string]any{
		"gallery_images": "stale.jpg",
		"fileMeta": map[string]any{
			"upload-2": []any{
				map[string]any{"fileName": "a.jpg", "fileSize": float64(1024)},
				map[string]any{"fileName": "b.jpg"},
			},
		},
	})
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, fields[FieldGalleryImages])
}

func TestNormalizeGreekLabels(t *testing.T) {
	n := NewNormalizer()

	fields := n.Normalize(map[string]any{
		"Τίτλος":     "Διαμέρισμα στο κέντρο",
		"Τιμή":       "120,000 €",
		"Πάρκινγκ":   "ναι",
		"Θέα Θάλασσα": "όχι",
	})
	assert.Equal(t, "Διαμέρισμα στο κέντρο", fields[FieldTitle])
	assert.Equal(t, "120,000 €", fields[FieldPrice])
	assert.Equal(t, "ναι", fields[FieldParking])
	assert.Equal(t, "όχι", fields[FieldSeaView])
}

func TestUploadFileNames(t *testing.T) {
	t.Run("not a map", func(t *testing.T) {
		assert.Nil(t, uploadFileNames("plain value"))
	})

	t.Run("map without descriptors", func(t *testing.T) {
		assert.Nil(t, uploadFileNames(map[string]any{"title": "Flat"}))
	})

	t.Run("descriptors without names skipped", func(t *testing.T) {
		names := uploadFileNames(map[string]any{
			"upload-2": []any{
				map[string]any{"fileSize": float64(10)},
				map[string]any{"fileName": "kept.jpg"},
			},
		})
		assert.Equal(t, []string{"kept.jpg"}, names)
	})
}
