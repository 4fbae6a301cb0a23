package normalize

import (
	"errors"
	"sort"
)

// ErrUnrecognizedPayload reports a top-level submission value that cannot be
// interpreted as a field-to-value mapping.
var ErrUnrecognizedPayload = errors.New("unrecognized payload shape")

// Normalizer rewrites an incoming webhook payload into canonical-keyed raw
// fields. It holds only the read-only synonym tables and is safe to share
// across requests.
type Normalizer struct {
	resolver *KeyResolver
}

func NewNormalizer() *Normalizer {
	return &Normalizer{resolver: NewKeyResolver()}
}

// DecodeObject interprets the top-level payload value. Form builders have
// been observed wrapping a single submission in a one-element array, so that
// shape is unwrapped. A nil payload or empty object decodes to an empty map,
// which the caller treats as an upstream health check rather than an error.
func (n *Normalizer) DecodeObject(payload any) (map[string]any, error) {
	switch v := payload.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case []any:
		if len(v) == 1 {
			if obj, ok := v[0].(map[string]any); ok {
				return obj, nil
			}
		}
		return nil, ErrUnrecognizedPayload
	default:
		return nil, ErrUnrecognizedPayload
	}
}

// Normalize resolves every incoming key to its canonical field and keeps the
// first value seen per field. Incoming keys are walked in sorted order and the
// synonym table breaks ties, so the result is deterministic for a given
// payload rather than depending on map iteration order.
func (n *Normalizer) Normalize(payload map[string]any) map[string]any {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(map[string]any, len(payload))

	// Nested upload metadata wins over any flat value that resolves to the
	// gallery field, regardless of key order.
	for _, k := range keys {
		if names := uploadFileNames(payload[k]); len(names) > 0 {
			fields[FieldGalleryImages] = names
			break
		}
	}

	for _, k := range keys {
		canonical, ok := n.resolver.Resolve(k)
		if !ok {
			continue // extra metadata fields are dropped silently
		}
		if _, seen := fields[canonical]; seen {
			continue
		}
		fields[canonical] = payload[k]
	}
	return fields
}

// uploadFileNames flattens a nested file-upload substructure: a mapping whose
// values hold lists of file-descriptor objects carrying a fileName attribute.
// The names keep their submission order; inner keys are walked sorted so the
// result is stable when several upload fields are present.
func uploadFileNames(raw any) []string {
	meta, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	innerKeys := make([]string, 0, len(meta))
	for k := range meta {
		innerKeys = append(innerKeys, k)
	}
	sort.Strings(innerKeys)

	var names []string
	for _, k := range innerKeys {
		descriptors, ok := meta[k].([]any)
		if !ok {
			continue
		}
		for _, d := range descriptors {
			obj, ok := d.(map[string]any)
			if !ok {
				continue
			}
			if name, ok := obj["fileName"].(string); ok && name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
