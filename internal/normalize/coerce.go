package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Boolean token sets cover native checkbox values, English and Greek yes/no
// words, and the "one"/"two" tokens emitted by older form-builder radio
// fields. Both radio encodings are live upstream, so both stay supported.
var (
	trueTokens = map[string]struct{}{
		"1": {}, "true": {}, "yes": {}, "on": {}, "y": {},
		"ναι": {}, "ναί": {},
		"one": {},
	}
	falseTokens = map[string]struct{}{
		"0": {}, "false": {}, "no": {}, "off": {}, "n": {},
		"όχι": {}, "οχι": {},
		"two": {},
	}
)

var currencyTokens = []string{"€", "$", "£", "EUR", "USD", "GBP", "eur", "usd", "gbp"}

// CoerceBool maps a raw field value onto the tri-state boolean domain.
// nil means the value was absent or not parseable as a boolean, which callers
// must keep distinct from an explicit false.
func CoerceBool(raw any) *bool {
	switch v := raw.(type) {
	case nil:
		return nil
	case bool:
		return boolPtr(v)
	case float64:
		if v == 1 {
			return boolPtr(true)
		}
		if v == 0 {
			return boolPtr(false)
		}
		return nil
	case int:
		return CoerceBool(float64(v))
	case string:
		token := strings.ToLower(strings.TrimSpace(v))
		if _, ok := trueTokens[token]; ok {
			return boolPtr(true)
		}
		if _, ok := falseTokens[token]; ok {
			return boolPtr(false)
		}
		return nil
	default:
		return nil
	}
}

// CoerceFloat parses a raw numeric field, tolerating thousands separators and
// currency symbols/codes ("1,200 EUR" -> 1200). Unparseable input yields nil,
// never an error.
func CoerceFloat(raw any) *float64 {
	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		return floatPtr(v)
	case float32:
		return floatPtr(float64(v))
	case int:
		return floatPtr(float64(v))
	case int64:
		return floatPtr(float64(v))
	case json.Number:
		return CoerceFloat(string(v))
	case string:
		cleaned := cleanNumeric(v)
		if cleaned == "" {
			return nil
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil
		}
		return floatPtr(f)
	default:
		return nil
	}
}

// CoerceInt behaves like CoerceFloat but truncates at the first decimal point
// rather than rounding, so "12.9" becomes 12.
func CoerceInt(raw any) *int {
	switch v := raw.(type) {
	case int:
		return intPtr(v)
	case int64:
		return intPtr(int(v))
	case float64:
		return intPtr(int(v))
	case float32:
		return intPtr(int(v))
	}

	f := CoerceFloat(raw)
	if f == nil {
		return nil
	}
	return intPtr(int(*f))
}

// CoerceStringList turns a raw field value into a trimmed list of strings.
// Lists never have an "unknown" state: absent or empty input is an empty
// slice, never nil. String input is tried as a JSON array first, then split
// on commas and newlines. The function is idempotent on clean lists.
func CoerceStringList(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		return cleanStrings(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, asString(item))
		}
		return cleanStrings(items)
	case string:
		return splitList(v)
	default:
		return splitList(asString(raw))
	}
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}

	// Forminator sometimes delivers the gallery as a JSON-encoded string.
	if strings.HasPrefix(s, "[") {
		var decoded []any
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			return CoerceStringList(decoded)
		}
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// cleanNumeric strips currency markers and thousands separators, keeping only
// the leading numeric run so trailing unit text does not break parsing.
func cleanNumeric(s string) string {
	for _, token := range currencyTokens {
		s = strings.ReplaceAll(s, token, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	end := 0
	for i, r := range s {
		if r >= '0' && r <= '9' || r == '.' || (i == 0 && r == '-') {
			end = i + 1
			continue
		}
		break
	}
	return s[:end]
}

// asString renders a scalar the way it appeared in the submission.
func asString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
