package generate

import (
	"encoding/json"
	"strings"
)

// stripFences removes markdown code-fence markup that models wrap JSON
// responses in, then trims whitespace. An empty response normalizes to
// the empty JSON object.
func stripFences(raw string) string {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return "{}"
	}
	return clean
}

// decodeJSON strips fences from raw model text and decodes the result
// into v. A decode failure is reported as an UnparsableError so callers
// can tell a schema violation apart from a transport failure.
func decodeJSON(raw string, v any) error {
	clean := stripFences(raw)
	if err := json.Unmarshal([]byte(clean), v); err != nil {
		return &UnparsableError{Raw: clean, Err: err}
	}
	return nil
}
