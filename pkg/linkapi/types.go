package linkapi

import "encoding/json"

// Result is a successful generate-link response.
// Fields holds every top-level member of the body untouched; Body is the
// compacted body itself.
type Result struct {
	Fields map[string]json.RawMessage
	Body   json.RawMessage
}
