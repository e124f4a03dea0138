package render

import (
	"encoding/json"
	"fmt"
)

// EmbedJSON serializes a value for inlining inside a <script> block.
// encoding/json escapes <, >, and & to \u003c-style sequences by
// default, which prevents a literal "</script>" in the data from
// terminating the surrounding tag. Callers must still pass sanitized
// data (folder paths stripped); this handles only the script context.
func EmbedJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize embed data: %w", err)
	}
	return string(data), nil
}
