package llm

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Truncate shortens s to maxLen runes for log and error messages.
func Truncate(s string, maxLen int) string {
	if t, cut := TruncateRunes(s, maxLen); cut {
		return t + "..."
	}
	return s
}

// TruncateRunes keeps the first maxRunes runes of s. The bool reports whether
// anything was cut.
func TruncateRunes(s string, maxRunes int) (string, bool) {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s, false
	}
	runes := []rune(s)
	return string(runes[:maxRunes]), true
}

// StripFences removes a surrounding markdown code fence, which models add
// even when asked for raw JSON.
func StripFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		t = t[nl+1:]
	} else {
		t = ""
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}

// JSONObject returns the model output as raw JSON when it is a JSON object.
func JSONObject(s string) (json.RawMessage, bool) {
	t := StripFences(s)
	if !strings.HasPrefix(t, "{") || !json.Valid([]byte(t)) {
		return nil, false
	}
	return json.RawMessage(t), true
}
