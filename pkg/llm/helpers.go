package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/kaptinlin/jsonrepair"
)

// ExtractJSONFromResponse strips markdown code fences and surrounding prose
// from an LLM reply, returning the JSON payload.
func ExtractJSONFromResponse(response string) string {
	s := strings.TrimSpace(response)

	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
		s = strings.TrimPrefix(s, "json")
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
		return strings.TrimSpace(s)
	}

	// Fall back to the outermost brace or bracket pair.
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	end := strings.LastIndexAny(s, "}]")
	if end < start {
		return s[start:]
	}
	return s[start : end+1]
}

// DecodeJSONResponse unmarshals an LLM reply into target, attempting a repair
// pass when the payload is not valid JSON.
func DecodeJSONResponse(response string, target any) error {
	payload := ExtractJSONFromResponse(response)

	if err := json.Unmarshal([]byte(payload), target); err == nil {
		return nil
	}

	repaired, err := jsonrepair.JSONRepair(payload)
	if err != nil {
		return fmt.Errorf("failed to repair JSON response: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), target); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}
