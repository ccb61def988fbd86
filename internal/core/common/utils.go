package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSON cleans and unmarshals a JSON string into a type T.
// It handles common LLM quirks: markdown code fences around the payload and
// extra prose before or after the object.
func ParseJSON[T any](response string) (T, error) {
	var zero T
	jsonStr := stripCodeFence(response)

	// Find first '{' and last '}'
	start := -1
	end := -1

	for i, c := range jsonStr {
		if c == '{' {
			start = i
			break
		}
	}
	for i := len(jsonStr) - 1; i >= 0; i-- {
		if c := jsonStr[i]; c == '}' {
			end = i + 1
			break
		}
	}

	if start != -1 && end != -1 && start < end {
		jsonStr = jsonStr[start:end]
	} else if start == -1 {
		return zero, fmt.Errorf("no JSON object found in response (missing '{')")
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w\nData: %s", err, jsonStr)
	}

	return result, nil
}

// stripCodeFence extracts the inner payload when the response is wrapped in a
// ```json (or bare ```) markdown fence. Responses without a fence pass through.
func stripCodeFence(s string) string {
	for _, marker := range []string{"```json", "```"} {
		idx := strings.Index(s, marker)
		if idx == -1 {
			continue
		}
		inner := s[idx+len(marker):]
		if closing := strings.Index(inner, "```"); closing != -1 {
			inner = inner[:closing]
		}
		return strings.TrimSpace(inner)
	}
	return s
}
