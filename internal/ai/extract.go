package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSON finds the first complete JSON object or array in a string.
// Models wrap answers in prose or markdown fences often enough that we
// never trust the raw text.
func extractJSON(s string) (string, error) {
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	start, closer := objStart, "}"
	if objStart == -1 || (arrStart != -1 && arrStart < objStart) {
		start, closer = arrStart, "]"
	}

	end := strings.LastIndex(s, closer)
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON payload found in response")
	}

	candidate := s[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", fmt.Errorf("response does not contain valid JSON")
	}
	return candidate, nil
}

// decodeResponse extracts the JSON payload from raw model text and
// unmarshals it into out.
func decodeResponse(raw string, out any) error {
	payload, err := extractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
