package stage

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// decodeJSONObject pulls a JSON object out of an LLM response. Models wrap
// JSON in prose or code fences often enough that a plain Unmarshal is not
// reliable: try the raw text, then fenced blocks, then the outermost braces.
func decodeJSONObject(text string, out any) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("empty response")
	}

	if err := json.Unmarshal([]byte(text), out); err == nil {
		return nil
	}

	if fenced := extractFencedBlock(text); fenced != "" {
		if err := json.Unmarshal([]byte(fenced), out); err == nil {
			return nil
		}
	}

	if match := jsonObjectRe.FindString(text); match != "" {
		return json.Unmarshal([]byte(match), out)
	}

	return errors.New("no JSON object in response")
}

// extractFencedBlock returns the body of the first ```json or ``` fence.
func extractFencedBlock(text string) string {
	marker := "```json"
	idx := strings.Index(text, marker)
	if idx < 0 {
		marker = "```"
		idx = strings.Index(text, marker)
		if idx < 0 {
			return ""
		}
	}
	rest := text[idx+len(marker):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}
