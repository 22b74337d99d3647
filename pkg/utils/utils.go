package utils

import "strings"

// EstimateTokens gives a rough token count for a prompt. The usual heuristic
// of 4 characters per token is close enough for sizing context windows.
func EstimateTokens(text string) int {
	return len(text) / 4
}

// TruncateForLog shortens long LLM payloads for log entries.
func TruncateForLog(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return strings.TrimSpace(text[:max]) + "..."
}
