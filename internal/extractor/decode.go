package extractor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
)

// decodeDocument parses model output, tolerating code fences and stray prose
// around the JSON object.
func decodeDocument(content string) (*pdd.Document, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, errors.New("empty payload")
	}

	doc, directErr := pdd.Decode([]byte(trimmed))
	if directErr == nil {
		return doc, nil
	}

	sanitized := sanitizeJSONPayload(trimmed)
	if sanitized == "" || sanitized == trimmed {
		return nil, fmt.Errorf("%w (payload snippet: %s)", directErr, snippet(trimmed))
	}

	doc, err := pdd.Decode([]byte(sanitized))
	if err != nil {
		return nil, fmt.Errorf("%w (sanitized payload snippet: %s)", err, snippet(sanitized))
	}
	return doc, nil
}

func sanitizeJSONPayload(content string) string {
	trimmed := strings.TrimSpace(stripCodeFence(content))
	if trimmed == "" {
		return ""
	}
	if trimmed[0] == '{' {
		return trimmed
	}
	if start := strings.Index(trimmed, "{"); start >= 0 {
		if end := strings.LastIndex(trimmed, "}"); end > start {
			return strings.TrimSpace(trimmed[start : end+1])
		}
	}
	return trimmed
}

func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if nl := strings.Index(trimmed, "\n"); nl >= 0 {
		trimmed = trimmed[nl+1:]
	}
	if end := strings.LastIndex(trimmed, "```"); end >= 0 {
		trimmed = trimmed[:end]
	}
	return strings.TrimSpace(trimmed)
}

func snippet(content string) string {
	const limit = 200
	content = strings.Join(strings.Fields(content), " ")
	if len(content) <= limit {
		return content
	}
	return content[:limit] + "..."
}
