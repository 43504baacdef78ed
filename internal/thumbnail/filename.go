package thumbnail

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
)

// FileName returns the image name for a step: step-1_0.jpg, substep-1_2.jpg.
func FileName(kind pdd.TargetKind, numbering string) string {
	return fmt.Sprintf("%s-%s.jpg", kind, sanitize(numbering))
}

func sanitize(numbering string) string {
	numbering = strings.TrimSpace(numbering)
	if numbering == "" {
		return "unnumbered"
	}
	var b strings.Builder
	for _, r := range numbering {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// uniqueName appends -2, -3, ... when the model repeats a numbering.
func uniqueName(used map[string]int, name string) string {
	used[name]++
	n := used[name]
	if n == 1 {
		return name
	}
	ext := ".jpg"
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), n, ext)
}
