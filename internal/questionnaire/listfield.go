package questionnaire

import (
	"fmt"
	"strings"
)

// ParseList splits a comma-separated text input into a list answer, trimming
// each segment. Empty segments are kept out so "A,,B" yields two entries.
func ParseList(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{}
	}

	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatList joins a list answer back into display text with ", ".
func FormatList(items []string) string {
	return strings.Join(items, ", ")
}

// optionValue and optionLabel name freshly appended select options.
func optionValue(n int) string {
	return fmt.Sprintf("option_%d", n)
}

func optionLabel(n int) string {
	return fmt.Sprintf("Opção %d", n)
}
