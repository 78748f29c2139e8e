package service

import (
	"strings"
	"unicode"
)

// Candidate extraction is a best-effort line heuristic over free-form model
// prose: bulleted or numbered lines are taken as recipe-name candidates, and
// so are short standalone title-looking lines. Prose sentences and section
// headings are skipped.
const maxTitleLength = 60

// ExtractCandidates pulls recipe-name candidates out of assistant text.
// Duplicates are removed, first occurrence wins.
func ExtractCandidates(text string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		stripped, listed := stripListPrefix(line)
		stripped = strings.Trim(stripped, "\"*_ ")
		if stripped == "" {
			continue
		}
		if !listed && !looksLikeTitle(stripped) {
			continue
		}
		if listed && !looksLikeTitle(stripped) {
			// Bulleted prose (long substitution explanations) is not a title.
			continue
		}

		key := strings.ToLower(stripped)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, stripped)
	}

	return out
}

// stripListPrefix removes a leading bullet or "1." / "1)" numbering and
// reports whether one was present.
func stripListPrefix(line string) (string, bool) {
	for _, bullet := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, bullet) {
			return strings.TrimSpace(line[len(bullet):]), true
		}
	}

	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(line) && (line[digits] == '.' || line[digits] == ')') {
		return strings.TrimSpace(line[digits+1:]), true
	}

	return line, false
}

func looksLikeTitle(s string) bool {
	if len(s) == 0 || len(s) > maxTitleLength {
		return false
	}

	first := []rune(s)[0]
	if !unicode.IsLetter(first) && !unicode.IsDigit(first) {
		return false
	}

	// Sentences and headings are not titles.
	switch s[len(s)-1] {
	case '.', '!', '?', ':', ',', ';':
		return false
	}

	return len(strings.Fields(s)) <= 8
}
