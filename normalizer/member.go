package normalizer

import (
	"regexp"
	"strings"
)

const visibilities = "+-#~"

var (
	colonExpr      = regexp.MustCompile(`\s*:\s*`)
	openExpr       = regexp.MustCompile(`\s*\(\s*`)
	closeExpr      = regexp.MustCompile(`\s*\)`)
	commaExpr      = regexp.MustCompile(`\s*,\s*`)
	modifierExpr   = regexp.MustCompile(`\{(?i:static|abstract|classifier|field|method)\}`)
	voidSuffixExpr = regexp.MustCompile(`\):\s*void$`)
)

// Member returns canonical text of a field or method declaration.
// Visibility defaults to '-' for fields and '+' for methods; an empty string is returned for blank input.
func Member(raw string, method bool) string {
	text := modifierExpr.ReplaceAllString(raw, "")
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	visibility := "-"
	if method || strings.Contains(text, "(") {
		visibility = "+"
	}
	if strings.ContainsRune(visibilities, rune(text[0])) {
		visibility = text[:1]
		text = strings.TrimSpace(text[1:])
	}
	if text == "" {
		return ""
	}
	text = colonExpr.ReplaceAllString(text, ": ")
	text = openExpr.ReplaceAllString(text, "(")
	text = closeExpr.ReplaceAllString(text, ")")
	text = commaExpr.ReplaceAllString(text, ", ")
	text = voidSuffixExpr.ReplaceAllString(text, ")")
	return visibility + " " + text
}

// members canonicalizes, de-duplicates and keeps first occurrence order
func members(fields, methods []string) ([]string, []string) {
	var values, keys []string
	seen := map[string]bool{}
	add := func(raw string, method bool) {
		value := Member(raw, method)
		if value == "" {
			return
		}
		key := fold(value)
		if seen[key] {
			return
		}
		seen[key] = true
		values = append(values, value)
		keys = append(keys, key)
	}
	for _, field := range fields {
		add(field, false)
	}
	for _, method := range methods {
		add(method, true)
	}
	return values, keys
}
