package normalizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	stereotypeExpr = regexp.MustCompile(`<<[^>]*>>|«[^»]*»`)
	folder         = cases.Fold()
)

// Key returns the matching form of an element name: stereotypes and quotes removed,
// NFC normalized, case folded and whitespace collapsed. A name made only of stereotypes
// or quotes keeps its folded text.
func Key(name string) string {
	stripped := stereotypeExpr.ReplaceAllString(name, " ")
	stripped = strings.NewReplacer(`"`, " ", "'", " ", "`", " ").Replace(stripped)
	if key := fold(stripped); key != "" {
		return key
	}
	return fold(name)
}

func fold(text string) string {
	text = norm.NFC.String(text)
	text = folder.String(text)
	return strings.Join(strings.Fields(text), " ")
}

func normalizeKind(kind string) string {
	kind = fold(kind)
	switch kind {
	case "":
		return "unknown"
	case "abstract class":
		return "abstract"
	case "enumeration":
		return "enum"
	}
	return kind
}
