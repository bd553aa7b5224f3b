package pairing

import (
	"path"
	"regexp"
	"strconv"
	"strings"
)

var unsafeExpr = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// File represents loaded diagram file
type File struct {
	Label    string // Original base name
	Name     string // Sanitized, unique within a load
	URL      string
	Size     int64
	Checksum string
	Data     []byte
}

// Stem returns case folded label without extension, used for pairing
func (f *File) Stem() string {
	return stemOf(f.Label)
}

// Sanitize replaces characters outside [A-Za-z0-9._-] with underscore
func Sanitize(name string) string {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" {
		cleaned = "file"
	}
	return unsafeExpr.ReplaceAllString(cleaned, "_")
}

// uniqueName appends _n before extension until name is not taken
func uniqueName(name string, taken map[string]bool) string {
	candidate := name
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for counter := 1; taken[candidate]; counter++ {
		candidate = stem + "_" + strconv.Itoa(counter) + ext
	}
	taken[candidate] = true
	return candidate
}

func stemOf(name string) string {
	base := path.Base(name)
	return strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
}
