package ocr

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/umldiff/diagram"
	"github.com/viant/umldiff/normalizer"
)

var (
	colonExpr = regexp.MustCompile(`\s*:\s*`)
	openExpr  = regexp.MustCompile(`\s*\(\s*`)
	closeExpr = regexp.MustCompile(`\s*\)\s*`)
)

// Parse decodes OCR recognized diagram JSON:
// {"entities":[{"name":..,"attributes":[..],"methods":[..]}], "relationships":[..]}
func Parse(data []byte) (*diagram.Document, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode ocr json")
	}
	doc, err := normalizer.FromMap(raw)
	if err != nil {
		return nil, err
	}
	for _, entity := range doc.Entities {
		entity.Name = strings.TrimSpace(entity.Name)
		for i, method := range entity.Methods {
			entity.Methods[i] = CleanMethod(method)
		}
	}
	return doc, nil
}

// CleanMethod tightens recognized method signature spacing, public visibility is assumed when absent
func CleanMethod(method string) string {
	method = strings.TrimSpace(method)
	if method == "" || strings.ContainsRune("+-#~", rune(method[0])) {
		return method
	}
	method = colonExpr.ReplaceAllString(method, ": ")
	method = openExpr.ReplaceAllString(method, "(")
	method = closeExpr.ReplaceAllString(method, ")")
	return "+ " + method
}
