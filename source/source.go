package source

import (
	"context"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/umldiff/diagram"
	"github.com/viant/umldiff/source/java"
	"github.com/viant/umldiff/source/ocr"
	"github.com/viant/umldiff/source/puml"
)

// Format identifies raw diagram encoding
type Format string

const (
	FormatPlantUML Format = "plantuml"
	FormatOCR      Format = "ocr"
	FormatJava     Format = "java"
)

var extensions = map[string]Format{
	".puml":     FormatPlantUML,
	".plantuml": FormatPlantUML,
	".wsd":      FormatPlantUML,
	".iuml":     FormatPlantUML,
	".json":     FormatOCR,
	".java":     FormatJava,
}

// Extensions returns supported file extensions
func Extensions() []string {
	return []string{".puml", ".plantuml", ".wsd", ".iuml", ".json", ".java"}
}

// FormatOf returns the format for a file name, ok is false for unsupported extensions
func FormatOf(name string) (Format, bool) {
	format, ok := extensions[strings.ToLower(path.Ext(name))]
	return format, ok
}

// SourceKind returns how a format contributes to a comparison
func (f Format) SourceKind() diagram.SourceKind {
	if f == FormatOCR {
		return diagram.Derived
	}
	return diagram.Authoritative
}

// Parse decodes raw data into a document using the format implied by name
func Parse(ctx context.Context, name string, data []byte) (*diagram.Document, Format, error) {
	format, ok := FormatOf(name)
	if !ok {
		return nil, "", errors.Errorf("unsupported diagram file: %v", name)
	}
	doc, err := ParseFormat(ctx, format, data)
	if err != nil {
		return nil, format, errors.Wrapf(err, "failed to parse %v", name)
	}
	return doc, format, nil
}

// ParseFormat decodes raw data in the given format
func ParseFormat(ctx context.Context, format Format, data []byte) (*diagram.Document, error) {
	switch format {
	case FormatPlantUML:
		return puml.NewParser().Parse(data)
	case FormatOCR:
		return ocr.Parse(data)
	case FormatJava:
		return java.NewInspector().InspectSource(ctx, data)
	}
	return nil, errors.Errorf("unsupported format: %v", format)
}
