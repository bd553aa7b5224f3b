package normalizer

import (
	"fmt"

	"github.com/viant/umldiff/diagram"
)

// FromMap converts loosely typed structure (i.e. decoded JSON) into a document,
// every field type check happens here
func FromMap(raw map[string]interface{}) (*diagram.Document, error) {
	if raw == nil {
		return nil, malformed("", "document was nil")
	}
	doc := &diagram.Document{}
	entities, err := sliceOf(raw, "entities", "entities")
	if err != nil {
		return nil, err
	}
	for i, item := range entities {
		field := fmt.Sprintf("entities[%d]", i)
		aMap, ok := item.(map[string]interface{})
		if !ok {
			return nil, malformed(field, "expected object, but had %T", item)
		}
		entity := &diagram.Entity{}
		if entity.Name, err = stringOf(aMap, "name", field+".name", true); err != nil {
			return nil, err
		}
		if entity.ID, err = stringOf(aMap, "id", field+".id", false); err != nil {
			return nil, err
		}
		if entity.Kind, err = stringOf(aMap, "kind", field+".kind", false); err != nil {
			return nil, err
		}
		if entity.Attributes, err = stringsOf(aMap, "attributes", field+".attributes"); err != nil {
			return nil, err
		}
		if entity.Methods, err = stringsOf(aMap, "methods", field+".methods"); err != nil {
			return nil, err
		}
		doc.Entities = append(doc.Entities, entity)
	}

	relations, err := sliceOf(raw, "relationships", "relationships")
	if err != nil {
		return nil, err
	}
	for i, item := range relations {
		field := fmt.Sprintf("relationships[%d]", i)
		aMap, ok := item.(map[string]interface{})
		if !ok {
			return nil, malformed(field, "expected object, but had %T", item)
		}
		relation := &diagram.Relation{}
		if relation.Source, err = stringOf(aMap, "source", field+".source", true); err != nil {
			return nil, err
		}
		if relation.Target, err = stringOf(aMap, "target", field+".target", true); err != nil {
			return nil, err
		}
		if relation.Kind, err = stringOf(aMap, "kind", field+".kind", false); err != nil {
			return nil, err
		}
		if relation.Label, err = stringOf(aMap, "label", field+".label", false); err != nil {
			return nil, err
		}
		if value, ok := aMap["directed"]; ok && value != nil {
			directed, ok := value.(bool)
			if !ok {
				return nil, malformed(field+".directed", "expected bool, but had %T", value)
			}
			relation.Directed = directed
		}
		doc.Relationships = append(doc.Relationships, relation)
	}
	return doc, nil
}

// NormalizeMap decodes and normalizes loosely typed structure
func NormalizeMap(raw map[string]interface{}, kind diagram.SourceKind) (*diagram.Model, error) {
	doc, err := FromMap(raw)
	if err != nil {
		return nil, err
	}
	return Normalize(doc, kind)
}

func sliceOf(raw map[string]interface{}, key, field string) ([]interface{}, error) {
	value, ok := raw[key]
	if !ok || value == nil {
		return nil, nil
	}
	items, ok := value.([]interface{})
	if !ok {
		return nil, malformed(field, "expected array, but had %T", value)
	}
	return items, nil
}

func stringOf(raw map[string]interface{}, key, field string, required bool) (string, error) {
	value, ok := raw[key]
	if !ok || value == nil {
		if required {
			return "", malformed(field, "was missing")
		}
		return "", nil
	}
	text, ok := value.(string)
	if !ok {
		return "", malformed(field, "expected string, but had %T", value)
	}
	return text, nil
}

func stringsOf(raw map[string]interface{}, key, field string) ([]string, error) {
	items, err := sliceOf(raw, key, field)
	if err != nil {
		return nil, err
	}
	var result []string
	for i, item := range items {
		text, ok := item.(string)
		if !ok {
			return nil, malformed(fmt.Sprintf("%s[%d]", field, i), "expected string, but had %T", item)
		}
		result = append(result, text)
	}
	return result, nil
}
