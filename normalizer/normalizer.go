package normalizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/umldiff/diagram"
)

// Normalize converts raw document into an immutable canonical model
func Normalize(doc *diagram.Document, kind diagram.SourceKind) (*diagram.Model, error) {
	if doc == nil {
		return nil, malformed("", "document was nil")
	}
	elements, err := normalizeElements(doc.Entities)
	if err != nil {
		return nil, err
	}
	relationships, err := normalizeRelationships(doc.Relationships, doc.Entities, elements)
	if err != nil {
		return nil, err
	}
	sortElements(elements)
	model := diagram.NewModel(kind, elements, relationships)
	sortRelationships(model)
	return model, nil
}

func normalizeElements(entities []*diagram.Entity) ([]*diagram.Element, error) {
	explicit := map[string]bool{}
	for i, entity := range entities {
		if entity == nil {
			return nil, malformed(fmt.Sprintf("entities[%d]", i), "entity was nil")
		}
		if strings.TrimSpace(entity.Name) == "" {
			return nil, malformed(fmt.Sprintf("entities[%d].name", i), "name was empty")
		}
		id := strings.TrimSpace(entity.ID)
		if id == "" {
			continue
		}
		if explicit[id] {
			return nil, malformed(fmt.Sprintf("entities[%d].id", i), "duplicate id %q", id)
		}
		explicit[id] = true
	}

	used := map[string]bool{}
	for id := range explicit {
		used[id] = true
	}
	elements := make([]*diagram.Element, 0, len(entities))
	for _, entity := range entities {
		name := strings.Join(strings.Fields(entity.Name), " ")
		element := &diagram.Element{
			ID:   strings.TrimSpace(entity.ID),
			Name: name,
			Key:  Key(name),
			Kind: normalizeKind(entity.Kind),
		}
		if element.ID == "" {
			element.ID = uniqueID(element.Key, used)
		}
		element.SetAttributes(members(entity.Attributes, entity.Methods))
		elements = append(elements, element)
	}
	return elements, nil
}

func uniqueID(base string, used map[string]bool) string {
	if base == "" {
		base = "element"
	}
	candidate := base
	for i := 2; used[candidate]; i++ {
		candidate = fmt.Sprintf("%s#%d", base, i)
	}
	used[candidate] = true
	return candidate
}

func normalizeRelationships(relations []*diagram.Relation, entities []*diagram.Entity, elements []*diagram.Element) ([]*diagram.Relationship, error) {
	resolver := newResolver(entities, elements)
	var result []*diagram.Relationship
	seen := map[string]bool{}
	for i, relation := range relations {
		field := fmt.Sprintf("relationships[%d]", i)
		if relation == nil {
			return nil, malformed(field, "relationship was nil")
		}
		source, err := resolver.resolve(field+".source", relation.Source)
		if err != nil {
			return nil, err
		}
		target, err := resolver.resolve(field+".target", relation.Target)
		if err != nil {
			return nil, err
		}
		kind := fold(relation.Kind)
		if kind == "" {
			kind = diagram.Association
		}
		rel := &diagram.Relationship{
			Source:   source.ID,
			Target:   target.ID,
			Kind:     kind,
			Label:    strings.Join(strings.Fields(relation.Label), " "),
			Directed: relation.Directed,
		}
		if !rel.Directed && source.Key > target.Key {
			rel.Source, rel.Target = rel.Target, rel.Source
		}
		signature := fmt.Sprintf("%s|%s|%s|%s|%v", rel.Source, rel.Target, rel.Kind, fold(rel.Label), rel.Directed)
		if seen[signature] {
			continue
		}
		seen[signature] = true
		result = append(result, rel)
	}
	return result, nil
}

type resolver struct {
	byID  map[string]*diagram.Element
	byKey map[string]*diagram.Element
}

func newResolver(entities []*diagram.Entity, elements []*diagram.Element) *resolver {
	ret := &resolver{byID: map[string]*diagram.Element{}, byKey: map[string]*diagram.Element{}}
	for i, element := range elements {
		ret.byID[element.ID] = element
		if _, ok := ret.byKey[element.Key]; !ok && element.Key != "" {
			ret.byKey[element.Key] = element
		}
		if raw := strings.TrimSpace(entities[i].Name); raw != "" {
			if _, ok := ret.byKey[raw]; !ok {
				ret.byKey[raw] = element
			}
		}
	}
	return ret
}

func (r *resolver) resolve(field, ref string) (*diagram.Element, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, malformed(field, "endpoint was empty")
	}
	if element, ok := r.byID[ref]; ok {
		return element, nil
	}
	if element, ok := r.byKey[ref]; ok {
		return element, nil
	}
	if element, ok := r.byKey[Key(ref)]; ok {
		return element, nil
	}
	return nil, malformed(field, "unknown element %q", ref)
}

func sortElements(elements []*diagram.Element) {
	sort.SliceStable(elements, func(i, j int) bool {
		if elements[i].Key != elements[j].Key {
			return elements[i].Key < elements[j].Key
		}
		return elements[i].ID < elements[j].ID
	})
}

func sortRelationships(model *diagram.Model) {
	keyOf := func(id string) string {
		if element := model.GetElement(id); element != nil {
			return element.Key + "\x00" + element.ID
		}
		return id
	}
	rels := model.Relationships
	sort.SliceStable(rels, func(i, j int) bool {
		a, b := rels[i], rels[j]
		if s1, s2 := keyOf(a.Source), keyOf(b.Source); s1 != s2 {
			return s1 < s2
		}
		if t1, t2 := keyOf(a.Target), keyOf(b.Target); t1 != t2 {
			return t1 < t2
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return !a.Directed && b.Directed
	})
}
