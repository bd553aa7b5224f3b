package diagram

import "strings"

// SourceKind tags where a model came from; it is used for reporting only
type SourceKind string

const (
	Authoritative SourceKind = "authoritative"
	Derived       SourceKind = "derived"
)

// Element kinds
const (
	KindClass     = "class"
	KindInterface = "interface"
	KindAbstract  = "abstract"
	KindEnum      = "enum"
	KindActor     = "actor"
	KindComponent = "component"
	KindUnknown   = "unknown"
)

// Relationship kinds
const (
	Association    = "association"
	Inheritance    = "inheritance"
	Implementation = "implementation"
	Dependency     = "dependency"
	Aggregation    = "aggregation"
	Composition    = "composition"
)

// Element represents a named node of a diagram (class, actor, component)
type Element struct {
	ID         string   // Unique identifier within a model
	Name       string   // Display label with original casing
	Key        string   // Folded name used for matching
	Kind       string   // Category tag
	Attributes []string // Canonical members, fields first then methods

	attributeKeys []string
}

// AttributeKeys returns folded attribute text used for equality, aligned with Attributes
func (e *Element) AttributeKeys() []string {
	return e.attributeKeys
}

// SetAttributes assigns canonical attributes together with their equality keys
func (e *Element) SetAttributes(attributes, keys []string) {
	e.Attributes = attributes
	e.attributeKeys = keys
}

// Relationship represents an edge between two elements of the same model
type Relationship struct {
	Source   string // Source element ID
	Target   string // Target element ID
	Kind     string
	Label    string
	Directed bool
}

// Model represents normalized structural representation of one diagram
type Model struct {
	SourceKind    SourceKind
	Elements      []*Element
	Relationships []*Relationship

	elementMap map[string]int
}

// NewModel creates a model and indexes its elements
func NewModel(kind SourceKind, elements []*Element, relationships []*Relationship) *Model {
	ret := &Model{SourceKind: kind, Elements: elements, Relationships: relationships}
	ret.IndexElements()
	return ret
}

// IndexElements rebuilds element lookup index
func (m *Model) IndexElements() {
	m.elementMap = make(map[string]int, len(m.Elements))
	for i, element := range m.Elements {
		m.elementMap[element.ID] = i
	}
}

// GetElement retrieves an element by ID, models built without NewModel are scanned
func (m *Model) GetElement(id string) *Element {
	if m.elementMap == nil {
		for _, element := range m.Elements {
			if element.ID == id {
				return element
			}
		}
		return nil
	}
	if idx, ok := m.elementMap[id]; ok && idx < len(m.Elements) {
		return m.Elements[idx]
	}
	return nil
}

// ElementName returns display name of element with supplied ID
func (m *Model) ElementName(id string) string {
	if element := m.GetElement(id); element != nil {
		return element.Name
	}
	return id
}

// Content returns canonical text of the model, independent of input order
func (m *Model) Content() string {
	builder := &strings.Builder{}
	for _, element := range m.Elements {
		builder.WriteString(element.Kind)
		builder.WriteString(" ")
		builder.WriteString(element.Key)
		builder.WriteString(" {\n")
		for _, attr := range element.attributeKeys {
			builder.WriteString("  ")
			builder.WriteString(attr)
			builder.WriteString("\n")
		}
		builder.WriteString("}\n")
	}
	for _, rel := range m.Relationships {
		builder.WriteString(m.keyOf(rel.Source))
		if rel.Directed {
			builder.WriteString(" -> ")
		} else {
			builder.WriteString(" -- ")
		}
		builder.WriteString(m.keyOf(rel.Target))
		builder.WriteString(" : ")
		builder.WriteString(rel.Kind)
		if rel.Label != "" {
			builder.WriteString(" ")
			builder.WriteString(rel.Label)
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// Fingerprint returns a stable hash of the canonical content
func (m *Model) Fingerprint() (uint64, error) {
	return Hash([]byte(m.Content()))
}

func (m *Model) keyOf(id string) string {
	if element := m.GetElement(id); element != nil {
		return element.Key
	}
	return id
}
