package diagram

// Document represents unvalidated structure produced by a source parser
type Document struct {
	Entities      []*Entity   `json:"entities" yaml:"entities"`
	Relationships []*Relation `json:"relationships,omitempty" yaml:"relationships,omitempty"`
}

// Entity represents raw diagram element
type Entity struct {
	ID         string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string   `json:"name" yaml:"name"`
	Kind       string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Attributes []string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Methods    []string `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// Relation represents raw diagram relationship, endpoints refer to entity ID or name
type Relation struct {
	Source   string `json:"source" yaml:"source"`
	Target   string `json:"target" yaml:"target"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Directed bool   `json:"directed,omitempty" yaml:"directed,omitempty"`
}

// AddEntity appends an entity unless one with the same name already exists, returns the stored entity
func (d *Document) AddEntity(entity *Entity) *Entity {
	if existing := d.Entity(entity.Name); existing != nil {
		return existing
	}
	d.Entities = append(d.Entities, entity)
	return entity
}

// Entity returns entity with matching name
func (d *Document) Entity(name string) *Entity {
	for _, candidate := range d.Entities {
		if candidate != nil && candidate.Name == name {
			return candidate
		}
	}
	return nil
}

// AddRelation appends a relation
func (d *Document) AddRelation(relation *Relation) {
	d.Relationships = append(d.Relationships, relation)
}
