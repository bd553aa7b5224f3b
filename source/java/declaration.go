package java

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/umldiff/diagram"
)

type fieldType struct {
	owner string
	types []string
}

type builder struct {
	source    []byte
	inspector *Inspector
	doc       *diagram.Document
	declared  map[string]bool
	fields    []*fieldType
}

func newBuilder(source []byte, inspector *Inspector) *builder {
	return &builder{source: source, inspector: inspector, doc: &diagram.Document{}, declared: map[string]bool{}}
}

// declare walks a top level or nested type declaration
func (b *builder) declare(node *sitter.Node) {
	var kind string
	switch node.Type() {
	case "class_declaration":
		kind = diagram.KindClass
		if hasModifier(node, "abstract") {
			kind = diagram.KindAbstract
		}
	case "interface_declaration":
		kind = diagram.KindInterface
	case "enum_declaration":
		kind = diagram.KindEnum
	default:
		return
	}
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := nameNode.Content(b.source)
	entity := b.doc.AddEntity(&diagram.Entity{Name: name})
	entity.Kind = kind
	b.declared[name] = true

	for j := 0; j < int(node.NamedChildCount()); j++ {
		child := node.NamedChild(j)
		switch child.Type() {
		case "superclass":
			b.relate(name, child, diagram.Inheritance)
		case "super_interfaces":
			b.relate(name, child, diagram.Implementation)
		case "extends_interfaces":
			b.relate(name, child, diagram.Inheritance)
		}
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}
	b.members(entity, kind, body)
}

func (b *builder) members(entity *diagram.Entity, kind string, body *sitter.Node) {
	for j := 0; j < int(body.NamedChildCount()); j++ {
		child := body.NamedChild(j)
		switch child.Type() {
		case "enum_constant":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				entity.Attributes = append(entity.Attributes, nameNode.Content(b.source))
			}
		case "enum_body_declarations":
			b.members(entity, kind, child)
		case "field_declaration", "constant_declaration":
			b.field(entity, kind, child)
		case "method_declaration", "constructor_declaration":
			b.method(entity, kind, child)
		case "class_declaration", "interface_declaration", "enum_declaration":
			b.declare(child)
		}
	}
}

func (b *builder) field(entity *diagram.Entity, kind string, node *sitter.Node) {
	visibility := visibilityOf(node, kind)
	if visibility == "-" && !b.inspector.includePrivate {
		return
	}
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return
	}
	typeName := typeNode.Content(b.source)
	for j := 0; j < int(node.NamedChildCount()); j++ {
		declarator := node.NamedChild(j)
		if declarator.Type() != "variable_declarator" {
			continue
		}
		nameNode := declarator.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		entity.Attributes = append(entity.Attributes, visibility+" "+nameNode.Content(b.source)+" : "+typeName)
	}
	if b.inspector.associations {
		b.fields = append(b.fields, &fieldType{owner: entity.Name, types: b.typeIdentifiers(typeNode, nil)})
	}
}

func (b *builder) method(entity *diagram.Entity, kind string, node *sitter.Node) {
	visibility := visibilityOf(node, kind)
	if visibility == "-" && !b.inspector.includePrivate {
		return
	}
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	signature := visibility + " " + nameNode.Content(b.source) + "(" + strings.Join(b.parameters(node), ", ") + ")"
	if returnType := node.ChildByFieldName("type"); returnType != nil {
		signature += " : " + returnType.Content(b.source)
	}
	entity.Methods = append(entity.Methods, signature)
}

func (b *builder) parameters(node *sitter.Node) []string {
	params := node.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}
	var result []string
	for j := 0; j < int(params.NamedChildCount()); j++ {
		param := params.NamedChild(j)
		switch param.Type() {
		case "formal_parameter":
			typeNode := param.ChildByFieldName("type")
			nameNode := param.ChildByFieldName("name")
			if typeNode != nil && nameNode != nil {
				result = append(result, nameNode.Content(b.source)+" : "+typeNode.Content(b.source))
			}
		case "spread_parameter":
			if param.NamedChildCount() < 2 {
				continue
			}
			typeNode := param.NamedChild(0)
			declarator := param.NamedChild(int(param.NamedChildCount()) - 1)
			name := declarator.Content(b.source)
			if nameNode := declarator.ChildByFieldName("name"); nameNode != nil {
				name = nameNode.Content(b.source)
			}
			result = append(result, name+" : "+typeNode.Content(b.source)+"...")
		}
	}
	return result
}

// relate emits relationships to every type named in an extends or implements clause
func (b *builder) relate(owner string, clause *sitter.Node, kind string) {
	for _, target := range b.clauseTypes(clause) {
		b.doc.AddRelation(&diagram.Relation{Source: owner, Target: target, Kind: kind, Directed: true})
	}
}

func (b *builder) clauseTypes(clause *sitter.Node) []string {
	var result []string
	for j := 0; j < int(clause.NamedChildCount()); j++ {
		child := clause.NamedChild(j)
		switch child.Type() {
		case "type_list":
			result = append(result, b.clauseTypes(child)...)
		case "generic_type":
			if child.NamedChildCount() > 0 {
				result = append(result, simpleName(child.NamedChild(0).Content(b.source)))
			}
		default:
			result = append(result, simpleName(child.Content(b.source)))
		}
	}
	return result
}

func (b *builder) typeIdentifiers(node *sitter.Node, result []string) []string {
	if node.Type() == "type_identifier" {
		return append(result, node.Content(b.source))
	}
	for j := 0; j < int(node.NamedChildCount()); j++ {
		result = b.typeIdentifiers(node.NamedChild(j), result)
	}
	return result
}

// build declares referenced supertypes and resolves field associations once every type is known
func (b *builder) build() *diagram.Document {
	for _, relation := range b.doc.Relationships {
		b.doc.AddEntity(&diagram.Entity{Name: relation.Target})
	}
	for _, field := range b.fields {
		for _, typeName := range field.types {
			if typeName == field.owner || !b.declared[typeName] {
				continue
			}
			b.doc.AddRelation(&diagram.Relation{Source: field.owner, Target: typeName, Kind: diagram.Association, Directed: true})
		}
	}
	return b.doc
}

func simpleName(name string) string {
	if index := strings.LastIndex(name, "."); index != -1 {
		return name[index+1:]
	}
	return name
}
