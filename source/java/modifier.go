package java

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/umldiff/diagram"
)

func modifiersOf(node *sitter.Node) *sitter.Node {
	for j := 0; j < int(node.NamedChildCount()); j++ {
		if child := node.NamedChild(j); child.Type() == "modifiers" {
			return child
		}
	}
	return nil
}

func hasModifier(node *sitter.Node, modifier string) bool {
	modifiers := modifiersOf(node)
	if modifiers == nil {
		return false
	}
	for j := 0; j < int(modifiers.ChildCount()); j++ {
		if modifiers.Child(j).Type() == modifier {
			return true
		}
	}
	return false
}

// visibilityOf returns UML visibility symbol, interface members are public unless stated otherwise
func visibilityOf(node *sitter.Node, ownerKind string) string {
	switch {
	case hasModifier(node, "public"):
		return "+"
	case hasModifier(node, "private"):
		return "-"
	case hasModifier(node, "protected"):
		return "#"
	case ownerKind == diagram.KindInterface:
		return "+"
	}
	return "~"
}
