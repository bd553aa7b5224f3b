package java

import (
	"context"

	"github.com/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/viant/umldiff/diagram"
)

// Inspector extracts class diagram structure from Java source
type Inspector struct {
	includePrivate bool
	associations   bool
}

// Option represents inspector option
type Option func(i *Inspector)

// WithPrivate controls whether private members are emitted, true by default
func WithPrivate(flag bool) Option {
	return func(i *Inspector) {
		i.includePrivate = flag
	}
}

// WithAssociations controls whether field types naming declared types produce associations, true by default
func WithAssociations(flag bool) Option {
	return func(i *Inspector) {
		i.associations = flag
	}
}

// NewInspector creates a Java inspector
func NewInspector(opts ...Option) *Inspector {
	ret := &Inspector{includePrivate: true, associations: true}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// InspectSource parses Java source and returns its classes, interfaces and enums as a document
func (i *Inspector) InspectSource(ctx context.Context, src []byte) (*diagram.Document, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse java source")
	}
	defer tree.Close()
	root := tree.RootNode()
	if root.HasError() {
		return nil, errors.New("failed to parse java source: syntax error")
	}

	builder := newBuilder(src, i)
	for j := 0; j < int(root.NamedChildCount()); j++ {
		builder.declare(root.NamedChild(j))
	}
	return builder.build(), nil
}
