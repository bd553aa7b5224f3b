package aligner

import "github.com/viant/umldiff/diagram"

// MatchKind describes how an element pair was established
type MatchKind string

const (
	Exact MatchKind = "exact"
	Fuzzy MatchKind = "fuzzy"
)

// ElementPair represents matched elements
type ElementPair struct {
	Left       *diagram.Element
	Right      *diagram.Element
	Match      MatchKind
	Similarity float64 // Name similarity, 1 for exact matches
	KindAgrees bool
}

// RelationshipPair represents matched relationships
type RelationshipPair struct {
	Left       *diagram.Relationship
	Right      *diagram.Relationship
	KindAgrees bool
}

// Correspondence is an injective matching between two models
type Correspondence struct {
	Elements       map[string]string // left element ID -> right element ID
	Pairs          []*ElementPair    // ordered by left element key
	UnmatchedLeft  []*diagram.Element
	UnmatchedRight []*diagram.Element

	Relationships               []*RelationshipPair
	UnmatchedLeftRelationships  []*diagram.Relationship
	UnmatchedRightRelationships []*diagram.Relationship
}
