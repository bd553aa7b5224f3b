package scorer

import (
	"fmt"
	"math"
	"sort"

	"github.com/viant/umldiff/aligner"
	"github.com/viant/umldiff/diagram"
)

// Score derives similarity score and discrepancy report from a correspondence
func Score(correspondence *aligner.Correspondence, left, right *diagram.Model, opts ...Option) *Result {
	options := newOptions(opts)
	if correspondence == nil {
		correspondence = &aligner.Correspondence{}
	}
	if left == nil {
		left = &diagram.Model{}
	}
	if right == nil {
		right = &diagram.Model{}
	}
	ret := NewFailure("", nil)
	agreements := make([]float64, 0, len(correspondence.Pairs))
	for _, pair := range correspondence.Pairs {
		diff := compareAttributes(pair.Left, pair.Right, options.attributeThreshold)
		agreements = append(agreements, diff.agreement)
		match := &ElementMatch{
			Left:       pair.Left.Name,
			Right:      pair.Right.Name,
			LeftKind:   pair.Left.Kind,
			RightKind:  pair.Right.Kind,
			Match:      string(pair.Match),
			Similarity: round(pair.Similarity),
			Agreement:  round(diff.agreement),
			Status:     StatusFull,
			Missing:    diff.missing,
			Extra:      diff.extra,
		}
		if diff.agreement < 1 {
			match.Status = StatusPartial
		}
		ret.ElementMatches = append(ret.ElementMatches, match)
	}
	for _, element := range correspondence.UnmatchedLeft {
		ret.UnmatchedLeft = append(ret.UnmatchedLeft, element.Name)
	}
	for _, element := range correspondence.UnmatchedRight {
		ret.UnmatchedRight = append(ret.UnmatchedRight, element.Name)
	}

	full, partial := 0, 0
	for _, pair := range correspondence.Relationships {
		match := relationshipMatch(left, pair.Left, StatusFull)
		if pair.KindAgrees {
			full++
		} else {
			partial++
			match.Status = StatusKindMismatch
			match.RightKind = pair.Right.Kind
		}
		ret.RelationshipMatches = append(ret.RelationshipMatches, match)
	}
	for _, rel := range correspondence.UnmatchedLeftRelationships {
		ret.RelationshipMatches = append(ret.RelationshipMatches, relationshipMatch(left, rel, StatusMissing))
	}
	for _, rel := range correspondence.UnmatchedRightRelationships {
		ret.RelationshipMatches = append(ret.RelationshipMatches, relationshipMatch(right, rel, StatusExtra))
	}

	leftCount, rightCount := len(left.Elements), len(right.Elements)
	switch {
	case leftCount == 0 && rightCount == 0:
		ret.ElementComponent, ret.RelationshipComponent, ret.Score = 1, 1, 100
	case leftCount == 0 || rightCount == 0:
		ret.Score = 0
	default:
		elementComponent := sum(agreements) / float64(max(leftCount, rightCount))
		relationshipComponent := elementComponent
		if longest := max(len(left.Relationships), len(right.Relationships)); longest > 0 {
			relationshipComponent = (float64(full) + KindMismatchWeight*float64(partial)) / float64(longest)
		}
		score := 100 * (options.elementWeight*elementComponent + options.relationshipWeight*relationshipComponent)
		ret.ElementComponent = round(elementComponent)
		ret.RelationshipComponent = round(relationshipComponent)
		ret.Score = math.Min(100, math.Max(0, round(score)))
	}
	ret.Category = CategoryOf(ret.Score)
	ret.LeftFingerprint = fingerprint(left)
	ret.RightFingerprint = fingerprint(right)
	return ret
}

func relationshipMatch(model *diagram.Model, rel *diagram.Relationship, status string) *RelationshipMatch {
	return &RelationshipMatch{
		Source: model.ElementName(rel.Source),
		Target: model.ElementName(rel.Target),
		Kind:   rel.Kind,
		Label:  rel.Label,
		Status: status,
	}
}

// sum adds values in ascending order so the total does not depend on iteration order
func sum(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	total := 0.0
	for _, value := range sorted {
		total += value
	}
	return total
}

func round(value float64) float64 {
	return math.Round(value*1e4) / 1e4
}

func fingerprint(model *diagram.Model) string {
	value, err := model.Fingerprint()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", value)
}
