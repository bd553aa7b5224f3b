package aligner

import (
	"sort"

	"github.com/viant/umldiff/diagram"
)

type candidate struct {
	left       *diagram.Element
	right      *diagram.Element
	similarity float64
	rank       float64
	kindAgrees bool
}

// Align matches elements and relationships of two normalized models.
// Identical input always yields identical correspondence.
func Align(left, right *diagram.Model, opts ...Option) *Correspondence {
	options := newOptions(opts)
	if left == nil {
		left = &diagram.Model{}
	}
	if right == nil {
		right = &diagram.Model{}
	}
	ret := &Correspondence{Elements: map[string]string{}}
	leftUsed := map[string]bool{}
	rightUsed := map[string]bool{}
	accept := func(pair *ElementPair) {
		ret.Pairs = append(ret.Pairs, pair)
		ret.Elements[pair.Left.ID] = pair.Right.ID
		leftUsed[pair.Left.ID] = true
		rightUsed[pair.Right.ID] = true
	}

	leftElements := sortedElements(left.Elements)
	rightElements := sortedElements(right.Elements)
	matchExact(leftElements, rightElements, rightUsed, accept)
	for _, cand := range fuzzyCandidates(leftElements, rightElements, leftUsed, rightUsed, options) {
		if leftUsed[cand.left.ID] || rightUsed[cand.right.ID] {
			continue
		}
		accept(&ElementPair{Left: cand.left, Right: cand.right, Match: Fuzzy, Similarity: cand.similarity, KindAgrees: cand.kindAgrees})
	}

	sort.SliceStable(ret.Pairs, func(i, j int) bool {
		return elementLess(ret.Pairs[i].Left, ret.Pairs[j].Left)
	})
	for _, element := range leftElements {
		if !leftUsed[element.ID] {
			ret.UnmatchedLeft = append(ret.UnmatchedLeft, element)
		}
	}
	for _, element := range rightElements {
		if !rightUsed[element.ID] {
			ret.UnmatchedRight = append(ret.UnmatchedRight, element)
		}
	}
	alignRelationships(ret, left, right)
	return ret
}

func matchExact(leftElements, rightElements []*diagram.Element, rightUsed map[string]bool, accept func(pair *ElementPair)) {
	byKey := map[string][]*diagram.Element{}
	for _, element := range rightElements {
		if element.Key != "" {
			byKey[element.Key] = append(byKey[element.Key], element)
		}
	}
	for _, element := range leftElements {
		if element.Key == "" {
			continue
		}
		for _, candidate := range byKey[element.Key] {
			if rightUsed[candidate.ID] {
				continue
			}
			accept(&ElementPair{Left: element, Right: candidate, Match: Exact, Similarity: 1, KindAgrees: element.Kind == candidate.Kind})
			break
		}
	}
}

func fuzzyCandidates(leftElements, rightElements []*diagram.Element, leftUsed, rightUsed map[string]bool, options *options) []*candidate {
	var result []*candidate
	for _, l := range leftElements {
		if leftUsed[l.ID] || l.Key == "" {
			continue
		}
		for _, r := range rightElements {
			if rightUsed[r.ID] || r.Key == "" {
				continue
			}
			similarity := Ratio(l.Key, r.Key)
			if similarity < options.threshold {
				continue
			}
			cand := &candidate{left: l, right: r, similarity: similarity, rank: similarity, kindAgrees: l.Kind == r.Kind}
			if cand.kindAgrees {
				cand.rank += options.kindBonus
			}
			result = append(result, cand)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.rank != b.rank {
			return a.rank > b.rank
		}
		if a.kindAgrees != b.kindAgrees {
			return a.kindAgrees
		}
		aLow, aHigh := ordered(a.left.Key, a.right.Key)
		bLow, bHigh := ordered(b.left.Key, b.right.Key)
		if aLow != bLow {
			return aLow < bLow
		}
		if aHigh != bHigh {
			return aHigh < bHigh
		}
		aLow, aHigh = ordered(a.left.ID, a.right.ID)
		bLow, bHigh = ordered(b.left.ID, b.right.ID)
		if aLow != bLow {
			return aLow < bLow
		}
		return aHigh < bHigh
	})
	return result
}

// alignRelationships picks the relationship matching with the most same kind pairs, then the most pairs overall;
// label agreement only breaks ties between equally good matchings
func alignRelationships(ret *Correspondence, left, right *diagram.Model) {
	leftUsed := make([]bool, len(left.Relationships))
	rightUsed := make([]bool, len(right.Relationships))
	// the label bonus summed over any matching stays below one kind mismatch step
	step := int64(max(len(left.Relationships), len(right.Relationships)) + 1)
	weights := make([][]int64, len(left.Relationships))
	for i, l := range left.Relationships {
		weights[i] = make([]int64, len(right.Relationships))
		source, ok := ret.Elements[l.Source]
		if !ok {
			continue
		}
		target, ok := ret.Elements[l.Target]
		if !ok {
			continue
		}
		for j, r := range right.Relationships {
			if !connects(l, r, source, target) {
				continue
			}
			weight := step
			if r.Kind == l.Kind {
				weight = 2 * step
			}
			if r.Label == l.Label {
				weight++
			}
			weights[i][j] = weight
		}
	}
	for i, j := range assign(weights, len(right.Relationships)) {
		if j == -1 {
			continue
		}
		l, r := left.Relationships[i], right.Relationships[j]
		leftUsed[i], rightUsed[j] = true, true
		ret.Relationships = append(ret.Relationships, &RelationshipPair{Left: l, Right: r, KindAgrees: l.Kind == r.Kind})
	}
	for i, l := range left.Relationships {
		if !leftUsed[i] {
			ret.UnmatchedLeftRelationships = append(ret.UnmatchedLeftRelationships, l)
		}
	}
	for j, r := range right.Relationships {
		if !rightUsed[j] {
			ret.UnmatchedRightRelationships = append(ret.UnmatchedRightRelationships, r)
		}
	}
}

func connects(l, r *diagram.Relationship, source, target string) bool {
	if r.Source == source && r.Target == target {
		return true
	}
	if l.Directed && r.Directed {
		return false
	}
	return r.Source == target && r.Target == source
}

func sortedElements(elements []*diagram.Element) []*diagram.Element {
	ret := make([]*diagram.Element, len(elements))
	copy(ret, elements)
	sort.SliceStable(ret, func(i, j int) bool {
		return elementLess(ret[i], ret[j])
	})
	return ret
}

func elementLess(a, b *diagram.Element) bool {
	if a.Key != b.Key {
		return a.Key < b.Key
	}
	return a.ID < b.ID
}

func ordered(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}
