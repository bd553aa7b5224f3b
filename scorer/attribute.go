package scorer

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/viant/umldiff/diagram"
)

type attributeDiff struct {
	agreement float64
	missing   []string
	extra     []string
}

// compareAttributes matches identical members first, then similar ones above threshold
func compareAttributes(left, right *diagram.Element, threshold float64) *attributeDiff {
	leftKeys, rightKeys := keysOf(left), keysOf(right)
	longest := max(len(leftKeys), len(rightKeys))
	if longest == 0 {
		return &attributeDiff{agreement: 1}
	}
	leftUsed := make([]bool, len(leftKeys))
	rightUsed := make([]bool, len(rightKeys))
	rightIndex := map[string]int{}
	for j, key := range rightKeys {
		if _, ok := rightIndex[key]; !ok {
			rightIndex[key] = j
		}
	}
	matched := 0
	for i, key := range leftKeys {
		if j, ok := rightIndex[key]; ok && !rightUsed[j] {
			leftUsed[i], rightUsed[j] = true, true
			matched++
		}
	}

	type candidate struct {
		i, j      int
		ratio     float64
		low, high string
	}
	var candidates []candidate
	for i, l := range leftKeys {
		if leftUsed[i] {
			continue
		}
		for j, r := range rightKeys {
			if rightUsed[j] {
				continue
			}
			if ratio := memberRatio(l, r); ratio >= threshold {
				low, high := l, r
				if high < low {
					low, high = high, low
				}
				candidates = append(candidates, candidate{i: i, j: j, ratio: ratio, low: low, high: high})
			}
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].ratio != candidates[b].ratio {
			return candidates[a].ratio > candidates[b].ratio
		}
		if candidates[a].low != candidates[b].low {
			return candidates[a].low < candidates[b].low
		}
		return candidates[a].high < candidates[b].high
	})
	for _, cand := range candidates {
		if leftUsed[cand.i] || rightUsed[cand.j] {
			continue
		}
		leftUsed[cand.i], rightUsed[cand.j] = true, true
		matched++
	}

	ret := &attributeDiff{agreement: float64(matched) / float64(longest)}
	for i, used := range leftUsed {
		if !used {
			ret.missing = append(ret.missing, left.Attributes[i])
		}
	}
	for j, used := range rightUsed {
		if !used {
			ret.extra = append(ret.extra, right.Attributes[j])
		}
	}
	return ret
}

// memberRatio returns sequence matcher similarity of two members, the larger of both directions
func memberRatio(a, b string) float64 {
	left, right := strings.Split(a, ""), strings.Split(b, "")
	return max(difflib.NewMatcher(left, right).Ratio(), difflib.NewMatcher(right, left).Ratio())
}

func keysOf(element *diagram.Element) []string {
	if keys := element.AttributeKeys(); len(keys) == len(element.Attributes) {
		return keys
	}
	return element.Attributes
}
