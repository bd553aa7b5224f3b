package pairing

// Pair represents left file matched with optional right file
type Pair struct {
	Left  *File
	Right *File
}

// Label returns pair display label
func (p *Pair) Label() string {
	if p.Right == nil {
		return p.Left.Label
	}
	return p.Left.Label + " vs " + p.Right.Label
}

// AutoPair matches each left file with the first unused right file sharing its case-insensitive stem,
// it returns pairs in left order (Right is nil when nothing matched) and right files left unpaired
func AutoPair(left, right []*File) ([]*Pair, []*File) {
	used := make([]bool, len(right))
	var pairs []*Pair
	for _, leftFile := range left {
		pair := &Pair{Left: leftFile}
		stem := leftFile.Stem()
		for i, candidate := range right {
			if used[i] || candidate.Stem() != stem {
				continue
			}
			used[i] = true
			pair.Right = candidate
			break
		}
		pairs = append(pairs, pair)
	}
	return pairs, Unpaired(pairs, right)
}

// Unpaired returns right files not assigned to any pair, in right order
func Unpaired(pairs []*Pair, right []*File) []*File {
	assigned := map[*File]bool{}
	for _, pair := range pairs {
		if pair.Right != nil {
			assigned[pair.Right] = true
		}
	}
	var ret []*File
	for _, candidate := range right {
		if !assigned[candidate] {
			ret = append(ret, candidate)
		}
	}
	return ret
}

// Override assigns right file to the pair whose left file is named leftName, detaching it from any other pair;
// it returns false when either name is unknown
func Override(pairs []*Pair, right []*File, leftName, rightName string) bool {
	var target *Pair
	for _, pair := range pairs {
		if pair.Left.Name == leftName || pair.Left.Label == leftName {
			target = pair
			break
		}
	}
	var file *File
	for _, candidate := range right {
		if candidate.Name == rightName || candidate.Label == rightName {
			file = candidate
			break
		}
	}
	if target == nil || file == nil {
		return false
	}
	for _, pair := range pairs {
		if pair.Right == file {
			pair.Right = nil
		}
	}
	target.Right = file
	return true
}
