package scorer

// Category classifies score the way reviewers read it
type Category string

const (
	Excellent Category = "excellent"
	Good      Category = "good"
	Poor      Category = "poor"
)

// CategoryOf returns category of a score: >=90 excellent, >=70 good, otherwise poor
func CategoryOf(score float64) Category {
	switch {
	case score >= 90:
		return Excellent
	case score >= 70:
		return Good
	}
	return Poor
}

// Element match statuses
const (
	StatusFull    = "full"
	StatusPartial = "partial"
)

// Relationship match statuses
const (
	StatusKindMismatch = "kind_mismatch"
	StatusMissing      = "missing"
	StatusExtra        = "extra"
)

// ElementMatch represents matched element pair with attribute diff
type ElementMatch struct {
	Left       string   `json:"left" yaml:"left"`
	Right      string   `json:"right" yaml:"right"`
	LeftKind   string   `json:"left_kind" yaml:"left_kind"`
	RightKind  string   `json:"right_kind" yaml:"right_kind"`
	Match      string   `json:"match" yaml:"match"`
	Similarity float64  `json:"similarity" yaml:"similarity"`
	Agreement  float64  `json:"agreement" yaml:"agreement"`
	Status     string   `json:"status" yaml:"status"`
	Missing    []string `json:"missing_attributes,omitempty" yaml:"missing_attributes,omitempty"`
	Extra      []string `json:"extra_attributes,omitempty" yaml:"extra_attributes,omitempty"`
}

// RelationshipMatch represents relationship match or mismatch record
type RelationshipMatch struct {
	Source    string `json:"source" yaml:"source"`
	Target    string `json:"target" yaml:"target"`
	Kind      string `json:"kind" yaml:"kind"`
	RightKind string `json:"right_kind,omitempty" yaml:"right_kind,omitempty"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
	Status    string `json:"status" yaml:"status"`
}

// Result represents scored comparison of two diagrams
type Result struct {
	Label                 string               `json:"label,omitempty" yaml:"label,omitempty"`
	Score                 float64              `json:"score" yaml:"score"`
	Category              Category             `json:"category" yaml:"category"`
	ElementComponent      float64              `json:"element_component" yaml:"element_component"`
	RelationshipComponent float64              `json:"relationship_component" yaml:"relationship_component"`
	ElementMatches        []*ElementMatch      `json:"element_matches" yaml:"element_matches"`
	RelationshipMatches   []*RelationshipMatch `json:"relationship_matches" yaml:"relationship_matches"`
	UnmatchedLeft         []string             `json:"unmatched_left" yaml:"unmatched_left"`
	UnmatchedRight        []string             `json:"unmatched_right" yaml:"unmatched_right"`
	LeftFingerprint       string               `json:"left_fingerprint,omitempty" yaml:"left_fingerprint,omitempty"`
	RightFingerprint      string               `json:"right_fingerprint,omitempty" yaml:"right_fingerprint,omitempty"`
	Error                 string               `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewFailure creates a result for a pair that could not be compared
func NewFailure(label string, err error) *Result {
	ret := &Result{
		Label:               label,
		Category:            Poor,
		ElementMatches:      []*ElementMatch{},
		RelationshipMatches: []*RelationshipMatch{},
		UnmatchedLeft:       []string{},
		UnmatchedRight:      []string{},
	}
	if err != nil {
		ret.Error = err.Error()
	}
	return ret
}

// Failed returns true if result represents failed comparison
func (r *Result) Failed() bool {
	return r.Error != ""
}
