package scorer

const (
	DefaultElementWeight      = 0.6
	DefaultRelationshipWeight = 0.4
	// DefaultAttributeThreshold is minimal member text similarity treated as the same member
	DefaultAttributeThreshold = 0.85
	// KindMismatchWeight is credit given to relationship matched with different kind
	KindMismatchWeight = 0.5
)

type options struct {
	elementWeight      float64
	relationshipWeight float64
	attributeThreshold float64
}

// Option customizes scoring
type Option func(*options)

// WithWeights sets element and relationship component weights
func WithWeights(element, relationship float64) Option {
	return func(o *options) {
		o.elementWeight = element
		o.relationshipWeight = relationship
	}
}

// WithAttributeThreshold sets fuzzy member matching threshold, 1 disables fuzzy member matching
func WithAttributeThreshold(threshold float64) Option {
	return func(o *options) {
		o.attributeThreshold = threshold
	}
}

func newOptions(opts []Option) *options {
	ret := &options{
		elementWeight:      DefaultElementWeight,
		relationshipWeight: DefaultRelationshipWeight,
		attributeThreshold: DefaultAttributeThreshold,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
