package aligner

const (
	// DefaultThreshold is minimal name similarity accepted by the fuzzy pass
	DefaultThreshold = 0.6
	// DefaultKindBonus is added to similarity of same kind candidates when ranking,
	// with 0 kind agreement only breaks similarity ties
	DefaultKindBonus = 0.0
)

type options struct {
	threshold float64
	kindBonus float64
}

// Option customizes alignment
type Option func(*options)

// WithThreshold sets fuzzy pass acceptance threshold
func WithThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithKindBonus sets ranking bonus for kind agreement
func WithKindBonus(bonus float64) Option {
	return func(o *options) {
		o.kindBonus = bonus
	}
}

func newOptions(opts []Option) *options {
	ret := &options{threshold: DefaultThreshold, kindBonus: DefaultKindBonus}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
