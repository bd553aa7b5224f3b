package comparator

import (
	"context"
	"io"
	"log/slog"

	"github.com/viant/umldiff/aligner"
	"github.com/viant/umldiff/diagram"
	"github.com/viant/umldiff/normalizer"
	"github.com/viant/umldiff/scorer"
	"golang.org/x/sync/errgroup"
)

// Pair represents left (authoritative) and right diagram to compare
type Pair struct {
	Label     string
	Left      *diagram.Document
	Right     *diagram.Document
	RightKind diagram.SourceKind // Derived when empty
	Err       error              // Error from parsing; the pair is reported as failed
}

// Comparator runs normalize, align and score stages
type Comparator struct {
	config *Config
	logger *slog.Logger
}

// Option customizes comparator
type Option func(*Comparator)

// WithLogger sets structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Comparator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a comparator, nil config uses defaults
func New(config *Config, opts ...Option) *Comparator {
	if config == nil {
		config = DefaultConfig()
	}
	ret := &Comparator{
		config: config,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Compare normalizes both documents and scores their alignment.
// Normalization errors are returned unmodified.
func (c *Comparator) Compare(label string, left, right *diagram.Document) (*scorer.Result, error) {
	return c.compare(label, left, right, diagram.Derived)
}

func (c *Comparator) compare(label string, left, right *diagram.Document, rightKind diagram.SourceKind) (*scorer.Result, error) {
	leftModel, err := normalizer.Normalize(left, diagram.Authoritative)
	if err != nil {
		return nil, err
	}
	if rightKind == "" {
		rightKind = diagram.Derived
	}
	rightModel, err := normalizer.Normalize(right, rightKind)
	if err != nil {
		return nil, err
	}
	correspondence := aligner.Align(leftModel, rightModel, c.config.alignOptions()...)
	result := scorer.Score(correspondence, leftModel, rightModel, c.config.scoreOptions()...)
	result.Label = label
	c.logger.Debug("compared diagrams",
		slog.String("label", label),
		slog.Float64("score", result.Score),
		slog.Int("matched", len(correspondence.Pairs)),
		slog.Int("unmatchedLeft", len(correspondence.UnmatchedLeft)),
		slog.Int("unmatchedRight", len(correspondence.UnmatchedRight)),
	)
	return result, nil
}

// CompareBatch compares every pair independently, results are aligned with pairs by index.
// A failed pair is reported in its result and does not stop the others.
func (c *Comparator) CompareBatch(ctx context.Context, pairs []*Pair) []*scorer.Result {
	results := make([]*scorer.Result, len(pairs))
	group, ctx := errgroup.WithContext(ctx)
	if c.config.Concurrency > 0 {
		group.SetLimit(c.config.Concurrency)
	}
	for i, pair := range pairs {
		i, pair := i, pair
		group.Go(func() error {
			results[i] = c.comparePair(ctx, pair)
			return nil
		})
	}
	_ = group.Wait()
	return results
}

func (c *Comparator) comparePair(ctx context.Context, pair *Pair) *scorer.Result {
	if pair == nil {
		return scorer.NewFailure("", errNilPair)
	}
	if err := ctx.Err(); err != nil {
		return scorer.NewFailure(pair.Label, err)
	}
	if pair.Err != nil {
		c.logger.Warn("skipping pair", slog.String("label", pair.Label), slog.Any("error", pair.Err))
		return scorer.NewFailure(pair.Label, pair.Err)
	}
	result, err := c.compare(pair.Label, pair.Left, pair.Right, pair.RightKind)
	if err != nil {
		c.logger.Warn("comparison failed", slog.String("label", pair.Label), slog.Any("error", err))
		return scorer.NewFailure(pair.Label, err)
	}
	return result
}
