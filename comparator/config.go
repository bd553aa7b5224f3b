package comparator

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/umldiff/aligner"
	"github.com/viant/umldiff/scorer"
	"gopkg.in/yaml.v3"
)

// Config represents comparison tuning parameters
type Config struct {
	Threshold          float64 `json:"threshold" yaml:"threshold"`                   // Fuzzy element name acceptance threshold
	KindBonus          float64 `json:"kindBonus" yaml:"kindBonus"`                   // Ranking bonus for kind agreement
	AttributeThreshold float64 `json:"attributeThreshold" yaml:"attributeThreshold"` // Fuzzy member acceptance threshold
	ElementWeight      float64 `json:"elementWeight" yaml:"elementWeight"`
	RelationshipWeight float64 `json:"relationshipWeight" yaml:"relationshipWeight"`
	Concurrency        int     `json:"concurrency" yaml:"concurrency"` // Max pairs compared at once in a batch
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Threshold:          aligner.DefaultThreshold,
		KindBonus:          aligner.DefaultKindBonus,
		AttributeThreshold: scorer.DefaultAttributeThreshold,
		ElementWeight:      scorer.DefaultElementWeight,
		RelationshipWeight: scorer.DefaultRelationshipWeight,
		Concurrency:        4,
	}
}

// Validate checks config ranges
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.Errorf("invalid threshold: %v, expected [0,1]", c.Threshold)
	}
	if c.AttributeThreshold < 0 || c.AttributeThreshold > 1 {
		return errors.Errorf("invalid attributeThreshold: %v, expected [0,1]", c.AttributeThreshold)
	}
	if c.ElementWeight < 0 || c.RelationshipWeight < 0 {
		return errors.Errorf("invalid weights: %v/%v", c.ElementWeight, c.RelationshipWeight)
	}
	if c.ElementWeight+c.RelationshipWeight == 0 {
		return errors.New("invalid weights: both were zero")
	}
	if c.Concurrency < 0 {
		return errors.Errorf("invalid concurrency: %v", c.Concurrency)
	}
	return nil
}

func (c *Config) alignOptions() []aligner.Option {
	return []aligner.Option{aligner.WithThreshold(c.Threshold), aligner.WithKindBonus(c.KindBonus)}
}

func (c *Config) scoreOptions() []scorer.Option {
	return []scorer.Option{
		scorer.WithWeights(c.ElementWeight, c.RelationshipWeight),
		scorer.WithAttributeThreshold(c.AttributeThreshold),
	}
}

// NewConfigFromURL loads YAML or JSON config, fields not present keep default values
func NewConfigFromURL(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config: %v", URL)
	}
	cfg := DefaultConfig()
	if strings.HasSuffix(URL, ".json") {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode config: %v", URL)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
