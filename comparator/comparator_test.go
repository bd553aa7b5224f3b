package comparator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/umldiff/diagram"
	"github.com/viant/umldiff/normalizer"
	"github.com/viant/umldiff/scorer"
)

func userOrder(orderAttributes ...string) *diagram.Document {
	return &diagram.Document{
		Entities: []*diagram.Entity{
			{Name: "User", Kind: "class", Attributes: []string{"id", "name"}},
			{Name: "Order", Kind: "class", Attributes: orderAttributes},
		},
		Relationships: []*diagram.Relation{{Source: "User", Target: "Order", Kind: "association", Directed: true}},
	}
}

func TestComparator_Compare(t *testing.T) {
	srv := New(nil)
	result, err := srv.Compare("orders", userOrder("id", "total"), userOrder("id"))
	require.Nil(t, err)
	assert.Equal(t, "orders", result.Label)
	assert.Equal(t, 85.0, result.Score)
	assert.Equal(t, scorer.Good, result.Category)

	_, err = srv.Compare("broken", &diagram.Document{Entities: []*diagram.Entity{{Name: ""}}}, userOrder())
	var malformed *normalizer.MalformedInputError
	assert.True(t, errors.As(err, &malformed))
}

func TestComparator_CompareBatch(t *testing.T) {
	srv := New(&Config{Threshold: 0.6, AttributeThreshold: 0.85, ElementWeight: 0.6, RelationshipWeight: 0.4, Concurrency: 2})
	var pairs []*Pair
	for i := 0; i < 6; i++ {
		pairs = append(pairs, &Pair{Label: fmt.Sprintf("pair-%d", i), Left: userOrder("id", "total"), Right: userOrder("id", "total")})
	}
	pairs[2].Right = &diagram.Document{Entities: []*diagram.Entity{{Name: "A"}}, Relationships: []*diagram.Relation{{Source: "A", Target: "B"}}}
	pairs[4].Err = errors.New("unsupported file type")
	pairs = append(pairs, nil)

	results := srv.CompareBatch(context.Background(), pairs)
	require.Len(t, results, len(pairs))
	for i, result := range results {
		switch i {
		case 2:
			assert.True(t, result.Failed())
			assert.Contains(t, result.Error, "relationships[0].target")
			assert.Equal(t, "pair-2", result.Label)
		case 4:
			assert.Equal(t, "unsupported file type", result.Error)
		case 6:
			assert.True(t, result.Failed())
		default:
			assert.False(t, result.Failed())
			assert.Equal(t, fmt.Sprintf("pair-%d", i), result.Label)
			assert.Equal(t, 100.0, result.Score)
		}
	}

	summary := Summarize(results)
	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 3, summary.Failed)
	assert.Equal(t, 100.0, summary.Best)
	assert.Equal(t, 0.0, summary.Worst)
	assert.Equal(t, 57.14, summary.Average)
	assert.Equal(t, 4, summary.Histogram[scorer.Excellent])
	assert.Equal(t, 3, summary.Histogram[scorer.Poor])
}

func TestComparator_CompareBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := New(nil).CompareBatch(ctx, []*Pair{{Label: "late", Left: userOrder(), Right: userOrder()}})
	require.Len(t, results, 1)
	assert.True(t, results[0].Failed())
	assert.Equal(t, "late", results[0].Label)
}

func TestNewConfigFromURL(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		description string
		name        string
		content     string
		expect      *Config
		wantErr     bool
	}{
		{
			description: "yaml overrides defaults",
			name:        "config.yaml",
			content:     "threshold: 0.75\nconcurrency: 8\n",
			expect: func() *Config {
				cfg := DefaultConfig()
				cfg.Threshold = 0.75
				cfg.Concurrency = 8
				return cfg
			}(),
		},
		{
			description: "json config",
			name:        "config.json",
			content:     `{"elementWeight": 0.5, "relationshipWeight": 0.5}`,
			expect: func() *Config {
				cfg := DefaultConfig()
				cfg.ElementWeight = 0.5
				cfg.RelationshipWeight = 0.5
				return cfg
			}(),
		},
		{
			description: "invalid threshold",
			name:        "invalid.yaml",
			content:     "threshold: 1.5\n",
			wantErr:     true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			location := filepath.Join(dir, tc.name)
			require.Nil(t, os.WriteFile(location, []byte(tc.content), 0644))
			cfg, err := NewConfigFromURL(context.Background(), location)
			if tc.wantErr {
				assert.NotNil(t, err)
				return
			}
			require.Nil(t, err)
			assert.EqualValues(t, tc.expect, cfg)
		})
	}
}
