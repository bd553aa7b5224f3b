package comparator

import (
	"math"

	"github.com/pkg/errors"
	"github.com/viant/umldiff/scorer"
)

var errNilPair = errors.New("pair was nil")

// Summary represents batch statistics
type Summary struct {
	Total     int                     `json:"total" yaml:"total"`
	Failed    int                     `json:"failed" yaml:"failed"`
	Average   float64                 `json:"average" yaml:"average"`
	Best      float64                 `json:"best" yaml:"best"`
	Worst     float64                 `json:"worst" yaml:"worst"`
	Histogram map[scorer.Category]int `json:"histogram" yaml:"histogram"`
}

// Summarize computes batch statistics, failed results count as zero score in the average
func Summarize(results []*scorer.Result) *Summary {
	ret := &Summary{Histogram: map[scorer.Category]int{}}
	if len(results) == 0 {
		return ret
	}
	total := 0.0
	ret.Worst = math.MaxFloat64
	for _, result := range results {
		if result == nil {
			continue
		}
		ret.Total++
		if result.Failed() {
			ret.Failed++
		}
		total += result.Score
		ret.Best = math.Max(ret.Best, result.Score)
		ret.Worst = math.Min(ret.Worst, result.Score)
		ret.Histogram[result.Category]++
	}
	if ret.Total == 0 {
		ret.Worst = 0
		return ret
	}
	ret.Average = math.Round(total/float64(ret.Total)*100) / 100
	return ret
}
