package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/viant/umldiff/comparator"
	"github.com/viant/umldiff/pairing"
	"github.com/viant/umldiff/scorer"
	"github.com/viant/umldiff/source"
	"gopkg.in/yaml.v3"
)

// Report represents command output
type Report struct {
	Results   []*Entry            `json:"results" yaml:"results"`
	Summary   *comparator.Summary `json:"summary" yaml:"summary"`
	Unmatched []string            `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`
}

// Entry represents one compared pair with its files
type Entry struct {
	Left   *Source        `json:"left" yaml:"left"`
	Right  *Source        `json:"right,omitempty" yaml:"right,omitempty"`
	Result *scorer.Result `json:"result" yaml:"result"`
}

// Source identifies a compared file
type Source struct {
	Label    string `json:"label" yaml:"label"`
	Name     string `json:"name" yaml:"name"`
	Checksum string `json:"checksum" yaml:"checksum"`
	Size     int64  `json:"size" yaml:"size"`
}

func newSource(file *pairing.File) *Source {
	if file == nil {
		return nil
	}
	return &Source{Label: file.Label, Name: file.Name, Checksum: file.Checksum, Size: file.Size}
}

// New runs comparison for command line args writing report to out
func New(args []string, out io.Writer) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	options.Init()
	if err := options.Validate(); err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: options.level()}))
	report, err := Run(context.Background(), options, logger)
	if err != nil {
		return err
	}
	return write(out, options.Format, report)
}

// Run loads, pairs, parses and compares diagrams
func Run(ctx context.Context, options *Options, logger *slog.Logger) (*Report, error) {
	config := comparator.DefaultConfig()
	if options.Config != "" {
		var err error
		if config, err = comparator.NewConfigFromURL(ctx, options.Config); err != nil {
			return nil, err
		}
	}
	loader := pairing.NewLoader(pairing.WithExtensions(source.Extensions()...), pairing.WithMaxSize(options.MaxSize))
	left, err := loader.Load(ctx, options.Left)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load left diagrams")
	}
	right, err := loader.Load(ctx, options.Right)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load right diagrams")
	}

	var filePairs []*pairing.Pair
	if len(left) == 1 && len(right) == 1 {
		filePairs = []*pairing.Pair{{Left: left[0], Right: right[0]}}
	} else {
		filePairs, _ = pairing.AutoPair(left, right)
	}
	for _, manual := range options.Pairs {
		leftName, rightName, _ := splitPair(manual)
		if !pairing.Override(filePairs, right, leftName, rightName) {
			return nil, errors.Errorf("failed to pair %v: unknown file", manual)
		}
	}
	report := &Report{}
	for _, file := range pairing.Unpaired(filePairs, right) {
		logger.Warn("unpaired diagram", slog.String("file", file.Label))
		report.Unmatched = append(report.Unmatched, file.Label)
	}

	pairs := make([]*comparator.Pair, 0, len(filePairs))
	for _, filePair := range filePairs {
		pairs = append(pairs, newPair(ctx, filePair))
	}
	service := comparator.New(config, comparator.WithLogger(logger))
	results := service.CompareBatch(ctx, pairs)
	for i, result := range results {
		report.Results = append(report.Results, &Entry{
			Left:   newSource(filePairs[i].Left),
			Right:  newSource(filePairs[i].Right),
			Result: result,
		})
	}
	report.Summary = comparator.Summarize(results)
	logger.Info("compared diagrams", slog.Int("pairs", len(pairs)), slog.Float64("average", report.Summary.Average))
	return report, nil
}

func newPair(ctx context.Context, filePair *pairing.Pair) *comparator.Pair {
	ret := &comparator.Pair{Label: filePair.Label()}
	if filePair.Right == nil {
		ret.Err = errors.Errorf("no matching diagram for %v", filePair.Left.Label)
		return ret
	}
	if ret.Left, _, ret.Err = source.Parse(ctx, filePair.Left.Label, filePair.Left.Data); ret.Err != nil {
		return ret
	}
	var format source.Format
	ret.Right, format, ret.Err = source.Parse(ctx, filePair.Right.Label, filePair.Right.Data)
	ret.RightKind = format.SourceKind()
	return ret
}

func write(out io.Writer, format string, report *Report) error {
	if format == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return err
	}
	return encoder.Close()
}
