package cmd

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/umldiff/pairing"
)

// Options represents command line options
type Options struct {
	Left    string   `short:"l" long:"left" description:"authoritative diagram file or folder URL" required:"true"`
	Right   string   `short:"r" long:"right" description:"compared diagram file or folder URL" required:"true"`
	Config  string   `short:"c" long:"config" description:"comparison config URL (yaml or json)"`
	Format  string   `short:"f" long:"format" description:"report format" choice:"yaml" choice:"json" default:"yaml"`
	Pairs   []string `short:"p" long:"pair" description:"manual pairing left=right, repeatable"`
	MaxSize int64    `short:"m" long:"maxSize" description:"max file size in bytes"`
	Verbose bool     `short:"v" long:"verbose" description:"debug logging"`
}

// Init applies defaults
func (o *Options) Init() {
	if o.Format == "" {
		o.Format = "yaml"
	}
	if o.MaxSize == 0 {
		o.MaxSize = pairing.DefaultMaxSize
	}
}

// Validate checks options
func (o *Options) Validate() error {
	if o.Left == "" || o.Right == "" {
		return errors.New("left and right locations are required")
	}
	for _, pair := range o.Pairs {
		if _, _, ok := splitPair(pair); !ok {
			return errors.Errorf("invalid pair: %v, expected left=right", pair)
		}
	}
	if o.MaxSize < 0 {
		return errors.Errorf("invalid maxSize: %v", o.MaxSize)
	}
	return nil
}

func splitPair(pair string) (string, string, bool) {
	left, right, ok := strings.Cut(pair, "=")
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)
	return left, right, ok && left != "" && right != ""
}

func (o *Options) level() slog.Level {
	if o.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
