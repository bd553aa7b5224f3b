package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/umldiff/scorer"
	"gopkg.in/yaml.v3"
)

func writeFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		require.Nil(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestNew(t *testing.T) {
	left := writeFiles(t, map[string]string{
		"User.puml": "@startuml\nclass User {\n  - id : int\n}\n@enduml\n",
		"Shop.puml": "@startuml\nclass Shop\n@enduml\n",
	})
	right := writeFiles(t, map[string]string{
		"user.json": `{"entities":[{"name":"User","attributes":["- id : int"]}]}`,
		"misc.json": `{"entities":[]}`,
	})

	var testCases = []struct {
		description string
		format      string
		decode      func(data []byte, report *Report) error
	}{
		{description: "json report", format: "json", decode: func(data []byte, report *Report) error {
			return json.Unmarshal(data, report)
		}},
		{description: "yaml report", format: "yaml", decode: func(data []byte, report *Report) error {
			return yaml.Unmarshal(data, report)
		}},
	}
	for _, testCase := range testCases {
		out := &bytes.Buffer{}
		err := New([]string{"-l", left, "-r", right, "-f", testCase.format}, out)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		report := &Report{}
		require.Nil(t, testCase.decode(out.Bytes(), report), testCase.description)
		require.Len(t, report.Results, 2, testCase.description)
		shop, user := report.Results[0], report.Results[1]
		assert.Equal(t, "Shop.puml", shop.Result.Label, testCase.description)
		assert.True(t, shop.Result.Failed(), testCase.description)
		assert.Nil(t, shop.Right, testCase.description)
		assert.Equal(t, "User.puml vs user.json", user.Result.Label, testCase.description)
		assert.EqualValues(t, 100, user.Result.Score, testCase.description)
		assert.Equal(t, scorer.Excellent, user.Result.Category, testCase.description)
		require.NotNil(t, user.Right, testCase.description)
		assert.Equal(t, "user.json", user.Right.Name, testCase.description)
		assert.Len(t, user.Left.Checksum, 16, testCase.description)
		assert.NotEqual(t, user.Left.Checksum, user.Right.Checksum, testCase.description)
		assert.Equal(t, []string{"misc.json"}, report.Unmatched, testCase.description)
		assert.Equal(t, 2, report.Summary.Total, testCase.description)
		assert.Equal(t, 1, report.Summary.Failed, testCase.description)
		assert.EqualValues(t, 50, report.Summary.Average, testCase.description)
	}
}

func TestNew_Options(t *testing.T) {
	assert.Nil(t, New([]string{"--help"}, io.Discard))
	assert.NotNil(t, New([]string{"-l", "left"}, io.Discard))
	assert.NotNil(t, New([]string{"-l", "a", "-r", "b", "-f", "xml"}, io.Discard))
	assert.NotNil(t, New([]string{"-l", "a", "-r", "b", "-p", "Shop.puml"}, io.Discard))
}

func TestRun_ManualPairs(t *testing.T) {
	left := writeFiles(t, map[string]string{
		"User.puml": "@startuml\nclass User\n@enduml\n",
		"Shop.puml": "@startuml\nclass Shop\n@enduml\n",
	})
	right := writeFiles(t, map[string]string{
		"user.json":  `{"entities":[{"name":"User"}]}`,
		"store.json": `{"entities":[{"name":"Shop"}]}`,
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var testCases = []struct {
		description string
		pairs       []string
		expect      map[string]string
		unmatched   []string
		hasError    bool
	}{
		{
			description: "stem pairing only",
			expect:      map[string]string{"Shop.puml": "", "User.puml": "user.json"},
			unmatched:   []string{"store.json"},
		},
		{
			description: "manual pair fills gap",
			pairs:       []string{"Shop.puml=store.json"},
			expect:      map[string]string{"Shop.puml": "store.json", "User.puml": "user.json"},
		},
		{
			description: "manual pair moves file",
			pairs:       []string{"Shop.puml = user.json"},
			expect:      map[string]string{"Shop.puml": "user.json", "User.puml": ""},
			unmatched:   []string{"store.json"},
		},
		{
			description: "unknown file",
			pairs:       []string{"Shop.puml=missing.json"},
			hasError:    true,
		},
	}
	for _, testCase := range testCases {
		options := &Options{Left: left, Right: right, Pairs: testCase.pairs}
		options.Init()
		report, err := Run(context.Background(), options, logger)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		actual := map[string]string{}
		for _, entry := range report.Results {
			actual[entry.Left.Label] = ""
			if entry.Right != nil {
				actual[entry.Left.Label] = entry.Right.Label
				assert.False(t, entry.Result.Failed(), testCase.description)
			}
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
		assert.Equal(t, testCase.unmatched, report.Unmatched, testCase.description)
	}
}

func TestRun_SingleFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"reference.puml": "@startuml\nclass User\nclass Order\nUser --> Order\n@enduml\n",
		"student.json":   `{"entities":[{"name":"User"},{"name":"Ordr"}]}`,
		"config.yaml":    "threshold: 0.9\n",
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	options := &Options{
		Left:   filepath.Join(dir, "reference.puml"),
		Right:  filepath.Join(dir, "student.json"),
		Config: filepath.Join(dir, "config.yaml"),
	}
	options.Init()
	report, err := Run(context.Background(), options, logger)
	require.Nil(t, err)
	require.Len(t, report.Results, 1)
	result := report.Results[0].Result
	assert.False(t, result.Failed())
	assert.Equal(t, []string{"Order"}, result.UnmatchedLeft)
	assert.Equal(t, []string{"Ordr"}, result.UnmatchedRight)
}

func TestRun_Invalid(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := writeFiles(t, map[string]string{"a.puml": "class A"})
	options := &Options{Left: filepath.Join(dir, "a.puml"), Right: filepath.Join(dir, "missing")}
	options.Init()
	_, err := Run(context.Background(), options, logger)
	assert.NotNil(t, err)

	options = &Options{Left: dir, Right: dir, Config: filepath.Join(dir, "missing.yaml")}
	options.Init()
	_, err = Run(context.Background(), options, logger)
	assert.NotNil(t, err)
}
