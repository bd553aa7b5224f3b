package ocr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/umldiff/diagram"
	"github.com/viant/umldiff/normalizer"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      string
	}{
		{
			description: "entities with members",
			input: `{"entities":[
				{"name":" User ","attributes":["- id : int"],"methods":["getName ( ) : String","- hidden()"]},
				{"name":"Order"}
			]}`,
			expect: `
entities:
  - name: User
    attributes: ["- id : int"]
    methods: ["+ getName(): String", "- hidden()"]
  - name: Order
`,
		},
		{
			description: "optional relationships",
			input: `{"entities":[{"name":"A"},{"name":"B","kind":"interface"}],
				"relationships":[{"source":"A","target":"B","kind":"implementation","directed":true}]}`,
			expect: `
entities:
  - name: A
  - name: B
    kind: interface
relationships:
  - {source: A, target: B, kind: implementation, directed: true}
`,
		},
	}

	for _, testCase := range testCases {
		doc, err := Parse([]byte(testCase.input))
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		expect := &diagram.Document{}
		require.Nil(t, yaml.Unmarshal([]byte(testCase.expect), expect), testCase.description)
		assert.EqualValues(t, expect, doc, testCase.description)
	}
}

func TestParse_Invalid(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		malformed   bool
	}{
		{description: "broken json", input: `{"entities":[`},
		{description: "entities not array", input: `{"entities":{}}`, malformed: true},
		{description: "name not string", input: `{"entities":[{"name":42}]}`, malformed: true},
		{description: "method not string", input: `{"entities":[{"name":"A","methods":[true]}]}`, malformed: true},
	}
	for _, testCase := range testCases {
		_, err := Parse([]byte(testCase.input))
		if !assert.NotNil(t, err, testCase.description) {
			continue
		}
		var malformedErr *normalizer.MalformedInputError
		assert.Equal(t, testCase.malformed, errors.As(err, &malformedErr), testCase.description)
	}
}

func TestCleanMethod(t *testing.T) {
	assert.Equal(t, "+ getName(): String", CleanMethod("getName ( ) : String"))
	assert.Equal(t, "+ run()", CleanMethod(" run( ) "))
	assert.Equal(t, "# calc( x )", CleanMethod("# calc( x )"))
	assert.Equal(t, "", CleanMethod("  "))
}
