package puml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/umldiff/diagram"
	"gopkg.in/yaml.v3"
)

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		description string
		source      string
		expectYaml  string
	}{
		{
			description: "class blocks with members",
			source: `@startuml
' comment
skinparam classAttributeIconSize 0
class User {
  - id : int
  + name : String
  --
  + getName() : String
}
abstract class Shape <<entity>> {
}
interface Drawable
@enduml`,
			expectYaml: `entities:
  - name: User
    kind: class
    attributes: ["- id : int", "+ name : String"]
    methods: ["+ getName() : String"]
  - name: Shape
    kind: abstract
  - name: Drawable
    kind: interface
`,
		},
		{
			description: "relationship arrows",
			source: `class Animal
Dog --|> Animal
Animal <|-- Cat
Shape <|.. Circle
Car *-- "4" Wheel : has
Pond o-- Duck
Client --> Server : calls >
Service ..> Repository
Left -- Right
Up <--> Down
`,
			expectYaml: `entities:
  - name: Animal
    kind: class
  - name: Dog
  - name: Cat
  - name: Shape
  - name: Circle
  - name: Car
  - name: Wheel
  - name: Pond
  - name: Duck
  - name: Client
  - name: Server
  - name: Service
  - name: Repository
  - name: Left
  - name: Right
  - name: Up
  - name: Down
relationships:
  - {source: Dog, target: Animal, kind: inheritance, directed: true}
  - {source: Cat, target: Animal, kind: inheritance, directed: true}
  - {source: Circle, target: Shape, kind: implementation, directed: true}
  - {source: Car, target: Wheel, kind: composition, label: has, directed: true}
  - {source: Pond, target: Duck, kind: aggregation, directed: true}
  - {source: Client, target: Server, kind: association, label: calls, directed: true}
  - {source: Service, target: Repository, kind: dependency, directed: true}
  - {source: Left, target: Right, kind: association}
  - {source: Up, target: Down, kind: association}
`,
		},
		{
			description: "aliases, extends clause, members outside block and notes",
			source: `class "Order Line" as OL {
  quantity : int
}
class Invoice extends Document implements Printable, Payable {
}
note top of Invoice
  Invoice --> Nothing
end note
OL : price : double
OL --> Invoice
`,
			expectYaml: `entities:
  - id: OL
    name: Order Line
    kind: class
    attributes: ["quantity : int", "price : double"]
  - name: Invoice
    kind: class
  - name: Document
  - name: Printable
  - name: Payable
relationships:
  - {source: Invoice, target: Document, kind: inheritance, directed: true}
  - {source: Invoice, target: Printable, kind: implementation, directed: true}
  - {source: Invoice, target: Payable, kind: implementation, directed: true}
  - {source: OL, target: Invoice, kind: association, directed: true}
`,
		},
		{
			description: "opening brace on the next line",
			source: `class User
{
  - name : String
  + getName() : String
}
interface Named
Named <|.. User
`,
			expectYaml: `entities:
  - name: User
    kind: class
    attributes: ["- name : String"]
    methods: ["+ getName() : String"]
  - name: Named
    kind: interface
relationships:
  - {source: User, target: Named, kind: implementation, directed: true}
`,
		},
		{
			description: "alias used before its declaration",
			source: `OL --> Invoice
class "Order Line" as OL {
  quantity : int
}
class Invoice
`,
			expectYaml: `entities:
  - id: OL
    name: Order Line
    kind: class
    attributes: ["quantity : int"]
  - name: Invoice
    kind: class
relationships:
  - {source: OL, target: Invoice, kind: association, directed: true}
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := NewParser().Parse([]byte(tc.source))
			require.Nil(t, err)
			expected := &diagram.Document{}
			require.Nil(t, yaml.Unmarshal([]byte(tc.expectYaml), expected))
			assert.EqualValues(t, expected, actual)
		})
	}
}

func TestParser_ParseEmpty(t *testing.T) {
	actual, err := NewParser().Parse([]byte("@startuml\n@enduml\n"))
	require.Nil(t, err)
	assert.Empty(t, actual.Entities)
}
