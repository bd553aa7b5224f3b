package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	first, err := Hash([]byte("class User"))
	assert.Nil(t, err)
	second, err := Hash([]byte("class User"))
	assert.Nil(t, err)
	other, err := Hash([]byte("class Order"))
	assert.Nil(t, err)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, HashString([]byte("class User")), 16)
}

func TestModel_Fingerprint(t *testing.T) {
	user := &Element{ID: "user", Name: "User", Key: "user", Kind: KindClass}
	user.SetAttributes([]string{"- id: int"}, []string{"- id: int"})
	order := &Element{ID: "order", Name: "Order", Key: "order", Kind: KindClass}
	rel := &Relationship{Source: "user", Target: "order", Kind: Association, Directed: true}

	model := NewModel(Authoritative, []*Element{order, user}, []*Relationship{rel})
	same := NewModel(Derived, []*Element{order, user}, []*Relationship{rel})

	expected, err := model.Fingerprint()
	assert.Nil(t, err)
	actual, err := same.Fingerprint()
	assert.Nil(t, err)
	assert.Equal(t, expected, actual, "source kind must not affect fingerprint")
	assert.Contains(t, model.Content(), "user -> order : association")
	assert.Equal(t, "Order", model.ElementName("order"))
	assert.Equal(t, "missing", model.ElementName("missing"))
	assert.Nil(t, model.GetElement("missing"))
}

func TestModel_GetElement(t *testing.T) {
	user := &Element{ID: "user", Name: "User", Key: "user"}
	literal := &Model{Elements: []*Element{user}}
	assert.Equal(t, user, literal.GetElement("user"))
	assert.Nil(t, literal.GetElement("order"))
	assert.Nil(t, literal.elementMap, "lookup must not write to a shared model")

	indexed := NewModel(Authoritative, []*Element{user}, nil)
	assert.Equal(t, user, indexed.GetElement("user"))
}
