package exdoc

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type widget struct {
	Name   string
	Size   int
	hidden bool
}

func (widget) Render() string    { return "" }
func (widget) Area() int         { return 0 }
func (*widget) Invalidate() bool { return false }

func names(members []Member) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name
	}
	return out
}

func TestMembersDefaultFilter(t *testing.T) {
	m := Members(widget{})
	assert.Equal(t, []string{"Area", "Name", "Render", "Size"}, names(m))
}

func TestMembersPointerIncludesPointerMethods(t *testing.T) {
	m := Members(&widget{})
	assert.Equal(t, []string{"Area", "Invalidate", "Name", "Render", "Size"}, names(m))
}

func TestMembersNilPredicateDisablesFilter(t *testing.T) {
	// An explicit predicate list, even just nil, replaces the default.
	m := Members(widget{}, nil)
	assert.Equal(t, []string{"Area", "Name", "Render", "Size", "hidden"}, names(m))
}

func TestMembersPredicatesAreANDed(t *testing.T) {
	noRender := func(name string, _ reflect.Value) bool { return name != "Render" }
	short := func(name string, _ reflect.Value) bool { return len(name) <= 4 }

	m := Members(widget{}, Exported, noRender, short)
	assert.Equal(t, []string{"Area", "Name", "Size"}, names(m))
}

func TestMembersPredicateShortCircuits(t *testing.T) {
	calls := 0
	counting := func(string, reflect.Value) bool { calls++; return true }

	Members(widget{}, func(name string, _ reflect.Value) bool { return false }, counting)
	assert.Zero(t, calls)
}

func TestMembersNonStruct(t *testing.T) {
	// Non-struct values still enumerate their methods.
	m := Members(strings.NewReplacer())
	assert.Contains(t, names(m), "Replace")
}

func TestMembersNil(t *testing.T) {
	// A nil value has no members; it must not escalate past that.
	assert.Nil(t, Members(nil))
	assert.Nil(t, Members(nil, nil))

	// A typed nil pointer still enumerates the type's methods.
	m := Members((*widget)(nil))
	assert.Equal(t, []string{"Area", "Invalidate", "Render"}, names(m))
}

func TestExported(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Name", true},
		{"name", false},
		{"_Name", false},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Exported(c.name, reflect.Value{}), c.name)
	}
}
