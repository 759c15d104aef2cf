package exdoc

import (
	"reflect"
	"sort"
	"unicode"
	"unicode/utf8"
)

// Member is one named member of a value: a struct field or a method.
type Member struct {
	Name  string
	Value reflect.Value
}

// MemberPredicate decides whether a member is kept. Nil predicates are
// ignored.
type MemberPredicate func(name string, value reflect.Value) bool

// Exported reports whether name starts with an upper-case letter and not
// with an underscore. It is the default Members filter.
func Exported(name string, _ reflect.Value) bool {
	if name == "" || name[0] == '_' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// Members enumerates the struct fields and methods of obj, sorted by name.
//
// With no predicates the Exported filter applies. Passing any explicit
// predicate list, even a single nil, replaces the default: Members(v, nil)
// returns every member. A member is kept only when every non-nil predicate
// accepts it.
func Members(obj any, preds ...MemberPredicate) []Member {
	if obj == nil {
		return nil
	}
	if len(preds) == 0 {
		preds = []MemberPredicate{Exported}
	}

	v := reflect.ValueOf(obj)
	t := v.Type()

	var members []Member
	keep := func(name string, value reflect.Value) {
		for _, p := range preds {
			if p != nil && !p(name, value) {
				return
			}
		}
		members = append(members, Member{Name: name, Value: value})
	}

	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		keep(m.Name, v.Method(i))
	}

	elem := v
	for elem.Kind() == reflect.Pointer && !elem.IsNil() {
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct {
		et := elem.Type()
		for i := 0; i < et.NumField(); i++ {
			keep(et.Field(i).Name, elem.Field(i))
		}
	}

	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members
}
