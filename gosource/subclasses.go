package gosource

import (
	"fmt"
	"sort"
)

// Subclasses computes the transitive closure of "structs that embed name",
// name itself included, and returns the type names sorted. Go expresses the
// subclass relation through struct embedding, and a diamond (two types
// embedding Base, one type embedding both) must visit each type once, so
// traversal keeps an explicit visited set instead of trusting recursion.
//
// With leavesOnly set, only types that nothing embeds at the time of the
// call are kept.
func (p *Package) Subclasses(name string, leavesOnly bool) ([]string, error) {
	ti, ok := p.types[name]
	if !ok || ti.spec == nil {
		return nil, fmt.Errorf("%w: type %q in package %s", ErrNotFound, name, p.Name)
	}

	// Reverse edges: embedded type -> embedding types. Built per call so the
	// leaves reflect the index as it stands now.
	embedders := map[string][]string{}
	for _, tn := range p.typeNames {
		for _, embedded := range p.types[tn].embeds {
			embedders[embedded] = append(embedders[embedded], tn)
		}
	}

	visited := map[string]bool{}
	stack := []string{name}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		stack = append(stack, embedders[cur]...)
	}

	var result []string
	for tn := range visited {
		if leavesOnly && len(embedders[tn]) > 0 {
			continue
		}
		result = append(result, tn)
	}
	sort.Strings(result)
	return result, nil
}
