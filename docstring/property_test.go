//go:build property
// +build property

package docstring

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestParseProperties checks the parser invariants over generated input.
func TestParseProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: text with no recognized field markers comes back as a plain
	// description equal to the trimmed input.
	properties.Property("markerless text is description only", prop.ForAll(
		func(words []string) bool {
			text := strings.Join(words, " ")
			if strings.Contains(text, ":") {
				return true // marker-free inputs only
			}
			rec := Parse(text)
			return rec.Description == strings.TrimSpace(text) &&
				len(rec.Parameters) == 0 && rec.Return == nil && len(rec.Exceptions) == 0
		},
		gen.SliceOf(gen.AlphaString()),
	))

	// Property: N distinct :param entries produce exactly N parameters in
	// declaration order.
	properties.Property("param count and order", prop.ForAll(
		func(n int) bool {
			var b strings.Builder
			b.WriteString("Description.\n\n")
			for i := 0; i < n; i++ {
				fmt.Fprintf(&b, ":param p%d: value %d\n", i, i)
			}
			rec := Parse(b.String())
			if len(rec.Parameters) != n {
				return false
			}
			for i, p := range rec.Parameters {
				if p.Name != fmt.Sprintf("p%d", i) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 20),
	))

	// Property: parsing is pure, two runs agree structurally.
	properties.Property("parse is idempotent", prop.ForAll(
		func(text string) bool {
			return reflect.DeepEqual(Parse(text), Parse(text))
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
