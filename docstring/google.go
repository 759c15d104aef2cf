package docstring

import (
	"regexp"
	"strings"

	"github.com/example/exdoc"
)

// googleHeader matches a section header line: "Args:", "Returns:", ...
var googleHeader = regexp.MustCompile(`^[ \t]*(Args|Arguments|Parameters|Returns|Return|Raises):[ \t]*$`)

// googleItem matches an entry line inside a section: "name (type): text" or
// "name: text".
var googleItem = regexp.MustCompile(`^([\w*.\[\]]+)(?:[ \t]*\(([^)]*)\))?[ \t]*:[ \t]*(.*)$`)

func isGoogle(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if googleHeader.MatchString(line) {
			return true
		}
	}
	return false
}

// section kinds keyed by header word.
var googleKinds = map[string]string{
	"Args":       "param",
	"Arguments":  "param",
	"Parameters": "param",
	"Returns":    "ret",
	"Return":     "ret",
	"Raises":     "exc",
}

func parseGoogle(text string) *exdoc.DocRecord {
	lines := strings.Split(text, "\n")
	c := newFieldCollector()

	var description []string
	section := ""
	var itemName, itemType string
	var itemBody []string
	itemIndent := 0

	flush := func() {
		if section == "" {
			return
		}
		body := joinLines(strings.Join(itemBody, "\n"))
		switch section {
		case "param":
			if itemName != "" {
				c.addParam(itemName, body)
				c.addType(itemName, itemType)
			}
		case "ret":
			if itemName != "" || body != "" {
				c.addReturn(body)
				c.addReturnType(itemType)
			}
		case "exc":
			if itemName != "" {
				c.addExc(itemName, body)
			}
		}
		itemName, itemType, itemBody = "", "", nil
	}

	for _, line := range lines {
		if h := googleHeader.FindStringSubmatch(line); h != nil {
			flush()
			section = googleKinds[h[1]]
			continue
		}

		trimmed := strings.TrimSpace(line)
		if section == "" {
			description = append(description, line)
			continue
		}

		// A dedented non-empty line closes the current section and rejoins
		// the free-form description.
		if trimmed != "" && !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			flush()
			section = ""
			description = append(description, line)
			continue
		}

		// A line matching the entry grammar starts a new item only at the
		// item indent level; indented deeper than the current item's first
		// line it is a continuation that happens to contain a colon.
		if m := googleItem.FindStringSubmatch(trimmed); m != nil && (itemBody == nil || indentWidth(line) <= itemIndent) {
			flush()
			itemIndent = indentWidth(line)
			switch section {
			case "param", "exc":
				itemName, itemType = m[1], strings.TrimSpace(m[2])
				itemBody = []string{m[3]}
			case "ret":
				// "type: description" when the head token looks like a type;
				// otherwise the whole line is description text.
				itemName = "return"
				itemType = m[1]
				itemBody = []string{m[3]}
			}
			continue
		}

		if trimmed != "" {
			itemBody = append(itemBody, trimmed)
		}
	}
	flush()

	return c.record(strings.TrimSpace(strings.Join(description, "\n")))
}

// indentWidth measures a line's leading whitespace; a tab counts as four.
func indentWidth(line string) int {
	w := 0
	for _, r := range line {
		switch r {
		case ' ':
			w++
		case '\t':
			w += 4
		default:
			return w
		}
	}
	return w
}
