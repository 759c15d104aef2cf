package docstring

import (
	"regexp"
	"strings"

	"github.com/example/exdoc"
)

// sphinxTag matches a reST field marker at the start of a line, capturing the
// tag word and an optional single-token argument: ":param name: text".
var sphinxTag = regexp.MustCompile(`(?m)^[ \t]*:(param|type|return|returns|rtype|raise|raises|except|exception)(?:[ \t]+(\S+))?[ \t]*:`)

// Tag words normalize onto four kinds; unknown words never match the regex.
var sphinxKinds = map[string]string{
	"param":     "param",
	"type":      "type",
	"return":    "ret",
	"returns":   "ret",
	"rtype":     "rtype",
	"raise":     "exc",
	"raises":    "exc",
	"except":    "exc",
	"exception": "exc",
}

func parseSphinx(text string) *exdoc.DocRecord {
	matches := sphinxTag.FindAllStringSubmatchIndex(text, -1)
	c := newFieldCollector()

	description := strings.TrimSpace(text[:matches[0][0]])

	for i, m := range matches {
		tag := text[m[2]:m[3]]
		arg := ""
		if m[4] >= 0 {
			arg = text[m[4]:m[5]]
		}

		// The field body runs from the marker to the next marker or the end
		// of the text, continuation lines included.
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := joinLines(text[m[1]:end])

		switch sphinxKinds[tag] {
		case "param":
			c.addParam(arg, body)
		case "type":
			c.addType(arg, body)
		case "ret":
			c.addReturn(body)
		case "rtype":
			c.addReturnType(body)
		case "exc":
			c.addExc(arg, body)
		}
	}

	return c.record(description)
}
