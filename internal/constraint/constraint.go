// Package constraint turns go-playground/validator tag strings into short
// human-readable phrases for rendered documentation.
package constraint

import (
	"fmt"
	"strings"
)

// Mapper translates validate tags. Custom validators registered with a
// description render as that description; unknown tags pass through
// verbatim so home-grown validators still show up.
type Mapper struct {
	custom map[string]string
}

// NewMapper creates an empty mapper.
func NewMapper() *Mapper {
	return &Mapper{custom: map[string]string{}}
}

// Register attaches a description to a custom validator name.
func (m *Mapper) Register(name, description string) {
	m.custom[name] = description
}

// structural tags carry no documentable constraint.
var structural = map[string]bool{
	"omitempty":     true,
	"omitnil":       true,
	"dive":          true,
	"keys":          true,
	"endkeys":       true,
	"structonly":    true,
	"nostructlevel": true,
	"-":             true,
}

// Describe splits a validate tag ("required,min=3,max=64") into one phrase
// per constraint, in tag order. An empty tag yields nil.
func (m *Mapper) Describe(tag string) []string {
	var phrases []string
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" || structural[part] {
			continue
		}

		// OR groups render as alternatives.
		if strings.Contains(part, "|") {
			var alts []string
			for _, alt := range strings.Split(part, "|") {
				alts = append(alts, m.describeOne(strings.TrimSpace(alt)))
			}
			phrases = append(phrases, strings.Join(alts, " or "))
			continue
		}

		phrases = append(phrases, m.describeOne(part))
	}
	return phrases
}

func (m *Mapper) describeOne(tag string) string {
	name, value, _ := strings.Cut(tag, "=")

	if desc, ok := m.custom[name]; ok {
		return desc
	}

	switch name {
	case "required":
		return "required"
	case "email":
		return "an email address"
	case "url", "uri", "http_url":
		return "a URL"
	case "uuid", "uuid3", "uuid4", "uuid5":
		return "a UUID"
	case "datetime":
		return "a timestamp"
	case "ip", "ipv4":
		return "an IPv4 address"
	case "ipv6":
		return "an IPv6 address"
	case "cidr":
		return "a CIDR block"
	case "mac":
		return "a MAC address"
	case "hostname", "fqdn":
		return "a hostname"
	case "alpha":
		return "letters only"
	case "alphanum":
		return "letters and digits only"
	case "numeric":
		return "numeric"
	case "base64":
		return "base64 encoded"
	case "lowercase":
		return "lower case"
	case "uppercase":
		return "upper case"
	case "min":
		return "at least " + value
	case "max":
		return "at most " + value
	case "len":
		return "exactly " + value
	case "gt":
		return "greater than " + value
	case "gte":
		return "at least " + value
	case "lt":
		return "less than " + value
	case "lte":
		return "at most " + value
	case "eq":
		return "equal to " + value
	case "ne":
		return "not " + value
	case "oneof":
		return "one of: " + strings.Join(strings.Fields(value), ", ")
	default:
		if value != "" {
			return fmt.Sprintf("%s=%s", name, value)
		}
		return name
	}
}
