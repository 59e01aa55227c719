package ufds

import (
	"strings"

	"github.com/mhalicki/tritonkit/errors"
)

// RDN is a single attribute/value pair inside a distinguished name.
type RDN struct {
	Attribute string
	Value     string
}

// MatchesAttribute reports whether this RDN carries the given attribute
// name. Attribute names compare case-insensitively.
func (r RDN) MatchesAttribute(attribute string) bool {
	return strings.EqualFold(r.Attribute, attribute)
}

// DN is a parsed distinguished name. It keeps a canonical string form and
// gives access to the individual RDNs. Parsing is strict so malformed DNs
// surface early instead of silently matching nothing.
type DN struct {
	raw string
	// Each element is one comma-separated component; multi-valued RDNs
	// joined with + share an element.
	rdns [][]RDN
}

// ParseDN parses a distinguished name string.
func ParseDN(input string) (DN, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return DN{}, errors.InvalidRequest("distinguished name cannot be empty")
	}

	components, err := splitEscaped(raw, ',')
	if err != nil {
		return DN{}, err
	}

	var rdns [][]RDN
	for _, component := range components {
		parts, err := splitEscaped(component, '+')
		if err != nil {
			return DN{}, err
		}
		var set []RDN
		for _, part := range parts {
			rdn, err := splitAttributeValue(part)
			if err != nil {
				return DN{}, err
			}
			set = append(set, rdn)
		}
		rdns = append(rdns, set)
	}

	return DN{raw: rdnsToString(rdns), rdns: rdns}, nil
}

// MustParseDN parses a distinguished name and panics on failure. Intended
// for constants and tests.
func MustParseDN(input string) DN {
	dn, err := ParseDN(input)
	if err != nil {
		panic(err)
	}
	return dn
}

// String returns the canonical distinguished name.
func (d DN) String() string { return d.raw }

// IsZero reports whether the DN is unset.
func (d DN) IsZero() bool { return d.raw == "" }

// RDNs returns the component sets in order. Each set holds the RDNs joined
// with + in one component.
func (d DN) RDNs() [][]RDN { return d.rdns }

// Get returns the value of the first RDN matching the attribute name,
// case-insensitively. The second result reports whether one was found.
func (d DN) Get(attribute string) (string, bool) {
	for _, set := range d.rdns {
		for _, rdn := range set {
			if rdn.MatchesAttribute(attribute) {
				return rdn.Value, true
			}
		}
	}
	return "", false
}

// Contains reports whether the DN holds a matching attribute/value pair.
// Both sides compare case-insensitively.
func (d DN) Contains(attribute, value string) bool {
	for _, set := range d.rdns {
		for _, rdn := range set {
			if rdn.MatchesAttribute(attribute) && strings.EqualFold(rdn.Value, value) {
				return true
			}
		}
	}
	return false
}

// Equal reports whether two DNs have the same canonical form.
func (d DN) Equal(other DN) bool { return d.raw == other.raw }

// WithPrefix returns a new DN with the given RDN prepended.
func (d DN) WithPrefix(rdn RDN) DN {
	rdns := make([][]RDN, 0, len(d.rdns)+1)
	rdns = append(rdns, []RDN{rdn})
	rdns = append(rdns, d.rdns...)
	return DN{raw: rdnsToString(rdns), rdns: rdns}
}

// Join returns a new DN with the suffix DN appended, typically an entry RDN
// joined onto a search base.
func (d DN) Join(suffix DN) DN {
	rdns := make([][]RDN, 0, len(d.rdns)+len(suffix.rdns))
	rdns = append(rdns, d.rdns...)
	rdns = append(rdns, suffix.rdns...)
	return DN{raw: rdnsToString(rdns), rdns: rdns}
}

// MarshalText implements encoding.TextMarshaler.
func (d DN) MarshalText() ([]byte, error) { return []byte(d.raw), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DN) UnmarshalText(text []byte) error {
	parsed, err := ParseDN(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func splitEscaped(input string, delimiter rune) ([]string, error) {
	var parts []string
	var current strings.Builder
	escape := false

	for _, ch := range input {
		switch {
		case escape:
			current.WriteRune('\\')
			current.WriteRune(ch)
			escape = false
		case ch == '\\':
			escape = true
		case ch == delimiter:
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	if escape {
		return nil, errors.InvalidRequest("distinguished name contains an unterminated escape sequence")
	}
	parts = append(parts, strings.TrimSpace(current.String()))

	for _, part := range parts {
		if part == "" {
			return nil, errors.InvalidRequest("invalid distinguished name component in " + input)
		}
	}
	return parts, nil
}

func splitAttributeValue(component string) (RDN, error) {
	escape := false
	idx := -1
	for i, ch := range component {
		switch {
		case escape:
			escape = false
		case ch == '\\':
			escape = true
		case ch == '=':
			idx = i
		}
		if idx >= 0 {
			break
		}
	}
	if idx < 0 {
		return RDN{}, errors.InvalidRequest("invalid distinguished name component: " + component)
	}

	attribute := strings.TrimSpace(component[:idx])
	value := strings.TrimLeft(component[idx+1:], " ")
	if attribute == "" {
		return RDN{}, errors.InvalidRequest("distinguished name component missing attribute: " + component)
	}
	if value == "" {
		return RDN{}, errors.InvalidRequest("distinguished name component missing value for attribute " + attribute)
	}
	return RDN{Attribute: attribute, Value: unescapeDN(value)}, nil
}

func unescapeDN(value string) string {
	var out strings.Builder
	out.Grow(len(value))
	escape := false
	for _, ch := range value {
		if escape {
			out.WriteRune(ch)
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		out.WriteRune(ch)
	}
	return out.String()
}

func escapeDN(value string) string {
	runes := []rune(value)
	var out strings.Builder
	out.Grow(len(value))
	for i, ch := range runes {
		first := i == 0
		last := i == len(runes)-1
		needsEscape := strings.ContainsRune(`,+"\<>;=`, ch) ||
			(first && (ch == ' ' || ch == '#')) ||
			(last && ch == ' ')
		if needsEscape {
			out.WriteRune('\\')
		}
		out.WriteRune(ch)
	}
	return out.String()
}

func rdnsToString(rdns [][]RDN) string {
	components := make([]string, 0, len(rdns))
	for _, set := range rdns {
		parts := make([]string, 0, len(set))
		for _, rdn := range set {
			parts = append(parts, rdn.Attribute+"="+escapeDN(rdn.Value))
		}
		components = append(components, strings.Join(parts, "+"))
	}
	return strings.Join(components, ",")
}
