package requirement

import (
	"fmt"
	"strings"
)

// Ordered longest-first so ">=" wins over ">".
var operators = []string{"===", "==", ">=", "<=", "!=", "~=", ">", "<"}

// SplitComment separates an inline comment from the specifier text. The
// comment does not contribute to the parsed specifier.
func SplitComment(line string) (spec, comment string) {
	if i := strings.Index(line, "#"); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	return strings.TrimSpace(line), ""
}

// Parse parses a single dependency specifier in the conventional
// "name[extras]op version ; marker" grammar. The input must not contain
// an inline comment; callers strip it with SplitComment first.
func Parse(spec string) (Requirement, error) {
	var r Requirement
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return r, fmt.Errorf("empty specifier")
	}

	if i := strings.Index(spec, ";"); i >= 0 {
		r.Marker = strings.TrimSpace(spec[i+1:])
		spec = strings.TrimSpace(spec[:i])
		if r.Marker == "" {
			return r, fmt.Errorf("empty environment marker")
		}
	}

	rest := spec
	if i := strings.Index(rest, "["); i >= 0 {
		j := strings.Index(rest, "]")
		if j < i {
			return r, fmt.Errorf("unclosed extras in %q", spec)
		}
		for _, e := range strings.Split(rest[i+1:j], ",") {
			e = strings.TrimSpace(e)
			if e == "" {
				return r, fmt.Errorf("empty extra in %q", spec)
			}
			r.Extras = append(r.Extras, e)
		}
		rest = rest[:i] + rest[j+1:]
	}

	name := rest
	if i := strings.IndexAny(rest, "><=!~ "); i >= 0 {
		name = rest[:i]
		cs, err := parseConstraints(strings.TrimSpace(rest[i:]))
		if err != nil {
			return r, fmt.Errorf("%q: %w", spec, err)
		}
		r.Constraints = cs
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return r, fmt.Errorf("missing package name in %q", spec)
	}
	if !validName(name) {
		return r, fmt.Errorf("invalid package name %q", name)
	}
	r.Name = name
	return r, nil
}

func parseConstraints(s string) ([]Constraint, error) {
	var out []Constraint
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty version constraint")
		}
		op := ""
		for _, o := range operators {
			if strings.HasPrefix(part, o) {
				op = o
				break
			}
		}
		if op == "" {
			return nil, fmt.Errorf("missing comparison operator in %q", part)
		}
		v := strings.TrimSpace(part[len(op):])
		if v == "" {
			return nil, fmt.Errorf("missing version after %q", op)
		}
		out = append(out, Constraint{Op: op, Version: v})
	}
	return out, nil
}

// Names may contain letters, digits, '-', '_' and '.', and must start and
// end with a letter or digit.
func validName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
			if i == 0 || i == len(name)-1 {
				return false
			}
		default:
			return false
		}
	}
	return len(name) > 0
}
