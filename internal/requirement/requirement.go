package requirement

import (
	"sort"
	"strings"
)

type Constraint struct {
	Op      string `json:"op" yaml:"op"`
	Version string `json:"version" yaml:"version"`
}

type Requirement struct {
	Name        string       `json:"name" yaml:"name"`
	Extras      []string     `json:"extras,omitempty" yaml:"extras,omitempty"`
	Constraints []Constraint `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Marker      string       `json:"marker,omitempty" yaml:"marker,omitempty"`
	Comment     string       `json:"-" yaml:"-"`
}

// NormalizeName folds a distribution name to its canonical form:
// lowercase, with runs of '-', '_' and '.' collapsed to a single '-'.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	prevSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if r == '-' || r == '_' || r == '.' {
			prevSep = true
			continue
		}
		if prevSep && b.Len() > 0 {
			b.WriteByte('-')
		}
		prevSep = false
		b.WriteRune(r)
	}
	return b.String()
}

// Key returns the identity used for duplicate detection. Two specifiers
// with the same key name the same package.
func (r Requirement) Key() string { return NormalizeName(r.Name) }

func (r Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	if len(r.Extras) > 0 {
		b.WriteString("[" + strings.Join(r.Extras, ",") + "]")
	}
	for i, c := range r.Constraints {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(c.Op + c.Version)
	}
	if r.Marker != "" {
		b.WriteString(" ; " + r.Marker)
	}
	return b.String()
}

// Equal compares two specifiers ignoring comments, name spelling and the
// order of extras and constraints.
func (r Requirement) Equal(o Requirement) bool {
	if r.Key() != o.Key() || r.Marker != o.Marker {
		return false
	}
	if !sameStrings(r.Extras, o.Extras) {
		return false
	}
	if len(r.Constraints) != len(o.Constraints) {
		return false
	}
	a := append([]Constraint{}, r.Constraints...)
	b := append([]Constraint{}, o.Constraints...)
	sortConstraints(a)
	sortConstraints(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string{}, a...)
	bs := append([]string{}, b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func sortConstraints(cs []Constraint) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Op != cs[j].Op {
			return cs[i].Op < cs[j].Op
		}
		return cs[i].Version < cs[j].Version
	})
}
