package requirement

import (
	"strconv"
	"strings"
)

// NormalizeVersion strips any leading non-digit prefix (such as "v") and
// any trailing pre-release or local suffix, keeping the dotted numeric core.
func NormalizeVersion(s string) string {
	s = strings.TrimSpace(s)
	start := 0
	for start < len(s) && (s[start] < '0' || s[start] > '9') {
		start++
	}
	s = s[start:]
	end := 0
	for end < len(s) {
		c := s[end]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		end++
	}
	return s[:end]
}

// CompareVersions compares two dotted numeric versions, returning
// -1, 0 or 1. Missing components count as zero, so "1.0" equals "1.0.0".
func CompareVersions(a, b string) int {
	va := splitNumeric(NormalizeVersion(a))
	vb := splitNumeric(NormalizeVersion(b))
	n := len(va)
	if len(vb) > n {
		n = len(vb)
	}
	for i := 0; i < n; i++ {
		ai, bi := 0, 0
		if i < len(va) {
			ai = va[i]
		}
		if i < len(vb) {
			bi = vb[i]
		}
		if ai > bi {
			return 1
		}
		if ai < bi {
			return -1
		}
	}
	return 0
}

func splitNumeric(s string) []int {
	if s == "" {
		return []int{}
	}
	parts := strings.Split(s, ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		out = append(out, n)
	}
	return out
}

// Satisfies reports whether version meets the constraint. Comparison is
// numeric on the dotted core; "~=" behaves as ">=" here since the solver
// that enforces compatible-release semantics is the installer, not us.
func (c Constraint) Satisfies(version string) bool {
	cmp := CompareVersions(version, c.Version)
	switch c.Op {
	case "==", "===":
		return cmp == 0
	case "!=":
		return cmp != 0
	case ">":
		return cmp > 0
	case ">=", "~=":
		return cmp >= 0
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	}
	return false
}

// SatisfiedBy reports whether version meets every constraint of r. A
// requirement with no constraints accepts any version.
func (r Requirement) SatisfiedBy(version string) bool {
	for _, c := range r.Constraints {
		if !c.Satisfies(version) {
			return false
		}
	}
	return true
}
