package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/reqfile/reqfile-cli/internal/requirement"
)

// Line is one physical line of a manifest. Req is nil for blank and
// comment-only lines. Raw keeps the original text so untouched lines
// survive rewriting byte for byte.
type Line struct {
	Raw string
	Req *requirement.Requirement
}

type File struct {
	Path  string
	Lines []Line
}

func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

func Parse(r io.Reader, path string) (*File, error) {
	out := &File{Path: path}
	seen := map[string]int{}
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		raw := sc.Text()
		spec, comment := requirement.SplitComment(raw)
		if spec == "" {
			out.Lines = append(out.Lines, Line{Raw: raw})
			continue
		}
		req, err := requirement.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, n, err)
		}
		req.Comment = comment
		if prev, ok := seen[req.Key()]; ok {
			return nil, fmt.Errorf("%s:%d: duplicate package '%s' (first declared on line %d)", path, n, req.Key(), prev)
		}
		seen[req.Key()] = n
		out.Lines = append(out.Lines, Line{Raw: raw, Req: &req})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Requirements returns the parsed specifiers in file order.
func (f *File) Requirements() []requirement.Requirement {
	var out []requirement.Requirement
	for _, l := range f.Lines {
		if l.Req != nil {
			out = append(out, *l.Req)
		}
	}
	return out
}

func (f *File) find(name string) int {
	key := requirement.NormalizeName(name)
	for i, l := range f.Lines {
		if l.Req != nil && l.Req.Key() == key {
			return i
		}
	}
	return -1
}

// Add appends a requirement line, rejecting names already present.
func (f *File) Add(req requirement.Requirement) error {
	if i := f.find(req.Name); i >= 0 {
		return fmt.Errorf("duplicate package '%s': already declared as %q", req.Key(), f.Lines[i].Raw)
	}
	raw := req.String()
	if req.Comment != "" {
		raw += "  # " + req.Comment
	}
	f.Lines = append(f.Lines, Line{Raw: raw, Req: &req})
	return nil
}

// Remove drops the requirement with the given (normalized) name and
// reports whether it was present.
func (f *File) Remove(name string) bool {
	i := f.find(name)
	if i < 0 {
		return false
	}
	f.Lines = append(f.Lines[:i], f.Lines[i+1:]...)
	return true
}

// Set is the merged view over one or more manifest files.
type Set struct {
	Requirements []requirement.Requirement
	origin       map[string]string
}

// LoadAll parses every path and merges the results. A package declared in
// two files is an error naming both files.
func LoadAll(paths []string) (*Set, error) {
	s := &Set{origin: map[string]string{}}
	for _, p := range paths {
		f, err := Load(p)
		if err != nil {
			return nil, err
		}
		for _, req := range f.Requirements() {
			if prev, ok := s.origin[req.Key()]; ok {
				return nil, fmt.Errorf("duplicate package '%s' found in %s and %s", req.Key(), prev, p)
			}
			s.origin[req.Key()] = p
			s.Requirements = append(s.Requirements, req)
		}
	}
	return s, nil
}

// Origin returns the file a package came from.
func (s *Set) Origin(name string) string {
	return s.origin[requirement.NormalizeName(name)]
}

// Equivalent reports whether two sets declare the same specifiers,
// regardless of file and line order.
func Equivalent(a, b []requirement.Requirement) bool {
	if len(a) != len(b) {
		return false
	}
	byKey := map[string]requirement.Requirement{}
	for _, r := range a {
		byKey[r.Key()] = r
	}
	for _, r := range b {
		o, ok := byKey[r.Key()]
		if !ok || !o.Equal(r) {
			return false
		}
	}
	return true
}

// DefaultPath returns the manifest the CLI operates on when no explicit
// files are given: requirements.txt in the working directory.
func DefaultPath() string {
	return "requirements.txt"
}

// Discover lists the manifest files (*.txt, *.in) directly under dir,
// sorted by name.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		low := strings.ToLower(e.Name())
		if strings.HasSuffix(low, ".txt") || strings.HasSuffix(low, ".in") {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
