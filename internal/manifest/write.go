package manifest

import (
	"os"
	"sort"
	"strings"

	"github.com/reqfile/reqfile-cli/internal/requirement"
)

// String re-serializes the file from its raw lines, so a load/save cycle
// with no mutations is byte-identical.
func (f *File) String() string {
	var b strings.Builder
	for _, l := range f.Lines {
		b.WriteString(l.Raw)
		b.WriteString("\n")
	}
	return b.String()
}

// Canonical renders only the requirement lines, sorted by normalized name,
// each re-serialized from its parsed form with the inline comment
// re-attached. Parsing the result yields a set equivalent to the input.
func (f *File) Canonical() string {
	reqs := f.Requirements()
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].Key() < reqs[j].Key() })
	var b strings.Builder
	for _, r := range reqs {
		b.WriteString(r.String())
		if r.Comment != "" {
			b.WriteString("  # " + r.Comment)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (f *File) Save() error {
	return os.WriteFile(f.Path, []byte(f.String()), 0o644)
}

// Export is the structured rendering of a requirement set used by the
// export command and by schema validation.
type Export struct {
	Requirements []requirement.Requirement `json:"requirements" yaml:"requirements"`
}

func NewExport(reqs []requirement.Requirement) Export {
	// Keep the slice non-nil so an empty set still renders as [].
	sorted := make([]requirement.Requirement, 0, len(reqs))
	sorted = append(sorted, reqs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key() < sorted[j].Key() })
	return Export{Requirements: sorted}
}
