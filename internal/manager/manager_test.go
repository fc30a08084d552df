package manager

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/reqfile/reqfile-cli/internal/config"
	"github.com/reqfile/reqfile-cli/internal/manifest"
)

type stubLookup struct {
	mu       sync.Mutex
	versions map[string]string
	calls    int
}

func (s *stubLookup) LatestVersion(name string) (string, error) {
	s.mu.Lock()
	s.calls++
	v, ok := s.versions[name]
	s.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("package %q not found on index", name)
	}
	return v, nil
}

type memCache struct{ m map[string]string }

func (c *memCache) Get(name string) (string, bool) { v, ok := c.m[name]; return v, ok }
func (c *memCache) Put(name, latest string) error  { c.m[name] = latest; return nil }

func loadSet(t *testing.T, body string) (*manifest.Set, []string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "requirements.txt")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	s, err := manifest.LoadAll([]string{p})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, []string{p}
}

func TestOutdated_RowsSortedAndChecked(t *testing.T) {
	set, files := loadSet(t, "onnx>=1.7.0\nhydra-core>=1.0,<2.0\nmystery>=9.9\n")
	m := New(config.Default(), set, files)
	lookup := &stubLookup{versions: map[string]string{
		"onnx":       "1.16.0",
		"hydra-core": "2.4.0",
	}}
	rows := m.Outdated(lookup, nil, nil)
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rows))
	}
	if rows[0].Name != "hydra-core" || rows[1].Name != "mystery" || rows[2].Name != "onnx" {
		t.Fatalf("rows not sorted: %+v", rows)
	}
	if rows[0].Satisfied {
		t.Fatalf("2.4.0 should not satisfy <2.0")
	}
	if !rows[2].Satisfied {
		t.Fatalf("1.16.0 should satisfy >=1.7.0")
	}
	if rows[1].Err == "" {
		t.Fatalf("missing package should carry an error")
	}
}

func TestOutdated_UsesCache(t *testing.T) {
	set, files := loadSet(t, "gcsfs>=0.8.4\n")
	m := New(config.Default(), set, files)
	lookup := &stubLookup{versions: map[string]string{"gcsfs": "2024.6.1"}}
	cache := &memCache{m: map[string]string{}}

	rows := m.Outdated(lookup, cache, nil)
	if lookup.calls != 1 || rows[0].Cached {
		t.Fatalf("first run should hit the index: calls=%d cached=%v", lookup.calls, rows[0].Cached)
	}
	rows = m.Outdated(lookup, cache, nil)
	if lookup.calls != 1 {
		t.Fatalf("second run should be served from cache, calls=%d", lookup.calls)
	}
	if !rows[0].Cached || !rows[0].Satisfied {
		t.Fatalf("cached row: %+v", rows[0])
	}
}

func TestTracked_GroupsByFile(t *testing.T) {
	set, files := loadSet(t, "torchtext>=0.5\nmatplotlib>3.1\n")
	m := New(config.Default(), set, files)
	groups := m.Tracked()
	if len(groups) != 1 {
		t.Fatalf("want 1 group, got %v", groups)
	}
	names := groups[files[0]]
	if len(names) != 2 || names[0] != "matplotlib" {
		t.Fatalf("group not sorted: %v", names)
	}
}

func TestInstallPackages_UnknownName(t *testing.T) {
	set, files := loadSet(t, "onnx>=1.7.0\n")
	m := New(config.Default(), set, files)
	if err := m.InstallPackages([]string{"nonexistent"}); err == nil {
		t.Fatalf("expected error for package missing from manifest")
	}
}
