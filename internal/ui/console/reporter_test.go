package console

import (
	"strings"
	"testing"

	"github.com/reqfile/reqfile-cli/internal/manager"
	"github.com/reqfile/reqfile-cli/internal/requirement"
)

func TestConsoleReporter_ImplementsOutdatedReporter(t *testing.T) {
	var _ manager.OutdatedReporter = NewConsoleReporter()
}

func TestRenderList(t *testing.T) {
	req, err := requirement.Parse("jsonargparse[signatures]>=3.19.0")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	bare, err := requirement.Parse("onnx")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	out := renderList(
		map[string][]string{"extra.txt": {"jsonargparse", "onnx"}},
		map[string]requirement.Requirement{"jsonargparse": req, "onnx": bare},
		nil,
	)
	if !strings.Contains(out, "extra.txt") {
		t.Fatalf("missing file header:\n%s", out)
	}
	if !strings.Contains(out, "signatures") {
		t.Fatalf("missing extras cell:\n%s", out)
	}
	if !strings.Contains(out, ">=3.19.0") {
		t.Fatalf("missing constraint cell:\n%s", out)
	}
}

func TestRenderList_InstalledColumn(t *testing.T) {
	bare, err := requirement.Parse("onnx")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	out := renderList(
		map[string][]string{"extra.txt": {"onnx"}},
		map[string]requirement.Requirement{"onnx": bare},
		map[string]string{"onnx": ""},
	)
	if !strings.Contains(out, "Installed") || !strings.Contains(out, "not installed") {
		t.Fatalf("installed column missing:\n%s", out)
	}
}

func TestRenderOutdated_CountsStaleRows(t *testing.T) {
	rows := []manager.OutdatedRow{
		{Name: "onnx", Constraint: ">=1.7.0", Latest: "1.16.0", Satisfied: true},
		{Name: "hydra-core", Constraint: ">=1.0,<2.0", Latest: "2.4.0", Satisfied: false},
		{Name: "mystery", Err: "package \"mystery\" not found on index"},
	}
	out := RenderOutdated(rows)
	if !strings.Contains(out, "1 package(s) have releases outside their declared constraints") {
		t.Fatalf("stale count missing:\n%s", out)
	}
	if !strings.Contains(out, "outside constraint") {
		t.Fatalf("stale status missing:\n%s", out)
	}
}

func TestNameOfLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"jsonargparse[signatures]>=3.19.0", "jsonargparse"},
		{"matplotlib>3.1", "matplotlib"},
		{"onnx", "onnx"},
		{"pkg ; python_version < \"3.9\"", "pkg"},
	}
	for _, tt := range tests {
		if got := nameOfLabel(tt.in); got != tt.want {
			t.Errorf("nameOfLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
