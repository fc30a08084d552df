package requirement

import (
	"testing"
)

func TestParse_NameAndConstraint(t *testing.T) {
	r, err := Parse("hydra-core>=1.0")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Name != "hydra-core" {
		t.Fatalf("name: %q", r.Name)
	}
	if len(r.Extras) != 0 {
		t.Fatalf("want no extras, got %v", r.Extras)
	}
	if len(r.Constraints) != 1 || r.Constraints[0] != (Constraint{Op: ">=", Version: "1.0"}) {
		t.Fatalf("constraints: %v", r.Constraints)
	}
}

func TestParse_Extras(t *testing.T) {
	r, err := Parse("jsonargparse[signatures]>=3.19.0")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Name != "jsonargparse" {
		t.Fatalf("name: %q", r.Name)
	}
	if len(r.Extras) != 1 || r.Extras[0] != "signatures" {
		t.Fatalf("extras: %v", r.Extras)
	}
	if len(r.Constraints) != 1 || r.Constraints[0] != (Constraint{Op: ">=", Version: "3.19.0"}) {
		t.Fatalf("constraints: %v", r.Constraints)
	}
}

func TestParse_Table(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "matplotlib>3.1", want: "matplotlib>3.1"},
		{in: "torchtext >= 0.5", want: "torchtext>=0.5"},
		{in: "onnx", want: "onnx"},
		{in: "pkg>=1.0,<2.0", want: "pkg>=1.0,<2.0"},
		{in: "pkg[a, b]==1.2.3", want: "pkg[a,b]==1.2.3"},
		{in: "pkg~=2.1", want: "pkg~=2.1"},
		{in: "pkg===1.0", want: "pkg===1.0"},
		{in: "pkg>=1.0 ; python_version < \"3.9\"", want: "pkg>=1.0 ; python_version < \"3.9\""},
		{in: "", wantErr: true},
		{in: ">=1.0", wantErr: true},
		{in: "pkg>=", wantErr: true},
		{in: "pkg[>=1.0", wantErr: true},
		{in: "pkg[]>=1.0", wantErr: true},
		{in: "pkg=1.0", wantErr: true},
		{in: "bad name>=1.0", wantErr: true},
		{in: "-pkg>=1.0", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", r)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got := r.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitComment(t *testing.T) {
	spec, comment := SplitComment("horovod>=0.21.2  # ignored by the resolver")
	if spec != "horovod>=0.21.2" {
		t.Fatalf("spec: %q", spec)
	}
	if comment != "ignored by the resolver" {
		t.Fatalf("comment: %q", comment)
	}
	r, err := Parse(spec)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	other, err := Parse("horovod>=0.21.2")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !r.Equal(other) {
		t.Fatalf("comment changed the parsed specifier: %+v vs %+v", r, other)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Hydra-Core", "hydra-core"},
		{"foo_bar", "foo-bar"},
		{"foo.bar", "foo-bar"},
		{"foo--bar", "foo-bar"},
		{"foo_._bar", "foo-bar"},
		{"onnxruntime", "onnxruntime"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEqual_IgnoresOrderAndSpelling(t *testing.T) {
	a, err := Parse("Foo_Bar[x,y]>=1.0,<2.0")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := Parse("foo-bar[y,x]<2.0,>=1.0")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("expected equal: %+v vs %+v", a, b)
	}
	c, err := Parse("foo-bar[x]>=1.0,<2.0")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Equal(c) {
		t.Fatalf("expected not equal: %+v vs %+v", a, c)
	}
}
