package requirement

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0.0", 0},
		{"1.2.3", "1.2.4", -1},
		{"2.0", "1.9.9", 1},
		{"v1.3.0", "1.3", 0},
		{"0.21.2", "0.21.10", -1},
		{"1.7.0rc1", "1.7.0", 0},
	}
	for _, tt := range tests {
		if got := CompareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct{ in, want string }{
		{"v10.2.0", "10.2.0"},
		{" 1.3 ", "1.3"},
		{"1.7.0rc1", "1.7.0"},
		{"release-2.4", "2.4"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeVersion(tt.in); got != tt.want {
			t.Errorf("NormalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSatisfiedBy(t *testing.T) {
	r, err := Parse("pkg>=1.0,<2.0")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !r.SatisfiedBy("1.5") {
		t.Fatalf("1.5 should satisfy >=1.0,<2.0")
	}
	if r.SatisfiedBy("2.0") {
		t.Fatalf("2.0 should not satisfy <2.0")
	}
	if r.SatisfiedBy("0.9") {
		t.Fatalf("0.9 should not satisfy >=1.0")
	}
	bare, err := Parse("pkg")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bare.SatisfiedBy("0.0.1") {
		t.Fatalf("unconstrained requirement should accept any version")
	}
}
