package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if splitVersion(Version) == nil {
		t.Errorf("default Version %q is not semver-like", Version)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		in    string
		plain string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.2.3-rc.1+build.123", "1.2.3-rc.1+build.123"},
		{"dev", "dev"},
		{"1.2", "1.2"},
	}
	for _, tt := range tests {
		if got := Colored(tt.in, false); got != tt.plain {
			t.Errorf("Colored(%q, false) = %q, want %q", tt.in, got, tt.plain)
		}
	}

	got := Colored("1.2.3-dev", true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Errorf("Colored(enabled) = %q", got)
	}
}

func TestSplitVersion(t *testing.T) {
	parts := splitVersion("10.20.30-alpha")
	want := []string{"10", "20", "30", "-alpha"}
	if len(parts) != len(want) {
		t.Fatalf("splitVersion = %v", parts)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("part %d = %q, want %q", i, parts[i], want[i])
		}
	}
	for _, bad := range []string{"", "v1.2.3", "1..3", "1.2."} {
		if splitVersion(bad) != nil {
			t.Errorf("splitVersion(%q) should fail", bad)
		}
	}
}
