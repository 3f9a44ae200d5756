package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	got := String("cost-calculator")
	if !strings.HasPrefix(got, "cost-calculator "+Version) {
		t.Errorf("String() = %q", got)
	}
	if !strings.Contains(got, GitSHA) {
		t.Errorf("String() = %q, missing commit", got)
	}
}
