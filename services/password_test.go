package services

import (
	"strings"
	"testing"
)

func TestGeneratePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		p, err := GeneratePassword(resetPasswordLen)
		if err != nil {
			t.Fatalf("GeneratePassword: %v", err)
		}
		if len(p) != resetPasswordLen {
			t.Errorf("len = %d, want %d", len(p), resetPasswordLen)
		}
		for _, class := range passwordClasses {
			if !strings.ContainsAny(p, class) {
				t.Errorf("password %q missing a character from %q", p, class)
			}
		}
		seen[p] = true
	}
	if len(seen) < 2 {
		t.Error("20 generated passwords were all identical")
	}
}

func TestGeneratePasswordRaisesShortLengths(t *testing.T) {
	p, err := GeneratePassword(1)
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	if len(p) != len(passwordClasses) {
		t.Errorf("len = %d, want %d (one per class)", len(p), len(passwordClasses))
	}
}
