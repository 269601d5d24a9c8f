// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Overview", "Overview"},
		{"spaces", "Getting  Started Guide", "Getting_Started_Guide"},
		{"invalid chars", `a/b\c:d*e?f"g<h>i|j`, "a_b_c_d_e_f_g_h_i_j"},
		{"leading trailing", "  _Overview_ ", "Overview"},
		{"control chars", "Intro\x01duction", "Intro_duction"},
		{"empty", "", "Unnamed"},
		{"only invalid", `///`, "Unnamed"},
		{"long", strings.Repeat("a", 200), strings.Repeat("a", 80)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeName(tt.in)
			if got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeName_Idempotent(t *testing.T) {
	inputs := []string{
		"Overview",
		"Getting Started: A Guide",
		`weird / name * with ? everything |`,
		strings.Repeat("x_", 100),
		"",
	}
	for _, in := range inputs {
		once := SanitizeName(in)
		twice := SanitizeName(once)
		if once != twice {
			t.Errorf("SanitizeName not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
