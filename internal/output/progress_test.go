package output

import (
	"os"
	"strings"
	"testing"
)

func TestPriorityBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		name     string
		priority float64
		width    int
		filled   int
		label    string
	}{
		{"max", 36, 10, 10, "36.00"},
		{"half", 18, 10, 5, "18.00"},
		{"tiny still visible", 1.0 / 3.0, 10, 1, " 0.33"},
		{"zero", 0, 10, 0, " 0.00"},
		{"over max clamps", 50, 10, 10, "50.00"},
		{"default width", 36, 0, 10, "36.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PriorityBar(tc.priority, tc.width)
			if n := strings.Count(got, "█"); n != tc.filled {
				t.Errorf("filled = %d, want %d (%q)", n, tc.filled, got)
			}
			if !strings.HasSuffix(got, tc.label) {
				t.Errorf("PriorityBar() = %q, want suffix %q", got, tc.label)
			}
		})
	}
}

func TestSeverity(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	if got := Severity(""); got != "-" {
		t.Errorf("Severity(\"\") = %q, want \"-\"", got)
	}
	if got := Severity("critical"); got != "critical" {
		t.Errorf("Severity(critical) = %q", got)
	}
}

func TestSection(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	got := Section("Suggestions")
	if !strings.Contains(got, "Suggestions") || !strings.Contains(got, "─") {
		t.Errorf("Section() = %q", got)
	}
}

func TestColorEnabled(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if ColorEnabled(f, false) {
		t.Error("color must be off when not wanted")
	}
	if ColorEnabled(f, true) {
		t.Error("a regular file is not a terminal")
	}

	t.Setenv("NO_COLOR", "1")
	if ColorEnabled(os.Stdout, true) {
		t.Error("NO_COLOR must disable color")
	}
}
