package main

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"name", "count"},
		[][]string{{"x", "3"}, {"longer", "12"}},
		[]columnAlignment{alignLeft, alignRight},
	)

	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "╭") || !strings.HasPrefix(lines[len(lines)-1], "╰") {
		t.Fatalf("expected rounded border, got:\n%s", out)
	}
	for _, want := range []string{
		"│ Name   │ Count │",
		"│ x      │     3 │",
		"│ longer │    12 │",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "NAME") {
		t.Errorf("headers should be title-cased, got:\n%s", out)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"key", "value"}, [][]string{{"only"}, {"a", "b", "dropped"}}, nil)
	if !strings.Contains(out, "│ only │       │") {
		t.Fatalf("short row not padded:\n%s", out)
	}
	if strings.Contains(out, "dropped") {
		t.Fatalf("extra cell rendered:\n%s", out)
	}
}

func TestRenderTableWithoutHeaders(t *testing.T) {
	if out := renderTable(nil, [][]string{{"a"}}, nil); out != "" {
		t.Fatalf("renderTable without headers = %q, want empty", out)
	}
}
