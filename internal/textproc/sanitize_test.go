package textproc_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"textkit/internal/textproc"
)

func TestSanitize(t *testing.T) {
	p := textproc.New()
	defaults := textproc.DefaultSanitizeOptions()
	tests := []struct {
		name  string
		input string
		opts  textproc.SanitizeOptions
		want  string
	}{
		{"basic", "Hello123!", defaults, "Hello123"},
		{"special allow list", "Hello@#$%^&*()", textproc.SanitizeOptions{AllowNumbers: true, AllowSpaces: true, AllowedSpecial: "@#$"}, "Hello@#$"},
		{"unicode with allowed bang", "你好123 World!", textproc.SanitizeOptions{AllowNumbers: true, AllowSpaces: true, AllowedSpecial: "!"}, "你好123 World!"},
		{"drop numbers", "abc123", textproc.SanitizeOptions{AllowSpaces: true}, "abc"},
		{"drop spaces", "a b\tc\nd", textproc.SanitizeOptions{AllowNumbers: true}, "abcd"},
		{"letters always kept", "Zo\u00eb \u00dcn\u00efc\u00f6d\u00e9", textproc.SanitizeOptions{}, "Zo\u00eb\u00dcn\u00efc\u00f6d\u00e9"},
		{"special list overrides disabled digits", "a1b2", textproc.SanitizeOptions{AllowedSpecial: "1"}, "a1b"},
		{"unicode digits", "٣ apples", defaults, "٣ apples"},
		{"unicode whitespace", "a b\u3000c", defaults, "a b\u3000c"},
		{"ascii separators are whitespace", "a\x1cb\x1fc", defaults, "a\x1cb\x1fc"},
		{"ascii separators dropped without spaces", "a\x1cb\x1dc", textproc.SanitizeOptions{AllowNumbers: true}, "abc"},
		// Only decimal digits (Nd) count as numbers; superscripts and circled
		// digits are symbols and need the special-character list.
		{"non-decimal digits dropped", "x\u00b2 \u2460 \u00bd", defaults, "x  "},
		{"non-decimal digits allowed explicitly", "x\u00b2\u2460", textproc.SanitizeOptions{AllowedSpecial: "\u00b2\u2460"}, "x\u00b2\u2460"},
		{"emoji dropped", "hi 👋", defaults, "hi "},
		{"emoji allowed explicitly", "hi 👋", textproc.SanitizeOptions{AllowedSpecial: "👋"}, "hi👋"},
		{"empty", "", defaults, ""},
		{"only specials", "!@#", defaults, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Sanitize(tt.input, tt.opts); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeLongInput(t *testing.T) {
	p := textproc.New()
	input := strings.Repeat("A", 10000) + "123" + strings.Repeat("!", 100)
	want := strings.Repeat("A", 10000) + "123"
	if got := p.Sanitize(input, textproc.DefaultSanitizeOptions()); got != want {
		t.Fatalf("Sanitize(long) returned %d bytes, want %d", len(got), len(want))
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	p := textproc.New()
	inputs := []string{
		"Hello, World! 123",
		"你好123 World!",
		"tabs\tand\nnewlines",
		"@#$%^&*()_+",
		"mixed ٣ ✓ ¼ ²",
		"fields\x1cgroups\x1drecords\x1e",
	}
	optionSets := []textproc.SanitizeOptions{
		textproc.DefaultSanitizeOptions(),
		{},
		{AllowNumbers: true},
		{AllowSpaces: true, AllowedSpecial: "!@_"},
	}
	for _, s := range inputs {
		for _, opts := range optionSets {
			once := p.Sanitize(s, opts)
			twice := p.Sanitize(once, opts)
			if once != twice {
				t.Errorf("Sanitize not idempotent for %q with %+v: %q then %q", s, opts, once, twice)
			}
		}
	}
}

func TestSanitizePreservesOrderAsSubsequence(t *testing.T) {
	p := textproc.New()
	input := "a!b@c#1 2"
	got := []rune(p.Sanitize(input, textproc.SanitizeOptions{AllowNumbers: true, AllowedSpecial: "#"}))
	src := []rune(input)
	i := 0
	for _, r := range got {
		for i < len(src) && src[i] != r {
			i++
		}
		if i == len(src) {
			t.Fatalf("result %q is not a subsequence of %q", string(got), input)
		}
		i++
	}
}

func TestSanitizeValueInvalidInput(t *testing.T) {
	p := textproc.New()
	for _, input := range []any{nil, 7, false} {
		got, err := p.SanitizeValue(input, textproc.DefaultSanitizeOptions())
		if !errors.Is(err, textproc.ErrInvalidInput) {
			t.Fatalf("SanitizeValue(%v) error = %v, want ErrInvalidInput", input, err)
		}
		if got != "" {
			t.Fatalf("SanitizeValue(%v) = %q, want empty", input, got)
		}
	}
}

func TestSanitizeLogsPolicy(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := textproc.New(textproc.WithLogger(logger))

	p.Sanitize("a1 !", textproc.SanitizeOptions{AllowNumbers: true})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log entry %q: %v", buf.String(), err)
	}
	if entry["msg"] != "sanitized text" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["dropped"] != 2.0 || entry["allow_numbers"] != true || entry["allow_spaces"] != false {
		t.Fatalf("unexpected log attrs %v", entry)
	}
}
