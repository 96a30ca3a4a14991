package prose

import (
	"reflect"
	"strings"
	"testing"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text unchanged",
			in:   "A quiet night over the observatory.",
			want: "A quiet night over the observatory.",
		},
		{
			name: "inline tags dropped",
			in:   "The <b>Crab</b> Nebula in <i>Taurus</i>.",
			want: "The Crab Nebula in Taurus.",
		},
		{
			name: "entities decoded",
			in:   "Orion &amp; the Pleiades &mdash; side by side",
			want: "Orion & the Pleiades — side by side",
		},
		{
			name: "paragraphs become blank-line breaks",
			in:   "<p>First paragraph.</p><p>Second paragraph.</p>",
			want: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name: "br becomes a line break",
			in:   "one<br>two",
			want: "one\ntwo",
		},
		{
			name: "script body skipped",
			in:   `before<script>alert("x")</script>after`,
			want: "beforeafter",
		},
		{
			name: "style body skipped",
			in:   "<style>p{color:red}</style>visible",
			want: "visible",
		},
		{
			name: "ansi escapes stripped",
			in:   "safe \x1b[31mred\x1b[0m text",
			want: "safe red text",
		},
		{
			name: "stray control bytes stripped",
			in:   "a\x00b\x07c",
			want: "abc",
		},
		{
			name: "whitespace runs collapsed",
			in:   "too   many\n   spaces",
			want: "too many spaces",
		},
		{
			name: "inline boundary keeps separating space",
			in:   "a <b>bold</b> word",
			want: "a bold word",
		},
		{
			name: "inline boundary without space stays joined",
			in:   "re<b>join</b>ed",
			want: "rejoined",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace-only input",
			in:   "   \n\t ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.in); got != tt.want {
				t.Fatalf("Flatten(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitize_SingleLine(t *testing.T) {
	in := "<p>line one</p><p>line two</p>"
	got := Sanitize(in)
	if strings.Contains(got, "\n") {
		t.Fatalf("Sanitize(%q) = %q, contains a line break", in, got)
	}
	if got != "line one line two" {
		t.Fatalf("Sanitize(%q) = %q, want %q", in, got, "line one line two")
	}
}

func TestLines_WrapsFlattenedText(t *testing.T) {
	in := "<p>A supernova remnant expanding into the surrounding medium.</p>"
	got := Lines(in, 20)
	if len(got) < 2 {
		t.Fatalf("Lines() = %v, want wrapped output", got)
	}
	for _, line := range got {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width 20", line)
		}
	}
}

func TestLines_EmptyInput(t *testing.T) {
	if got := Lines("", 40); got != nil {
		t.Fatalf("Lines(\"\") = %v, want nil", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "short line stays whole",
			text:  "hello world",
			width: 40,
			want:  []string{"hello world"},
		},
		{
			name:  "wraps at word boundary",
			text:  "one two three four",
			width: 9,
			want:  []string{"one two", "three", "four"},
		},
		{
			name:  "long word is hard split",
			text:  "abcdefghij",
			width: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
		{
			name:  "keeps paragraph boundaries",
			text:  "first\n\nsecond",
			width: 40,
			want:  []string{"first", "", "second"},
		},
		{
			name:  "non-positive width passes through",
			text:  "unwrapped",
			width: 0,
			want:  []string{"unwrapped"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Wrap(%q, %d) = %v, want %v", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain URL untouched",
			in:   "https://example.com/a.jpg?start=2025-10-21&end=2025-10-27",
			want: "https://example.com/a.jpg?start=2025-10-21&end=2025-10-27",
		},
		{
			name: "color sequence removed whole",
			in:   "https://example.com/\x1b[31mred.jpg",
			want: "https://example.com/red.jpg",
		},
		{
			name: "escape and bell bytes dropped",
			in:   "https://example.com/\x1b]0;pwned\x07x.jpg",
			want: "https://example.com/]0;pwnedx.jpg",
		},
		{
			name: "whitespace dropped",
			in:   "https://example.com/a b\n.jpg",
			want: "https://example.com/ab.jpg",
		},
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Fatalf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
