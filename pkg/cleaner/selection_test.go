package cleaner

import (
	"strings"
	"testing"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 1},
		{"one", 1},
		{"one\n", 2},
		{"line1\nline2", 2},
		{"\n\n\n", 4},
		{"a\r\nb", 2},
	}

	for _, tt := range tests {
		if got := CountLines(tt.input); got != tt.want {
			t.Errorf("CountLines(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestClean_NoTagsIsNoop(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"# Title\n*em*",
		"a > b",
		"multi\nline\n\ntext\n",
	}

	for _, input := range inputs {
		got, lines := Clean(input, Options{HTML: true})
		if got != input {
			t.Errorf("Clean(%q, html) = %q, want unchanged", input, got)
		}
		if lines != CountLines(input) {
			t.Errorf("Clean(%q, html) lines = %d, want %d", input, lines, CountLines(input))
		}
	}
}

func TestClean_StripsTags(t *testing.T) {
	got, lines := Clean("<b>hi</b>", Options{HTML: true})
	if got != "hi" {
		t.Errorf("Clean() = %q, want %q", got, "hi")
	}
	if lines != 1 {
		t.Errorf("lines = %d, want 1", lines)
	}
}

func TestClean_LineCountIgnoresFlags(t *testing.T) {
	inputs := []string{
		"line1\nline2",
		"<p>a</p>\n<p>b</p>",
		"# A\n\n\n\nB",
	}
	flags := []Options{
		{},
		{HTML: true},
		{Markdown: true},
		{HTML: true, Markdown: true},
	}

	for _, input := range inputs {
		for _, opts := range flags {
			_, lines := Clean(input, opts)
			if want := CountLines(input); lines != want {
				t.Errorf("Clean(%q, %+v) lines = %d, want %d", input, opts, lines, want)
			}
		}
	}
}

func TestClean_Markdown(t *testing.T) {
	got, lines := Clean("# Title\n*em*", Options{Markdown: true})
	if got != "Title\nem" {
		t.Errorf("Clean() = %q, want %q", got, "Title\nem")
	}
	if lines != 2 {
		t.Errorf("lines = %d, want 2", lines)
	}
}

func TestClean_IdentityWhenDisabled(t *testing.T) {
	inputs := []string{
		"",
		"<b>hi</b>",
		"# Title\n*em*",
		"  padded  \n",
	}

	for _, input := range inputs {
		got, lines := Clean(input, Options{})
		if got != input {
			t.Errorf("Clean(%q) = %q, want unchanged", input, got)
		}
		if lines != CountLines(input) {
			t.Errorf("Clean(%q) lines = %d, want %d", input, lines, CountLines(input))
		}
	}
}

func TestClean_MarkdownOverwritesHTML(t *testing.T) {
	input := "<b># Title</b>"

	got, lines := Clean(input, Options{HTML: true, Markdown: true})

	markdownOnly, err := NewPlainText().Clean(input)
	if err != nil {
		t.Fatalf("PlainTextCleaner.Clean() error = %v", err)
	}
	composed, err := NewChain(NewTags(), NewPlainText()).Clean(input)
	if err != nil {
		t.Fatalf("ChainCleaner.Clean() error = %v", err)
	}

	if got != markdownOnly {
		t.Errorf("Clean() = %q, want markdown-only result %q", got, markdownOnly)
	}
	if got == composed {
		t.Errorf("Clean() = %q, should not equal composed result %q", got, composed)
	}
	if lines != 1 {
		t.Errorf("lines = %d, want 1", lines)
	}
}

func TestClean_EmptySelection(t *testing.T) {
	for _, opts := range []Options{{}, {HTML: true}, {Markdown: true}, {HTML: true, Markdown: true}} {
		got, lines := Clean("", opts)
		if got != "" {
			t.Errorf("Clean(\"\", %+v) = %q, want empty", opts, got)
		}
		if lines != 1 {
			t.Errorf("Clean(\"\", %+v) lines = %d, want 1", opts, lines)
		}
	}
}

func TestSelection_CleanWithStats(t *testing.T) {
	s := NewSelection()

	tests := []struct {
		name        string
		input       string
		opts        Options
		wantApplied string
		wantTags    int
	}{
		{"noop", "<b>x</b>", Options{}, "noop", 0},
		{"html", "<b>x</b>\n<i>y</i>", Options{HTML: true}, "html", 4},
		{"markdown", "*x*", Options{Markdown: true}, "markdown", 0},
		{"both", "<b>x</b>", Options{HTML: true, Markdown: true}, "markdown", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.CleanWithStats(tt.input, tt.opts)

			if result.Applied != tt.wantApplied {
				t.Errorf("Applied = %q, want %q", result.Applied, tt.wantApplied)
			}
			if result.Stats.TagsRemoved != tt.wantTags {
				t.Errorf("TagsRemoved = %d, want %d", result.Stats.TagsRemoved, tt.wantTags)
			}
			if result.Stats.InputBytes != len(tt.input) {
				t.Errorf("InputBytes = %d, want %d", result.Stats.InputBytes, len(tt.input))
			}
			if result.Stats.OutputBytes != len(result.Content) {
				t.Errorf("OutputBytes = %d, want %d", result.Stats.OutputBytes, len(result.Content))
			}
			if result.Stats.InputLines != result.Lines {
				t.Errorf("InputLines = %d, want %d", result.Stats.InputLines, result.Lines)
			}
		})
	}
}

func TestSelection_CleanerFailureKeepsContent(t *testing.T) {
	s := &Selection{html: NewTags(), markdown: &errorCleaner{}, noop: NewNoop()}

	result := s.CleanWithStats("<b>x</b>", Options{HTML: true, Markdown: true})

	if result.Content != "x" {
		t.Errorf("Content = %q, want %q", result.Content, "x")
	}
	if result.Applied != "html" {
		t.Errorf("Applied = %q, want %q", result.Applied, "html")
	}
}

func TestSelection_AllCleanersFailFallsBackToNoop(t *testing.T) {
	s := &Selection{html: &errorCleaner{}, markdown: &errorCleaner{}, noop: NewNoop()}

	result := s.CleanWithStats("<b>*x*</b>", Options{HTML: true, Markdown: true})

	if result.Content != "<b>*x*</b>" {
		t.Errorf("Content = %q, want input unchanged", result.Content)
	}
	if result.Applied != "noop" {
		t.Errorf("Applied = %q, want %q", result.Applied, "noop")
	}
}

func TestSelection_NoOptionsUsesNoopCleaner(t *testing.T) {
	s := &Selection{html: NewTags(), markdown: NewPlainText(), noop: &renamedNoop{}}

	result := s.CleanWithStats("<b>x</b>", Options{})

	if result.Applied != "passthrough" {
		t.Errorf("Applied = %q, want %q", result.Applied, "passthrough")
	}
	if result.Content != "<b>x</b>" {
		t.Errorf("Content = %q, want input unchanged", result.Content)
	}
}

// renamedNoop is a pass-through cleaner with a distinct name.
type renamedNoop struct{ NoopCleaner }

func (c *renamedNoop) Name() string {
	return "passthrough"
}

func TestResult_Notice(t *testing.T) {
	result := NewSelection().CleanWithStats("a\nb\nc", Options{HTML: true})

	if got := result.Notice(); got != "3 rows cleaned" {
		t.Errorf("Notice() = %q, want %q", got, "3 rows cleaned")
	}
}

func TestStats_String(t *testing.T) {
	s := &Stats{InputBytes: 2000, OutputBytes: 1000, InputLines: 4, OutputLines: 2, TagsRemoved: 1200}

	got := s.String()

	for _, want := range []string{"2.0 kB", "1.0 kB", "50.0%", "Lines: 4 -> 2", "1,200"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestStats_ReductionPercent_ZeroInput(t *testing.T) {
	s := &Stats{}
	if got := s.ReductionPercent(); got != 0 {
		t.Errorf("ReductionPercent() = %f, want 0", got)
	}
	if s.Changed() {
		t.Error("Changed() = true for empty stats")
	}
}
