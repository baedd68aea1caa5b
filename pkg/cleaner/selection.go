package cleaner

import (
	"strings"
	"time"

	"github.com/jmylchreest/cleanup/internal/logger"
)

// Options selects which cleaners run on a selection. The two flags are
// independent.
type Options struct {
	// HTML removes tag-shaped substrings.
	HTML bool
	// Markdown converts Markdown to plain text.
	Markdown bool
}

// CountLines returns the number of '\n' characters in text plus one.
// An empty string has one line.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}

// Selection cleans a text selection according to Options.
//
// Both cleaners read the original selection. When both options are enabled
// the markdown output replaces the html output rather than consuming it, so
// tags inside the selection reach the markdown cleaner untouched. Use a
// ChainCleaner if composition is wanted.
type Selection struct {
	html     Cleaner
	markdown Cleaner
	noop     Cleaner
}

// NewSelection creates a selection cleaner backed by a TagCleaner and a
// PlainTextCleaner. A NoopCleaner handles selections no cleaner touched.
func NewSelection() *Selection {
	return &Selection{
		html:     NewTags(),
		markdown: NewPlainText(),
		noop:     NewNoop(),
	}
}

var defaultSelection = NewSelection()

// Clean strips formatting from text and returns the cleaned text along with
// the line count of the original text. It accepts any input and never fails.
func Clean(text string, opts Options) (string, int) {
	return defaultSelection.Clean(text, opts)
}

// Clean strips formatting from text. See the package level Clean.
func (s *Selection) Clean(text string, opts Options) (string, int) {
	result := s.CleanWithStats(text, opts)
	return result.Content, result.Lines
}

// CleanWithStats cleans text and reports what was done.
func (s *Selection) CleanWithStats(text string, opts Options) *Result {
	start := time.Now()

	result := &Result{
		Content: text,
		Lines:   CountLines(text),
		Stats: &Stats{
			InputBytes: len(text),
			InputLines: CountLines(text),
		},
	}

	if opts.HTML {
		result.Stats.TagsRemoved = len(tagPattern.FindAllStringIndex(text, -1))
		s.apply(result, s.html, text)
	}

	if opts.Markdown {
		s.apply(result, s.markdown, text)
	}

	// Nothing enabled, or every enabled cleaner failed.
	if result.Applied == "" {
		s.apply(result, s.noop, text)
	}

	result.Stats.OutputBytes = len(result.Content)
	result.Stats.OutputLines = CountLines(result.Content)
	result.Stats.Duration = time.Since(start)

	logger.Debug("selection cleaned",
		"applied", result.Applied,
		"lines", result.Lines,
		"input_bytes", result.Stats.InputBytes,
		"output_bytes", result.Stats.OutputBytes)

	return result
}

// apply runs c on the original text and stores its output as the result.
// On failure the result is left as it was.
func (s *Selection) apply(result *Result, c Cleaner, text string) {
	cleaned, err := c.Clean(text)
	if err != nil {
		logger.Warn("cleaner failed, keeping previous content", "cleaner", c.Name(), "error", err)
		return
	}
	result.Content = cleaned
	result.Applied = c.Name()
}
