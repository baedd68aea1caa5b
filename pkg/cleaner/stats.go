package cleaner

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats captures metrics about what a selection clean did.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`

	// Line counts, before and after cleaning
	InputLines  int `json:"input_lines" yaml:"input_lines"`
	OutputLines int `json:"output_lines" yaml:"output_lines"`

	// TagsRemoved counts tag-shaped substrings dropped by the html cleaner.
	// It is zero when the html cleaner did not run.
	TagsRemoved int `json:"tags_removed" yaml:"tags_removed"`

	// Timing
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// Changed reports whether the output differs in size or shape from the input.
func (s *Stats) Changed() bool {
	return s.InputBytes != s.OutputBytes || s.InputLines != s.OutputLines
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %s -> %s (%.1f%% reduction)\n",
		humanize.Bytes(uint64(s.InputBytes)), humanize.Bytes(uint64(s.OutputBytes)), s.ReductionPercent()))

	sb.WriteString(fmt.Sprintf("Lines: %d -> %d\n", s.InputLines, s.OutputLines))

	if s.TagsRemoved > 0 {
		sb.WriteString(fmt.Sprintf("Tags removed: %s\n", humanize.Comma(int64(s.TagsRemoved))))
	}

	sb.WriteString(fmt.Sprintf("Timing: %v\n", s.Duration))

	return sb.String()
}

// Result contains the output of a selection clean.
type Result struct {
	// Content is the cleaned selection.
	Content string `json:"content" yaml:"content"`

	// Lines is the line count of the original selection.
	Lines int `json:"lines" yaml:"lines"`

	// Applied names the cleaner whose output became Content.
	Applied string `json:"applied" yaml:"applied"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats" yaml:"stats"`
}

// Notice returns the message shown to the user after a clean.
func (r *Result) Notice() string {
	return Notice(r.Lines)
}

// Notice formats the user notification for a clean that covered lines rows.
func Notice(lines int) string {
	return fmt.Sprintf("%d rows cleaned", lines)
}
