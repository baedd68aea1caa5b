package plugin

import (
	"fmt"
	"strconv"
	"strings"
)

// Buffer is an in-memory Editor over a text document. The selection is a
// 1-based inclusive range of whole lines and covers the entire document
// by default.
type Buffer struct {
	lines      []string
	start, end int
}

// NewBuffer creates a buffer with the whole document selected.
func NewBuffer(content string) *Buffer {
	b := &Buffer{lines: strings.Split(content, "\n")}
	b.SelectAll()
	return b
}

// SelectAll selects the entire document.
func (b *Buffer) SelectAll() {
	b.start, b.end = 1, len(b.lines)
}

// SelectLines selects lines start through end, 1-based and inclusive.
func (b *Buffer) SelectLines(start, end int) error {
	if start < 1 || end < start || end > len(b.lines) {
		return fmt.Errorf("line range %d:%d out of bounds (document has %d lines)", start, end, len(b.lines))
	}
	b.start, b.end = start, end
	return nil
}

// Range returns the selected line range.
func (b *Buffer) Range() (start, end int) {
	return b.start, b.end
}

// Selection returns the selected lines joined by newlines.
func (b *Buffer) Selection() string {
	return strings.Join(b.lines[b.start-1:b.end], "\n")
}

// ReplaceSelection replaces the selected lines with text. The selection
// then covers the replacement.
func (b *Buffer) ReplaceSelection(text string) {
	replacement := strings.Split(text, "\n")

	lines := make([]string, 0, len(b.lines)-(b.end-b.start+1)+len(replacement))
	lines = append(lines, b.lines[:b.start-1]...)
	lines = append(lines, replacement...)
	lines = append(lines, b.lines[b.end:]...)

	b.lines = lines
	b.end = b.start + len(replacement) - 1
}

// String returns the full document.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// ParseLineRange parses "a:b", "a:" or "a" into a 1-based inclusive range.
// An open end is reported as end == 0 and means the last line.
func ParseLineRange(s string) (start, end int, err error) {
	startStr, endStr, hasColon := strings.Cut(strings.TrimSpace(s), ":")

	start, err = strconv.Atoi(startStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid line range %q: %w", s, err)
	}

	switch {
	case !hasColon:
		end = start
	case endStr == "":
		end = 0
	default:
		end, err = strconv.Atoi(endStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid line range %q: %w", s, err)
		}
	}

	return start, end, nil
}

// SelectRange applies a range from ParseLineRange, resolving an open end.
func (b *Buffer) SelectRange(start, end int) error {
	if end == 0 {
		end = len(b.lines)
	}
	return b.SelectLines(start, end)
}
