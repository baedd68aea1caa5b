package cleaner

import (
	"regexp"
)

// tagPattern matches anything shaped like a tag: '<', one or more non-'>'
// characters, then '>'. Newlines are allowed inside.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// TagCleaner removes HTML tags with a single regular expression.
//
// It is a heuristic, not an HTML parser. It does not understand nesting,
// comments, CDATA or attribute quoting, and it does not decode entities.
// Anything between '<' and the next '>' is dropped, so "a < b > c" becomes
// "a  c" and a truncated "<div" is kept. An empty "<>" is kept.
type TagCleaner struct{}

// NewTags creates a new tag cleaner.
func NewTags() *TagCleaner {
	return &TagCleaner{}
}

// Clean removes every tag-shaped substring. It never fails.
func (c *TagCleaner) Clean(text string) (string, error) {
	return tagPattern.ReplaceAllString(text, ""), nil
}

// Name returns the cleaner type.
func (c *TagCleaner) Name() string {
	return "html"
}
